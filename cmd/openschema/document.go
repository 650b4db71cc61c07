package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vitalvas/openschema/schema"
)

func newDocumentCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "document FILE",
		Short: "Build the OpenAPI document of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			spec, err := newSpec(catalog, flags.converter())
			if err != nil {
				return err
			}
			doc, err := spec.Build()
			if err != nil {
				return errors.Wrap(err, "build document")
			}

			data, err := encode(doc, format)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(err, "write document")
			}
			log.Info().Str("path", output).Int("paths", len(doc.Paths)).Msg("document written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format (json or yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this file instead of stdout")

	return cmd
}
