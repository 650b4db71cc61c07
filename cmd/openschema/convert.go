package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vitalvas/openschema/openapi"
	"github.com/vitalvas/openschema/schema"
)

func newConvertCmd(flags *globalFlags) *cobra.Command {
	var (
		typeName string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Print the JSON Schema fragments of catalog definitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			conv := flags.converter()

			var out any
			if typeName != "" {
				def, ok := catalog.Definition(typeName)
				if !ok {
					return errors.Errorf("definition %q not found in %s", typeName, args[0])
				}
				fragment, err := conv.Convert(def.AST())
				if err != nil {
					return errors.Wrapf(err, "convert %s", typeName)
				}
				out = fragment
			} else {
				fragments := make(map[string]*openapi.Schema, len(catalog.Definitions))
				for _, d := range catalog.Definitions {
					fragment, err := conv.Convert(d.Schema.AST())
					if err != nil {
						return errors.Wrapf(err, "convert %s", d.Name)
					}
					fragments[d.Name] = fragment
				}
				out = fragments
			}

			data, err := encode(out, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "convert only the named definition")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format (json or yaml)")

	return cmd
}
