package main

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vitalvas/openschema/converter"
	"github.com/vitalvas/openschema/openapi"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel string
	maxDepth int
}

// converter returns a converter configured from the flags.
func (f *globalFlags) converter() *converter.Converter {
	logger := log.Logger
	return converter.New(converter.Options{
		MaxDepth: f.maxDepth,
		Logger:   &logger,
	})
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "openschema",
		Short:         "Compile schema catalogs into OpenAPI documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(flags.logLevel)
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&flags.maxDepth, "max-depth", converter.DefaultMaxDepth, "maximum schema nesting depth")

	cmd.AddCommand(
		newConvertCmd(flags),
		newDocumentCmd(flags),
		newServeCmd(flags),
	)

	return cmd
}

// encode renders v in the requested output format.
func encode(v any, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		data, err := openapi.EncodeJSON(v, true)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case formatYAML:
		return openapi.EncodeYAML(v)
	}
	return nil, errors.Errorf("unknown format %q (want json or yaml)", format)
}
