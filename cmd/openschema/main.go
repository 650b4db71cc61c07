// Command openschema compiles schema catalogs into JSON Schema fragments and
// OpenAPI documents.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.NewConsoleWriter())

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("openschema failed")
		os.Exit(1)
	}
}
