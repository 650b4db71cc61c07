package main

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/vitalvas/openschema/converter"
	"github.com/vitalvas/openschema/openapi"
	"github.com/vitalvas/openschema/schema"
)

// newSpec registers every contract and definition of catalog on a Spec that
// compiles schemas with conv.
func newSpec(catalog *schema.Catalog, conv *converter.Converter) (*openapi.Spec, error) {
	spec := openapi.NewSpec(openapi.Info{
		Title:       catalog.Info.Title,
		Version:     catalog.Info.Version,
		Description: catalog.Info.Description,
	}).
		UseConverter(converter.NewAdapter(conv)).
		SetLogger(log.Logger)

	for _, d := range catalog.Definitions {
		spec.AddComponentSchema(d.Name, d.Schema)
	}

	for _, c := range catalog.Contracts {
		op := spec.Route(c.Method, c.Path).
			OperationID(c.Name).
			Summary(c.Summary).
			Description(c.Description).
			Tags(c.Tags...)

		if c.Deprecated {
			op.Deprecated()
		}
		if c.SuccessStatus != 0 {
			op.SuccessStatus(c.SuccessStatus)
		}

		switch c.InputStructure {
		case schema.InputDetailed:
			op.InputStructure(openapi.InputDetailed)
		case schema.InputCompact, "":
			op.InputStructure(openapi.InputCompact)
		default:
			return nil, errors.Errorf("contract %s: unknown input structure %q", c.Name, c.InputStructure)
		}

		if c.Input != nil {
			op.Input(*c.Input)
		}
		if c.Output != nil {
			op.Output(*c.Output)
		}
	}

	return spec, nil
}
