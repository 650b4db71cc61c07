package openapi

import (
	"errors"
	"fmt"
)

// ErrNoConverter is returned by Build when no registered SchemaConverter
// accepts a schema source.
var ErrNoConverter = errors.New("openapi: no schema converter accepts source")

// ConvertStrategy tells a converter which side of an operation a schema
// describes.
type ConvertStrategy string

const (
	StrategyInput  ConvertStrategy = "input"
	StrategyOutput ConvertStrategy = "output"
)

// ConvertOptions is passed to SchemaConverter.Convert.
type ConvertOptions struct {
	Strategy ConvertStrategy
}

// SchemaConverter turns a schema source into a Schema fragment. Condition
// reports whether the converter understands the source; Convert returns the
// fragment and whether a value described by it is required.
type SchemaConverter interface {
	Condition(source any) bool
	Convert(source any, opts ConvertOptions) (bool, *Schema, error)
}

// resolveSchema returns a Schema for the given body value. A *Schema is used
// directly; anything else goes to the first converter that accepts it.
func resolveSchema(converters []SchemaConverter, body any, opts ConvertOptions) (*Schema, bool, error) {
	if body == nil {
		return nil, false, nil
	}
	if s, ok := body.(*Schema); ok {
		return s, true, nil
	}
	for _, c := range converters {
		if !c.Condition(body) {
			continue
		}
		required, s, err := c.Convert(body, opts)
		if err != nil {
			return nil, false, err
		}
		return s, required, nil
	}
	return nil, false, fmt.Errorf("%w: %T", ErrNoConverter, body)
}
