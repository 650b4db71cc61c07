package converter

import (
	"fmt"

	"github.com/vitalvas/openschema/openapi"
	"github.com/vitalvas/openschema/schema"
)

// Adapter plugs a Converter into the openapi document builder. It accepts
// schema sources produced by the library identified by Vendor.
type Adapter struct {
	// Vendor is the library marker a source must report (default: schema.Vendor).
	Vendor string

	// Converter compiles accepted sources (default: a Converter with default options).
	Converter *Converter
}

var _ openapi.SchemaConverter = (*Adapter)(nil)

// NewAdapter returns an adapter using c for schema.Vendor sources.
func NewAdapter(c *Converter) *Adapter {
	return &Adapter{Vendor: schema.Vendor, Converter: c}
}

// vendor returns the accepted vendor, defaulting to schema.Vendor.
func (a *Adapter) vendor() string {
	if a.Vendor == "" {
		return schema.Vendor
	}
	return a.Vendor
}

// converter returns the configured converter, defaulting to the package default.
func (a *Adapter) converter() *Converter {
	if a.Converter == nil {
		return defaultConverter
	}
	return a.Converter
}

// Condition reports whether source carries a schema tree from the accepted vendor.
func (a *Adapter) Condition(source any) bool {
	if _, ok := source.(Source); !ok {
		return false
	}
	v, ok := source.(interface{ Vendor() string })
	return ok && v.Vendor() == a.vendor()
}

// Convert compiles source. The value is always reported as required:
// optionality lives in the struct fragments themselves.
func (a *Adapter) Convert(source any, _ openapi.ConvertOptions) (bool, *openapi.Schema, error) {
	src, ok := source.(Source)
	if !ok {
		return false, nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
	out, err := a.converter().Convert(src.AST())
	if err != nil {
		return false, nil, err
	}
	return true, out, nil
}
