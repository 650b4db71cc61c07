package converter

import (
	"strings"

	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// TimestampDescription is used for date/time values sent as numbers when no
// hand-written description is present.
const TimestampDescription = "Unix timestamp in milliseconds"

func timestampSchema() *openapi.Schema {
	return &openapi.Schema{
		Type:        openapi.TypeString("number"),
		Format:      "timestamp",
		Description: TimestampDescription,
	}
}

// isDateTime reports whether n stands for a date/time value: it carries a
// symbol annotation key mentioning DateTime, or its documentation mentions
// "time" in any case.
func (vc *visitContext) isDateTime(n ast.Node, doc documentation) bool {
	for _, ann := range n.Annotations() {
		if sym, ok := ann.Key.(*ast.Symbol); ok && strings.Contains(sym.String(), "DateTime") {
			return true
		}
	}
	return strings.Contains(vc.fold.String(doc.title), "time") ||
		strings.Contains(vc.fold.String(doc.description), "time")
}

// convertTransformation converts the encoded side of a transformation. A
// date/time transformation with a numeric wire form is documented as a
// millisecond timestamp.
func convertTransformation(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	t, ok := n.(*ast.Transformation)
	if !ok {
		return nil, mismatch(ast.TransformationTag, n)
	}

	out := typedSchema("string")
	if t.From != nil {
		converted, err := c.convert(t.From, vc)
		if err != nil {
			return nil, err
		}
		out = converted
	}

	doc := c.documentation(t)
	if vc.isDateTime(t, doc) && out.Type.Is("number") {
		out.Format = "timestamp"
		if doc.description == "" {
			out.Description = TimestampDescription
		}
	}
	doc.applyTo(out)
	return out, nil
}

// convertDeclaration converts an opaque library type. Date/time declarations
// become timestamps; generic wrappers fall back to their first type
// parameter; anything else is a string.
func convertDeclaration(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	d, ok := n.(*ast.Declaration)
	if !ok {
		return nil, mismatch(ast.DeclarationTag, n)
	}

	doc := c.documentation(d)
	if vc.isDateTime(d, doc) {
		out := timestampSchema()
		if override := jsonSchemaOverride(d); override != nil {
			out.Apply(override)
		}
		doc.applyTo(out)
		return out, nil
	}

	if len(d.TypeParameters) > 0 && d.TypeParameters[0] != nil {
		return c.convert(d.TypeParameters[0], vc)
	}
	return typedSchema("string"), nil
}
