package converter

import (
	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// convertTypeLiteral converts structs and records. Empty structs keep empty
// properties and required lists rather than omitting them.
func convertTypeLiteral(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	tl, ok := n.(*ast.TypeLiteral)
	if !ok {
		return nil, mismatch(ast.TypeLiteralTag, n)
	}

	out := objectSchema()

	if len(tl.IndexSignatures) > 0 {
		values, err := c.convert(tl.IndexSignatures[0].Type, vc)
		if err != nil {
			return nil, err
		}
		out.AdditionalProperties = values
	}

	if len(tl.PropertySignatures) == 0 {
		if len(tl.IndexSignatures) == 0 {
			out.Properties = map[string]*openapi.Schema{}
			out.Required = []string{}
		}
		return out, nil
	}

	out.Properties = make(map[string]*openapi.Schema, len(tl.PropertySignatures))
	out.Required = []string{}
	for _, prop := range tl.PropertySignatures {
		typ := prop.Type
		if prop.IsOptional {
			typ = withoutUndefined(typ)
		}

		converted, err := c.convert(typ, vc)
		if err != nil {
			return nil, err
		}
		out.Properties[prop.Name] = converted

		if !prop.IsOptional {
			out.Required = append(out.Required, prop.Name)
		}
	}
	return out, nil
}

// withoutUndefined unwraps "T | undefined" to T. Any other node is returned
// unchanged.
func withoutUndefined(n ast.Node) ast.Node {
	u, ok := n.(*ast.Union)
	if !ok || len(u.Types) != 2 {
		return n
	}
	switch {
	case u.Types[0].Tag() == ast.UndefinedKeywordTag && u.Types[1].Tag() != ast.UndefinedKeywordTag:
		return u.Types[1]
	case u.Types[1].Tag() == ast.UndefinedKeywordTag && u.Types[0].Tag() != ast.UndefinedKeywordTag:
		return u.Types[0]
	}
	return n
}
