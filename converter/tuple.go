package converter

import (
	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// convertTupleType converts arrays, non-empty arrays and fixed tuples.
func convertTupleType(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	tt, ok := n.(*ast.TupleType)
	if !ok {
		return nil, mismatch(ast.TupleTypeTag, n)
	}

	// Homogeneous array.
	if len(tt.Elements) == 0 && len(tt.Rest) == 1 {
		items, err := c.convert(tt.Rest[0], vc)
		if err != nil {
			return nil, err
		}
		out := typedSchema("array")
		out.Items = openapi.SingleItems(items)
		if override := jsonSchemaOverride(tt); override != nil {
			out.Apply(override)
		}
		return out, nil
	}

	// Non-empty array: [T, ...T[]].
	if len(tt.Elements) == 1 && len(tt.Rest) == 1 && tt.Elements[0].Type.Tag() == tt.Rest[0].Tag() {
		items, err := c.convert(tt.Elements[0].Type, vc)
		if err != nil {
			return nil, err
		}
		out := typedSchema("array")
		out.Items = openapi.SingleItems(items)
		out.MinItems = intPtr(1)
		return out, nil
	}

	out := typedSchema("array")

	if len(tt.Elements) > 0 {
		elements := make([]*openapi.Schema, 0, len(tt.Elements))
		required := 0
		for _, el := range tt.Elements {
			converted, err := c.convert(el.Type, vc)
			if err != nil {
				return nil, err
			}
			elements = append(elements, converted)
			if !el.IsOptional {
				required++
			}
		}

		if len(elements) == 1 {
			out.Items = openapi.SingleItems(elements[0])
		} else {
			out.Items = openapi.TupleItems(elements...)
		}

		out.MinItems = intPtr(required)
		if len(tt.Rest) == 0 {
			out.MaxItems = intPtr(len(tt.Elements))
		}
	}

	if len(tt.Rest) > 0 {
		additional, err := c.convert(tt.Rest[0], vc)
		if err != nil {
			return nil, err
		}
		out.AdditionalItems = additional
	}

	return out, nil
}

func intPtr(v int) *int {
	return &v
}
