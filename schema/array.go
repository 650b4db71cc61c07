package schema

import "github.com/vitalvas/openschema/ast"

// Array describes a list of item values.
func Array(item Schema) Schema {
	return Make(ast.NewTupleType(nil, []ast.Node{item.node}, true, nil))
}

// NonEmptyArray describes a list with at least one item value.
func NonEmptyArray(item Schema) Schema {
	return Make(ast.NewTupleType(
		[]*ast.OptionalType{{Type: item.node}},
		[]ast.Node{item.node},
		true,
		nil,
	))
}

// TupleElement is a positional tuple member.
type TupleElement struct {
	schema   Schema
	optional bool
}

// Element declares a required tuple position.
func Element(s Schema) TupleElement {
	return TupleElement{schema: s}
}

// OptionalElement declares an optional tuple position.
func OptionalElement(s Schema) TupleElement {
	return TupleElement{schema: s, optional: true}
}

// Tuple describes a fixed-length list.
func Tuple(elements ...TupleElement) Schema {
	return Make(ast.NewTupleType(optionalTypes(elements), nil, true, nil))
}

// TupleWithRest describes a list starting with elements and followed by any
// number of rest values.
func TupleWithRest(rest Schema, elements ...TupleElement) Schema {
	return Make(ast.NewTupleType(optionalTypes(elements), []ast.Node{rest.node}, true, nil))
}

func optionalTypes(elements []TupleElement) []*ast.OptionalType {
	if len(elements) == 0 {
		return nil
	}
	out := make([]*ast.OptionalType, len(elements))
	for i, el := range elements {
		out[i] = &ast.OptionalType{Type: el.schema.node, IsOptional: el.optional}
	}
	return out
}
