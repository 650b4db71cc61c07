package schema

import (
	"fmt"
	"slices"

	"github.com/vitalvas/openschema/ast"
)

// Property is a struct member.
type Property struct {
	Name     string
	Schema   Schema
	Optional bool
	Readonly bool
}

// Field declares a required property.
func Field(name string, s Schema) Property {
	return Property{Name: name, Schema: s}
}

// Optional declares a property that may be missing or undefined.
func Optional(name string, s Schema) Property {
	return Property{Name: name, Schema: UndefinedOr(s), Optional: true}
}

// OptionalExact declares a property that may be missing but is never
// undefined when present.
func OptionalExact(name string, s Schema) Property {
	return Property{Name: name, Schema: s, Optional: true}
}

// Struct describes an object with the given properties, in order.
func Struct(props ...Property) Schema {
	return Make(ast.NewTypeLiteral(signatures(props), nil, nil))
}

// Record describes an object with arbitrary keys of type key and values of
// type value.
func Record(key, value Schema) Schema {
	return Make(ast.NewTypeLiteral(nil, []*ast.IndexSignature{{Parameter: key.node, Type: value.node}}, nil))
}

// Extend returns a struct with the properties of s followed by props. A
// property with an existing name replaces it in place. It panics when s is
// not a struct.
func (s Schema) Extend(props ...Property) Schema {
	tl := mustStruct(s, "Extend")
	out := slices.Clone(tl.PropertySignatures)
	for _, sig := range signatures(props) {
		idx := slices.IndexFunc(out, func(p *ast.PropertySignature) bool { return p.Name == sig.Name })
		if idx >= 0 {
			out[idx] = sig
			continue
		}
		out = append(out, sig)
	}
	return Make(ast.NewTypeLiteral(out, tl.IndexSignatures, tl.Annotations()))
}

// Omit returns a struct without the named properties. It panics when s is
// not a struct.
func (s Schema) Omit(names ...string) Schema {
	tl := mustStruct(s, "Omit")
	out := make([]*ast.PropertySignature, 0, len(tl.PropertySignatures))
	for _, p := range tl.PropertySignatures {
		if !slices.Contains(names, p.Name) {
			out = append(out, p)
		}
	}
	return Make(ast.NewTypeLiteral(out, tl.IndexSignatures, tl.Annotations()))
}

// Partial returns a struct whose properties are all optional. It panics when
// s is not a struct.
func (s Schema) Partial() Schema {
	tl := mustStruct(s, "Partial")
	out := make([]*ast.PropertySignature, len(tl.PropertySignatures))
	for i, p := range tl.PropertySignatures {
		typ := p.Type
		if !p.IsOptional {
			typ = ast.NewUnion([]ast.Node{p.Type, Undefined.node}, nil)
		}
		out[i] = ast.NewPropertySignature(p.Name, typ, true, p.IsReadonly)
	}
	return Make(ast.NewTypeLiteral(out, tl.IndexSignatures, tl.Annotations()))
}

func mustStruct(s Schema, op string) *ast.TypeLiteral {
	tl, ok := s.node.(*ast.TypeLiteral)
	if !ok {
		panic(fmt.Sprintf("schema: %s needs a struct, got %s", op, s.node.Tag()))
	}
	return tl
}

func signatures(props []Property) []*ast.PropertySignature {
	out := make([]*ast.PropertySignature, len(props))
	for i, p := range props {
		out[i] = ast.NewPropertySignature(p.Name, p.Schema.node, p.Optional, p.Readonly)
	}
	return out
}
