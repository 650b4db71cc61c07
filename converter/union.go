package converter

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"
	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// convertUnion converts a union:
//
//   - literals of one primitive type collapse to {type, enum};
//   - a single member is returned as is;
//   - members sharing a core signature are reduced to the first one;
//   - the rest becomes oneOf, with a discriminator when members are structs
//     tagged by a distinct literal property.
func convertUnion(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	u, ok := n.(*ast.Union)
	if !ok {
		return nil, mismatch(ast.UnionTag, n)
	}
	if len(u.Types) == 0 {
		return nil, fmt.Errorf("%w: union without members", ErrUnsupportedNode)
	}

	if out := literalEnum(u.Types); out != nil {
		return out, nil
	}

	if len(u.Types) == 1 {
		return c.convert(u.Types[0], vc)
	}

	var (
		seen      = make(map[string]struct{}, len(u.Types))
		members   []ast.Node
		fragments []*openapi.Schema
	)
	for _, member := range u.Types {
		converted, err := c.convert(member, vc)
		if err != nil {
			return nil, err
		}
		key, err := signatureKey(converted)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		members = append(members, member)
		fragments = append(fragments, converted)
	}

	if len(fragments) == 1 {
		return fragments[0], nil
	}

	out := &openapi.Schema{OneOf: fragments}
	if name := discriminatorProperty(members); name != "" {
		out.Discriminator = &openapi.Discriminator{PropertyName: name}
	}
	return out, nil
}

// literalEnum returns {type, enum} when every member is a literal of the same
// string, number or boolean type, and nil otherwise.
func literalEnum(types []ast.Node) *openapi.Schema {
	values := make([]any, 0, len(types))
	kind := ""
	for _, t := range types {
		lit, ok := t.(*ast.Literal)
		if !ok {
			return nil
		}
		lt := literalType(lit.Value)
		if lt == "" || (kind != "" && lt != kind) {
			return nil
		}
		kind = lt
		values = append(values, lit.Value)
	}
	return &openapi.Schema{Type: openapi.TypeString(kind), Enum: values}
}

// signature is the annotation-free shape of a fragment used to detect
// duplicate union members. Objects compare by property names only.
type signature struct {
	Type      []string     `json:"type,omitempty"`
	Enum      []any        `json:"enum,omitempty"`
	Props     []string     `json:"props,omitempty"`
	Items     []*signature `json:"items,omitempty"`
	ItemsList bool         `json:"itemsList,omitempty"`
	OneOf     bool         `json:"oneOf,omitempty"`
}

func signatureOf(s *openapi.Schema) *signature {
	sig := &signature{
		Type:  s.Type.Values(),
		Enum:  s.Enum,
		OneOf: len(s.OneOf) > 0,
	}

	if s.Properties != nil {
		sig.Props = make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			sig.Props = append(sig.Props, name)
		}
		slices.Sort(sig.Props)
	}

	if s.Items != nil {
		if s.Items.IsList() {
			sig.ItemsList = true
			for _, item := range s.Items.List() {
				sig.Items = append(sig.Items, signatureOf(item))
			}
		} else if item := s.Items.Schema(); item != nil {
			sig.Items = []*signature{signatureOf(item)}
		}
	}
	return sig
}

// signatureKey renders the signature of s as a comparable string.
func signatureKey(s *openapi.Schema) (string, error) {
	data, err := json.Marshal(signatureOf(s))
	if err != nil {
		return "", fmt.Errorf("converter: union member signature: %w", err)
	}
	return string(data), nil
}

// discriminatorProperty returns the first property of the first member that
// every member declares with a literal type, with pairwise distinct non-null
// values. All members must be structs.
func discriminatorProperty(members []ast.Node) string {
	if len(members) < 2 {
		return ""
	}

	structs := make([]*ast.TypeLiteral, 0, len(members))
	for _, m := range members {
		tl, ok := m.(*ast.TypeLiteral)
		if !ok {
			return ""
		}
		structs = append(structs, tl)
	}

	for _, candidate := range structs[0].PropertySignatures {
		if isDiscriminator(structs, candidate.Name) {
			return candidate.Name
		}
	}
	return ""
}

func isDiscriminator(structs []*ast.TypeLiteral, name string) bool {
	seen := make(map[string]struct{}, len(structs))
	for _, tl := range structs {
		prop, ok := tl.Property(name)
		if !ok {
			return false
		}
		lit, ok := prop.Type.(*ast.Literal)
		if !ok || lit.Value == nil {
			return false
		}
		key := fmt.Sprintf("%T:%v", lit.Value, lit.Value)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
