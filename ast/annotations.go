package ast

import "fmt"

// Symbol is an annotation key compared by identity. Two symbols with the same
// description are different keys.
type Symbol struct {
	description string
}

// NewSymbol returns a new, unique symbol.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Description returns the text the symbol was created with.
func (s *Symbol) Description() string {
	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.description + ")"
}

// Well-known annotation keys.
var (
	TitleAnnotationID       = NewSymbol("openschema/annotation/Title")
	DescriptionAnnotationID = NewSymbol("openschema/annotation/Description")
	ExamplesAnnotationID    = NewSymbol("openschema/annotation/Examples")
	JSONSchemaAnnotationID  = NewSymbol("openschema/annotation/JSONSchema")
	IdentifierAnnotationID  = NewSymbol("openschema/annotation/Identifier")
)

// Annotation is a single key/value pair attached to a node. Key is a string
// or a *Symbol.
type Annotation struct {
	Key   any
	Value any
}

// Annotations is an ordered annotation set. Order is insertion order and is
// the order consumers scan keys in.
type Annotations []Annotation

// Get returns the value stored under key.
func (a Annotations) Get(key any) (any, bool) {
	for _, ann := range a {
		if ann.Key == key {
			return ann.Value, true
		}
	}
	return nil, false
}

// With returns a copy of a with key set to value. An existing key keeps its
// position.
func (a Annotations) With(key, value any) Annotations {
	out := make(Annotations, len(a), len(a)+1)
	copy(out, a)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Annotation{Key: key, Value: value})
}

// Merge returns a copy of a with every entry of other applied through With.
func (a Annotations) Merge(other Annotations) Annotations {
	out := a
	for _, ann := range other {
		out = out.With(ann.Key, ann.Value)
	}
	return out
}

// KeyString renders an annotation key the way it is matched by name.
func KeyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(k)
	}
}
