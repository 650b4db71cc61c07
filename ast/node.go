package ast

import "fmt"

// Node is a schema tree node.
type Node interface {
	Tag() Tag
	Annotations() Annotations
	node()
}

type annotated struct {
	annotations Annotations
}

func (a *annotated) Annotations() Annotations { return a.annotations }

func (*annotated) node() {}

// Keyword is a payload-free node such as StringKeyword.
type Keyword struct {
	annotated
	tag Tag
}

// NewKeyword returns a keyword node. It panics when tag is not a keyword tag.
func NewKeyword(tag Tag, annotations Annotations) *Keyword {
	if !tag.IsKeyword() {
		panic(fmt.Sprintf("ast: %s is not a keyword tag", tag))
	}
	return &Keyword{annotated: annotated{annotations: annotations}, tag: tag}
}

func (k *Keyword) Tag() Tag { return k.tag }

// Literal holds a single concrete value: a string, a float64, a bool or nil.
type Literal struct {
	annotated
	Value any
}

// NewLiteral returns a literal node. Integer and float32 values are stored as
// float64 so equal numbers compare equal.
func NewLiteral(value any, annotations Annotations) *Literal {
	return &Literal{annotated: annotated{annotations: annotations}, Value: normalizeLiteral(value)}
}

func (*Literal) Tag() Tag { return LiteralTag }

func normalizeLiteral(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}

// PropertySignature is a named member of a TypeLiteral.
type PropertySignature struct {
	Name       string
	Type       Node
	IsOptional bool
	IsReadonly bool
}

// NewPropertySignature returns a property signature.
func NewPropertySignature(name string, typ Node, isOptional, isReadonly bool) *PropertySignature {
	return &PropertySignature{Name: name, Type: typ, IsOptional: isOptional, IsReadonly: isReadonly}
}

// IndexSignature describes the value type of an open-ended map.
type IndexSignature struct {
	Parameter Node
	Type      Node
}

// TypeLiteral describes structs and records.
type TypeLiteral struct {
	annotated
	PropertySignatures []*PropertySignature
	IndexSignatures    []*IndexSignature
}

// NewTypeLiteral returns a struct/record node.
func NewTypeLiteral(props []*PropertySignature, index []*IndexSignature, annotations Annotations) *TypeLiteral {
	return &TypeLiteral{
		annotated:          annotated{annotations: annotations},
		PropertySignatures: props,
		IndexSignatures:    index,
	}
}

func (*TypeLiteral) Tag() Tag { return TypeLiteralTag }

// Property returns the property signature called name.
func (t *TypeLiteral) Property(name string) (*PropertySignature, bool) {
	for _, p := range t.PropertySignatures {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// OptionalType is a positional tuple element.
type OptionalType struct {
	Type       Node
	IsOptional bool
}

// TupleType describes tuples and arrays. Rest holds the element type of an
// open-ended tail; an empty Rest closes the tuple.
type TupleType struct {
	annotated
	Elements   []*OptionalType
	Rest       []Node
	IsReadonly bool
}

// NewTupleType returns a tuple/array node.
func NewTupleType(elements []*OptionalType, rest []Node, isReadonly bool, annotations Annotations) *TupleType {
	return &TupleType{
		annotated:  annotated{annotations: annotations},
		Elements:   elements,
		Rest:       rest,
		IsReadonly: isReadonly,
	}
}

func (*TupleType) Tag() Tag { return TupleTypeTag }

// Union is an ordered list of alternatives.
type Union struct {
	annotated
	Types []Node
}

// NewUnion returns a union node.
func NewUnion(types []Node, annotations Annotations) *Union {
	return &Union{annotated: annotated{annotations: annotations}, Types: types}
}

func (*Union) Tag() Tag { return UnionTag }

// Refinement narrows From with a named predicate. Constraints travel in the
// node's annotations.
type Refinement struct {
	annotated
	From Node
	Name string
}

// NewRefinement returns a refinement node.
func NewRefinement(from Node, name string, annotations Annotations) *Refinement {
	return &Refinement{annotated: annotated{annotations: annotations}, From: from, Name: name}
}

func (*Refinement) Tag() Tag { return RefinementTag }

// Suspend defers construction of a node, which allows self reference.
type Suspend struct {
	annotated
	F func() Node
}

// NewSuspend returns a suspended node.
func NewSuspend(f func() Node, annotations Annotations) *Suspend {
	return &Suspend{annotated: annotated{annotations: annotations}, F: f}
}

func (*Suspend) Tag() Tag { return SuspendTag }

// Transformation pairs an encoded (wire) side with a decoded (domain) side.
type Transformation struct {
	annotated
	From Node
	To   Node
}

// NewTransformation returns a transformation node.
func NewTransformation(from, to Node, annotations Annotations) *Transformation {
	return &Transformation{annotated: annotated{annotations: annotations}, From: from, To: to}
}

func (*Transformation) Tag() Tag { return TransformationTag }

// Declaration is an opaque type defined by the schema library.
type Declaration struct {
	annotated
	TypeParameters []Node
}

// NewDeclaration returns a declaration node.
func NewDeclaration(typeParameters []Node, annotations Annotations) *Declaration {
	return &Declaration{annotated: annotated{annotations: annotations}, TypeParameters: typeParameters}
}

func (*Declaration) Tag() Tag { return DeclarationTag }

// Annotate returns a shallow copy of n with key set to value. The copy is a
// new node identity.
func Annotate(n Node, key, value any) Node {
	return WithAnnotations(n, n.Annotations().With(key, value))
}

// WithAnnotations returns a shallow copy of n carrying annotations.
func WithAnnotations(n Node, annotations Annotations) Node {
	switch v := n.(type) {
	case *Keyword:
		c := *v
		c.annotations = annotations
		return &c
	case *Literal:
		c := *v
		c.annotations = annotations
		return &c
	case *TypeLiteral:
		c := *v
		c.annotations = annotations
		return &c
	case *TupleType:
		c := *v
		c.annotations = annotations
		return &c
	case *Union:
		c := *v
		c.annotations = annotations
		return &c
	case *Refinement:
		c := *v
		c.annotations = annotations
		return &c
	case *Suspend:
		c := *v
		c.annotations = annotations
		return &c
	case *Transformation:
		c := *v
		c.annotations = annotations
		return &c
	case *Declaration:
		c := *v
		c.annotations = annotations
		return &c
	}
	panic(fmt.Sprintf("ast: unknown node type %T", n))
}
