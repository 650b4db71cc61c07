package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	tags := Tags()
	assert.Len(t, tags, 19)
	assert.Equal(t, StringKeywordTag, tags[0])

	tags[0] = "mutated"
	assert.Equal(t, StringKeywordTag, Tags()[0], "Tags must return a copy")
}

func TestTagIsKeyword(t *testing.T) {
	tests := []struct {
		tag  Tag
		want bool
	}{
		{StringKeywordTag, true},
		{UndefinedKeywordTag, true},
		{AnyKeywordTag, true},
		{LiteralTag, false},
		{UnionTag, false},
		{DeclarationTag, false},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag.IsKeyword())
		})
	}
}

func TestNewKeyword(t *testing.T) {
	t.Run("keyword tag", func(t *testing.T) {
		k := NewKeyword(NumberKeywordTag, nil)
		assert.Equal(t, NumberKeywordTag, k.Tag())
		assert.Empty(t, k.Annotations())
	})

	t.Run("non keyword tag panics", func(t *testing.T) {
		assert.Panics(t, func() { NewKeyword(UnionTag, nil) })
	})
}

func TestNewLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"string", "a", "a"},
		{"int", 3, float64(3)},
		{"int64", int64(-7), float64(-7)},
		{"uint8", uint8(9), float64(9)},
		{"float32", float32(1.5), float64(1.5)},
		{"bool", true, true},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLiteral(tt.in, nil).Value)
		})
	}
}

func TestSymbol(t *testing.T) {
	a := NewSymbol("x")
	b := NewSymbol("x")

	assert.Equal(t, "Symbol(x)", a.String())
	assert.Equal(t, "x", a.Description())
	assert.NotSame(t, a, b)

	anns := Annotations{}.With(a, 1)
	_, ok := anns.Get(b)
	assert.False(t, ok, "symbols compare by identity")
}

func TestAnnotations(t *testing.T) {
	t.Run("with keeps position", func(t *testing.T) {
		a := Annotations{}.With("first", 1).With("second", 2).With("first", 3)
		require.Len(t, a, 2)
		assert.Equal(t, Annotation{Key: "first", Value: 3}, a[0])
		assert.Equal(t, Annotation{Key: "second", Value: 2}, a[1])
	})

	t.Run("with copies", func(t *testing.T) {
		base := Annotations{{Key: "k", Value: 1}}
		_ = base.With("k", 2)
		v, _ := base.Get("k")
		assert.Equal(t, 1, v)
	})

	t.Run("merge", func(t *testing.T) {
		a := Annotations{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
		b := Annotations{{Key: "b", Value: 3}, {Key: "c", Value: 4}}
		m := a.Merge(b)
		assert.Equal(t, Annotations{{Key: "a", Value: 1}, {Key: "b", Value: 3}, {Key: "c", Value: 4}}, m)
	})

	t.Run("missing key", func(t *testing.T) {
		v, ok := Annotations(nil).Get(TitleAnnotationID)
		assert.False(t, ok)
		assert.Nil(t, v)
	})
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "title", KeyString("title"))
	assert.Equal(t, "Symbol(openschema/annotation/Title)", KeyString(TitleAnnotationID))
	assert.Equal(t, "42", KeyString(42))
}

func TestAnnotate(t *testing.T) {
	nodes := []Node{
		NewKeyword(StringKeywordTag, nil),
		NewLiteral("a", nil),
		NewTypeLiteral(nil, nil, nil),
		NewTupleType(nil, nil, false, nil),
		NewUnion(nil, nil),
		NewRefinement(NewKeyword(StringKeywordTag, nil), "minLength", nil),
		NewSuspend(func() Node { return nil }, nil),
		NewTransformation(nil, nil, nil),
		NewDeclaration(nil, nil),
	}

	for _, n := range nodes {
		t.Run(n.Tag().String(), func(t *testing.T) {
			annotated := Annotate(n, TitleAnnotationID, "Name")

			assert.Equal(t, n.Tag(), annotated.Tag())
			assert.NotSame(t, n, annotated)
			assert.Empty(t, n.Annotations())

			v, ok := annotated.Annotations().Get(TitleAnnotationID)
			require.True(t, ok)
			assert.Equal(t, "Name", v)
		})
	}
}

func TestTypeLiteralProperty(t *testing.T) {
	name := NewPropertySignature("name", NewKeyword(StringKeywordTag, nil), false, false)
	tl := NewTypeLiteral([]*PropertySignature{name}, nil, nil)

	p, ok := tl.Property("name")
	require.True(t, ok)
	assert.Same(t, name, p)

	_, ok = tl.Property("missing")
	assert.False(t, ok)
}
