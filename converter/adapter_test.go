package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
	"github.com/vitalvas/openschema/schema"
)

type foreignSchema struct{}

func (foreignSchema) AST() ast.Node  { return schema.String.AST() }
func (foreignSchema) Vendor() string { return "zod" }

type bareSource struct{}

func (bareSource) AST() ast.Node { return schema.String.AST() }

func TestAdapterCondition(t *testing.T) {
	a := NewAdapter(nil)

	tests := []struct {
		name   string
		source any
		want   bool
	}{
		{"schema", schema.String, true},
		{"struct schema", schema.Struct(schema.Field("a", schema.Number)), true},
		{"other vendor", foreignSchema{}, false},
		{"no vendor", bareSource{}, false},
		{"plain value", "string", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Condition(tt.source))
		})
	}

	t.Run("custom vendor", func(t *testing.T) {
		zod := &Adapter{Vendor: "zod"}
		assert.True(t, zod.Condition(foreignSchema{}))
		assert.False(t, zod.Condition(schema.String))
	})

	t.Run("zero value", func(t *testing.T) {
		assert.True(t, (&Adapter{}).Condition(schema.String))
	})
}

func TestAdapterConvert(t *testing.T) {
	a := NewAdapter(nil)

	t.Run("converts", func(t *testing.T) {
		required, out, err := a.Convert(schema.String.Pipe(schema.MinLength(2)), openapi.ConvertOptions{})
		require.NoError(t, err)
		assert.True(t, required)
		assertJSON(t, `{"type":"string","minLength":2}`, out)
	})

	t.Run("strategy does not change the result", func(t *testing.T) {
		s := schema.Struct(schema.Optional("a", schema.String))
		_, in, err := a.Convert(s, openapi.ConvertOptions{Strategy: openapi.StrategyInput})
		require.NoError(t, err)
		_, out, err := a.Convert(s, openapi.ConvertOptions{Strategy: openapi.StrategyOutput})
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("unsupported source", func(t *testing.T) {
		_, _, err := a.Convert(42, openapi.ConvertOptions{})
		assert.ErrorIs(t, err, ErrUnsupportedSource)
	})

	t.Run("conversion error", func(t *testing.T) {
		_, _, err := a.Convert(schema.Any, openapi.ConvertOptions{})
		assert.ErrorIs(t, err, ErrUnsupportedNode)
	})

	t.Run("configured converter", func(t *testing.T) {
		shallow := NewAdapter(New(Options{MaxDepth: 1}))
		_, _, err := shallow.Convert(nest(schema.String, 2), openapi.ConvertOptions{})
		assert.ErrorIs(t, err, ErrMaxDepthExceeded)
	})
}
