package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaApply(t *testing.T) {
	t.Run("typed keywords", func(t *testing.T) {
		s := &Schema{Type: TypeString("number")}
		s.Apply(map[string]any{
			"format":           "float",
			"minimum":          1,
			"exclusiveMinimum": true,
			"maxLength":        int64(10),
			"enum":             []string{"a", "b"},
			"required":         []any{"id"},
			"nullable":         true,
			"examples":         "single",
		})

		require.NotNil(t, s.Minimum)
		assert.InDelta(t, 1, *s.Minimum, 0)
		assert.True(t, s.ExclusiveMinimum)
		require.NotNil(t, s.MaxLength)
		assert.Equal(t, 10, *s.MaxLength)
		assert.Equal(t, "float", s.Format)
		assert.Equal(t, []any{"a", "b"}, s.Enum)
		assert.Equal(t, []string{"id"}, s.Required)
		assert.True(t, s.Nullable)
		assert.Equal(t, []any{"single"}, s.Examples)
		assert.Nil(t, s.Extra)
	})

	t.Run("type list", func(t *testing.T) {
		s := &Schema{}
		s.Apply(map[string]any{"type": []any{"string", "null"}})
		assert.Equal(t, []string{"string", "null"}, s.Type.Values())
	})

	t.Run("overwrites set fields", func(t *testing.T) {
		s := &Schema{Type: TypeString("string"), Description: "old"}
		s.Apply(map[string]any{"type": "integer", "description": "new"})
		assert.True(t, s.Type.Is("integer"))
		assert.Equal(t, "new", s.Description)
	})

	t.Run("nested keywords", func(t *testing.T) {
		s := &Schema{}
		s.Apply(map[string]any{
			"items":      map[string]any{"type": "string"},
			"properties": map[string]any{"id": map[string]any{"type": "integer"}},
			"not":        map[string]any{"const": 0},
		})

		require.NotNil(t, s.Items)
		assert.True(t, s.Items.Schema().Type.Is("string"))
		require.Contains(t, s.Properties, "id")
		assert.True(t, s.Properties["id"].Type.Is("integer"))
		require.NotNil(t, s.Not)
		assert.InDelta(t, 0, s.Not.Const, 0)
	})

	t.Run("unknown and misfit keys go to extra", func(t *testing.T) {
		s := &Schema{}
		s.Apply(map[string]any{
			"x-brand":          "Sku",
			"exclusiveMinimum": 5,
			"minLength":        1.5,
			"type":             42,
		})

		assert.Equal(t, map[string]any{
			"x-brand":          "Sku",
			"exclusiveMinimum": 5,
			"minLength":        1.5,
			"type":             42,
		}, s.Extra)
		assert.False(t, s.ExclusiveMinimum)
		assert.Nil(t, s.MinLength)
		assert.True(t, s.Type.IsEmpty())
	})
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"float64", 1.5, 1.5, true},
		{"int", 3, 3, true},
		{"int64", int64(-2), -2, true},
		{"uint8", uint8(7), 7, true},
		{"json number", json.Number("12.25"), 12.25, true},
		{"invalid json number", json.Number("x"), 0, false},
		{"string", "1", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0)
		})
	}
}
