package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/openschema/ast"
)

func TestChecks(t *testing.T) {
	tests := []struct {
		name        string
		check       Check
		title       string
		description string
		jsonSchema  map[string]any
	}{
		{"min length", MinLength(2), "minLength(2)", "a string at least 2 character(s) long", map[string]any{"minLength": 2}},
		{"max length", MaxLength(8), "maxLength(8)", "a string at most 8 character(s) long", map[string]any{"maxLength": 8}},
		{"non empty string", NonEmptyString(), "nonEmptyString", "a non empty string", map[string]any{"minLength": 1}},
		{"pattern", Pattern("^a+$"), "pattern(/^a+$/)", "a string matching the pattern ^a+$", map[string]any{"pattern": "^a+$"}},
		{"int", Int(), "int", "an integer", map[string]any{"multipleOf": 1}},
		{"positive", Positive(), "positive()", "a positive number", map[string]any{"exclusiveMinimum": 0}},
		{"non negative", NonNegative(), "nonNegative()", "a non-negative number", map[string]any{"minimum": 0}},
		{"greater than", GreaterThan(1.5), "greaterThan(1.5)", "a number greater than 1.5", map[string]any{"exclusiveMinimum": 1.5}},
		{"greater than or equal", GreaterThanOrEqualTo(2), "greaterThanOrEqualTo(2)", "a number greater than or equal to 2", map[string]any{"minimum": float64(2)}},
		{"less than", LessThan(10), "lessThan(10)", "a number less than 10", map[string]any{"exclusiveMaximum": float64(10)}},
		{"less than or equal", LessThanOrEqualTo(10), "lessThanOrEqualTo(10)", "a number less than or equal to 10", map[string]any{"maximum": float64(10)}},
		{"between", Between(1, 5), "between(1, 5)", "a number between 1 and 5", map[string]any{"minimum": float64(1), "maximum": float64(5)}},
		{"multiple of", MultipleOf(0.5), "multipleOf(0.5)", "a number divisible by 0.5", map[string]any{"multipleOf": 0.5}},
		{"min items", MinItems(1), "minItems(1)", "an array of at least 1 item(s)", map[string]any{"minItems": 1}},
		{"max items", MaxItems(3), "maxItems(3)", "an array of at most 3 item(s)", map[string]any{"maxItems": 3}},
		{"items count", ItemsCount(2), "itemsCount(2)", "an array of exactly 2 item(s)", map[string]any{"minItems": 2, "maxItems": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := String.Pipe(tt.check).AST().(*ast.Refinement)
			require.True(t, ok)
			assert.Equal(t, tt.check.Name(), r.Name)

			ann := r.Annotations()
			title, _ := ann.Get(ast.TitleAnnotationID)
			assert.Equal(t, tt.title, title)
			description, _ := ann.Get(ast.DescriptionAnnotationID)
			assert.Equal(t, tt.description, description)
			js, _ := ann.Get(ast.JSONSchemaAnnotationID)
			assert.Equal(t, tt.jsonSchema, js)
		})
	}
}

func TestPipeOrder(t *testing.T) {
	s := String.Pipe(MinLength(1), MaxLength(10))

	outer, ok := s.AST().(*ast.Refinement)
	require.True(t, ok)
	assert.Equal(t, "maxLength", outer.Name)

	inner, ok := outer.From.(*ast.Refinement)
	require.True(t, ok)
	assert.Equal(t, "minLength", inner.Name)
	assert.Same(t, String.AST(), inner.From)
}

func TestRefine(t *testing.T) {
	t.Run("custom check", func(t *testing.T) {
		r := String.Pipe(Refine("slug", "", "", map[string]any{"pattern": "^[a-z-]+$"})).AST().(*ast.Refinement)
		assert.Equal(t, "slug", r.Name)

		_, hasTitle := r.Annotations().Get(ast.TitleAnnotationID)
		assert.False(t, hasTitle)

		js, ok := r.Annotations().Get(ast.JSONSchemaAnnotationID)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"pattern": "^[a-z-]+$"}, js)
	})

	t.Run("without json schema", func(t *testing.T) {
		r := Number.Pipe(Refine("even", "even", "an even number", nil)).AST().(*ast.Refinement)
		_, ok := r.Annotations().Get(ast.JSONSchemaAnnotationID)
		assert.False(t, ok)
	})
}
