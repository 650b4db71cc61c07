package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/schema"
)

func TestConvertUnionLiterals(t *testing.T) {
	tests := []struct {
		name   string
		schema schema.Schema
		want   string
	}{
		{"strings", schema.Literal("todo", "done"), `{"type":"string","enum":["todo","done"]}`},
		{"numbers", schema.Literal(1, 2, 3), `{"type":"number","enum":[1,2,3]}`},
		{"booleans", schema.Literal(true, false), `{"type":"boolean","enum":[true,false]}`},
		{
			"mixed types",
			schema.Literal("a", 1),
			`{"oneOf":[{"type":"string","enum":["a"]},{"type":"number","enum":[1]}]}`,
		},
		{
			"with null",
			schema.Literal("a", nil),
			`{"oneOf":[{"type":"string","enum":["a"]},{"type":"null"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSchema(t, tt.want, tt.schema)
		})
	}
}

func TestConvertUnionDedup(t *testing.T) {
	tests := []struct {
		name   string
		schema schema.Schema
		want   int
	}{
		{
			"refined numbers collapse",
			schema.Union(
				schema.Number,
				schema.Number.Pipe(schema.Int()),
				schema.Number.Pipe(schema.Positive()),
				schema.String,
			),
			2,
		},
		{
			"refined strings collapse",
			schema.Union(
				schema.String,
				schema.String.Pipe(schema.MinLength(1)),
				schema.String.Pipe(schema.MaxLength(5)),
				schema.Number,
			),
			2,
		},
		{
			"distinct core types",
			schema.Union(schema.String, schema.Number, schema.Boolean, schema.Null),
			4,
		},
		{
			"objects with different fields",
			schema.Union(
				schema.Struct(schema.Field("a", schema.String)),
				schema.Struct(schema.Field("b", schema.String)),
				schema.Struct(schema.Field("a", schema.Number), schema.Field("b", schema.String)),
			),
			3,
		},
		{
			"arrays by item type",
			schema.Union(
				schema.Array(schema.String),
				schema.Array(schema.String.Pipe(schema.MinLength(2))),
				schema.Array(schema.Number),
			),
			2,
		},
		{
			"different enums",
			schema.Union(schema.Literal("a", "b"), schema.Literal("c", "d")),
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ConvertSchema(tt.schema)
			require.NoError(t, err)
			assert.Len(t, out.OneOf, tt.want)
		})
	}

	t.Run("first member is kept", func(t *testing.T) {
		out, err := ConvertSchema(schema.Union(
			schema.String.Pipe(schema.MinLength(3)),
			schema.String,
			schema.Boolean,
		))
		require.NoError(t, err)
		require.Len(t, out.OneOf, 2)
		require.NotNil(t, out.OneOf[0].MinLength)
		assert.Equal(t, 3, *out.OneOf[0].MinLength)
	})

	t.Run("single survivor is returned directly", func(t *testing.T) {
		assertSchema(t, `{"type":"object","properties":{"a":{"type":"string"}},"required":["a"]}`,
			schema.Union(
				schema.Struct(schema.Field("a", schema.String)),
				schema.Struct(schema.Field("a", schema.Number)),
			))
	})
}

func TestConvertUnionShapes(t *testing.T) {
	t.Run("single member", func(t *testing.T) {
		out, err := Convert(ast.NewUnion([]ast.Node{schema.String.AST()}, nil))
		require.NoError(t, err)
		assertJSON(t, `{"type":"string"}`, out)
	})

	t.Run("no members", func(t *testing.T) {
		_, err := Convert(ast.NewUnion(nil, nil))
		assert.ErrorIs(t, err, ErrUnsupportedNode)
	})

	t.Run("nullable", func(t *testing.T) {
		assertSchema(t, `{"oneOf":[{"type":"string"},{"type":"null"}]}`, schema.NullOr(schema.String))
	})

	t.Run("documented union", func(t *testing.T) {
		assertSchema(t, `{"title":"Id","oneOf":[{"type":"string"},{"type":"number"}]}`,
			schema.Union(schema.String, schema.Number).Title("Id"))
	})

	t.Run("member error propagates", func(t *testing.T) {
		_, err := ConvertSchema(schema.Union(schema.String, schema.Any))
		assert.ErrorIs(t, err, ErrUnsupportedNode)
	})
}

func TestConvertUnionDiscriminator(t *testing.T) {
	circle := schema.Struct(
		schema.Field("kind", schema.Literal("circle")),
		schema.Field("radius", schema.Number),
	)
	square := schema.Struct(
		schema.Field("kind", schema.Literal("square")),
		schema.Field("side", schema.Number),
	)

	t.Run("present", func(t *testing.T) {
		out, err := ConvertSchema(schema.Union(circle, square))
		require.NoError(t, err)
		require.Len(t, out.OneOf, 2)
		require.NotNil(t, out.Discriminator)
		assert.Equal(t, "kind", out.Discriminator.PropertyName)
	})

	t.Run("first candidate in member order", func(t *testing.T) {
		a := schema.Struct(
			schema.Field("type", schema.Literal("a")),
			schema.Field("kind", schema.Literal("x")),
		)
		b := schema.Struct(
			schema.Field("kind", schema.Literal("y")),
			schema.Field("type", schema.Literal("b")),
			schema.Field("extra", schema.String),
		)
		out, err := ConvertSchema(schema.Union(a, b))
		require.NoError(t, err)
		require.NotNil(t, out.Discriminator)
		assert.Equal(t, "type", out.Discriminator.PropertyName)
	})

	t.Run("absent when values repeat", func(t *testing.T) {
		other := schema.Struct(
			schema.Field("kind", schema.Literal("circle")),
			schema.Field("side", schema.Number),
		)
		out, err := ConvertSchema(schema.Union(circle, other))
		require.NoError(t, err)
		require.Len(t, out.OneOf, 2)
		assert.Nil(t, out.Discriminator)
	})

	t.Run("absent when a value is not a literal", func(t *testing.T) {
		other := schema.Struct(
			schema.Field("kind", schema.String),
			schema.Field("side", schema.Number),
		)
		out, err := ConvertSchema(schema.Union(circle, other))
		require.NoError(t, err)
		assert.Nil(t, out.Discriminator)
	})

	t.Run("absent when a member is not a struct", func(t *testing.T) {
		out, err := ConvertSchema(schema.Union(circle, schema.String))
		require.NoError(t, err)
		require.Len(t, out.OneOf, 2)
		assert.Nil(t, out.Discriminator)
	})

	t.Run("absent when members are wrapped", func(t *testing.T) {
		tests := []struct {
			name    string
			members []schema.Schema
		}{
			{
				"suspended",
				[]schema.Schema{
					schema.Suspend(func() schema.Schema { return circle }),
					schema.Suspend(func() schema.Schema { return square }),
				},
			},
			{
				"refined",
				[]schema.Schema{
					circle.Pipe(schema.Refine("closed", "", "", nil)),
					square.Pipe(schema.Refine("closed", "", "", nil)),
				},
			},
			{
				"one suspended",
				[]schema.Schema{circle, schema.Suspend(func() schema.Schema { return square })},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				out, err := ConvertSchema(schema.Union(tt.members...))
				require.NoError(t, err)
				require.Len(t, out.OneOf, 2)
				assert.Nil(t, out.Discriminator)
			})
		}
	})

	t.Run("values of different types are distinct", func(t *testing.T) {
		one := schema.Struct(schema.Field("v", schema.Literal(1)), schema.Field("a", schema.String))
		str := schema.Struct(schema.Field("v", schema.Literal("1")), schema.Field("b", schema.String))
		out, err := ConvertSchema(schema.Union(one, str))
		require.NoError(t, err)
		require.NotNil(t, out.Discriminator)
		assert.Equal(t, "v", out.Discriminator.PropertyName)
	})
}

func TestSignatureKey(t *testing.T) {
	a, err := ConvertSchema(schema.Struct(schema.Field("a", schema.String), schema.Field("b", schema.String)))
	require.NoError(t, err)
	b, err := ConvertSchema(schema.Struct(schema.Field("b", schema.Number), schema.Field("a", schema.Boolean)).Title("Other"))
	require.NoError(t, err)

	ka, err := signatureKey(a)
	require.NoError(t, err)
	kb, err := signatureKey(b)
	require.NoError(t, err)
	assert.Equal(t, ka, kb)
}
