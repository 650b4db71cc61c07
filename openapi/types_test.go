package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchemaType(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		tests := []struct {
			name     string
			input    SchemaType
			expected string
		}{
			{"single type marshals as string", TypeString("string"), `"string"`},
			{"multiple types marshal as array", TypeArray("string", "null"), `["string","null"]`},
			{"empty type marshals as null", SchemaType{}, "null"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := json.Marshal(tt.input)
				require.NoError(t, err)
				assert.JSONEq(t, tt.expected, string(data))
			})
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			name     string
			input    string
			expected []string
			wantErr  bool
		}{
			{"single string", `"integer"`, []string{"integer"}, false},
			{"array", `["string","null"]`, []string{"string", "null"}, false},
			{"invalid", `123`, nil, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var st SchemaType
				err := json.Unmarshal([]byte(tt.input), &st)
				if tt.wantErr {
					assert.Error(t, err)
				} else {
					require.NoError(t, err)
					assert.Equal(t, tt.expected, st.Values())
				}
			})
		}
	})

	t.Run("IsEmpty", func(t *testing.T) {
		var empty SchemaType
		assert.True(t, empty.IsEmpty())
		assert.True(t, empty.IsZero())
		assert.False(t, TypeString("string").IsEmpty())
	})

	t.Run("Is", func(t *testing.T) {
		assert.True(t, TypeString("object").Is("object"))
		assert.False(t, TypeString("object").Is("array"))
		assert.False(t, TypeArray("object", "null").Is("object"))
		assert.False(t, SchemaType{}.Is("object"))
	})

	t.Run("unmarshal YAML", func(t *testing.T) {
		tests := []struct {
			name     string
			input    string
			expected []string
			wantErr  bool
		}{
			{"scalar", "integer", []string{"integer"}, false},
			{"sequence", "- string\n- \"null\"\n", []string{"string", "null"}, false},
			{"mapping", "a: b", nil, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var st SchemaType
				err := yaml.Unmarshal([]byte(tt.input), &st)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.expected, st.Values())
			})
		}
	})
}

func TestItemsJSON(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		items := SingleItems(&Schema{Type: TypeString("string")})
		data, err := json.Marshal(items)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"string"}`, string(data))
		assert.False(t, items.IsList())
	})

	t.Run("tuple", func(t *testing.T) {
		items := TupleItems(&Schema{Type: TypeString("string")}, &Schema{Type: TypeString("number")})
		data, err := json.Marshal(items)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"type":"string"},{"type":"number"}]`, string(data))
		assert.True(t, items.IsList())
		assert.Nil(t, items.Schema())
	})

	t.Run("unmarshal both forms", func(t *testing.T) {
		var single Items
		require.NoError(t, json.Unmarshal([]byte(`{"type":"boolean"}`), &single))
		require.NotNil(t, single.Schema())
		assert.True(t, single.Schema().Type.Is("boolean"))

		var list Items
		require.NoError(t, json.Unmarshal([]byte(`[{"type":"string"},{}]`), &list))
		assert.Len(t, list.List(), 2)
	})
}

func TestSchemaJSON(t *testing.T) {
	one := 1.0
	three := 3

	tests := []struct {
		name     string
		schema   *Schema
		expected string
	}{
		{
			name:     "empty schema",
			schema:   &Schema{},
			expected: `{}`,
		},
		{
			name: "empty object keeps properties and required",
			schema: &Schema{
				Type:       TypeString("object"),
				Properties: map[string]*Schema{},
				Required:   []string{},
			},
			expected: `{"type":"object","properties":{},"required":[]}`,
		},
		{
			name: "numeric constraints",
			schema: &Schema{
				MultipleOf:       &one,
				Minimum:          &one,
				ExclusiveMinimum: true,
			},
			expected: `{"multipleOf":1,"minimum":1,"exclusiveMinimum":true}`,
		},
		{
			name: "tuple items",
			schema: &Schema{
				Type:     TypeString("array"),
				Items:    TupleItems(&Schema{Type: TypeString("string")}),
				MinItems: &three,
			},
			expected: `{"type":"array","items":[{"type":"string"}],"minItems":3}`,
		},
		{
			name:     "false const is kept",
			schema:   &Schema{Type: TypeString("boolean"), Const: false},
			expected: `{"type":"boolean","const":false}`,
		},
		{
			name: "extra keys are inlined",
			schema: &Schema{
				Type:  TypeString("string"),
				Extra: map[string]any{"x-brand": "Sku", "contentEncoding": "base64"},
			},
			expected: `{"type":"string","x-brand":"Sku","contentEncoding":"base64"}`,
		},
		{
			name: "typed fields win over extra",
			schema: &Schema{
				Type:  TypeString("string"),
				Extra: map[string]any{"type": "number"},
			},
			expected: `{"type":"string"}`,
		},
		{
			name: "discriminated union",
			schema: &Schema{
				OneOf: []*Schema{
					{Type: TypeString("object")},
					{Type: TypeString("object")},
				},
				Discriminator: &Discriminator{PropertyName: "kind"},
			},
			expected: `{"oneOf":[{"type":"object"},{"type":"object"}],"discriminator":{"propertyName":"kind"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.schema)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}

	t.Run("unmarshal keeps unknown keys in extra", func(t *testing.T) {
		var s Schema
		require.NoError(t, json.Unmarshal([]byte(`{"type":"integer","minimum":0,"x-unit":"cents"}`), &s))
		assert.True(t, s.Type.Is("integer"))
		require.NotNil(t, s.Minimum)
		assert.InDelta(t, 0, *s.Minimum, 0)
		assert.Equal(t, map[string]any{"x-unit": "cents"}, s.Extra)
	})

	t.Run("nested schemas marshal with extra", func(t *testing.T) {
		s := &Schema{
			Type: TypeString("object"),
			Properties: map[string]*Schema{
				"id": {Type: TypeString("string"), Extra: map[string]any{"x-id": true}},
			},
			Required: []string{"id"},
		}
		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"object","properties":{"id":{"type":"string","x-id":true}},"required":["id"]}`, string(data))
	})
}

func TestDocumentJSON(t *testing.T) {
	t.Run("minimal document", func(t *testing.T) {
		doc := Document{
			OpenAPI: Version,
			Info: Info{
				Title:   "Test API",
				Version: "1.0.0",
			},
			Paths: map[string]*PathItem{},
		}
		data, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"openapi":"3.0.3","info":{"title":"Test API","version":"1.0.0"},"paths":{}}`, string(data))
	})

	t.Run("full document roundtrip", func(t *testing.T) {
		minLen := 1
		doc := Document{
			OpenAPI: Version,
			Info: Info{
				Title:       "Grocery",
				Description: "Catalog of grocery items",
				Version:     "2.0.0",
				Contact:     &Contact{Name: "API Support", Email: "support@example.com"},
				License:     &License{Name: "MIT"},
			},
			Servers: []Server{
				{URL: "https://api.example.com", Description: "Production"},
			},
			Paths: map[string]*PathItem{
				"/items": {
					Get: &Operation{
						Tags:        []string{"items"},
						Summary:     "List items",
						OperationID: "listItems",
						Responses: map[string]*Response{
							"200": {
								Description: "OK",
								Content: map[string]*MediaType{
									"application/json": {
										Schema: &Schema{
											Type:  TypeString("array"),
											Items: SingleItems(&Schema{Ref: "#/components/schemas/Item"}),
										},
									},
								},
							},
						},
					},
				},
			},
			Components: &Components{
				Schemas: map[string]*Schema{
					"Item": {
						Type: TypeString("object"),
						Properties: map[string]*Schema{
							"name": {
								Type:      TypeString("string"),
								MinLength: &minLen,
							},
						},
						Required: []string{"name"},
					},
				},
				SecuritySchemes: map[string]*SecurityScheme{
					"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
				},
			},
			Tags:     []Tag{{Name: "items", Description: "Item operations"}},
			Security: []SecurityRequirement{{"bearer": {}}},
		}

		data, err := json.Marshal(doc)
		require.NoError(t, err)

		var roundtrip Document
		require.NoError(t, json.Unmarshal(data, &roundtrip))
		assert.Equal(t, doc.OpenAPI, roundtrip.OpenAPI)
		assert.Equal(t, doc.Info, roundtrip.Info)
		assert.Len(t, roundtrip.Servers, 1)
		assert.Len(t, roundtrip.Tags, 1)
		require.Contains(t, roundtrip.Paths, "/items")
		items := roundtrip.Paths["/items"].Get.Responses["200"].Content["application/json"].Schema.Items
		require.NotNil(t, items)
		assert.Equal(t, "#/components/schemas/Item", items.Schema().Ref)
		require.NotNil(t, roundtrip.Components)
		assert.Contains(t, roundtrip.Components.Schemas, "Item")
		assert.Equal(t, "bearer", roundtrip.Components.SecuritySchemes["bearer"].Scheme)
	})
}

func TestOperationJSON(t *testing.T) {
	op := Operation{
		OperationID: "createItem",
		Parameters: []*Parameter{
			{Name: "id", In: "path", Required: true, Schema: &Schema{Type: TypeString("string")}},
		},
		RequestBody: &RequestBody{
			Required: true,
			Content: map[string]*MediaType{
				"application/json": {Schema: &Schema{Type: TypeString("object")}},
			},
		},
		Responses: map[string]*Response{
			"204": {Description: "No Content"},
		},
		Deprecated: true,
		Security:   []SecurityRequirement{},
	}

	data, err := json.Marshal(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"operationId": "createItem",
		"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}],
		"requestBody": {"required":true,"content":{"application/json":{"schema":{"type":"object"}}}},
		"responses": {"204":{"description":"No Content"}},
		"deprecated": true
	}`, string(data))
}

func TestPathItemJSON(t *testing.T) {
	item := PathItem{
		Get:    &Operation{OperationID: "getItem", Responses: map[string]*Response{"200": {Description: "OK"}}},
		Delete: &Operation{OperationID: "deleteItem", Responses: map[string]*Response{"204": {Description: "No Content"}}},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Contains(t, parsed, "get")
	assert.Contains(t, parsed, "delete")
	assert.NotContains(t, parsed, "post")

	assert.Len(t, item.operations(), 2)
}

func TestSecurityRequirementJSON(t *testing.T) {
	req := SecurityRequirement{"oauth": {"read", "write"}}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"oauth":["read","write"]}`, string(data))
}
