// Package schema is a small library for describing data shapes. A Schema
// wraps an ast.Node; the converter package turns it into OpenAPI.
//
//	var Item = schema.Struct(
//	    schema.Field("id", schema.String),
//	    schema.Field("name", schema.String.Pipe(schema.MinLength(1))),
//	    schema.Field("quantity", schema.Number.Pipe(schema.Positive())),
//	    schema.Optional("notes", schema.String),
//	    schema.Field("status", schema.Literal("pending", "bought")),
//	).Identifier("Item")
//
// Every check annotates its refinement with a generated title, a generated
// description and the JSON Schema keywords it implies.
//
// Catalogs of named schemas and API contracts can also be loaded from YAML
// with Load and LoadFile.
package schema
