// Package converter compiles schema trees from the ast package into OpenAPI
// 3.0 schema fragments.
//
// Conversion is a synchronous recursive descent over the tree. Each call to
// Convert owns its own traversal state, so a Converter may be shared between
// goroutines.
//
//	out, err := converter.ConvertSchema(schema.Struct(
//	    schema.Field("id", schema.String),
//	    schema.Field("tags", schema.Array(schema.String)),
//	))
//
// Recursive definitions are expressed with Suspend nodes. When a node is
// reached again while it is still being converted, the back edge becomes a
// plain {"type": "object"} fragment.
//
// Union members that share a core shape are collapsed, and unions of structs
// tagged by a literal property get a discriminator.
//
// Titles and descriptions that the schema library generates for its own
// checks ("a string", "minLength(1)", ...) are dropped so only hand-written
// documentation reaches the fragment. The pattern set is configurable through
// Options.Boilerplate.
package converter
