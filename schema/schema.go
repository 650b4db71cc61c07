package schema

import "github.com/vitalvas/openschema/ast"

// Vendor identifies schemas built by this package.
const Vendor = "openschema"

// Schema is an immutable handle on a schema tree. Methods that change
// annotations return a new Schema backed by a new node.
type Schema struct {
	node ast.Node
}

// Make wraps an existing node.
func Make(n ast.Node) Schema {
	return Schema{node: n}
}

// AST returns the underlying node.
func (s Schema) AST() ast.Node {
	return s.node
}

// Vendor returns the library marker, always Vendor.
func (s Schema) Vendor() string {
	return Vendor
}

// Annotate sets an arbitrary annotation.
func (s Schema) Annotate(key, value any) Schema {
	return Make(ast.Annotate(s.node, key, value))
}

// Title sets the title annotation.
func (s Schema) Title(title string) Schema {
	return s.Annotate(ast.TitleAnnotationID, title)
}

// Description sets the description annotation.
func (s Schema) Description(description string) Schema {
	return s.Annotate(ast.DescriptionAnnotationID, description)
}

// Examples sets the examples annotation.
func (s Schema) Examples(examples ...any) Schema {
	return s.Annotate(ast.ExamplesAnnotationID, examples)
}

// Identifier names the schema.
func (s Schema) Identifier(id string) Schema {
	return s.Annotate(ast.IdentifierAnnotationID, id)
}

// JSONSchema attaches raw JSON Schema keywords. Refinements, arrays and
// declarations merge them into their fragment.
func (s Schema) JSONSchema(keywords map[string]any) Schema {
	return s.Annotate(ast.JSONSchemaAnnotationID, keywords)
}

// Pipe stacks checks on s. The last check becomes the outermost refinement.
func (s Schema) Pipe(checks ...Check) Schema {
	out := s
	for _, c := range checks {
		out = c.apply(out)
	}
	return out
}

// IdentifierOf returns the identifier annotation of s, if any.
func IdentifierOf(s Schema) (string, bool) {
	v, ok := s.node.Annotations().Get(ast.IdentifierAnnotationID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func docs(title, description string) ast.Annotations {
	var a ast.Annotations
	if title != "" {
		a = a.With(ast.TitleAnnotationID, title)
	}
	if description != "" {
		a = a.With(ast.DescriptionAnnotationID, description)
	}
	return a
}

var (
	String    = Make(ast.NewKeyword(ast.StringKeywordTag, docs("string", "a string")))
	Number    = Make(ast.NewKeyword(ast.NumberKeywordTag, docs("number", "a number")))
	Boolean   = Make(ast.NewKeyword(ast.BooleanKeywordTag, docs("boolean", "a boolean")))
	Void      = Make(ast.NewKeyword(ast.VoidKeywordTag, nil))
	Undefined = Make(ast.NewKeyword(ast.UndefinedKeywordTag, docs("undefined", "")))
	Null      = Make(ast.NewLiteral(nil, docs("null", "")))
	Unknown   = Make(ast.NewKeyword(ast.UnknownKeywordTag, nil))
	Any       = Make(ast.NewKeyword(ast.AnyKeywordTag, nil))
	Never     = Make(ast.NewKeyword(ast.NeverKeywordTag, nil))
)

// Literal describes one constant value, or a union of constants when given
// several. Without values it is Never.
func Literal(values ...any) Schema {
	switch len(values) {
	case 0:
		return Never
	case 1:
		return Make(ast.NewLiteral(values[0], nil))
	}
	members := make([]ast.Node, len(values))
	for i, v := range values {
		members[i] = ast.NewLiteral(v, nil)
	}
	return Make(ast.NewUnion(members, nil))
}

// Union describes a value matching any of members. A single member is
// returned unchanged.
func Union(members ...Schema) Schema {
	switch len(members) {
	case 0:
		return Never
	case 1:
		return members[0]
	}
	return Make(ast.NewUnion(nodes(members), nil))
}

// NullOr accepts s or null.
func NullOr(s Schema) Schema {
	return Union(s, Null)
}

// UndefinedOr accepts s or undefined.
func UndefinedOr(s Schema) Schema {
	return Union(s, Undefined)
}

// Suspend defers building a schema, which allows recursive definitions.
func Suspend(f func() Schema) Schema {
	return Make(ast.NewSuspend(func() ast.Node { return f().node }, nil))
}

// Transform pairs an encoded form with a decoded form.
func Transform(from, to Schema) Schema {
	return Make(ast.NewTransformation(from.node, to.node, nil))
}

// Declare describes an opaque type with optional type parameters.
func Declare(typeParameters ...Schema) Schema {
	return Make(ast.NewDeclaration(nodes(typeParameters), nil))
}

func nodes(schemas []Schema) []ast.Node {
	if len(schemas) == 0 {
		return nil
	}
	out := make([]ast.Node, len(schemas))
	for i, s := range schemas {
		out[i] = s.node
	}
	return out
}
