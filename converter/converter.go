package converter

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// Source is anything that carries a schema tree, such as schema.Schema.
type Source interface {
	AST() ast.Node
}

// Converter compiles schema trees into OpenAPI schema fragments.
type Converter struct {
	maxDepth    int
	boilerplate *Boilerplate
	logger      zerolog.Logger
}

// New returns a Converter configured by opts.
func New(opts Options) *Converter {
	return &Converter{
		maxDepth:    opts.maxDepth(),
		boilerplate: opts.boilerplate(),
		logger:      opts.logger(),
	}
}

var defaultConverter = New(Options{})

// Convert compiles n with the default options.
func Convert(n ast.Node) (*openapi.Schema, error) {
	return defaultConverter.Convert(n)
}

// ConvertSchema compiles the tree carried by src with the default options.
func ConvertSchema(src Source) (*openapi.Schema, error) {
	return defaultConverter.Convert(src.AST())
}

// Convert compiles n into a fresh fragment. Converting the same tree twice
// yields equal fragments.
func (c *Converter) Convert(n ast.Node) (*openapi.Schema, error) {
	return c.convert(n, newVisitContext())
}

type convertFunc func(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error)

var converters map[ast.Tag]convertFunc

// unsupported lists the tags that deliberately have no converter.
var unsupported = map[ast.Tag]bool{
	ast.AnyKeywordTag:     true,
	ast.UnknownKeywordTag: true,
	ast.NeverKeywordTag:   true,
	ast.BigIntKeywordTag:  true,
	ast.SymbolKeywordTag:  true,
	ast.ObjectKeywordTag:  true,
}

func init() {
	converters = map[ast.Tag]convertFunc{
		ast.StringKeywordTag:    convertKeyword,
		ast.NumberKeywordTag:    convertKeyword,
		ast.BooleanKeywordTag:   convertKeyword,
		ast.VoidKeywordTag:      convertKeyword,
		ast.UndefinedKeywordTag: convertKeyword,
		ast.LiteralTag:          convertLiteral,
		ast.TypeLiteralTag:      convertTypeLiteral,
		ast.TupleTypeTag:        convertTupleType,
		ast.UnionTag:            convertUnion,
		ast.RefinementTag:       convertRefinement,
		ast.SuspendTag:          convertSuspend,
		ast.TransformationTag:   convertTransformation,
		ast.DeclarationTag:      convertDeclaration,
	}

	for _, tag := range ast.Tags() {
		if _, ok := converters[tag]; !ok && !unsupported[tag] {
			panic(fmt.Sprintf("converter: no converter registered for %s", tag))
		}
	}
}

// convert dispatches n to the converter for its tag and merges the node's
// documentation into the result.
func (c *Converter) convert(n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrUnsupportedNode)
	}
	if vc.isOpen(n) {
		return objectSchema(), nil
	}
	if vc.depth > c.maxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", ErrMaxDepthExceeded, n.Tag(), vc.depth)
	}

	vc.enter(n)
	defer vc.leave(n)

	fn, ok := converters[n.Tag()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNode, n.Tag())
	}

	out, err := fn(c, n, vc)
	if err != nil {
		return nil, err
	}
	c.documentation(n).applyTo(out)
	return out, nil
}

func objectSchema() *openapi.Schema {
	return &openapi.Schema{Type: openapi.TypeString("object")}
}

func typedSchema(t string) *openapi.Schema {
	return &openapi.Schema{Type: openapi.TypeString(t)}
}

func convertKeyword(_ *Converter, n ast.Node, _ *visitContext) (*openapi.Schema, error) {
	switch n.Tag() {
	case ast.StringKeywordTag:
		return typedSchema("string"), nil
	case ast.NumberKeywordTag:
		return typedSchema("number"), nil
	case ast.BooleanKeywordTag:
		return typedSchema("boolean"), nil
	case ast.VoidKeywordTag:
		return typedSchema("null"), nil
	case ast.UndefinedKeywordTag:
		return &openapi.Schema{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedNode, n.Tag())
}

// literalType returns the JSON type of a literal value, or "" for values
// that have none.
func literalType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	}
	if _, ok := openapi.ToFloat(v); ok {
		return "number"
	}
	return ""
}

func convertLiteral(_ *Converter, n ast.Node, _ *visitContext) (*openapi.Schema, error) {
	lit, ok := n.(*ast.Literal)
	if !ok {
		return nil, mismatch(ast.LiteralTag, n)
	}

	if lit.Value == nil {
		return typedSchema("null"), nil
	}
	if t := literalType(lit.Value); t != "" {
		return &openapi.Schema{Type: openapi.TypeString(t), Enum: []any{lit.Value}}, nil
	}
	return &openapi.Schema{Const: lit.Value}, nil
}
