package converter

import (
	"errors"
	"fmt"

	"github.com/vitalvas/openschema/ast"
)

var (
	// ErrMaxDepthExceeded is returned when nesting goes past Options.MaxDepth.
	ErrMaxDepthExceeded = errors.New("converter: maximum schema depth exceeded")

	// ErrUnsupportedNode is returned for node kinds without a JSON Schema form
	// and for nodes whose concrete type does not match their tag.
	ErrUnsupportedNode = errors.New("converter: unsupported node")

	// ErrUnsupportedSource is returned by Adapter.Convert for values that do
	// not carry a schema tree.
	ErrUnsupportedSource = errors.New("converter: unsupported schema source")
)

func mismatch(want ast.Tag, n ast.Node) error {
	return fmt.Errorf("%w: expected %s node, got %T", ErrUnsupportedNode, want, n)
}
