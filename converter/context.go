package converter

import (
	"github.com/vitalvas/openschema/ast"
	"golang.org/x/text/cases"
)

// visitContext is the traversal state of a single Convert call.
//
// open holds the nodes on the current conversion path. A node is removed as
// soon as its conversion returns, so siblings sharing a subtree each convert
// it again; only re-entering an ancestor counts as a cycle.
type visitContext struct {
	open  map[ast.Node]struct{}
	depth int

	// fold is per call because a Caser keeps state.
	fold cases.Caser
}

func newVisitContext() *visitContext {
	return &visitContext{
		open: make(map[ast.Node]struct{}),
		fold: cases.Fold(),
	}
}

func (vc *visitContext) isOpen(n ast.Node) bool {
	_, ok := vc.open[n]
	return ok
}

func (vc *visitContext) enter(n ast.Node) {
	vc.open[n] = struct{}{}
	vc.depth++
}

func (vc *visitContext) leave(n ast.Node) {
	delete(vc.open, n)
	vc.depth--
}
