package converter

import (
	"errors"
	"fmt"

	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// convertRefinement converts the refined node and merges the JSON Schema
// constraints of the whole refinement chain onto it. When a keyword appears
// at several levels, the outermost refinement wins.
func convertRefinement(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	r, ok := n.(*ast.Refinement)
	if !ok {
		return nil, mismatch(ast.RefinementTag, n)
	}

	out, err := c.convert(r.From, vc)
	if err != nil {
		return nil, err
	}

	if constraints := chainConstraints(r); len(constraints) > 0 {
		out.Apply(constraints)
	}
	return out, nil
}

// chainConstraints walks from r down to the first non-refinement node,
// keeping the first value seen for every keyword.
func chainConstraints(r *ast.Refinement) map[string]any {
	constraints := make(map[string]any)
	for link := r; link != nil; {
		for k, v := range jsonSchemaOverride(link) {
			if _, set := constraints[k]; !set {
				constraints[k] = v
			}
		}
		next, ok := link.From.(*ast.Refinement)
		if !ok {
			break
		}
		link = next
	}
	return constraints
}

var errNilThunk = errors.New("suspend has no thunk")

// convertSuspend resolves the thunk and converts the resulting node. A thunk
// that panics or yields nothing is replaced by a plain object fragment.
func convertSuspend(c *Converter, n ast.Node, vc *visitContext) (*openapi.Schema, error) {
	s, ok := n.(*ast.Suspend)
	if !ok {
		return nil, mismatch(ast.SuspendTag, n)
	}

	resolved, err := force(s)
	if err == nil && resolved == nil {
		err = errNilThunk
	}
	if err != nil {
		c.logger.Debug().Err(err).Msg("unresolvable suspended schema, using object fallback")
		return objectSchema(), nil
	}
	return c.convert(resolved, vc)
}

func force(s *ast.Suspend) (resolved ast.Node, err error) {
	if s.F == nil {
		return nil, errNilThunk
	}
	defer func() {
		if rv := recover(); rv != nil {
			err = fmt.Errorf("suspend thunk panicked: %v", rv)
		}
	}()
	return s.F(), nil
}
