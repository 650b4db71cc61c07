package converter

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vitalvas/openschema/ast"
	"github.com/vitalvas/openschema/openapi"
)

// documentation is the hand-written metadata found on a node.
type documentation struct {
	title       string
	description string
	examples    []any
}

// documentation scans every annotation key of n. Keys whose printed form
// contains "Title", "Description" or "Examples" are read, in that order of
// precedence; library boilerplate is skipped.
func (c *Converter) documentation(n ast.Node) documentation {
	var doc documentation
	for _, ann := range n.Annotations() {
		if ann.Value == nil {
			continue
		}
		key := ast.KeyString(ann.Key)
		switch {
		case strings.Contains(key, "Title"):
			title := textValue(ann.Value)
			if !c.boilerplate.IsTitle(title) {
				doc.title = title
			}
		case strings.Contains(key, "Description"):
			description := textValue(ann.Value)
			if !c.boilerplate.IsDescription(description) {
				doc.description = description
			}
		case strings.Contains(key, "Examples"):
			if list, ok := ann.Value.([]any); ok {
				doc.examples = slices.Clone(list)
			} else {
				doc.examples = []any{ann.Value}
			}
		}
	}
	return doc
}

func (d documentation) applyTo(s *openapi.Schema) {
	if d.title != "" {
		s.Title = d.title
	}
	if d.description != "" {
		s.Description = d.description
	}
	if d.examples != nil {
		s.Examples = d.examples
	}
}

func textValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// jsonSchemaOverride returns a copy of the first raw JSON Schema annotation
// on n, rewritten to OpenAPI 3.0 form: a numeric exclusiveMinimum or
// exclusiveMaximum becomes minimum or maximum plus a boolean flag.
func jsonSchemaOverride(n ast.Node) map[string]any {
	for _, ann := range n.Annotations() {
		if !strings.Contains(ast.KeyString(ann.Key), "JSONSchema") {
			continue
		}
		raw, ok := ann.Value.(map[string]any)
		if !ok || raw == nil {
			continue
		}

		out := maps.Clone(raw)
		if v, ok := openapi.ToFloat(out["exclusiveMinimum"]); ok {
			out["minimum"] = v
			out["exclusiveMinimum"] = true
		}
		if v, ok := openapi.ToFloat(out["exclusiveMaximum"]); ok {
			out["maximum"] = v
			out["exclusiveMaximum"] = true
		}
		return out
	}
	return nil
}
