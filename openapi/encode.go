package openapi

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeJSON encodes v as JSON, indented with two spaces when indent is set.
func EncodeJSON(v any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// EncodeYAML encodes v as block-style YAML. The value goes through its JSON
// form first so that JSON field names and inlined schema keys are kept.
func EncodeYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("openapi: decode JSON as YAML: %w", err)
	}
	plainStyle(&node)

	return yaml.Marshal(&node)
}

// plainStyle clears the flow and quoting styles the JSON input left on n.
// Scalars that need quotes are quoted again by the encoder.
func plainStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plainStyle(c)
	}
}
