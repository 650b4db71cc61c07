package openapi

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strconv"
)

// InputStructure selects how an operation input maps onto the request.
type InputStructure string

const (
	// InputCompact maps the whole input onto the request body, or onto query
	// parameters for methods without a body.
	InputCompact InputStructure = "compact"

	// InputDetailed expects an object with params, query, headers and body
	// members.
	InputDetailed InputStructure = "detailed"
)

// ErrInvalidInput is returned by Build when an input fragment cannot be
// mapped onto request parameters.
var ErrInvalidInput = errors.New("openapi: invalid operation input")

// operationMeta stores metadata collected via the fluent builder
// before the final document is built.
type operationMeta struct {
	operationID string
	summary     string
	description string
	tags        []string
	deprecated  bool
	parameters  []*Parameter
	security    []SecurityRequirement

	input          any
	inputStructure InputStructure
	output         any
	successStatus  int

	request              any               // explicit JSON request body
	responses            map[string]any    // statusKey -> body (nil for no content)
	responseDescriptions map[string]string // statusKey -> custom description
}

// OperationBuilder provides a fluent API for describing one operation.
// Schema sources passed to Input, Output, Request and Response are resolved
// by the converters registered on the Spec when the document is built.
//
// See: https://spec.openapis.org/oas/v3.0.3#operation-object
type OperationBuilder struct {
	meta *operationMeta
}

func newOperationBuilder() *OperationBuilder {
	return &OperationBuilder{
		meta: &operationMeta{
			inputStructure: InputCompact,
			responses:      make(map[string]any),
		},
	}
}

// OperationID sets the operation ID.
func (b *OperationBuilder) OperationID(id string) *OperationBuilder {
	b.meta.operationID = id
	return b
}

// Summary sets the operation summary.
func (b *OperationBuilder) Summary(s string) *OperationBuilder {
	b.meta.summary = s
	return b
}

// Description sets the operation description.
func (b *OperationBuilder) Description(d string) *OperationBuilder {
	b.meta.description = d
	return b
}

// Tags adds one or more tags to the operation.
func (b *OperationBuilder) Tags(tags ...string) *OperationBuilder {
	b.meta.tags = append(b.meta.tags, tags...)
	return b
}

// Deprecated marks the operation as deprecated.
func (b *OperationBuilder) Deprecated() *OperationBuilder {
	b.meta.deprecated = true
	return b
}

// Input sets the schema source describing the operation input.
func (b *OperationBuilder) Input(source any) *OperationBuilder {
	b.meta.input = source
	return b
}

// InputStructure selects how the input maps onto the request. The default is
// InputCompact.
func (b *OperationBuilder) InputStructure(structure InputStructure) *OperationBuilder {
	b.meta.inputStructure = structure
	return b
}

// Output sets the schema source of the successful response body.
func (b *OperationBuilder) Output(source any) *OperationBuilder {
	b.meta.output = source
	return b
}

// SuccessStatus sets the status code of the Output response (default 200).
// Without an Output or other responses it is registered with no content.
func (b *OperationBuilder) SuccessStatus(statusCode int) *OperationBuilder {
	b.meta.successStatus = statusCode
	return b
}

// Request sets an explicit application/json request body. It replaces any
// body derived from Input.
func (b *OperationBuilder) Request(body any) *OperationBuilder {
	b.meta.request = body
	return b
}

// Response registers an application/json response for the given HTTP status
// code. Pass nil body for responses with no content (e.g., 204).
//
// See: https://spec.openapis.org/oas/v3.0.3#responses-object
func (b *OperationBuilder) Response(statusCode int, body any) *OperationBuilder {
	b.meta.responses[strconv.Itoa(statusCode)] = body
	return b
}

// DefaultResponse registers an application/json response for the "default"
// status key.
func (b *OperationBuilder) DefaultResponse(body any) *OperationBuilder {
	b.meta.responses["default"] = body
	return b
}

// ResponseDescription overrides the description derived from the HTTP
// status text.
func (b *OperationBuilder) ResponseDescription(statusCode int, desc string) *OperationBuilder {
	if b.meta.responseDescriptions == nil {
		b.meta.responseDescriptions = make(map[string]string)
	}
	b.meta.responseDescriptions[strconv.Itoa(statusCode)] = desc
	return b
}

// Parameter adds a custom parameter to the operation. It overrides a derived
// parameter with the same name and location.
func (b *OperationBuilder) Parameter(param *Parameter) *OperationBuilder {
	b.meta.parameters = append(b.meta.parameters, param)
	return b
}

// Security sets operation-level security requirements.
// Call with no arguments to explicitly mark the operation as unauthenticated
// (overrides document-level security).
func (b *OperationBuilder) Security(reqs ...SecurityRequirement) *OperationBuilder {
	if reqs == nil {
		reqs = []SecurityRequirement{}
	}
	b.meta.security = reqs
	return b
}

// mergeParameters combines derived parameters with custom ones. A custom
// parameter replaces a derived parameter with the same name and location.
func mergeParameters(auto, custom []*Parameter) []*Parameter {
	if len(auto) == 0 && len(custom) == 0 {
		return nil
	}

	overrides := make(map[[2]string]struct{}, len(custom))
	for _, p := range custom {
		overrides[[2]string{p.Name, p.In}] = struct{}{}
	}

	var merged []*Parameter
	for _, p := range auto {
		if _, ok := overrides[[2]string{p.Name, p.In}]; !ok {
			merged = append(merged, p)
		}
	}

	return append(merged, custom...)
}

// responseDescription returns a human-readable description for a response key.
func responseDescription(key string) string {
	if key == "default" {
		return "Default response"
	}
	code, err := strconv.Atoi(key)
	if err == nil {
		if text := http.StatusText(code); text != "" {
			return text
		}
	}
	return key
}

// hasBody reports whether requests with method carry a compact input in the
// body rather than in the query string.
func hasBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return false
	}
	return true
}

// operationBuild is the state of one buildOperation call.
type operationBuild struct {
	converters []SchemaConverter
	method     string
	pathParams []*Parameter
}

// buildOperation converts the collected metadata into an Operation Object.
func (b *OperationBuilder) buildOperation(ob operationBuild) (*Operation, error) {
	op := &Operation{
		OperationID: b.meta.operationID,
		Summary:     b.meta.summary,
		Description: b.meta.description,
		Tags:        b.meta.tags,
		Deprecated:  b.meta.deprecated,
		Security:    b.meta.security,
		Responses:   make(map[string]*Response),
	}

	params := slices.Clone(ob.pathParams)

	if b.meta.input != nil {
		input, required, err := resolveSchema(ob.converters, b.meta.input, ConvertOptions{Strategy: StrategyInput})
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}

		switch b.meta.inputStructure {
		case InputDetailed:
			params, err = detailedInput(op, input, params)
		case InputCompact, "":
			params, err = compactInput(op, input, required, params, hasBody(ob.method))
		default:
			err = fmt.Errorf("%w: unknown input structure %q", ErrInvalidInput, b.meta.inputStructure)
		}
		if err != nil {
			return nil, err
		}
	}

	if b.meta.request != nil {
		body, required, err := resolveSchema(ob.converters, b.meta.request, ConvertOptions{Strategy: StrategyInput})
		if err != nil {
			return nil, fmt.Errorf("request: %w", err)
		}
		op.RequestBody = jsonBody(body, required)
	}

	op.Parameters = mergeParameters(params, b.meta.parameters)

	success := b.meta.successStatus
	if success == 0 {
		success = http.StatusOK
	}
	responses := maps.Clone(b.meta.responses)
	if b.meta.output != nil {
		responses[strconv.Itoa(success)] = b.meta.output
	}
	if len(responses) == 0 {
		responses[strconv.Itoa(success)] = nil
	}

	for key, body := range responses {
		desc := responseDescription(key)
		if custom, ok := b.meta.responseDescriptions[key]; ok {
			desc = custom
		}
		resp := &Response{Description: desc}

		schema, _, err := resolveSchema(ob.converters, body, ConvertOptions{Strategy: StrategyOutput})
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", key, err)
		}
		if schema != nil {
			resp.Content = map[string]*MediaType{"application/json": {Schema: schema}}
		}
		op.Responses[key] = resp
	}

	return op, nil
}

func jsonBody(schema *Schema, required bool) *RequestBody {
	return &RequestBody{
		Required: required,
		Content:  map[string]*MediaType{"application/json": {Schema: schema}},
	}
}

// compactInput maps a compact input. Properties named after path variables
// describe those variables; the rest becomes the body or, for methods
// without a body, query parameters.
func compactInput(op *Operation, input *Schema, required bool, params []*Parameter, body bool) ([]*Parameter, error) {
	params = applyPathSchemas(params, input)

	if !body {
		if input.Properties == nil {
			if input.Type.Is("object") || input.Type.IsEmpty() {
				return params, nil
			}
			return nil, fmt.Errorf("%w: query input must be an object, got %v", ErrInvalidInput, input.Type.Values())
		}
		return append(params, objectParameters(input, "query", pathNames(params))...), nil
	}

	op.RequestBody = jsonBody(withoutProperties(input, pathNames(params)), required)
	return params, nil
}

// detailedInput maps an input object whose params, query, headers and body
// members describe each part of the request.
func detailedInput(op *Operation, input *Schema, params []*Parameter) ([]*Parameter, error) {
	if input.Properties == nil {
		return nil, fmt.Errorf("%w: detailed input must be an object", ErrInvalidInput)
	}

	if path, ok := input.Properties["params"]; ok {
		params = applyPathSchemas(params, path)
	}
	if query, ok := input.Properties["query"]; ok {
		params = append(params, objectParameters(query, "query", nil)...)
	}
	if headers, ok := input.Properties["headers"]; ok {
		params = append(params, objectParameters(headers, "header", nil)...)
	}
	if body, ok := input.Properties["body"]; ok {
		op.RequestBody = jsonBody(body, slices.Contains(input.Required, "body"))
	}
	return params, nil
}

// objectParameters returns one parameter per property of object, in name
// order, skipping names in skip.
func objectParameters(object *Schema, in string, skip []string) []*Parameter {
	names := slices.Sorted(maps.Keys(object.Properties))
	params := make([]*Parameter, 0, len(names))
	for _, name := range names {
		if slices.Contains(skip, name) {
			continue
		}
		prop := object.Properties[name]
		params = append(params, &Parameter{
			Name:        name,
			In:          in,
			Description: prop.Description,
			Required:    slices.Contains(object.Required, name),
			Schema:      prop,
		})
	}
	return params
}

// applyPathSchemas replaces the default string schema of each path parameter
// with the matching property of object.
func applyPathSchemas(params []*Parameter, object *Schema) []*Parameter {
	if object == nil || object.Properties == nil {
		return params
	}
	out := make([]*Parameter, len(params))
	for i, p := range params {
		prop, ok := object.Properties[p.Name]
		if !ok {
			out[i] = p
			continue
		}
		typed := *p
		typed.Schema = prop
		typed.Description = prop.Description
		out[i] = &typed
	}
	return out
}

func pathNames(params []*Parameter) []string {
	var names []string
	for _, p := range params {
		if p.In == "path" {
			names = append(names, p.Name)
		}
	}
	return names
}

// withoutProperties returns s without the named properties. s is returned
// unchanged when none of them is present.
func withoutProperties(s *Schema, names []string) *Schema {
	if s.Properties == nil {
		return s
	}
	present := slices.ContainsFunc(names, func(name string) bool {
		_, ok := s.Properties[name]
		return ok
	})
	if !present {
		return s
	}

	out := *s
	out.Properties = maps.Clone(s.Properties)
	for _, name := range names {
		delete(out.Properties, name)
	}
	out.Required = slices.DeleteFunc(slices.Clone(s.Required), func(name string) bool {
		return slices.Contains(names, name)
	})
	return &out
}
