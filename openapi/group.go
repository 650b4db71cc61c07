package openapi

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// groupDefaults holds the default metadata that a RouteGroup applies
// to every OperationBuilder it creates.
type groupDefaults struct {
	tags        []string
	security    []SecurityRequirement
	securitySet bool // distinguishes nil (inherit) from empty (public)
	deprecated  bool
	parameters  []*Parameter

	responses            map[string]any    // statusKey -> body
	responseDescriptions map[string]string // statusKey -> custom description
}

// RouteGroup provides a path prefix and shared metadata defaults for a
// logical group of operations. Operations created through the group are
// registered on the parent Spec.
type RouteGroup struct {
	spec     *Spec
	prefix   string
	defaults groupDefaults
}

// Group creates a RouteGroup whose routes are mounted under prefix.
func (s *Spec) Group(prefix string) *RouteGroup {
	return &RouteGroup{spec: s, prefix: strings.TrimSuffix(prefix, "/")}
}

// Group creates a nested group. It inherits a copy of the current defaults;
// later changes to either group do not affect the other.
func (g *RouteGroup) Group(prefix string) *RouteGroup {
	child := &RouteGroup{
		spec:   g.spec,
		prefix: g.prefix + strings.TrimSuffix(prefix, "/"),
	}
	child.defaults = groupDefaults{
		tags:                 slices.Clone(g.defaults.tags),
		security:             g.defaults.security,
		securitySet:          g.defaults.securitySet,
		deprecated:           g.defaults.deprecated,
		parameters:           slices.Clone(g.defaults.parameters),
		responses:            maps.Clone(g.defaults.responses),
		responseDescriptions: maps.Clone(g.defaults.responseDescriptions),
	}
	return child
}

// Tags appends tags to the group defaults. Operations created through
// this group will inherit these tags and may add more via their own Tags call.
func (g *RouteGroup) Tags(tags ...string) *RouteGroup {
	g.defaults.tags = append(g.defaults.tags, tags...)
	return g
}

// Security sets the group-level security requirements. Operations created
// through this group inherit these requirements unless they call Security
// themselves, which replaces the group value. Call with no arguments to
// mark the group as public (overrides document-level security).
func (g *RouteGroup) Security(reqs ...SecurityRequirement) *RouteGroup {
	if reqs == nil {
		reqs = []SecurityRequirement{}
	}
	g.defaults.security = reqs
	g.defaults.securitySet = true
	return g
}

// Deprecated marks all operations in this group as deprecated. This is a
// one-way latch: individual operations cannot undo group deprecation.
func (g *RouteGroup) Deprecated() *RouteGroup {
	g.defaults.deprecated = true
	return g
}

// Parameter adds a common parameter to the group defaults. Operations
// created through this group inherit these parameters and may add more.
func (g *RouteGroup) Parameter(param *Parameter) *RouteGroup {
	g.defaults.parameters = append(g.defaults.parameters, param)
	return g
}

// Response adds a shared application/json response for the given HTTP status
// code. An operation-level Response call for the same status code overrides
// the group default.
func (g *RouteGroup) Response(statusCode int, body any) *RouteGroup {
	if g.defaults.responses == nil {
		g.defaults.responses = make(map[string]any)
	}
	g.defaults.responses[strconv.Itoa(statusCode)] = body
	return g
}

// DefaultResponse adds a shared application/json default response (catch-all
// for status codes not covered by specific responses).
func (g *RouteGroup) DefaultResponse(body any) *RouteGroup {
	if g.defaults.responses == nil {
		g.defaults.responses = make(map[string]any)
	}
	g.defaults.responses["default"] = body
	return g
}

// ResponseDescription sets a custom description for a shared group response.
func (g *RouteGroup) ResponseDescription(statusCode int, desc string) *RouteGroup {
	g.describe(strconv.Itoa(statusCode), desc)
	return g
}

func (g *RouteGroup) describe(key, desc string) {
	if g.defaults.responseDescriptions == nil {
		g.defaults.responseDescriptions = make(map[string]string)
	}
	g.defaults.responseDescriptions[key] = desc
}

// Route registers an operation for method and the group prefix joined with
// path, pre-populated with this group's defaults.
func (g *RouteGroup) Route(method, path string) *OperationBuilder {
	b := g.newBuilderWithDefaults()
	g.spec.addRoute(method, g.prefix+path, b)
	return b
}

// newBuilderWithDefaults creates a new OperationBuilder pre-populated with
// the group's default values.
func (g *RouteGroup) newBuilderWithDefaults() *OperationBuilder {
	b := newOperationBuilder()

	if len(g.defaults.tags) > 0 {
		b.meta.tags = append(b.meta.tags, g.defaults.tags...)
	}

	if g.defaults.securitySet {
		b.meta.security = g.defaults.security
	}

	if g.defaults.deprecated {
		b.meta.deprecated = true
	}

	if len(g.defaults.parameters) > 0 {
		b.meta.parameters = append(b.meta.parameters, g.defaults.parameters...)
	}

	maps.Copy(b.meta.responses, g.defaults.responses)

	if len(g.defaults.responseDescriptions) > 0 {
		b.meta.responseDescriptions = maps.Clone(g.defaults.responseDescriptions)
	}

	return b
}
