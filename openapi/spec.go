package openapi

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ErrDuplicateRoute is returned by Build when two operations share a method
// and path.
var ErrDuplicateRoute = errors.New("openapi: duplicate route")

// macroTypeMap maps path variable macros to OpenAPI type and format.
var macroTypeMap = map[string][2]string{
	"uuid":     {"string", "uuid"},
	"int":      {"integer", ""},
	"float":    {"number", ""},
	"slug":     {"string", ""},
	"alpha":    {"string", ""},
	"alphanum": {"string", ""},
	"date":     {"string", "date"},
	"hex":      {"string", ""},
	"domain":   {"string", "hostname"},
}

// pathVarRegexp matches route variables in the form {name}, {name:macro}
// or :name.
var pathVarRegexp = regexp.MustCompile(`\{([^}]+)\}|:([A-Za-z_][A-Za-z0-9_]*)`)

type route struct {
	method  string
	path    string
	builder *OperationBuilder
}

// Spec collects operations and OpenAPI metadata and builds a complete
// Document.
type Spec struct {
	info         Info
	servers      []Server
	routes       []*route
	converters   []SchemaConverter
	logger       zerolog.Logger
	externalDocs *ExternalDocs
	security     []SecurityRequirement
	tags         []Tag

	securitySchemes map[string]*SecurityScheme
	schemas         map[string]any // component name -> schema source
}

// NewSpec creates a new spec builder with the given API info.
func NewSpec(info Info) *Spec {
	return &Spec{
		info:   info,
		logger: zerolog.Nop(),
	}
}

// AddServer adds a server to the spec.
func (s *Spec) AddServer(server Server) *Spec {
	s.servers = append(s.servers, server)
	return s
}

// SetExternalDocs sets the document-level external documentation link.
func (s *Spec) SetExternalDocs(url, description string) *Spec {
	s.externalDocs = &ExternalDocs{URL: url, Description: description}
	return s
}

// SetSecurity sets the document-level security requirements.
func (s *Spec) SetSecurity(reqs ...SecurityRequirement) *Spec {
	s.security = reqs
	return s
}

// AddTag adds a user-defined tag with optional description and external docs.
func (s *Spec) AddTag(tag Tag) *Spec {
	s.tags = append(s.tags, tag)
	return s
}

// AddSecurityScheme registers a reusable security scheme in components.
func (s *Spec) AddSecurityScheme(name string, scheme *SecurityScheme) *Spec {
	if s.securitySchemes == nil {
		s.securitySchemes = make(map[string]*SecurityScheme)
	}
	s.securitySchemes[name] = scheme
	return s
}

// AddComponentSchema registers a named schema in components. The source is
// resolved like an operation output.
func (s *Spec) AddComponentSchema(name string, source any) *Spec {
	if s.schemas == nil {
		s.schemas = make(map[string]any)
	}
	s.schemas[name] = source
	return s
}

// UseConverter appends schema converters. Sources are handed to the first
// converter whose Condition accepts them.
func (s *Spec) UseConverter(converters ...SchemaConverter) *Spec {
	s.converters = append(s.converters, converters...)
	return s
}

// SetLogger sets the logger used while building and serving the document.
func (s *Spec) SetLogger(logger zerolog.Logger) *Spec {
	s.logger = logger
	return s
}

// Route registers an operation for method and path. Path variables may be
// written as {id}, {id:macro} or :id.
func (s *Spec) Route(method, path string) *OperationBuilder {
	b := newOperationBuilder()
	s.addRoute(method, path, b)
	return b
}

func (s *Spec) addRoute(method, path string, b *OperationBuilder) {
	s.routes = append(s.routes, &route{
		method:  strings.ToUpper(method),
		path:    path,
		builder: b,
	})
}

// Build resolves every schema source and assembles the Document. Routes are
// processed in registration order.
func (s *Spec) Build() (*Document, error) {
	doc := &Document{
		OpenAPI:      Version,
		Info:         s.info,
		Servers:      s.servers,
		Paths:        make(map[string]*PathItem),
		ExternalDocs: s.externalDocs,
		Security:     s.security,
	}

	for _, r := range s.routes {
		openAPIPath, pathParams := parsePath(r.path)

		pathItem, ok := doc.Paths[openAPIPath]
		if !ok {
			pathItem = &PathItem{}
			doc.Paths[openAPIPath] = pathItem
		}
		if operationFor(pathItem, r.method) != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicateRoute, r.method, openAPIPath)
		}

		op, err := r.builder.buildOperation(operationBuild{
			converters: s.converters,
			method:     r.method,
			pathParams: pathParams,
		})
		if err != nil {
			return nil, fmt.Errorf("openapi: %s %s: %w", r.method, r.path, err)
		}
		if !assignOperation(pathItem, r.method, op) {
			return nil, fmt.Errorf("openapi: %s %s: unsupported method", r.method, r.path)
		}

		s.logger.Debug().
			Str("method", r.method).
			Str("path", openAPIPath).
			Str("operation_id", op.OperationID).
			Msg("operation built")
	}

	components, err := s.buildComponents()
	if err != nil {
		return nil, err
	}
	doc.Components = components
	doc.Tags = s.mergeTags(doc.Paths)

	return doc, nil
}

// buildComponents resolves registered component schemas and assembles the
// Components object. It returns nil when there is nothing to add.
func (s *Spec) buildComponents() (*Components, error) {
	if len(s.schemas) == 0 && len(s.securitySchemes) == 0 {
		return nil, nil
	}

	comp := &Components{}
	if len(s.securitySchemes) > 0 {
		comp.SecuritySchemes = s.securitySchemes
	}
	if len(s.schemas) > 0 {
		comp.Schemas = make(map[string]*Schema, len(s.schemas))
		for _, name := range slices.Sorted(maps.Keys(s.schemas)) {
			schema, _, err := resolveSchema(s.converters, s.schemas[name], ConvertOptions{Strategy: StrategyOutput})
			if err != nil {
				return nil, fmt.Errorf("openapi: component schema %q: %w", name, err)
			}
			comp.Schemas[name] = schema
		}
	}
	return comp, nil
}

// mergeTags combines auto-collected tags from operations with user-defined tags.
// User-defined tags take precedence (their description and externalDocs are kept).
// Tags not seen in operations but defined by the user are still included.
// The result is sorted alphabetically.
func (s *Spec) mergeTags(paths map[string]*PathItem) []Tag {
	userTags := make(map[string]Tag, len(s.tags))
	for _, tag := range s.tags {
		userTags[tag.Name] = tag
	}

	seen := make(map[string]bool)
	var tags []Tag

	for _, pathItem := range paths {
		for _, op := range pathItem.operations() {
			for _, tagName := range op.Tags {
				if seen[tagName] {
					continue
				}
				seen[tagName] = true
				if userTag, ok := userTags[tagName]; ok {
					tags = append(tags, userTag)
				} else {
					tags = append(tags, Tag{Name: tagName})
				}
			}
		}
	}

	for _, tag := range s.tags {
		if !seen[tag.Name] {
			seen[tag.Name] = true
			tags = append(tags, tag)
		}
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	return tags
}

// operations returns the non-nil operations of the path item.
func (p *PathItem) operations() []*Operation {
	var ops []*Operation
	for _, op := range []*Operation{p.Get, p.Post, p.Put, p.Delete, p.Patch, p.Head, p.Options, p.Trace} {
		if op != nil {
			ops = append(ops, op)
		}
	}
	return ops
}

// operationFor returns the operation assigned to method, if any.
func operationFor(pathItem *PathItem, method string) *Operation {
	switch method {
	case http.MethodGet:
		return pathItem.Get
	case http.MethodPost:
		return pathItem.Post
	case http.MethodPut:
		return pathItem.Put
	case http.MethodDelete:
		return pathItem.Delete
	case http.MethodPatch:
		return pathItem.Patch
	case http.MethodHead:
		return pathItem.Head
	case http.MethodOptions:
		return pathItem.Options
	case http.MethodTrace:
		return pathItem.Trace
	}
	return nil
}

// assignOperation assigns an operation to the correct HTTP method field
// on the path item. It reports false for methods OpenAPI cannot describe.
func assignOperation(pathItem *PathItem, method string, op *Operation) bool {
	switch method {
	case http.MethodGet:
		pathItem.Get = op
	case http.MethodPost:
		pathItem.Post = op
	case http.MethodPut:
		pathItem.Put = op
	case http.MethodDelete:
		pathItem.Delete = op
	case http.MethodPatch:
		pathItem.Patch = op
	case http.MethodHead:
		pathItem.Head = op
	case http.MethodOptions:
		pathItem.Options = op
	case http.MethodTrace:
		pathItem.Trace = op
	default:
		return false
	}
	return true
}

// parsePath extracts variables from a path template, converts it to
// OpenAPI format, and generates parameter objects.
func parsePath(tpl string) (string, []*Parameter) {
	var params []*Parameter

	openAPIPath := pathVarRegexp.ReplaceAllStringFunc(tpl, func(match string) string {
		var varName, macroName string
		if strings.HasPrefix(match, ":") {
			varName = match[1:]
		} else {
			varName, macroName, _ = strings.Cut(match[1:len(match)-1], ":")
		}

		param := &Parameter{
			Name:     varName,
			In:       "path",
			Required: true,
			Schema:   &Schema{Type: TypeString("string")},
		}

		if macroName != "" {
			if typeInfo, ok := macroTypeMap[macroName]; ok {
				param.Schema = &Schema{Type: TypeString(typeInfo[0])}
				if typeInfo[1] != "" {
					param.Schema.Format = typeInfo[1]
				}
			}
		}

		params = append(params, param)
		return "{" + varName + "}"
	})

	return openAPIPath, params
}
