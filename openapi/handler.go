package openapi

import (
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRapiDoc
	DocsRedoc
	DocsScalar
)

// ParseDocsUI returns the UI named name: swagger, rapidoc, redoc or scalar.
func ParseDocsUI(name string) (DocsUI, error) {
	switch strings.ToLower(name) {
	case "", "swagger", "swagger-ui":
		return DocsSwaggerUI, nil
	case "rapidoc":
		return DocsRapiDoc, nil
	case "redoc":
		return DocsRedoc, nil
	case "scalar":
		return DocsScalar, nil
	}
	return 0, fmt.Errorf("openapi: unknown docs UI %q", name)
}

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// UI selects the interactive docs UI (default: DocsSwaggerUI).
	UI DocsUI

	// Title overrides the HTML page title (default: spec info.title).
	Title string

	// JSONFilename is the path for the JSON spec endpoint
	// (default: "schema.json"). Set to "-" to disable.
	//
	// Relative paths are joined with the base path:
	//
	//	"schema.json"       -> <basePath>/schema.json
	//	"data/openapi.json" -> <basePath>/data/openapi.json
	//
	// Absolute paths (starting with "/") are used as-is:
	//
	//	"/api/v1/openapi.json" -> /api/v1/openapi.json
	JSONFilename string

	// YAMLFilename is the path for the YAML spec endpoint
	// (default: "schema.yaml"). Set to "-" to disable.
	// Follows the same absolute/relative rules as JSONFilename.
	YAMLFilename string

	// DisableDocs disables the interactive HTML docs UI endpoint.
	DisableDocs bool

	// SwaggerUIConfig provides additional SwaggerUIBundle configuration options.
	// These are rendered as JavaScript object properties alongside the url and
	// dom_id defaults. For example, {"docExpansion": "none"} produces:
	//
	//	SwaggerUIBundle({url: "...", dom_id: "#swagger-ui", "docExpansion": "none"});
	//
	// Only used when UI is DocsSwaggerUI (the default).
	SwaggerUIConfig map[string]any
}

// jsonFilename returns the configured JSON spec filename, defaulting to "schema.json".
func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "schema.json"
	}
	return cfg.JSONFilename
}

// yamlFilename returns the configured YAML spec filename, defaulting to "schema.yaml".
func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "schema.yaml"
	}
	return cfg.YAMLFilename
}

// resolvePath returns the full route path for a filename.
// Absolute filenames (starting with "/") are returned as-is.
// Relative filenames are joined under basePath.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	if basePath == "" {
		return "/" + filename
	}
	return basePath + "/" + filename
}

// Handle registers OpenAPI endpoints under the given base path on mux.
// The base path is normalized (trailing slash stripped). Depending on config,
// the following routes are registered:
//
//	<basePath>/            - interactive HTML docs (unless DisableDocs)
//	<JSONFilename path>    - OpenAPI document as JSON (unless JSONFilename is "-")
//	<YAMLFilename path>    - OpenAPI document as YAML (unless YAMLFilename is "-")
//
// The config parameter is optional; pass nil for defaults:
//
//	spec.Handle(mux, "/docs", nil)
//
// The document is built once, on the first request to either spec endpoint.
// A build failure is logged and answered with 500 on every request.
func (s *Spec) Handle(mux *http.ServeMux, basePath string, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	build := sync.OnceValues(s.Build)

	var jsonPath, yamlPath string

	if file := cfg.jsonFilename(); file != "-" {
		jsonPath = resolvePath(basePath, file)
		mux.HandleFunc(jsonPath, s.documentHandler(build, "application/json", func(doc *Document) ([]byte, error) {
			return EncodeJSON(doc, true)
		}))
	}

	if file := cfg.yamlFilename(); file != "-" {
		yamlPath = resolvePath(basePath, file)
		mux.HandleFunc(yamlPath, s.documentHandler(build, "application/x-yaml", func(doc *Document) ([]byte, error) {
			return EncodeYAML(doc)
		}))
	}

	if cfg.DisableDocs {
		return
	}

	// The docs UI references the JSON or YAML spec path.
	specURL := jsonPath
	if specURL == "" {
		specURL = yamlPath
	}
	if specURL != "" {
		s.registerDocs(mux, basePath, cfg, specURL)
	}
}

// documentHandler serves the built document through encode. The encoded
// bytes are cached after the first success.
func (s *Spec) documentHandler(build func() (*Document, error), contentType string, encode func(*Document) ([]byte, error)) http.HandlerFunc {
	encoded := sync.OnceValues(func() ([]byte, error) {
		doc, err := build()
		if err != nil {
			return nil, err
		}
		return encode(doc)
	})

	return func(w http.ResponseWriter, r *http.Request) {
		data, err := encoded()
		if err != nil {
			s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to build OpenAPI document")
			http.Error(w, "failed to build OpenAPI document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// registerDocs registers a handler that serves the interactive HTML documentation UI.
func (s *Spec) registerDocs(mux *http.ServeMux, basePath string, cfg *HandleConfig, specURL string) {
	title := cfg.Title
	if title == "" {
		title = s.info.Title
	}

	var page string
	switch cfg.UI {
	case DocsRapiDoc:
		page = rapidocTemplate(title, specURL)
	case DocsRedoc:
		page = redocTemplate(title, specURL)
	case DocsScalar:
		page = scalarTemplate(title, specURL)
	default:
		page = swaggerUITemplate(title, specURL, cfg.SwaggerUIConfig)
	}
	data := []byte(page)

	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
	if basePath == "" {
		// Root base path: register only "/" to avoid empty path "".
		mux.HandleFunc("/{$}", handler)
	} else {
		mux.HandleFunc(basePath, handler)
		mux.HandleFunc(basePath+"/{$}", handler)
	}
}

func swaggerUITemplate(title, specPath string, config map[string]any) string {
	var extra string
	if len(config) > 0 {
		keys := make([]string, 0, len(config))
		for k := range config {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf strings.Builder
		for _, k := range keys {
			v, err := json.Marshal(config[k])
			if err != nil {
				continue
			}
			fmt.Fprintf(&buf, ", %s: %s", k, v)
		}
		extra = buf.String()
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"%s});
</script>
</body>
</html>`, html.EscapeString(title), specPath, extra)
}

func rapidocTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
<rapi-doc spec-url=%q></rapi-doc>
</body>
</html>`, html.EscapeString(title), specPath)
}

func redocTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<redoc spec-url=%q></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`, html.EscapeString(title), specPath)
}

func scalarTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<script id="api-reference" data-url=%q></script>
<script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`, html.EscapeString(title), specPath)
}
