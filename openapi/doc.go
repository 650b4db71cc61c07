// Package openapi builds OpenAPI v3.0.3 documents from operations whose
// input and output are described by schema sources.
//
// See: https://spec.openapis.org/oas/v3.0.3
//
// # Schema Fragments
//
// Schema is the Schema Object of OpenAPI 3.0: exclusiveMinimum and
// exclusiveMaximum are booleans, items is a single schema or an ordered list,
// and keywords without a typed field are kept in Extra and inlined when the
// schema is encoded. Apply copies a raw JSON Schema object onto a fragment:
//
//	s := &openapi.Schema{Type: openapi.TypeString("string")}
//	s.Apply(map[string]any{"minLength": 1, "x-internal": true})
//
// # Schema Converters
//
// Operations do not reflect over Go types. Every value passed to Input,
// Output, Request, Response or AddComponentSchema is a schema source handed
// to the first registered SchemaConverter whose Condition accepts it. A
// *Schema is used as is.
//
//	spec := openapi.NewSpec(openapi.Info{Title: "Grocery API", Version: "1.0.0"}).
//	    UseConverter(converter.NewAdapter(nil))
//
// Build fails with ErrNoConverter when no converter accepts a source.
//
// # Operations
//
// Route registers an operation for a method and a path. Path variables may
// be written as {id}, {id:macro} or :id; each becomes a required string path
// parameter unless the input describes it.
//
//	spec.Route(http.MethodGet, "/lists/:id").
//	    OperationID("getList").
//	    Summary("Get a grocery list").
//	    Tags("lists").
//	    InputStructure(openapi.InputDetailed).
//	    Input(getListInput).
//	    Output(listSchema)
//
// A compact input (the default) is the request body, or one query parameter
// per property for GET, HEAD and DELETE. A detailed input is an object whose
// params, query, headers and body members describe each part of the request.
//
// Output describes the success response (200 unless SuccessStatus is set).
// Response and DefaultResponse add more status codes; a nil body describes a
// response without content.
//
// # Route Groups
//
// Group applies a path prefix and shared defaults (tags, security,
// deprecation, parameters, responses) to the operations created through it:
//
//	lists := spec.Group("/lists").Tags("lists").
//	    Response(http.StatusUnauthorized, errorSchema)
//	lists.Route(http.MethodGet, "").Output(listsSchema)
//	lists.Route(http.MethodDelete, "/:id")
//
// # Serving
//
// Handle serves the document as JSON and YAML next to an HTML docs UI
// (Swagger UI, RapiDoc, Redoc or Scalar) on an http.ServeMux:
//
//	mux := http.NewServeMux()
//	spec.Handle(mux, "/docs", &openapi.HandleConfig{UI: openapi.DocsScalar})
//
// The document is built on the first request and cached. EncodeJSON and
// EncodeYAML produce the same encodings for use outside a server.
package openapi
