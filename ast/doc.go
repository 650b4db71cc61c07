// Package ast defines the tagged node tree that describes a schema.
//
// A tree is built by the schema package (or by hand) and consumed by the
// converter package. Every node is a pointer; two nodes are the same node only
// when they are the same pointer, regardless of their contents.
//
// The set of node kinds is closed: Node carries an unexported method, so only
// the types declared here satisfy it.
//
//	name := ast.NewKeyword(ast.StringKeywordTag, nil)
//	user := ast.NewTypeLiteral([]*ast.PropertySignature{
//	    ast.NewPropertySignature("name", name, false, true),
//	}, nil, nil)
package ast
