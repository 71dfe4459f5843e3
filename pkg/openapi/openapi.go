// Package openapi adapts OpenAPI 3 documents into the form schema tree.
// Callers that already describe their payloads with an OpenAPI document get
// validation and client-side constraint hints from the same source of truth
// as their API, without hand-building a tree through pkg/schema.
package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formdata/internal/openapi/parser"
	"github.com/goliatone/go-formdata/pkg/schema"
)

// Load parses an OpenAPI 3 document from raw JSON or YAML.
func Load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: raw document is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// RequestSchema returns the schema tree for an operation's request body,
// preferring the JSON media type and falling back to the first one declared.
func RequestSchema(doc *openapi3.T, operationID string) (schema.Node, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is required")
	}
	op := findOperation(doc, operationID)
	if op == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body", operationID)
	}
	content := op.RequestBody.Value.Content
	if mt, ok := content["application/json"]; ok && mt.Schema != nil {
		return parser.Build(mt.Schema), nil
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return parser.Build(mt.Schema), nil
		}
	}
	return nil, fmt.Errorf("openapi: operation %q has no request schema", operationID)
}

// ComponentSchema returns the schema tree for a named component schema.
func ComponentSchema(doc *openapi3.T, name string) (schema.Node, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is required")
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok {
		return nil, fmt.Errorf("openapi: component schema %q not found", name)
	}
	return parser.Build(ref), nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}
