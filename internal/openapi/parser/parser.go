// Package parser converts resolved kin-openapi schemas into the form schema
// tree consumed by validation and constraint extraction.
package parser

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formdata/pkg/schema"
)

// Build converts a resolved OpenAPI schema into a schema tree. Unresolvable
// input degrades to an unconstrained string leaf rather than failing; a form
// can always be submitted against it, just without constraints.
func Build(ref *openapi3.SchemaRef) schema.Node {
	if ref == nil || ref.Value == nil {
		return schema.String()
	}
	src := ref.Value

	node := buildCore(src)
	if src.Default != nil {
		node = schema.WithDefault(node, src.Default)
	}
	if src.Nullable {
		node = schema.Null(node)
	}
	return node
}

func buildCore(src *openapi3.Schema) schema.Node {
	switch firstType(src.Type) {
	case "object", "":
		return buildObject(src)
	case "array":
		// Grouped submission keys decode to flat arrays validated per item,
		// so the item schema stands in for the array.
		return Build(src.Items)
	case "integer":
		return applyNumericChecks(schema.Number().Integer(), src)
	case "number":
		return applyNumericChecks(schema.Number(), src)
	case "boolean":
		return schema.Bool()
	default:
		return buildString(src)
	}
}

func buildObject(src *openapi3.Schema) schema.Node {
	required := make(map[string]struct{}, len(src.Required))
	for _, name := range src.Required {
		required[name] = struct{}{}
	}

	fields := make(map[string]schema.Node, len(src.Properties))
	for name, prop := range src.Properties {
		child := Build(prop)
		if _, ok := required[name]; !ok {
			child = schema.Opt(child)
		}
		fields[name] = child
	}
	return schema.NewObject(fields)
}

func buildString(src *openapi3.Schema) schema.Node {
	if len(src.Enum) > 0 {
		members := make([]string, 0, len(src.Enum))
		for _, member := range src.Enum {
			members = append(members, fmt.Sprint(member))
		}
		return schema.Enum(members...)
	}

	switch src.Format {
	case "date", "date-time":
		return schema.Date()
	case "binary", "byte":
		return schema.File()
	}

	leaf := schema.String()
	switch src.Format {
	case "email":
		leaf = leaf.Email()
	case "uri", "url", "uri-reference":
		leaf = leaf.URL()
	}
	if src.MinLength != 0 {
		leaf = leaf.MinLen(int(src.MinLength))
	}
	if src.MaxLength != nil {
		leaf = leaf.MaxLen(int(*src.MaxLength))
	}
	if src.Pattern != "" {
		leaf = leaf.Pattern(src.Pattern)
	}
	return leaf
}

func applyNumericChecks(leaf *schema.Leaf, src *openapi3.Schema) *schema.Leaf {
	if src.Min != nil {
		if src.ExclusiveMin {
			leaf = leaf.GreaterThan(*src.Min)
		} else {
			leaf = leaf.Min(*src.Min)
		}
	}
	if src.Max != nil {
		if src.ExclusiveMax {
			leaf = leaf.LessThan(*src.Max)
		} else {
			leaf = leaf.Max(*src.Max)
		}
	}
	return leaf
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
