// formdata-cli inspects the client-side constraints a schema implies for a
// form field. It loads an OpenAPI document, resolves a request or component
// schema, and prints the HTML input attributes for a dot-path; with no -field
// flag it prompts interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	formdata "github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/attrs"
	"github.com/goliatone/go-formdata/pkg/constraints"
	"github.com/goliatone/go-formdata/pkg/openapi"
	"github.com/goliatone/go-formdata/pkg/schema"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path (JSON or YAML)")
	operation := flag.String("operation", "", "operation ID whose request body describes the form")
	component := flag.String("component", "", "component schema name describing the form")
	field := flag.String("field", "", "dot-path of the field to inspect (prompts when empty)")
	inferType := flag.Bool("type", true, "include the inferred input type attribute")
	values := flag.String("values", "", "optional YAML file of default values to flatten for redisplay")
	flag.Parse()

	if *source == "" {
		log.Fatal("-source is required")
	}

	raw, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("read source: %v", err)
	}

	doc, err := openapi.Load(context.Background(), raw)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	var root schema.Node
	switch {
	case *operation != "":
		root, err = openapi.RequestSchema(doc, *operation)
	case *component != "":
		root, err = openapi.ComponentSchema(doc, *component)
	default:
		log.Fatal("one of -operation or -component is required")
	}
	if err != nil {
		log.Fatalf("resolve schema: %v", err)
	}

	path := *field
	if path == "" {
		path, err = promptField(root)
		if err != nil {
			log.Fatalf("select field: %v", err)
		}
	}

	kind, set := constraints.Extract(root, splitPath(path), constraints.Options{InferType: *inferType})
	fmt.Printf("%s (%s): %s\n", path, kind, attrs.String(attrs.Merge(kind, set)))

	if *values != "" {
		printDefaults(*values)
	}
}

func promptField(root schema.Node) (string, error) {
	paths := fieldPaths(root, nil)
	if len(paths) == 0 {
		return "", fmt.Errorf("schema declares no fields")
	}
	var picked string
	prompt := &survey.Select{
		Message: "Field to inspect:",
		Options: paths,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}

// fieldPaths lists every addressable leaf dot-path in the tree.
func fieldPaths(node schema.Node, prefix []string) []string {
	switch n := node.(type) {
	case *schema.Object:
		names := make([]string, 0, len(n.Fields))
		for name := range n.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		var out []string
		for _, name := range names {
			child := make([]string, 0, len(prefix)+1)
			child = append(child, prefix...)
			child = append(child, name)
			out = append(out, fieldPaths(n.Fields[name], child)...)
		}
		return out
	case *schema.Optional:
		return fieldPaths(n.Inner, prefix)
	case *schema.Nullable:
		return fieldPaths(n.Inner, prefix)
	case *schema.Default:
		return fieldPaths(n.Inner, prefix)
	case *schema.Pipe:
		return fieldPaths(n.Input, prefix)
	default:
		if len(prefix) == 0 {
			return nil
		}
		return []string{strings.Join(prefix, formdata.Separator)}
	}
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, formdata.Separator)
}

// printDefaults flattens a YAML value document the way the pipeline would
// flatten a submission for redisplay.
func printDefaults(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read values: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("parse values: %v", err)
	}
	flat, ok := formdata.Flatten(doc).(map[string]any)
	if !ok {
		return
	}
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	fmt.Println("defaults:")
	for _, key := range keys {
		fmt.Printf("  %s = %v\n", key, flat[key])
	}
}
