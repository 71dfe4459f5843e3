package constraints_test

import (
	"testing"

	"github.com/goliatone/go-formdata/pkg/constraints"
	"github.com/goliatone/go-formdata/pkg/schema"
	"github.com/goliatone/go-formdata/pkg/testsupport"
)

func extract(t *testing.T, root schema.Node, path []string, inferType bool) (schema.Kind, map[string]any) {
	t.Helper()
	return constraints.Extract(root, path, constraints.Options{InferType: inferType})
}

func TestExtract_RequiredStringWithLengths(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"name": schema.String().MinLen(3).MaxLen(64),
	})

	kind, set := extract(t, root, []string{"name"}, false)

	if kind != schema.KindString {
		t.Fatalf("kind: got %s", kind)
	}
	want := map[string]any{"required": true, "minLength": 3, "maxLength": 64}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_OptionalSuppressesRequired(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"nickname": schema.Opt(schema.String().MinLen(3)),
	})

	kind, set := extract(t, root, []string{"nickname"}, false)

	if kind != schema.KindString {
		t.Fatalf("kind: got %s", kind)
	}
	// required is omitted entirely, never set to false.
	want := map[string]any{"minLength": 3}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_NullableAndDefaultSuppressRequired(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"middle": schema.Null(schema.String()),
		"plan":   schema.WithDefault(schema.String(), "free"),
	})

	for _, field := range []string{"middle", "plan"} {
		_, set := extract(t, root, []string{field}, false)
		if _, ok := set["required"]; ok {
			t.Fatalf("%s: required should be suppressed, got %v", field, set)
		}
	}
}

func TestExtract_NumberBoundsAndStep(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"count": schema.Number().Min(1).Max(5).Integer(),
	})

	kind, set := extract(t, root, []string{"count"}, true)

	if kind != schema.KindNumber {
		t.Fatalf("kind: got %s", kind)
	}
	want := map[string]any{
		"required": true,
		"type":     "number",
		"min":      float64(1),
		"max":      float64(5),
		"step":     1,
	}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_ExclusiveBoundsBecomeInclusive(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"qty": schema.Number().GreaterThan(0).LessThan(10),
	})

	_, set := extract(t, root, []string{"qty"}, false)

	want := map[string]any{"required": true, "min": float64(1), "max": float64(9)}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_DateBoundsAsCalendarStrings(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"when": schema.Date().
			After(testsupport.MustDate(t, "2024-01-01")).
			Before(testsupport.MustDate(t, "2024-12-31")),
	})

	kind, set := extract(t, root, []string{"when"}, true)

	if kind != schema.KindDate {
		t.Fatalf("kind: got %s", kind)
	}
	want := map[string]any{
		"required": true,
		"type":     "date",
		"min":      "2024-01-01",
		"max":      "2024-12-31",
	}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_FormatTagsPickTheInputType(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"email": schema.String().Email(),
		"site":  schema.String().URL(),
	})

	_, emailSet := extract(t, root, []string{"email"}, true)
	if emailSet["type"] != "email" {
		t.Fatalf("email type: got %v", emailSet["type"])
	}
	_, urlSet := extract(t, root, []string{"site"}, true)
	if urlSet["type"] != "url" {
		t.Fatalf("url type: got %v", urlSet["type"])
	}
}

func TestExtract_TypeHintStrippedUnlessRequested(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		// The email format must still be computed to pick the hint even when
		// the hint itself is stripped from the output.
		"email": schema.String().Email(),
	})

	_, set := extract(t, root, []string{"email"}, false)
	if _, ok := set["type"]; ok {
		t.Fatalf("type hint should be stripped, got %v", set)
	}
}

func TestExtract_CheckboxRadioAndFileKinds(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"active": schema.Bool(),
		"color":  schema.Enum("red", "blue"),
		"upload": schema.File(),
	})

	cases := []struct {
		field string
		kind  schema.Kind
		hint  string
	}{
		{"active", schema.KindBool, "checkbox"},
		{"color", schema.KindEnum, "radio"},
		{"upload", schema.KindFile, "file"},
	}
	for _, tc := range cases {
		kind, set := extract(t, root, []string{tc.field}, true)
		if kind != tc.kind {
			t.Fatalf("%s kind: got %s, want %s", tc.field, kind, tc.kind)
		}
		if set["type"] != tc.hint {
			t.Fatalf("%s hint: got %v, want %s", tc.field, set["type"], tc.hint)
		}
	}
}

func TestExtract_CheckboxPipeShortCircuits(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"subscribe": schema.Checkbox(),
	})

	kind, set := extract(t, root, []string{"subscribe"}, true)

	if kind != schema.KindBool {
		t.Fatalf("kind: got %s", kind)
	}
	want := map[string]any{"required": true, "type": "checkbox"}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_PipeDerivesFromInputSide(t *testing.T) {
	// A number-coercing pipe constrains the text the submission carries, so
	// extraction reads the input leaf.
	root := schema.NewObject(map[string]schema.Node{
		"age": schema.NewPipe(schema.Number().Min(18), schema.Number()),
	})

	kind, set := extract(t, root, []string{"age"}, false)

	if kind != schema.KindNumber {
		t.Fatalf("kind: got %s", kind)
	}
	want := map[string]any{"required": true, "min": float64(18)}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_NestedPaths(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"user": schema.NewObject(map[string]schema.Node{
			"email": schema.Opt(schema.String().Email()),
		}),
	})

	kind, set := extract(t, root, []string{"user", "email"}, true)

	if kind != schema.KindString {
		t.Fatalf("kind: got %s", kind)
	}
	want := map[string]any{"type": "email"}
	if diff := testsupport.CompareGolden(want, set); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_AbsentPathDegradesToUnconstrainedString(t *testing.T) {
	root := schema.NewObject(map[string]schema.Node{
		"known": schema.String(),
	})

	kind, set := extract(t, root, []string{"missing", "deeper"}, true)

	if kind != schema.KindString {
		t.Fatalf("kind: got %s", kind)
	}
	if len(set) != 0 {
		t.Fatalf("expected an empty constraint set, got %v", set)
	}
}
