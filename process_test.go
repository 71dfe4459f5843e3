package formdata_test

import (
	"testing"

	formdata "github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/schema"
	"github.com/goliatone/go-formdata/pkg/testsupport"
	"github.com/goliatone/go-formdata/pkg/validate"
)

func signupSchema() schema.Node {
	return schema.NewObject(map[string]schema.Node{
		"name":  schema.String().MinLen(3),
		"email": schema.String().Email(),
		"age":   schema.Opt(schema.Number().Min(18)),
	})
}

func TestProcess_ValidationFailure(t *testing.T) {
	sub := formdata.Submission{}.
		Text("name", "Jo").
		Text("email", "jo@example.com")

	result := formdata.Process(sub, signupSchema(), validate.Validate, formdata.Options{})

	if result.OK() {
		t.Fatal("expected validation to fail")
	}
	if result.Value != nil {
		t.Fatalf("failed result must not carry a value, got %v", result.Value)
	}

	wantErrors := validate.FieldErrors{
		"name": {"must be at least 3 characters"},
	}
	if diff := testsupport.CompareGolden(wantErrors, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	// Submitted values come back flattened for redisplay even on failure.
	wantFields := map[string]any{
		"name":  "Jo",
		"email": "jo@example.com",
	}
	if diff := testsupport.CompareGolden(wantFields, result.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_Success(t *testing.T) {
	sub := formdata.Submission{}.
		Text("name", "Joanna").
		Text("email", "jo@example.com").
		Text("age", "30")

	result := formdata.Process(sub, signupSchema(), validate.Validate, formdata.Options{})

	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	want := map[string]any{
		"name":  "Joanna",
		"email": "jo@example.com",
		"age":   "30",
	}
	if diff := testsupport.CompareGolden(want, result.Value); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_NilValidatorAcceptsEverything(t *testing.T) {
	sub := formdata.Submission{}.Text("anything", "goes")

	result := formdata.Process(sub, nil, nil, formdata.Options{})

	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Value == nil {
		t.Fatal("expected the decoded value")
	}
}

func TestProcess_AttachmentsExcludedFromRedisplay(t *testing.T) {
	tree := schema.NewObject(map[string]schema.Node{
		"title":  schema.String(),
		"upload": schema.File(),
	})
	sub := formdata.Submission{}.
		Text("title", "report").
		File("upload", &formdata.Attachment{Name: "q3.pdf", Data: []byte("pdf")})

	result := formdata.Process(sub, tree, validate.Validate, formdata.Options{})

	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := map[string]any{"title": "report"}
	if diff := testsupport.CompareGolden(want, result.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}
