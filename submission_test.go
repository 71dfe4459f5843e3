package formdata_test

import (
	"bytes"
	"mime/multipart"
	"net/url"
	"testing"

	formdata "github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/testsupport"
)

func TestParseURLEncoded_PreservesWireOrder(t *testing.T) {
	sub, err := formdata.ParseURLEncoded("b=2&a=1&b=3&note=hello+world&city=S%C3%A3o")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := formdata.Submission{
		{Key: "b", Value: "2"},
		{Key: "a", Value: "1"},
		{Key: "b", Value: "3"},
		{Key: "note", Value: "hello world"},
		{Key: "city", Value: "São"},
	}

	if diff := testsupport.CompareGolden(want, sub); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseURLEncoded_EmptyPairsAndValues(t *testing.T) {
	sub, err := formdata.ParseURLEncoded("a=&&b")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := formdata.Submission{
		{Key: "a", Value: ""},
		{Key: "b", Value: ""},
	}

	if diff := testsupport.CompareGolden(want, sub); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseURLEncoded_BadEscape(t *testing.T) {
	if _, err := formdata.ParseURLEncoded("a=%zz"); err == nil {
		t.Fatal("expected an error for a malformed escape")
	}
}

func TestFromValues_SortsKeysKeepsValueOrder(t *testing.T) {
	sub := formdata.FromValues(url.Values{
		"z":    {"last"},
		"tags": {"a", "b"},
	})

	want := formdata.Submission{
		{Key: "tags", Value: "a"},
		{Key: "tags", Value: "b"},
		{Key: "z", Value: "last"},
	}

	if diff := testsupport.CompareGolden(want, sub); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMultipart_TextAndFileParts(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("name", "Jo"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile("avatar", "me.png")
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write([]byte{0x89, 0x50}); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := writer.WriteField("name", "Joanna"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	sub, err := formdata.ReadMultipart(multipart.NewReader(&body, writer.Boundary()))
	if err != nil {
		t.Fatalf("read multipart: %v", err)
	}

	if len(sub) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub))
	}
	if sub[0].Key != "name" || sub[0].Value != "Jo" {
		t.Fatalf("first entry: %+v", sub[0])
	}
	if sub[1].Key != "avatar" || sub[1].File == nil {
		t.Fatalf("second entry should be a file: %+v", sub[1])
	}
	if sub[1].File.FileName() != "me.png" || sub[1].File.FileSize() != 2 {
		t.Fatalf("attachment metadata: %+v", sub[1].File)
	}
	if sub[2].Key != "name" || sub[2].Value != "Joanna" {
		t.Fatalf("third entry: %+v", sub[2])
	}
}
