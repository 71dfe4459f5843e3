// Package testsupport holds shared fixture helpers for the package-level test
// suites. Helpers panic through t.Fatalf on failure to keep tests concise.
package testsupport

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// CompareGolden diffs two values; an empty string means they match. Callers
// report the diff with a "(-want +got)" prefix.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadFile loads a fixture file.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// MustLoadYAML unmarshals a YAML fixture into out.
func MustLoadYAML(t *testing.T, path string, out any) {
	t.Helper()
	if err := yaml.Unmarshal(MustReadFile(t, path), out); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
}

// MustDate parses a calendar date in YYYY-MM-DD form.
func MustDate(t *testing.T, value string) time.Time {
	t.Helper()
	when, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return when
}
