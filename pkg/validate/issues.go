package validate

import (
	"fmt"
	"strings"
)

// Issue is a single validation failure qualified by the path of the offending
// field. Path segments are field names or stringified array indices; an empty
// path marks a form-level issue with no field to attach to.
type Issue struct {
	Path    []string
	Message string
}

// Issues is an ordered collection of validation failures. It implements error
// so engines can surface it through conventional return values.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	var b strings.Builder
	shown := len(iss)
	if shown > maxShown {
		shown = maxShown
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if len(it.Path) == 0 {
			b.WriteString(it.Message)
			continue
		}
		fmt.Fprintf(&b, "%s: %s", strings.Join(it.Path, "."), it.Message)
	}
	if len(iss) > shown {
		fmt.Fprintf(&b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// FieldErrors maps a dot-path to the ordered messages recorded against that
// field. A key present in the map always carries at least one message.
type FieldErrors map[string][]string

// Aggregate groups issues by dot-path. Message order follows the order issues
// were supplied in, duplicates included. Issues with an empty path have no
// field to land on and are dropped. Returns nil when nothing remains.
func Aggregate(issues Issues) FieldErrors {
	if len(issues) == 0 {
		return nil
	}
	out := make(FieldErrors)
	for _, issue := range issues {
		if len(issue.Path) == 0 {
			continue
		}
		key := strings.Join(issue.Path, ".")
		out[key] = append(out[key], issue.Message)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
