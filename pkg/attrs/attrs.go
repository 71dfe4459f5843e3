// Package attrs assembles the constraint set produced by pkg/constraints into
// render-ready HTML input attributes. It owns the last step before markup:
// deterministic attribute ordering, HTML attribute-name casing, and sanitizing
// of redisplayed human text (labels, validation messages) so a round-tripped
// submission cannot smuggle markup back into the form.
package attrs

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formdata/pkg/constraints"
	"github.com/goliatone/go-formdata/pkg/schema"
)

// Attr is a single HTML attribute. An empty Value renders as a bare boolean
// attribute (required, checked).
type Attr struct {
	Name  string
	Value string
}

// Constraint keys whose HTML attribute spelling differs from the extractor's.
var htmlNames = map[string]string{
	constraints.AttrMinLength: "minlength",
	constraints.AttrMaxLength: "maxlength",
}

// Merge converts a (kind, constraint set) pair into a sorted attribute list.
// The kind is unused today but kept in the signature so renderers selecting
// per-kind widgets receive both halves of the extractor's output together.
func Merge(_ schema.Kind, set map[string]any) []Attr {
	if len(set) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(set))
	for key, value := range set {
		name := key
		if mapped, ok := htmlNames[key]; ok {
			name = mapped
		}
		out = append(out, Attr{Name: name, Value: formatValue(value)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// String renders the attribute list for splicing into markup. Boolean
// attributes render bare; everything else as name="value" with quotes escaped.
func String(list []Attr) string {
	var b strings.Builder
	for i, attr := range list {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(attr.Name)
		if attr.Value == "" {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(attr.Value, `"`, "&quot;"))
		b.WriteByte('"')
	}
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		// Boolean constraints (required) become bare attributes.
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips all markup from user-facing text echoed back into a
// form, such as redisplayed values and validation messages.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(trimmed))
}
