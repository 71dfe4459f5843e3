package formdata

import "strings"

// Separator joins nested field names into dot-paths and is the character
// Decode splits flat keys on.
const Separator = "."

// Decode turns an ordered submission into a nested object. Values are one of
// string, nil, *Attachment, []any (repeated keys, insertion order), or
// map[string]any (dotted keys). Decode is total: it never rejects input.
//
// A key segment that collides with an existing scalar is overwritten with a
// nested object, last write wins. A leading or trailing separator produces a
// literal "" field name rather than an error.
func Decode(sub Submission, opts Options) map[string]any {
	out := make(map[string]any, len(sub))
	order := make([]string, 0, len(sub))
	seen := make(map[string]bool, len(sub))

	for _, entry := range sub {
		value, keep := entryValue(entry, opts)
		if !keep {
			continue
		}
		if !seen[entry.Key] {
			seen[entry.Key] = true
			order = append(order, entry.Key)
			out[entry.Key] = value
			continue
		}
		switch current := out[entry.Key].(type) {
		case []any:
			out[entry.Key] = append(current, value)
		default:
			out[entry.Key] = []any{current, value}
		}
	}

	// Rewrite pass: expand dotted keys into nested objects, in insertion
	// order so later keys descend into objects created by earlier ones.
	for _, key := range order {
		if !strings.Contains(key, Separator) {
			continue
		}
		value, present := out[key]
		if !present {
			continue
		}
		delete(out, key)

		segments := strings.Split(key, Separator)
		terminal := segments[len(segments)-1]
		node := out
		for _, segment := range segments[:len(segments)-1] {
			child, ok := node[segment].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[segment] = child
			}
			node = child
		}
		node[terminal] = value
	}

	return out
}

// entryValue applies the empty-value policy. Attachments pass through even
// when zero-length; only zero-length text is subject to the policy.
func entryValue(entry Entry, opts Options) (any, bool) {
	if entry.File != nil {
		return entry.File, true
	}
	if entry.Value != "" {
		return entry.Value, true
	}
	switch opts.EmptyValues {
	case EmptyOmitted:
		return nil, false
	case EmptyNull:
		return nil, true
	default:
		return entry.Value, true
	}
}
