package formdata

import (
	gojson "github.com/goccy/go-json"
)

// Flatten collapses a nested value into a map keyed by dot-path, the inverse
// direction of Decode. The value is first canonicalized through a JSON
// round-trip: temporal values become their RFC 3339 text form and
// non-serializable members drop out, matching what a caller would get by
// echoing the value over the wire. A non-object root (scalar, array, nil, or
// anything that cannot be marshalled) is returned unchanged so callers can
// flatten arbitrary payloads, not just records.
//
// Arrays are leaves: an array value is stored whole under its path and never
// expanded into indexed keys. An empty nested object contributes no key at
// all.
func Flatten(value any) any {
	canonical, ok := canonicalize(value)
	if !ok {
		return value
	}
	root, ok := canonical.(map[string]any)
	if !ok {
		return canonical
	}
	flat := make(map[string]any, len(root))
	flattenInto(flat, "", root)
	return flat
}

// canonicalize deep-copies through JSON. Reports false when the value has no
// JSON representation, in which case Flatten passes the original through.
func canonicalize(value any) (any, bool) {
	data, err := gojson.Marshal(value)
	if err != nil {
		return nil, false
	}
	var out any
	if err := gojson.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

func flattenInto(dst map[string]any, prefix string, node map[string]any) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenInto(dst, path, child)
			continue
		}
		dst[path] = value
	}
}
