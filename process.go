package formdata

import (
	"github.com/goliatone/go-formdata/pkg/schema"
	"github.com/goliatone/go-formdata/pkg/validate"
)

// Validator checks a decoded object against a schema tree. pkg/validate
// supplies the reference implementation; callers may plug any engine that
// speaks the same issue model.
type Validator func(root schema.Node, value any) validate.Issues

// Result is the outcome of one submission pass. Exactly one of Value or
// Errors is populated; Fields always carries the flattened submitted values so
// a retry can be prefilled regardless of outcome.
type Result struct {
	Value  any
	Errors validate.FieldErrors
	Fields map[string]any
}

// OK reports whether validation passed.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Process runs the full submission pipeline: decode, validate, and either
// hand back the accepted value or the per-field error map, always alongside
// the flattened redisplay values. A nil validator accepts every decoded
// object. Attachments are excluded from the redisplay values since they have
// no text representation to echo back.
func Process(sub Submission, root schema.Node, validator Validator, opts Options) Result {
	decoded := Decode(sub, opts)

	fields, _ := Flatten(withoutAttachments(decoded)).(map[string]any)
	result := Result{Fields: fields}

	if validator != nil {
		if issues := validator(root, decoded); len(issues) > 0 {
			result.Errors = validate.Aggregate(issues)
			return result
		}
	}

	result.Value = decoded
	return result
}

// withoutAttachments returns a copy of the decoded object with every
// attachment-valued branch removed, recursing into nested objects and arrays.
func withoutAttachments(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		kept, keep := pruneAttachment(value)
		if !keep {
			continue
		}
		out[key] = kept
	}
	return out
}

func pruneAttachment(value any) (any, bool) {
	switch v := value.(type) {
	case *Attachment:
		return nil, false
	case map[string]any:
		return withoutAttachments(v), true
	case []any:
		kept := make([]any, 0, len(v))
		for _, item := range v {
			pruned, keep := pruneAttachment(item)
			if !keep {
				continue
			}
			kept = append(kept, pruned)
		}
		return kept, true
	default:
		return value, true
	}
}
