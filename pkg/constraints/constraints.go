package constraints

import (
	"github.com/goliatone/go-formdata/pkg/schema"
)

// Attribute keys emitted by Extract. Numeric values are float64, lengths int,
// required bool, everything else string.
const (
	AttrRequired  = "required"
	AttrType      = "type"
	AttrMin       = "min"
	AttrMax       = "max"
	AttrStep      = "step"
	AttrMinLength = "minLength"
	AttrMaxLength = "maxLength"
	AttrPattern   = "pattern"
)

// Input type hints computed per leaf kind.
const (
	TypeText     = "text"
	TypeEmail    = "email"
	TypeURL      = "url"
	TypeNumber   = "number"
	TypeDate     = "date"
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
	TypeFile     = "file"
)

const dateLayout = "2006-01-02"

// Options configures Extract.
type Options struct {
	// InferType includes the computed "type" attribute in the result. The hint
	// is always computed internally (the email/url formats depend on it) and
	// stripped from the output when this is false.
	InferType bool
}

// Extract walks the schema tree along path and returns the terminal leaf kind
// together with its HTML-equivalent constraint set. Absent paths degrade to an
// unconstrained string leaf; Extract never fails.
func Extract(root schema.Node, path []string, opts Options) (schema.Kind, map[string]any) {
	kind, attrs := walk(root, path, false)
	if !opts.InferType {
		delete(attrs, AttrType)
	}
	return kind, attrs
}

// walk recurses structurally over the node variants. suppressRequired records
// that an enclosing optional, nullable, or defaulted modifier already decided
// the field is not mandatory; the flag only ever flips one way.
func walk(node schema.Node, path []string, suppressRequired bool) (schema.Kind, map[string]any) {
	switch n := node.(type) {
	case *schema.Object:
		if len(path) == 0 {
			return schema.KindString, map[string]any{}
		}
		child, ok := n.Fields[path[0]]
		if !ok {
			return schema.KindString, map[string]any{}
		}
		return walk(child, path[1:], suppressRequired)
	case *schema.Optional:
		return walk(n.Inner, path, true)
	case *schema.Nullable:
		return walk(n.Inner, path, true)
	case *schema.Default:
		return walk(n.Inner, path, true)
	case *schema.Pipe:
		if isCheckboxPipe(n) {
			return leafConstraints(&schema.Leaf{Kind: schema.KindBool}, suppressRequired)
		}
		// Constraints describe what the raw submission must satisfy, which is
		// the input side of the pipe.
		return walk(n.Input, path, suppressRequired)
	case *schema.Leaf:
		return leafConstraints(n, suppressRequired)
	default:
		return schema.KindString, map[string]any{}
	}
}

// isCheckboxPipe reports whether a pipe declares a text input transformed into
// a boolean, the shape an HTML checkbox submits.
func isCheckboxPipe(p *schema.Pipe) bool {
	in, ok := p.Input.(*schema.Leaf)
	if !ok || in.Kind != schema.KindString {
		return false
	}
	out, ok := p.Output.(*schema.Leaf)
	return ok && out.Kind == schema.KindBool
}

func leafConstraints(leaf *schema.Leaf, suppressRequired bool) (schema.Kind, map[string]any) {
	attrs := make(map[string]any, len(leaf.Checks)+2)
	if !suppressRequired {
		attrs[AttrRequired] = true
	}

	switch leaf.Kind {
	case schema.KindString:
		attrs[AttrType] = TypeText
		for _, c := range leaf.Checks {
			switch c.Kind {
			case schema.CheckMinLength:
				attrs[AttrMinLength] = int(c.Number)
			case schema.CheckMaxLength:
				attrs[AttrMaxLength] = int(c.Number)
			case schema.CheckPattern:
				attrs[AttrPattern] = c.Text
			case schema.CheckEmail:
				attrs[AttrType] = TypeEmail
			case schema.CheckURL:
				attrs[AttrType] = TypeURL
			}
		}
	case schema.KindNumber:
		attrs[AttrType] = TypeNumber
		for _, c := range leaf.Checks {
			switch c.Kind {
			case schema.CheckMin:
				attrs[AttrMin] = c.Number
			case schema.CheckMax:
				attrs[AttrMax] = c.Number
			case schema.CheckExclusiveMin:
				// Browsers only understand inclusive bounds.
				attrs[AttrMin] = c.Number + 1
			case schema.CheckExclusiveMax:
				attrs[AttrMax] = c.Number - 1
			case schema.CheckInteger:
				attrs[AttrStep] = 1
			}
		}
	case schema.KindDate:
		attrs[AttrType] = TypeDate
		for _, c := range leaf.Checks {
			switch c.Kind {
			case schema.CheckMinDate:
				attrs[AttrMin] = c.Time.Format(dateLayout)
			case schema.CheckMaxDate:
				attrs[AttrMax] = c.Time.Format(dateLayout)
			}
		}
	case schema.KindBool:
		attrs[AttrType] = TypeCheckbox
	case schema.KindEnum:
		attrs[AttrType] = TypeRadio
	case schema.KindFile:
		attrs[AttrType] = TypeFile
	}

	return leaf.Kind, attrs
}
