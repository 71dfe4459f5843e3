package schema

import "time"

// String returns a text leaf.
func String() *Leaf { return &Leaf{Kind: KindString} }

// Number returns a numeric leaf.
func Number() *Leaf { return &Leaf{Kind: KindNumber} }

// Date returns a calendar-date leaf.
func Date() *Leaf { return &Leaf{Kind: KindDate} }

// Bool returns a boolean leaf.
func Bool() *Leaf { return &Leaf{Kind: KindBool} }

// Enum returns an enumeration leaf restricted to the supplied members.
func Enum(values ...string) *Leaf {
	return &Leaf{Kind: KindEnum, Values: append([]string(nil), values...)}
}

// File returns an attachment leaf.
func File() *Leaf { return &Leaf{Kind: KindFile} }

// NewObject builds a composite node from named fields.
func NewObject(fields map[string]Node) *Object {
	return &Object{Fields: fields}
}

// Opt wraps a node so the field may be omitted.
func Opt(inner Node) *Optional { return &Optional{Inner: inner} }

// Null wraps a node so the field accepts an explicit null.
func Null(inner Node) *Nullable { return &Nullable{Inner: inner} }

// WithDefault wraps a node with a fallback value applied on absence.
func WithDefault(inner Node, value any) *Default {
	return &Default{Inner: inner, Value: value}
}

// NewPipe composes an input node with an output node, modelling a coercing
// transformation owned by the schema.
func NewPipe(input, output Node) *Pipe {
	return &Pipe{Input: input, Output: output}
}

// Checkbox is the conventional string-to-boolean pipe produced by HTML
// checkbox inputs, whose submitted value is text ("on") but whose validated
// shape is a boolean.
func Checkbox() *Pipe { return NewPipe(String(), Bool()) }

func (l *Leaf) check(c Check) *Leaf {
	l.Checks = append(l.Checks, c)
	return l
}

// MinLen constrains the minimum character count of a text leaf.
func (l *Leaf) MinLen(n int) *Leaf {
	return l.check(Check{Kind: CheckMinLength, Number: float64(n)})
}

// MaxLen constrains the maximum character count of a text leaf.
func (l *Leaf) MaxLen(n int) *Leaf {
	return l.check(Check{Kind: CheckMaxLength, Number: float64(n)})
}

// Email tags a text leaf with the email format.
func (l *Leaf) Email() *Leaf { return l.check(Check{Kind: CheckEmail}) }

// URL tags a text leaf with the url format.
func (l *Leaf) URL() *Leaf { return l.check(Check{Kind: CheckURL}) }

// Pattern constrains a text leaf to the supplied regular expression.
func (l *Leaf) Pattern(expr string) *Leaf {
	return l.check(Check{Kind: CheckPattern, Text: expr})
}

// Min sets an inclusive lower bound on a numeric leaf.
func (l *Leaf) Min(v float64) *Leaf {
	return l.check(Check{Kind: CheckMin, Number: v})
}

// Max sets an inclusive upper bound on a numeric leaf.
func (l *Leaf) Max(v float64) *Leaf {
	return l.check(Check{Kind: CheckMax, Number: v})
}

// GreaterThan sets an exclusive lower bound on a numeric leaf.
func (l *Leaf) GreaterThan(v float64) *Leaf {
	return l.check(Check{Kind: CheckExclusiveMin, Number: v})
}

// LessThan sets an exclusive upper bound on a numeric leaf.
func (l *Leaf) LessThan(v float64) *Leaf {
	return l.check(Check{Kind: CheckExclusiveMax, Number: v})
}

// Integer tags a numeric leaf as whole-valued.
func (l *Leaf) Integer() *Leaf { return l.check(Check{Kind: CheckInteger}) }

// After sets an inclusive lower bound on a date leaf.
func (l *Leaf) After(t time.Time) *Leaf {
	return l.check(Check{Kind: CheckMinDate, Time: t})
}

// Before sets an inclusive upper bound on a date leaf.
func (l *Leaf) Before(t time.Time) *Leaf {
	return l.check(Check{Kind: CheckMaxDate, Time: t})
}
