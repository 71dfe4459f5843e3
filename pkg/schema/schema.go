package schema

import "time"

// Kind identifies the terminal data type of a schema node once every modifier
// wrapper has been unwrapped.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindBool   Kind = "bool"
	KindEnum   Kind = "enum"
	KindFile   Kind = "file"
)

// CheckKind names a single constraint category attached to a leaf.
type CheckKind string

const (
	CheckMinLength    CheckKind = "minLength"
	CheckMaxLength    CheckKind = "maxLength"
	CheckMin          CheckKind = "min"
	CheckMax          CheckKind = "max"
	CheckExclusiveMin CheckKind = "exclusiveMin"
	CheckExclusiveMax CheckKind = "exclusiveMax"
	CheckInteger      CheckKind = "integer"
	CheckEmail        CheckKind = "email"
	CheckURL          CheckKind = "url"
	CheckPattern      CheckKind = "pattern"
	CheckMinDate      CheckKind = "minDate"
	CheckMaxDate      CheckKind = "maxDate"
)

// Check records one constraint on a leaf. Only the parameter slot matching the
// check kind is meaningful: Number for numeric/length bounds, Text for
// patterns, Time for date bounds. Format checks (email, url, integer) carry no
// parameter at all.
type Check struct {
	Kind   CheckKind
	Number float64
	Text   string
	Time   time.Time
}

// Node is the closed set of schema-tree variants. Consumers dispatch with a
// type switch; there is no runtime probing beyond the variant set below.
type Node interface {
	isNode()
}

// Object is a composite node with one child per named field.
type Object struct {
	Fields map[string]Node
}

// Optional marks a field that may be absent from the decoded object.
type Optional struct {
	Inner Node
}

// Nullable marks a field that accepts an explicit null value.
type Nullable struct {
	Inner Node
}

// Default supplies a value used when the field is absent. A defaulted field is
// never surfaced as required.
type Default struct {
	Inner Node
	Value any
}

// Pipe composes an input-side node with an output-side node. Raw submissions
// must satisfy the input side before any transformation, so validation and
// constraint extraction both read Input. The Output node documents the shape
// the transformation produces.
type Pipe struct {
	Input  Node
	Output Node
}

// Leaf is a terminal node: a kind tag plus zero or more checks. Values holds
// the member list for enum leaves and is nil otherwise.
type Leaf struct {
	Kind   Kind
	Checks []Check
	Values []string
}

func (*Object) isNode()   {}
func (*Optional) isNode() {}
func (*Nullable) isNode() {}
func (*Default) isNode()  {}
func (*Pipe) isNode()     {}
func (*Leaf) isNode()     {}
