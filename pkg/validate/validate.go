package validate

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-formdata/pkg/schema"
)

// FileValue is satisfied by attachments captured from multipart submissions.
// Declared here so the engine does not depend on any particular transport
// representation.
type FileValue interface {
	FileName() string
	FileSize() int64
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const dateLayout = "2006-01-02"

// Validate checks a decoded object against a schema tree and returns the
// ordered list of failures. A nil or empty result means the value passed.
// Validation never mutates the value or the tree.
func Validate(root schema.Node, value any) Issues {
	return check(root, value, nil)
}

func check(node schema.Node, value any, path []string) Issues {
	switch n := node.(type) {
	case *schema.Object:
		return checkObject(n, value, path)
	case *schema.Optional:
		// Presence is decided by the enclosing object; a present value still
		// has to satisfy the inner node.
		return check(n.Inner, value, path)
	case *schema.Nullable:
		if value == nil {
			return nil
		}
		return check(n.Inner, value, path)
	case *schema.Default:
		if value == nil {
			return nil
		}
		return check(n.Inner, value, path)
	case *schema.Pipe:
		// Raw submissions are validated against the input side; the output
		// side describes the post-transformation shape.
		return check(n.Input, value, path)
	case *schema.Leaf:
		return checkLeaf(n, value, path)
	default:
		return nil
	}
}

func checkObject(obj *schema.Object, value any, path []string) Issues {
	fields, ok := value.(map[string]any)
	if !ok {
		return Issues{{Path: childPath(path, ""), Message: "expected a set of fields"}}
	}

	names := make([]string, 0, len(obj.Fields))
	for name := range obj.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues Issues
	for _, name := range names {
		field := obj.Fields[name]
		fieldPath := childPath(path, name)
		fieldValue, present := fields[name]
		if !present {
			if omittable(field) {
				continue
			}
			issues = append(issues, Issue{Path: fieldPath, Message: "is required"})
			continue
		}
		issues = append(issues, check(field, fieldValue, fieldPath)...)
	}
	return issues
}

// omittable reports whether a field may be absent without an issue. Optional
// and defaulted fields may; a bare nullable still has to be present, it only
// accepts an explicit null.
func omittable(node schema.Node) bool {
	for {
		switch n := node.(type) {
		case *schema.Optional, *schema.Default:
			return true
		case *schema.Pipe:
			node = n.Input
		default:
			return false
		}
	}
}

func checkLeaf(leaf *schema.Leaf, value any, path []string) Issues {
	// Repeated submission keys decode to arrays; validate each element under
	// its stringified index.
	if items, ok := value.([]any); ok {
		var issues Issues
		for i, item := range items {
			issues = append(issues, checkLeaf(leaf, item, childPath(path, strconv.Itoa(i)))...)
		}
		return issues
	}

	switch leaf.Kind {
	case schema.KindString:
		return checkString(leaf, value, path)
	case schema.KindNumber:
		return checkNumber(leaf, value, path)
	case schema.KindDate:
		return checkDate(leaf, value, path)
	case schema.KindBool:
		return checkBool(value, path)
	case schema.KindEnum:
		return checkEnum(leaf, value, path)
	case schema.KindFile:
		if _, ok := value.(FileValue); !ok {
			return Issues{{Path: path, Message: "expected a file"}}
		}
		return nil
	default:
		return nil
	}
}

func checkString(leaf *schema.Leaf, value any, path []string) Issues {
	text, ok := value.(string)
	if !ok {
		return Issues{{Path: path, Message: "expected text"}}
	}
	var issues Issues
	for _, c := range leaf.Checks {
		switch c.Kind {
		case schema.CheckMinLength:
			if utf8.RuneCountInString(text) < int(c.Number) {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be at least %d characters", int(c.Number))})
			}
		case schema.CheckMaxLength:
			if utf8.RuneCountInString(text) > int(c.Number) {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be at most %d characters", int(c.Number))})
			}
		case schema.CheckPattern:
			re, err := regexp.Compile(c.Text)
			if err == nil && !re.MatchString(text) {
				issues = append(issues, Issue{Path: path, Message: "has an invalid format"})
			}
		case schema.CheckEmail:
			if !emailPattern.MatchString(text) {
				issues = append(issues, Issue{Path: path, Message: "must be a valid email address"})
			}
		case schema.CheckURL:
			parsed, err := url.Parse(text)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				issues = append(issues, Issue{Path: path, Message: "must be a valid URL"})
			}
		}
	}
	return issues
}

func checkNumber(leaf *schema.Leaf, value any, path []string) Issues {
	num, ok := numericValue(value)
	if !ok {
		return Issues{{Path: path, Message: "expected a number"}}
	}
	var issues Issues
	for _, c := range leaf.Checks {
		switch c.Kind {
		case schema.CheckMin:
			if num < c.Number {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be at least %s", formatNumber(c.Number))})
			}
		case schema.CheckMax:
			if num > c.Number {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be at most %s", formatNumber(c.Number))})
			}
		case schema.CheckExclusiveMin:
			if num <= c.Number {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be greater than %s", formatNumber(c.Number))})
			}
		case schema.CheckExclusiveMax:
			if num >= c.Number {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be less than %s", formatNumber(c.Number))})
			}
		case schema.CheckInteger:
			if math.Trunc(num) != num {
				issues = append(issues, Issue{Path: path, Message: "must be a whole number"})
			}
		}
	}
	return issues
}

func checkDate(leaf *schema.Leaf, value any, path []string) Issues {
	when, ok := dateValue(value)
	if !ok {
		return Issues{{Path: path, Message: "expected a date"}}
	}
	var issues Issues
	for _, c := range leaf.Checks {
		switch c.Kind {
		case schema.CheckMinDate:
			if when.Before(c.Time) {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must not be before %s", c.Time.Format(dateLayout))})
			}
		case schema.CheckMaxDate:
			if when.After(c.Time) {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must not be after %s", c.Time.Format(dateLayout))})
			}
		}
	}
	return issues
}

func checkBool(value any, path []string) Issues {
	switch v := value.(type) {
	case bool:
		return nil
	case string:
		switch strings.ToLower(v) {
		case "true", "false", "on", "off", "1", "0":
			return nil
		}
	}
	return Issues{{Path: path, Message: "expected a boolean"}}
}

func checkEnum(leaf *schema.Leaf, value any, path []string) Issues {
	text, ok := value.(string)
	if ok {
		for _, member := range leaf.Values {
			if text == member {
				return nil
			}
		}
	}
	return Issues{{Path: path, Message: fmt.Sprintf("must be one of: %s", strings.Join(leaf.Values, ", "))}}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// numericValue accepts native numbers plus the textual numbers a form
// submission produces. Parsing here is a comparison aid only; the decoded
// value is never rewritten.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func dateValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		if when, err := time.Parse(dateLayout, v); err == nil {
			return when, true
		}
		if when, err := time.Parse(time.RFC3339, v); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}

func childPath(path []string, segment string) []string {
	child := make([]string, 0, len(path)+1)
	child = append(child, path...)
	if segment != "" {
		child = append(child, segment)
	}
	return child
}
