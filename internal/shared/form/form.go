package form

import (
	"html"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Error is one field-level validation failure.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered accumulation of every failure in a submission.
type Errors []Error

func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether any failure is tagged with the given field.
func (e Errors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Messages returns just the human-readable messages, in order.
func (e Errors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

// Rule transforms a value and reports zero or more failures. Rules are pure:
// a later rule in the same chain sees the sanitized output of earlier rules.
type Rule func(value string) (sanitized string, messages []string)

// FieldChain is the ordered rule list for one named form field.
type FieldChain struct {
	Name  string
	Rules []Rule
}

// Field builds the chain for a single field.
func Field(name string, rules ...Rule) FieldChain {
	return FieldChain{Name: name, Rules: rules}
}

// Values holds the sanitized value per recognized field.
type Values map[string]string

// Run applies every chain to the submitted values. All rules for all fields
// run to completion before failures are reported, so one submission can
// surface several simultaneous field errors. Run never persists anything.
func Run(submitted map[string][]string, fields ...FieldChain) (Values, Errors) {
	sanitized := make(Values, len(fields))
	var errs Errors

	for _, f := range fields {
		value := ""
		if vs, ok := submitted[f.Name]; ok && len(vs) > 0 {
			value = vs[0]
		}

		for _, rule := range f.Rules {
			var msgs []string
			value, msgs = rule(value)
			for _, msg := range msgs {
				errs = append(errs, Error{Field: f.Name, Message: msg})
			}
		}

		sanitized[f.Name] = value
	}

	return sanitized, errs
}

// Trim removes surrounding whitespace.
func Trim() Rule {
	return func(value string) (string, []string) {
		return strings.TrimSpace(value), nil
	}
}

// Escape neutralizes markup so the value is safe to embed in rendered HTML.
func Escape() Rule {
	return func(value string) (string, []string) {
		return html.EscapeString(value), nil
	}
}

// Required fails on an empty value.
func Required(msg string) Rule {
	return func(value string) (string, []string) {
		if value == "" {
			return value, []string{msg}
		}
		return value, nil
	}
}

// MinLength fails when the value has fewer than n characters. An empty
// value fails too; optional fields should not carry this rule.
func MinLength(n int, msg string) Rule {
	return func(value string) (string, []string) {
		if utf8.RuneCountInString(value) < n {
			return value, []string{msg}
		}
		return value, nil
	}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int, msg string) Rule {
	return func(value string) (string, []string) {
		if utf8.RuneCountInString(value) > n {
			return value, []string{msg}
		}
		return value, nil
	}
}

// Alpha fails when the value contains anything but letters. Empty values
// pass; the length rules own the empty case.
func Alpha(msg string) Rule {
	return func(value string) (string, []string) {
		if err := validation.Validate(value, is.Alpha); err != nil {
			return value, []string{msg}
		}
		return value, nil
	}
}

// ISODate fails when a non-empty value does not parse as an ISO-8601
// calendar date. Empty values pass; the field is optional.
func ISODate(msg string) Rule {
	return func(value string) (string, []string) {
		if err := validation.Validate(value, validation.Date(time.DateOnly)); err != nil {
			return value, []string{msg}
		}
		return value, nil
	}
}

// OneOf fails unless the value is one of the allowed set.
func OneOf(allowed []string, msg string) Rule {
	return func(value string) (string, []string) {
		for _, a := range allowed {
			if value == a {
				return value, nil
			}
		}
		return value, []string{msg}
	}
}

// ParseDate converts a validated ISO-8601 string into a calendar date. The
// date is anchored at UTC midnight so the persisted day never shifts with
// the caller's time zone. Empty or malformed input yields nil.
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}
