package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submission(pairs map[string]string) map[string][]string {
	out := make(map[string][]string, len(pairs))
	for k, v := range pairs {
		out[k] = []string{v}
	}
	return out
}

func nameChain() FieldChain {
	return Field("first_name",
		Trim(),
		MinLength(2, "First name must be at least 2 characters long"),
		MaxLength(100, "First name too long"),
		Escape(),
		Alpha("First name has non-alpha characters"),
	)
}

func TestRunValidValue(t *testing.T) {
	values, errs := Run(submission(map[string]string{"first_name": "  Amelia  "}), nameChain())

	assert.True(t, errs.Empty())
	assert.Equal(t, "Amelia", values["first_name"])
}

func TestRunAlphaFailureWithoutLengthFailure(t *testing.T) {
	// Long enough, so only the alpha rule fires.
	_, errs := Run(submission(map[string]string{"first_name": "Ann3"}), nameChain())

	require.Len(t, errs, 1)
	assert.Equal(t, "First name has non-alpha characters", errs[0].Message)
	assert.True(t, errs.Has("first_name"))
}

func TestRunShortValueAccumulatesBothFailures(t *testing.T) {
	// A single short digit trips length and alpha in chain order.
	_, errs := Run(submission(map[string]string{"first_name": "7"}), nameChain())

	require.Len(t, errs, 2)
	assert.Equal(t, []string{
		"First name must be at least 2 characters long",
		"First name has non-alpha characters",
	}, errs.Messages())
}

func TestRunAccumulatesAcrossFields(t *testing.T) {
	fields := []FieldChain{
		Field("first_name", Trim(), MinLength(2, "first too short")),
		Field("family_name", Trim(), MinLength(2, "family too short")),
	}

	_, errs := Run(submission(map[string]string{
		"first_name":  "a",
		"family_name": "b",
	}), fields...)

	require.Len(t, errs, 2)
	assert.True(t, errs.Has("first_name"))
	assert.True(t, errs.Has("family_name"))
}

func TestRunMissingFieldTreatedAsEmpty(t *testing.T) {
	values, errs := Run(map[string][]string{},
		Field("name", Trim(), Required("Name required")))

	require.Len(t, errs, 1)
	assert.Equal(t, "Name required", errs[0].Message)
	assert.Equal(t, "", values["name"])
}

func TestEscapeNeutralizesMarkup(t *testing.T) {
	values, errs := Run(submission(map[string]string{"name": "<b>bold</b>"}),
		Field("name", Trim(), Escape()))

	assert.True(t, errs.Empty())
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", values["name"])
}

func TestISODate(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true}, // optional field
		{"1980-01-05", true},
		{"1980-13-05", false},
		{"05/01/1980", false},
		{"not-a-date", false},
	}

	for _, tc := range cases {
		_, errs := Run(submission(map[string]string{"d": tc.value}),
			Field("d", Trim(), ISODate("Invalid date")))
		assert.Equal(t, tc.ok, errs.Empty(), "value %q", tc.value)
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"Available", "Loaned"}

	_, errs := Run(submission(map[string]string{"status": "Available"}),
		Field("status", OneOf(allowed, "Invalid status")))
	assert.True(t, errs.Empty())

	_, errs = Run(submission(map[string]string{"status": "Lost"}),
		Field("status", OneOf(allowed, "Invalid status")))
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid status", errs[0].Message)
}

func TestParseDate(t *testing.T) {
	d := ParseDate("2024-03-01")
	require.NotNil(t, d)
	// Anchored at UTC midnight: the calendar day survives any zone.
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 3, int(d.Month()))
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2024-03-01", d.Format("2006-01-02"))

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("garbage"))
}
