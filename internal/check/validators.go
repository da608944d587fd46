package check

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// AcceptAll passes every value. It backfills fields declared with no rules so
// each declared field carries at least one validator for reporting. It keeps
// a failure counter to satisfy the contract but deliberately does not track
// bad values.
type AcceptAll struct {
	failCount int
}

// Name identifies the validator in reports.
func (v *AcceptAll) Name() string { return "AcceptAll" }

// Validate accepts any value.
func (v *AcceptAll) Validate(string, map[string]string) error { return nil }

// RecordFailure increments the failure counter.
func (v *AcceptAll) RecordFailure() { v.failCount++ }

// FailCount returns the number of rejections recorded so far.
func (v *AcceptAll) FailCount() int { return v.failCount }

// NotEmpty rejects empty values.
type NotEmpty struct {
	tracker
}

func (v *NotEmpty) Name() string { return "NotEmpty" }

func (v *NotEmpty) Validate(value string, _ map[string]string) error {
	if value == "" {
		v.saw(value)
		return Failf("value is empty")
	}
	return nil
}

// Empty rejects any non-empty value.
type Empty struct {
	tracker
}

func (v *Empty) Name() string { return "Empty" }

func (v *Empty) Validate(value string, _ map[string]string) error {
	if value != "" {
		v.saw(value)
		return Failf("%q is not empty", value)
	}
	return nil
}

// Regex rejects values that do not match a compiled pattern.
type Regex struct {
	tracker
	re *regexp.Regexp
}

// NewRegex compiles pattern into a Regex validator.
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling pattern %q", pattern)
	}
	return &Regex{re: re}, nil
}

func (v *Regex) Name() string { return "Regex" }

func (v *Regex) Validate(value string, _ map[string]string) error {
	if !v.re.MatchString(value) {
		v.saw(value)
		return Failf("%q does not match %q", value, v.re.String())
	}
	return nil
}

// Int rejects values that do not parse as integers.
type Int struct {
	tracker
}

func (v *Int) Name() string { return "Int" }

func (v *Int) Validate(value string, _ map[string]string) error {
	if _, err := strconv.Atoi(value); err != nil {
		v.saw(value)
		return Failf("%q is not an integer", value)
	}
	return nil
}

// Float rejects values that do not parse as floating point numbers.
type Float struct {
	tracker
}

func (v *Float) Name() string { return "Float" }

func (v *Float) Validate(value string, _ map[string]string) error {
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		v.saw(value)
		return Failf("%q is not a number", value)
	}
	return nil
}

// Set rejects values outside a fixed option list.
type Set struct {
	tracker
	options map[string]struct{}
}

// NewSet builds a Set validator accepting exactly the given options.
func NewSet(options ...string) *Set {
	opts := make(map[string]struct{}, len(options))
	for _, o := range options {
		opts[o] = struct{}{}
	}
	return &Set{options: opts}
}

func (v *Set) Name() string { return "Set" }

func (v *Set) Validate(value string, _ map[string]string) error {
	if _, ok := v.options[value]; !ok {
		v.saw(value)
		return Failf("%q is not an allowed value", value)
	}
	return nil
}

// Range rejects numeric values outside [min, max], and values that are not
// numeric at all.
type Range struct {
	tracker
	min, max float64
}

// NewRange builds a Range validator for the inclusive interval [min, max].
func NewRange(min, max float64) *Range {
	return &Range{min: min, max: max}
}

func (v *Range) Name() string { return "Range" }

func (v *Range) Validate(value string, _ map[string]string) error {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		v.saw(value)
		return Failf("%q is not a number", value)
	}
	if n < v.min || n > v.max {
		v.saw(value)
		return Failf("%q is outside [%v, %v]", value, v.min, v.max)
	}
	return nil
}

// Unique rejects a value the second time it appears. With sibling fields
// configured, uniqueness applies to the combination of this value and the
// siblings' values on the same row. State accumulates for the lifetime of
// the instance, so construct a fresh one per run.
type Unique struct {
	tracker
	with []string
	seen map[string]struct{}
}

// NewUnique builds a Unique validator. Optional sibling field names widen the
// uniqueness key to a composite of this field and the siblings.
func NewUnique(with ...string) *Unique {
	return &Unique{with: with, seen: make(map[string]struct{})}
}

func (v *Unique) Name() string { return "Unique" }

func (v *Unique) Validate(value string, row map[string]string) error {
	key := value
	if len(v.with) > 0 {
		parts := make([]string, 0, len(v.with)+1)
		parts = append(parts, value)
		for _, field := range v.with {
			parts = append(parts, row[field])
		}
		key = strings.Join(parts, "\x1f")
	}
	if _, dup := v.seen[key]; dup {
		v.saw(value)
		return Failf("%q is not unique", value)
	}
	v.seen[key] = struct{}{}
	return nil
}
