// Package check defines the validator contract consumed by the validation
// engine, plus the built-in rule library.
package check

import (
	"errors"
	"fmt"
	"sort"
)

// Validator is a rule object attached to a field and invoked per cell.
//
// Validate rejects a value by returning a [*FieldError]; any other error is
// treated as a defect in the validator itself, not as a data failure. The
// engine owns the failure counter: it calls RecordFailure once per rejection.
type Validator interface {
	// Name identifies the validator in reports.
	Name() string
	// Validate checks value. The full row is passed as context so rules can
	// inspect sibling fields.
	Validate(value string, row map[string]string) error
	// RecordFailure increments the failure counter. Called by the engine,
	// never by the validator itself.
	RecordFailure()
	// FailCount returns the number of rejections recorded so far.
	FailCount() int
}

// BadValueser is an optional capability: validators that track the distinct
// invalid values they have seen expose them for reporting. Reporters resolve
// this with a type assertion; a validator without it is still fully usable.
type BadValueser interface {
	// Bad returns the distinct invalid values seen, sorted.
	Bad() []string
}

// FieldError marks a value as rejected by a validator. The engine records
// these in the run ledger and keeps scanning.
type FieldError struct {
	msg string
}

// Failf builds a FieldError from a format string.
func Failf(format string, args ...any) *FieldError {
	return &FieldError{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *FieldError) Error() string { return e.msg }

// IsFieldError reports whether err is a validation rejection rather than a
// validator defect.
func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

// tracker carries the statistics shared by the built-in validators: the
// engine-driven failure counter and the set of distinct invalid values.
type tracker struct {
	failCount int
	bad       map[string]struct{}
}

// RecordFailure increments the failure counter.
func (t *tracker) RecordFailure() { t.failCount++ }

// FailCount returns the number of rejections recorded so far.
func (t *tracker) FailCount() int { return t.failCount }

// Bad returns the distinct invalid values seen, sorted.
func (t *tracker) Bad() []string {
	vals := make([]string, 0, len(t.bad))
	for v := range t.bad {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}

// saw records value as invalid.
func (t *tracker) saw(value string) {
	if t.bad == nil {
		t.bad = make(map[string]struct{})
	}
	t.bad[value] = struct{}{}
}
