package engine

import "sort"

// Ledger accumulates validation failures for one run, keyed by field and row
// index. Records are append-only; the inner containers are created on first
// use so recording never needs a presence check.
type Ledger struct {
	failures map[string]map[int][]error
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{failures: make(map[string]map[int][]error)}
}

// Record appends err to the failures for field at row.
func (l *Ledger) Record(field string, row int, err error) {
	rows, ok := l.failures[field]
	if !ok {
		rows = make(map[int][]error)
		l.failures[field] = rows
	}
	rows[row] = append(rows[row], err)
}

// Empty reports whether no failures have been recorded.
func (l *Ledger) Empty() bool {
	return len(l.failures) == 0
}

// Fields returns the fields with recorded failures, sorted.
func (l *Ledger) Fields() []string {
	fields := make([]string, 0, len(l.failures))
	for field := range l.failures {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Rows returns the failing row indices for field, ascending.
func (l *Ledger) Rows(field string) []int {
	rows := make([]int, 0, len(l.failures[field]))
	for row := range l.failures[field] {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// Errors returns the errors recorded for field at row, in recording order.
func (l *Ledger) Errors(field string, row int) []error {
	return l.failures[field][row]
}

// Len returns the total number of recorded errors.
func (l *Ledger) Len() int {
	n := 0
	for _, rows := range l.failures {
		for _, errs := range rows {
			n += len(errs)
		}
	}
	return n
}
