package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/thoreinstein/csvgate/internal/check"
	"github.com/thoreinstein/csvgate/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// maxShownBadValues caps the invalid-value list in text reports; anything
// beyond it is folded into a suppressed-count note.
const maxShownBadValues = 99

// Reporter consumes the ledger and reconciliation results of a run. The
// engine delivers all diagnostic detail through it; the verdict itself stays
// a plain boolean.
type Reporter interface {
	// SchemaIssues renders reconciliation results. Either set may be empty.
	SchemaIssues(missingValidators, missingFields []string)
	// RowFailures renders the per-row failure detail from the ledger.
	RowFailures(ledger *Ledger)
	// ValidatorSummary renders per-validator failure statistics. rows is the
	// total number of data rows processed.
	ValidatorSummary(validators map[string][]check.Validator, rows int)
}

// NewReporter builds the reporter for the given format. The choice is a
// closed enum: an empty format defaults to text, anything else unrecognized
// fails so a bad configuration is caught at construction time.
func NewReporter(out io.Writer, format Format) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &textReporter{out: out}, nil
	case FormatJSON:
		return &jsonReporter{out: out, now: time.Now}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
	}
}

// textReporter writes colorized human-readable reports.
type textReporter struct {
	out io.Writer
}

func (r *textReporter) SchemaIssues(missingValidators, missingFields []string) {
	if len(missingValidators) > 0 {
		fmt.Fprintln(r.out, color.YellowString("  Missing validators for:"))
		r.printMissing(missingValidators)
	}
	if len(missingFields) > 0 {
		fmt.Fprintln(r.out, color.YellowString("  Missing expected fields:"))
		r.printMissing(missingFields)
	}
}

func (r *textReporter) printMissing(fields []string) {
	for _, field := range fields {
		fmt.Fprintf(r.out, "    '%s': [],\n", field)
	}
}

func (r *textReporter) RowFailures(ledger *Ledger) {
	for _, field := range ledger.Fields() {
		fmt.Fprintf(r.out, "\nFailure on field: '%s':\n", field)
		for _, row := range ledger.Rows(field) {
			for _, err := range ledger.Errors(field, row) {
				fmt.Fprintf(r.out, "  %d: %v\n", row, err)
			}
		}
	}
}

func (r *textReporter) ValidatorSummary(validators map[string][]check.Validator, rows int) {
	for _, field := range sortedFields(validators) {
		for _, v := range validators[field] {
			if v.FailCount() == 0 {
				continue
			}
			rate := 0.0
			if rows > 0 {
				rate = float64(v.FailCount()) / float64(rows)
			}
			fmt.Fprintln(r.out, color.RedString("  %s failed %d time(s) (%.1f%%) on field: '%s'",
				v.Name(), v.FailCount(), rate*100, field))
			r.printBadValues(v)
		}
	}
}

// printBadValues renders the distinct invalid values for validators that
// track them. The capability is resolved once with a type assertion; a
// validator without it simply has no list to print.
func (r *textReporter) printBadValues(v check.Validator) {
	bt, ok := v.(check.BadValueser)
	if !ok {
		return
	}
	bad := bt.Bad()
	if len(bad) == 0 {
		return
	}
	shown := bad
	if len(shown) > maxShownBadValues {
		shown = shown[:maxShownBadValues]
	}
	quoted := make([]string, len(shown))
	for i, value := range shown {
		quoted[i] = fmt.Sprintf("'%s'", value)
	}
	fmt.Fprintf(r.out, "    Invalid fields: [%s]\n", strings.Join(quoted, ", "))
	if hidden := len(bad) - len(shown); hidden > 0 {
		fmt.Fprintf(r.out, "    (%d more suppressed)\n", hidden)
	}
}

// jsonReporter writes structured records, one per line.
type jsonReporter struct {
	out io.Writer
	now func() time.Time
}

// schemaIssueRecord is the JSON shape for reconciliation results.
type schemaIssueRecord struct {
	MissingValidators []string `json:"missing_validators,omitempty"`
	MissingFields     []string `json:"missing_fields,omitempty"`
	Timestamp         int64    `json:"timestamp"`
}

// validatorRecord is the JSON shape for one failing validator.
type validatorRecord struct {
	Validator     string   `json:"validator"`
	FieldName     string   `json:"field_name"`
	TotalFailures int      `json:"total_failures"`
	InvalidFields []string `json:"invalid_fields"`
	Timestamp     int64    `json:"timestamp"`
}

func (r *jsonReporter) SchemaIssues(missingValidators, missingFields []string) {
	if len(missingValidators) == 0 && len(missingFields) == 0 {
		return
	}
	r.encode(schemaIssueRecord{
		MissingValidators: missingValidators,
		MissingFields:     missingFields,
		Timestamp:         r.now().Unix(),
	})
}

// RowFailures is a no-op: per-row detail is folded into the validator summary.
func (r *jsonReporter) RowFailures(*Ledger) {}

func (r *jsonReporter) ValidatorSummary(validators map[string][]check.Validator, _ int) {
	for _, field := range sortedFields(validators) {
		for _, v := range validators[field] {
			if v.FailCount() == 0 {
				continue
			}
			rec := validatorRecord{
				Validator:     v.Name(),
				FieldName:     field,
				TotalFailures: v.FailCount(),
				InvalidFields: []string{},
				Timestamp:     r.now().Unix(),
			}
			if bt, ok := v.(check.BadValueser); ok {
				rec.InvalidFields = bt.Bad()
			}
			r.encode(rec)
		}
	}
}

func (r *jsonReporter) encode(rec any) {
	enc := json.NewEncoder(r.out)
	_ = enc.Encode(rec)
}

func sortedFields(validators map[string][]check.Validator) []string {
	fields := make([]string, 0, len(validators))
	for field := range validators {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
