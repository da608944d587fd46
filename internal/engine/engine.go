package engine

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/csvgate/internal/check"
	"github.com/thoreinstein/csvgate/internal/errors"
	"github.com/thoreinstein/csvgate/internal/source"
)

// Config configures one validation engine.
type Config struct {
	// Source yields the delimited byte stream to validate. Required.
	Source source.Source

	// Validators maps field names to the ordered rules applied to each cell.
	Validators map[string][]check.Validator

	// DefaultValidator constructs the backfill validator for fields declared
	// with no rules. Defaults to a fresh check.AcceptAll per field.
	DefaultValidator func() check.Validator

	// Delimiter separates fields. Defaults to ','.
	Delimiter rune

	// IgnoreMissingValidators downgrades unvalidated source columns from a
	// fatal condition to a warning. A declared field missing from the source
	// stays fatal regardless.
	IgnoreMissingValidators bool

	// Format selects the report output format. Defaults to FormatText;
	// unrecognized values fail construction.
	Format Format

	// Out receives the report. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives run progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Engine validates one tabular source against a declared schema. A run is
// single-shot: construct a fresh engine (and fresh validators) per run.
type Engine struct {
	source                  source.Source
	validators              map[string][]check.Validator
	delimiter               rune
	ignoreMissingValidators bool
	reporter                Reporter
	logger                  *slog.Logger

	ledger    *Ledger
	recon     Reconciliation
	lineCount int
}

// New builds an engine from cfg. The validator mapping is copied so the
// engine owns its schema for the run and backfilling never mutates caller
// state.
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, errors.ErrNoSource
	}

	reporter, err := NewReporter(defaultWriter(cfg.Out), cfg.Format)
	if err != nil {
		return nil, err
	}

	newDefault := cfg.DefaultValidator
	if newDefault == nil {
		newDefault = func() check.Validator { return &check.AcceptAll{} }
	}

	validators := make(map[string][]check.Validator, len(cfg.Validators))
	for field, rules := range cfg.Validators {
		if len(rules) == 0 {
			validators[field] = []check.Validator{newDefault()}
			continue
		}
		validators[field] = append([]check.Validator(nil), rules...)
	}

	delimiter := cfg.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		source:                  cfg.Source,
		validators:              validators,
		delimiter:               delimiter,
		ignoreMissingValidators: cfg.IgnoreMissingValidators,
		reporter:                reporter,
		logger:                  logger,
		ledger:                  NewLedger(),
	}, nil
}

func defaultWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Validate runs one full pass over the source and returns the verdict. All
// diagnostic detail is delivered through the reporter and logger; the return
// value is the single pass/fail gate result.
func (e *Engine) Validate() bool {
	e.logger.Info("validating", "source", e.source.String())

	rc, err := e.source.Open()
	if err != nil {
		e.logger.Error("opening source", "error", err)
		return false
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.Comma = e.delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil || len(header) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			err = errors.ErrNoHeader
		}
		e.logger.Info(color.YellowString("source has no field names"), "error", err)
		return false
	}

	e.recon = Reconcile(header, sortedFields(e.validators))

	if len(e.recon.MissingValidators) > 0 {
		e.logger.Info(color.YellowString("missing validators"))
		e.reporter.SchemaIssues(e.recon.MissingValidators, nil)
		if !e.ignoreMissingValidators {
			return false
		}
	}

	if len(e.recon.MissingFields) > 0 {
		e.logger.Info(color.YellowString("missing fields"))
		e.reporter.SchemaIssues(nil, e.recon.MissingFields)
		return false
	}

	if !e.scan(reader, header) {
		return false
	}

	if !e.ledger.Empty() {
		e.logger.Info(color.RedString("failed"))
		e.reporter.RowFailures(e.ledger)
		e.reporter.ValidatorSummary(e.validators, e.lineCount)
		return false
	}

	e.logger.Info(color.GreenString("passed"))
	return true
}

// scan streams data rows in source order. Every row read increments the row
// counter, whether or not it produces failures. A rejection is recorded and
// the scan continues; only a malformed stream aborts it.
func (e *Engine) scan(reader *csv.Reader, header []string) bool {
	row := make(map[string]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return true
		}
		if err != nil {
			e.logger.Error("reading row", "row", e.lineCount, "error", err)
			return false
		}

		line := e.lineCount
		e.lineCount++

		clear(row)
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}

		for _, name := range header {
			cell, ok := row[name]
			if !ok {
				continue
			}
			for _, v := range e.validators[name] {
				err := v.Validate(cell, row)
				if err == nil {
					continue
				}
				if check.IsFieldError(err) {
					e.ledger.Record(name, line, err)
					v.RecordFailure()
					continue
				}
				// A defect in the validator itself, not a data failure. It
				// stays out of the ledger and the scan keeps going.
				e.logger.Warn("validator error",
					"validator", v.Name(), "field", name, "row", line, "error", err)
			}
		}
	}
}

// LineCount returns the number of data rows processed so far.
func (e *Engine) LineCount() int {
	return e.lineCount
}

// Ledger returns the run's failure ledger.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Reconciliation returns the schema comparison computed during the run.
func (e *Engine) Reconciliation() Reconciliation {
	return e.recon
}
