package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidReportFormat indicates an unrecognized report format name.
	ErrInvalidReportFormat = errors.New("invalid report format")

	// ErrEmptySchemaDir indicates a schema_dirs entry is blank.
	ErrEmptySchemaDir = errors.New("schema directory must not be empty")
)

// FormatError reports an unrecognized report_format value.
type FormatError struct {
	Format string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: text, json)", e.Format)
}

// Unwrap returns the sentinel so errors.Is works.
func (e *FormatError) Unwrap() error {
	return ErrInvalidReportFormat
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.ReportFormat {
	case "", "text", "json":
	default:
		errs = append(errs, &FormatError{Format: cfg.ReportFormat})
	}

	for _, dir := range cfg.SchemaDirs {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, ErrEmptySchemaDir)
		}
	}

	return errs
}
