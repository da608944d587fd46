// Package schema loads and builds declarative validation schema documents.
//
// A schema document maps field names to ordered rule specs and is written in
// YAML or TOML, selected by file extension:
//
//	version: 1
//	delimiter: ","
//	fields:
//	  email:
//	    - rule: regex
//	      pattern: '.+@.+'
//	  age:
//	    - rule: range
//	      min: 0
//	      max: 150
//	  notes: []
//
// A field with an empty rule list is still declared; the engine backfills it
// with an accept-all validator so it carries statistics.
package schema

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/csvgate/internal/check"
	"github.com/thoreinstein/csvgate/internal/errors"
	"github.com/thoreinstein/csvgate/pkg/fileutil"
)

// Rule names accepted in schema documents.
const (
	RuleAcceptAll = "accept_all"
	RuleNotEmpty  = "not_empty"
	RuleEmpty     = "empty"
	RuleRegex     = "regex"
	RuleInt       = "int"
	RuleFloat     = "float"
	RuleSet       = "set"
	RuleRange     = "range"
	RuleUnique    = "unique"
)

// Definition is a declarative validation schema document.
type Definition struct {
	Version                 int                   `yaml:"version" toml:"version"`
	Delimiter               string                `yaml:"delimiter" toml:"delimiter"`
	IgnoreMissingValidators bool                  `yaml:"ignore_missing_validators" toml:"ignore_missing_validators"`
	Fields                  map[string][]RuleSpec `yaml:"fields" toml:"fields"`
}

// RuleSpec selects one rule and its parameters for a field.
type RuleSpec struct {
	Rule    string   `yaml:"rule" toml:"rule"`
	Pattern string   `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Min     *float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Options []string `yaml:"options,omitempty" toml:"options,omitempty"`
	With    []string `yaml:"with,omitempty" toml:"with,omitempty"`
}

// Load reads and parses the schema document at path. The document format is
// chosen by extension: .yaml/.yml or .toml.
func Load(path string) (*Definition, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading schema %s", path)
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	default:
		return nil, errors.Newf("unsupported schema extension %q", filepath.Ext(path))
	}

	if def.Version == 0 {
		def.Version = 1
	}
	return &def, nil
}

// Build instantiates the validator mapping the engine consumes. Fields with
// empty rule lists stay empty here; backfilling is the engine's job.
func (d *Definition) Build() (map[string][]check.Validator, error) {
	validators := make(map[string][]check.Validator, len(d.Fields))
	for field, specs := range d.Fields {
		rules := make([]check.Validator, 0, len(specs))
		for _, spec := range specs {
			v, err := spec.build()
			if err != nil {
				return nil, errors.Wrapf(err, "field %q", field)
			}
			rules = append(rules, v)
		}
		validators[field] = rules
	}
	return validators, nil
}

// build maps a rule name to its validator. The mapping is a closed switch,
// never a lookup by runtime type name.
func (s RuleSpec) build() (check.Validator, error) {
	switch s.Rule {
	case RuleAcceptAll:
		return &check.AcceptAll{}, nil
	case RuleNotEmpty:
		return &check.NotEmpty{}, nil
	case RuleEmpty:
		return &check.Empty{}, nil
	case RuleRegex:
		if s.Pattern == "" {
			return nil, errors.New("regex rule requires a pattern")
		}
		return check.NewRegex(s.Pattern)
	case RuleInt:
		return &check.Int{}, nil
	case RuleFloat:
		return &check.Float{}, nil
	case RuleSet:
		if len(s.Options) == 0 {
			return nil, errors.New("set rule requires options")
		}
		return check.NewSet(s.Options...), nil
	case RuleRange:
		if s.Min == nil || s.Max == nil {
			return nil, errors.New("range rule requires min and max")
		}
		if *s.Min > *s.Max {
			return nil, errors.Newf("range rule min %v exceeds max %v", *s.Min, *s.Max)
		}
		return check.NewRange(*s.Min, *s.Max), nil
	case RuleUnique:
		return check.NewUnique(s.With...), nil
	case "":
		return nil, errors.Wrap(errors.ErrUnknownRule, "rule name is empty")
	default:
		return nil, errors.Wrapf(errors.ErrUnknownRule, "%q", s.Rule)
	}
}

// DelimiterRune returns the configured delimiter, defaulting to ','.
func (d *Definition) DelimiterRune() rune {
	if d.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}

// Validate statically checks a definition without running it. It returns all
// problems found rather than stopping at the first.
func (d *Definition) Validate() []error {
	var errs []error

	if d.Version < 1 {
		errs = append(errs, errors.New("version must be >= 1"))
	}
	if utf8.RuneCountInString(d.Delimiter) > 1 {
		errs = append(errs, errors.Newf("delimiter %q must be a single character", d.Delimiter))
	}

	fields := make([]string, 0, len(d.Fields))
	for field := range d.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for i, spec := range d.Fields[field] {
			if _, err := spec.build(); err != nil {
				errs = append(errs, errors.Wrapf(err, "field %q rule %d", field, i))
			}
		}
	}
	return errs
}

// Discover returns the schema documents (.yaml, .yml, .toml) found directly
// in dirs, sorted and deduplicated. Missing directories are skipped.
func Discover(dirs []string) []string {
	seen := make(map[string]struct{})
	var found []string
	for _, dir := range dirs {
		entries, err := readDir(dir)
		if err != nil {
			continue
		}
		for _, name := range entries {
			switch strings.ToLower(filepath.Ext(name)) {
			case ".yaml", ".yml", ".toml":
			default:
				continue
			}
			path := filepath.Join(dir, name)
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			found = append(found, path)
		}
	}
	sort.Strings(found)
	return found
}
