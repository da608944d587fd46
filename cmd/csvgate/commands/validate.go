package commands

import (
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/csvgate/internal/engine"
	"github.com/thoreinstein/csvgate/internal/errors"
	"github.com/thoreinstein/csvgate/internal/logging"
	"github.com/thoreinstein/csvgate/internal/paths"
	"github.com/thoreinstein/csvgate/internal/schema"
	"github.com/thoreinstein/csvgate/internal/source"
)

var (
	validateSchemaPath    string
	validateDelimiter     string
	validateIgnoreMissing bool
	validateFormat        string
	validateInteractive   bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "",
		"schema document (.yaml, .yml or .toml)")
	validateCmd.Flags().StringVarP(&validateDelimiter, "delimiter", "d", "",
		"field delimiter (default: schema setting, then ',')")
	validateCmd.Flags().BoolVar(&validateIgnoreMissing, "ignore-missing", false,
		"treat source columns without validators as warnings, not failures")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "",
		"report format: text, json")
	validateCmd.Flags().BoolVarP(&validateInteractive, "interactive", "i", false,
		"pick a schema interactively from the schema search directories")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Validate a delimited data file against a schema",
	Long: `Validate a delimited data file against a declarative schema.

The run reconciles the schema's declared fields against the file's header,
then streams every row applying each field's rules in order. Failures are
collected, not fatal: the full diagnostic report is printed at the end.

A declared field missing from the file is always fatal. An extra file
column with no rules is fatal unless --ignore-missing is set.

Use "-" as the data file to read from stdin.

Exit codes:
  0 - Data passed validation
  1 - Validation failed or invalid invocation

Examples:
  # Validate against a YAML schema
  csvgate validate users.csv --schema users.yaml

  # Tab-separated input, JSON report for CI
  csvgate validate users.tsv -s users.yaml -d "$(printf '\t')" -f json

  # Pick the schema interactively
  csvgate validate users.csv --interactive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0], os.Stdout)
	},
}

func runValidate(cmd *cobra.Command, dataPath string, w io.Writer) error {
	schemaPath := validateSchemaPath
	if schemaPath == "" && validateInteractive {
		picked, err := pickSchema(schemaDirs())
		if err != nil {
			return err
		}
		if picked == "" {
			// Selection aborted
			return nil
		}
		schemaPath = picked
	}
	if schemaPath == "" {
		return errors.NewUserError(errors.ErrSchemaNotFound,
			"Pass --schema <file> or use --interactive")
	}

	def, err := schema.Load(schemaPath)
	if err != nil {
		return errors.NewUserError(err, "Run: csvgate schema lint "+schemaPath)
	}
	validators, err := def.Build()
	if err != nil {
		return errors.NewUserError(err, "Run: csvgate schema lint "+schemaPath)
	}

	delimiter := def.DelimiterRune()
	if validateDelimiter != "" {
		delimiter, _ = utf8.DecodeRuneInString(validateDelimiter)
	}

	format := engine.Format(validateFormat)
	if format == "" {
		format = engine.Format(viper.GetString("report_format"))
	}

	var src source.Source
	if dataPath == "-" {
		src = &source.Stdin{}
	} else {
		src = source.NewFile(dataPath)
	}

	logger := slog.Default()
	if ctx := cmd.Context(); ctx != nil {
		logger = logging.FromContext(ctx)
	}

	eng, err := engine.New(engine.Config{
		Source:                  src,
		Validators:              validators,
		Delimiter:               delimiter,
		IgnoreMissingValidators: validateIgnoreMissing || def.IgnoreMissingValidators,
		Format:                  format,
		Out:                     w,
		Logger:                  logger,
	})
	if err != nil {
		return errors.NewUserError(err, "Valid report formats: text, json")
	}

	if !eng.Validate() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

// schemaDirs returns the configured schema search directories.
func schemaDirs() []string {
	dirs := viper.GetStringSlice("schema_dirs")
	if len(dirs) == 0 {
		return paths.SchemaDirs()
	}
	return dirs
}
