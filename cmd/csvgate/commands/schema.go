package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/csvgate/internal/errors"
	"github.com/thoreinstein/csvgate/internal/schema"
)

func init() {
	schemaCmd.AddCommand(schemaLintCmd)
	schemaCmd.AddCommand(schemaListCmd)
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and lint schema documents",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var schemaLintCmd = &cobra.Command{
	Use:   "lint <schema-file>",
	Short: "Statically check a schema document",
	Long: `Statically check a schema document without running a validation.

Catches unknown rule names, unparseable regex patterns, inverted range
bounds, and malformed delimiters before the schema is used as a gate.

Exit codes:
  0 - Schema is valid
  1 - Schema is invalid or unreadable`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSchemaLint(args[0], os.Stdout)
	},
}

func runSchemaLint(path string, w io.Writer) error {
	def, err := schema.Load(path)
	if err != nil {
		return errors.NewUserError(err, "Schema documents are YAML or TOML")
	}

	errs := def.Validate()
	if len(errs) == 0 {
		fmt.Fprintf(w, "%s Schema '%s' is valid\n", color.GreenString("✓"), path)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Fields: %d\n", len(def.Fields))
		return nil
	}

	fmt.Fprintf(w, "%s Schema '%s' is invalid\n", color.RedString("✗"), path)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Errors:")
	for _, e := range errs {
		fmt.Fprintf(w, "    - %s\n", e)
	}
	return errors.NewExitError(errors.ErrInvalidConfig, errors.ExitUser)
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schema documents in the search directories",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSchemaList(os.Stdout)
	},
}

func runSchemaList(w io.Writer) error {
	found := schema.Discover(schemaDirs())
	if len(found) == 0 {
		fmt.Fprintln(w, "No schema documents found.")
		return nil
	}
	for _, path := range found {
		fmt.Fprintln(w, path)
	}
	return nil
}
