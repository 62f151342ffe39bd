package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/hupe1980/resnav/internal/catalog"
)

type validateOptions struct {
	strict bool
}

func newValidateCommand() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <catalog-file>",
		Short: "Validate a catalog file",
		Long: `Validate a catalog file and report data-quality findings: duplicate
IDs, references to undefined themes or barriers, unused themes, and
resources without titles.

None of these findings prevent the catalog from loading — normalization
is total — but they usually indicate mistakes in the source data.
Returns exit code 3 on errors (or on warnings with --strict).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on warnings in addition to errors")

	return cmd
}

func runValidate(cmd *cobra.Command, catalogPath string, opts *validateOptions) error {
	data, err := os.ReadFile(catalogPath) //nolint:gosec // user-specified catalog file
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("reading catalog file %q: %w", catalogPath, err)}
	}

	var doc catalog.Document
	if err := sigsyaml.Unmarshal(data, &doc); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "YAML syntax error: %v\n", err)

		return &ExitError{Code: 3, Err: fmt.Errorf("parsing catalog document: %w", err)}
	}

	if err := catalog.CheckSchemaVersion(doc.SchemaVersion); err != nil {
		return &ExitError{Code: 3, Err: err}
	}

	diags := catalog.Validate(doc, catalog.New(doc))

	var errCount, warnCount int

	for _, d := range diags {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s [%s] %s\n", d.Severity, d.Code, d.Message)

		if d.Severity == catalog.SeverityError {
			errCount++
		} else {
			warnCount++
		}
	}

	if errCount > 0 {
		return &ExitError{Code: 3, Err: fmt.Errorf("validation failed with %d error(s)", errCount)}
	}

	if opts.strict && warnCount > 0 {
		return &ExitError{Code: 3, Err: fmt.Errorf("validation failed with %d warning(s) (strict mode)", warnCount)}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed.")

	return nil
}
