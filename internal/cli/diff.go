package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/diffutil"
)

type diffOptions struct {
	context int
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <old-catalog> <new-catalog>",
		Short: "Compare two catalog files",
		Long: `Diff compares the derived structure of two catalog files: themes with
their weights and colors, barriers, and normalized resources.

The comparison runs on the canonical (normalized) form, so cosmetic
differences in the source documents — pipe-delimited versus structured
lists, surrounding whitespace — do not show up as changes.

Exit codes:
  0  No differences
  1  Error
  2  Invalid arguments
  4  Differences found`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVar(&opts.context, "context", 3, "number of unified diff context lines")

	return cmd
}

func runDiff(cmd *cobra.Command, oldPath, newPath string, opts *diffOptions) error {
	oldCat, err := catalog.Load(oldPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	newCat, err := catalog.Load(newPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	diffOpts := diffutil.DefaultOptions()
	diffOpts.OldLabel = oldPath
	diffOpts.NewLabel = newPath
	diffOpts.Context = opts.context

	result, err := diffutil.Catalogs(oldCat, newCat, diffOpts)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if !result.HasDifferences {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No differences.")

		return nil
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Unified)

	return &ExitError{Code: 4, Err: fmt.Errorf("catalogs differ")}
}
