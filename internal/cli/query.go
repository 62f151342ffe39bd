package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/filter"
	"github.com/hupe1980/resnav/internal/logging"
	"github.com/hupe1980/resnav/internal/output"
	"github.com/hupe1980/resnav/internal/selection"
	"github.com/hupe1980/resnav/internal/urlcodec"
)

type queryOptions struct {
	selectionOptions

	expression string
	explain    bool
	format     string
	outputFile string
}

func newQueryCommand() *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query <catalog-file>",
		Short: "Filter the catalog and print the visible resources",
		Long: `Query evaluates a selection against the catalog and prints the
resources that remain visible.

Dimensions combine with AND semantics: a resource must match the
selected theme or barrier, at least one selected persona, and the
search text. Within --personas, tags combine with OR.

The selection can be seeded from a shared URL with --from-url; explicit
flags then apply on top. The canonical query-string form of the
evaluated selection is printed alongside the results, so any filtered
view can be shared and reproduced.

For ad-hoc predicates beyond the built-in dimensions, --expr accepts a
boolean expression evaluated per resource, e.g.:

  resnav query catalog.yaml --expr 'len(barriers) > 1 && "Senior" in personas'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), cmd, args[0], opts)
		},
	}

	registerSelectionFlags(cmd, &opts.selectionOptions)

	f := cmd.Flags()
	f.StringVar(&opts.expression, "expr", "", "boolean filter expression evaluated per resource")
	f.BoolVar(&opts.explain, "explain", false, "include excluded resources with exclusion reasons")
	f.StringVar(&opts.format, "format", "table", "output format: table, json, yaml")
	f.StringVarP(&opts.outputFile, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// queryResult is the structured output of the query command.
type queryResult struct {
	Selection selection.State    `json:"selection" yaml:"selection"`
	Query     string             `json:"query" yaml:"query"`
	Count     int                `json:"count" yaml:"count"`
	Resources []catalog.Resource `json:"resources" yaml:"resources"`
	Excluded  []excludedInfo     `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

type excludedInfo struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Reason string `json:"reason" yaml:"reason"`
}

func runQuery(ctx context.Context, cmd *cobra.Command, catalogPath string, opts *queryOptions) error {
	logger := logging.FromContext(ctx)

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	sel, err := opts.resolve(cat)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	logger.Debug("evaluating selection",
		slog.String("query", urlcodec.Encode(sel)),
		slog.Int("resources", len(cat.Resources())),
	)

	filtered, err := filter.Explain(ctx, cat, sel)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	if opts.expression != "" {
		exprFilter, exprErr := filter.NewExprFilter(opts.expression)
		if exprErr != nil {
			return &ExitError{Code: 2, Err: exprErr}
		}

		exprResult, exprErr := exprFilter.Apply(ctx, filtered.Included)
		if exprErr != nil {
			return &ExitError{Code: 1, Err: exprErr}
		}

		filtered.Included = exprResult.Included
		filtered.Excluded = append(filtered.Excluded, exprResult.Excluded...)
	}

	result := buildQueryResult(sel, filtered, opts.explain)

	switch opts.format {
	case "table":
		return renderQueryTable(cmd.OutOrStdout(), result, opts.explain)
	case "json", "yaml":
		marshaler, mErr := output.DefaultRegistry().Marshaler(opts.format)
		if mErr != nil {
			return &ExitError{Code: 2, Err: mErr}
		}

		data, mErr := marshaler(result)
		if mErr != nil {
			return &ExitError{Code: 1, Err: mErr}
		}

		writer := output.Writer(output.NewStdoutWriter(cmd.OutOrStdout()))
		if opts.outputFile != "" {
			writer = output.NewFileWriter(opts.outputFile)
		}

		if wErr := writer.Write(data); wErr != nil {
			return &ExitError{Code: 1, Err: wErr}
		}

		return nil
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("unknown format %q: expected table, json, yaml", opts.format)}
	}
}

func buildQueryResult(sel selection.State, filtered *filter.Result, explain bool) queryResult {
	result := queryResult{
		Selection: sel,
		Query:     urlcodec.Encode(sel),
		Count:     len(filtered.Included),
		Resources: filtered.Included,
	}

	if explain {
		for _, ex := range filtered.Excluded {
			result.Excluded = append(result.Excluded, excludedInfo{
				ID:     ex.Resource.ID,
				Title:  ex.Resource.Title,
				Reason: ex.Reason,
			})
		}
	}

	return result
}

func renderQueryTable(w io.Writer, result queryResult, explain bool) error {
	if result.Query != "" {
		_, _ = fmt.Fprintf(w, "Selection: ?%s\n", result.Query)
	}

	_, _ = fmt.Fprintf(w, "\n--- Visible Resources (%d) ---\n", result.Count)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tTHEME\tBARRIERS\tPERSONAS")

	for _, r := range result.Resources {
		theme := r.ThemeID
		if theme == "" {
			theme = "-"
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Title, theme,
			joinOrDash(r.BarrierIDs), joinOrDash(r.Personas))
	}

	_ = tw.Flush()

	if explain && len(result.Excluded) > 0 {
		_, _ = fmt.Fprintf(w, "\n--- Excluded (%d) ---\n", len(result.Excluded))

		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tTITLE\tREASON")

		for _, ex := range result.Excluded {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.ID, ex.Title, ex.Reason)
		}

		_ = tw.Flush()
	}

	return nil
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, ",")
}
