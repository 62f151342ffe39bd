package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/output"
)

type inspectOptions struct {
	showThemes   bool
	showBarriers bool
	showPersonas bool
	format       string
}

func newInspectCommand() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <catalog-file>",
		Short: "Inspect a catalog's derived structure",
		Long: `Inspect a catalog file and display its derived structure: themes
with resource weights and colors, barriers with their parent themes
and derived colors, and persona tags with resource counts.

This is the preview of what the chart renders, without starting a
server or evaluating a selection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.showThemes, "show-themes", false, "show only the theme table")
	f.BoolVar(&opts.showBarriers, "show-barriers", false, "show only the barrier table")
	f.BoolVar(&opts.showPersonas, "show-personas", false, "show only the persona table")
	f.StringVar(&opts.format, "format", "table", "output format: table, json, yaml")

	return cmd
}

// inspectResult is the structured output of the inspect command.
type inspectResult struct {
	ResourceCount int               `json:"resourceCount" yaml:"resourceCount"`
	Themes        []catalog.Theme   `json:"themes" yaml:"themes"`
	Barriers      []catalog.Barrier `json:"barriers" yaml:"barriers"`
	Personas      []catalog.Persona `json:"personas" yaml:"personas"`
}

func runInspect(cmd *cobra.Command, catalogPath string, opts *inspectOptions) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	result := inspectResult{
		ResourceCount: len(cat.Resources()),
		Themes:        cat.Themes(),
		Barriers:      cat.Barriers(),
		Personas:      cat.Personas(),
	}

	switch opts.format {
	case "table":
		return renderInspectTable(cmd.OutOrStdout(), result, opts)
	case "json", "yaml":
		marshaler, mErr := output.DefaultRegistry().Marshaler(opts.format)
		if mErr != nil {
			return &ExitError{Code: 2, Err: mErr}
		}

		data, mErr := marshaler(result)
		if mErr != nil {
			return &ExitError{Code: 1, Err: mErr}
		}

		if wErr := output.NewStdoutWriter(cmd.OutOrStdout()).Write(data); wErr != nil {
			return &ExitError{Code: 1, Err: wErr}
		}

		return nil
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("unknown format %q: expected table, json, yaml", opts.format)}
	}
}

func renderInspectTable(w io.Writer, result inspectResult, opts *inspectOptions) error {
	showAll := !opts.showThemes && !opts.showBarriers && !opts.showPersonas

	_, _ = fmt.Fprintf(w, "Resources: %d\n", result.ResourceCount)

	if showAll || opts.showThemes {
		printThemeTable(w, result.Themes)
	}

	if showAll || opts.showBarriers {
		printBarrierTable(w, result.Barriers)
	}

	if showAll || opts.showPersonas {
		printPersonaTable(w, result.Personas)
	}

	return nil
}

func printThemeTable(w io.Writer, themes []catalog.Theme) {
	_, _ = fmt.Fprintf(w, "\n--- Themes (%d) ---\n", len(themes))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tLABEL\tCOLOR\tWEIGHT")

	for _, t := range themes {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", t.ID, t.Label, t.Color, t.Weight)
	}

	_ = tw.Flush()
}

func printBarrierTable(w io.Writer, barriers []catalog.Barrier) {
	_, _ = fmt.Fprintf(w, "\n--- Barriers (%d) ---\n", len(barriers))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tLABEL\tTHEME\tCOLOR\tWEIGHT")

	for _, b := range barriers {
		theme := b.ThemeID
		if theme == "" {
			theme = "-"
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", b.ID, b.Label, theme, b.Color, b.Weight)
	}

	_ = tw.Flush()
}

func printPersonaTable(w io.Writer, personas []catalog.Persona) {
	_, _ = fmt.Fprintf(w, "\n--- Personas (%d) ---\n", len(personas))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TAG\tRESOURCES")

	for _, p := range personas {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", p.Tag, p.Count)
	}

	_ = tw.Flush()
}
