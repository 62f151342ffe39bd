package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

type docsOptions struct {
	outputDir string
	format    string
}

func newDocsCommand() *cobra.Command {
	opts := &docsOptions{}

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate CLI reference documentation",
		Long: `Generate reference documentation for every resnav command into the
given directory. Supports markdown and man page output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDocs(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "./docs", "directory to write documentation into")
	cmd.Flags().StringVar(&opts.format, "format", "markdown", "output format: markdown, man")

	return cmd
}

func runDocs(cmd *cobra.Command, opts *docsOptions) error {
	if err := os.MkdirAll(opts.outputDir, 0o750); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("creating output directory: %w", err)}
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	switch opts.format {
	case "markdown":
		if err := doc.GenMarkdownTree(root, opts.outputDir); err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("generating markdown docs: %w", err)}
		}
	case "man":
		header := &doc.GenManHeader{Title: "RESNAV", Section: "1"}
		if err := doc.GenManTree(root, header, opts.outputDir); err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("generating man pages: %w", err)}
		}
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("unknown format %q: expected markdown, man", opts.format)}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Documentation written to %s\n", opts.outputDir)

	return nil
}
