// Package diffutil computes unified diffs between two catalog snapshots,
// so maintainers can review what a data refresh changes before shipping it.
package diffutil

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/output"
)

// Result holds the result of a unified diff computation.
type Result struct {
	Unified        string
	HasDifferences bool
	OldLabel       string
	NewLabel       string
}

// Options configures diff computation.
type Options struct {
	OldLabel string
	NewLabel string
	Context  int
}

// DefaultOptions returns sensible default diff options.
func DefaultOptions() Options {
	return Options{
		OldLabel: "old",
		NewLabel: "new",
		Context:  3,
	}
}

// snapshot is the canonical diffable view of a catalog: derived themes,
// barriers, and normalized resources. Diffing the derived view instead of
// the raw document means cosmetic reorderings of equivalent input do not
// show up as changes.
type snapshot struct {
	Themes    []catalog.Theme    `yaml:"themes"`
	Barriers  []catalog.Barrier  `yaml:"barriers"`
	Resources []catalog.Resource `yaml:"resources"`
}

// Catalogs computes a unified diff between the canonical forms of two
// catalogs.
func Catalogs(oldCat, newCat *catalog.Catalog, opts Options) (*Result, error) {
	oldDoc, err := canonical(oldCat)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing %s catalog: %w", opts.OldLabel, err)
	}

	newDoc, err := canonical(newCat)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing %s catalog: %w", opts.NewLabel, err)
	}

	return Strings(oldDoc, newDoc, opts)
}

// Strings computes a unified diff between two documents.
func Strings(oldDoc, newDoc string, opts Options) (*Result, error) {
	diff := difflib.UnifiedDiff{
		A:        splitLines(oldDoc),
		B:        splitLines(newDoc),
		FromFile: opts.OldLabel,
		ToFile:   opts.NewLabel,
		Context:  opts.Context,
	}

	unified, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("computing diff: %w", err)
	}

	return &Result{
		Unified:        unified,
		HasDifferences: unified != "",
		OldLabel:       opts.OldLabel,
		NewLabel:       opts.NewLabel,
	}, nil
}

// canonical serializes a catalog's derived view as deterministic YAML.
func canonical(c *catalog.Catalog) (string, error) {
	data, err := output.MarshalYAML(snapshot{
		Themes:    c.Themes(),
		Barriers:  c.Barriers(),
		Resources: c.Resources(),
	})
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// splitLines splits a document into lines, each keeping its newline, as
// difflib expects.
func splitLines(doc string) []string {
	lines := strings.SplitAfter(doc, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
