package filter

import (
	"context"
	"strings"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/selection"
)

// FromState builds the filter chain for a selection state. Only active
// dimensions contribute a filter: an empty chain means every resource is
// visible. The theme and barrier dimensions are mutually exclusive by the
// selection invariant, so at most one of the two appears.
func FromState(sel selection.State) *Chain {
	var filters []Filter

	if sel.Theme != "" {
		filters = append(filters, NewThemeFilter(sel.Theme))
	}

	if sel.Barrier != "" {
		filters = append(filters, NewBarrierFilter(sel.Barrier))
	}

	if len(sel.Personas) > 0 {
		filters = append(filters, NewPersonaFilter(sel.Personas))
	}

	if strings.TrimSpace(sel.Search) != "" {
		filters = append(filters, NewSearchFilter(sel.Search))
	}

	return NewChain(filters...)
}

// Visible computes the visible resource subset for a selection state:
// pure, deterministic, and stable (catalog document order). This is the
// hot path re-run on every state change; it cannot fail.
func Visible(c *catalog.Catalog, sel selection.State) []catalog.Resource {
	// The built-in predicates never error and the background context is
	// never cancelled, so the chain result is always usable.
	result, err := FromState(sel).Apply(context.Background(), c.Resources())
	if err != nil {
		return []catalog.Resource{}
	}

	if result.Included == nil {
		return []catalog.Resource{}
	}

	return result.Included
}

// Explain computes the same subset as Visible but keeps the per-resource
// exclusion reasons, for the query command's --explain output.
func Explain(ctx context.Context, c *catalog.Catalog, sel selection.State) (*Result, error) {
	return FromState(sel).Apply(ctx, c.Resources())
}
