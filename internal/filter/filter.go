package filter

import (
	"context"

	"github.com/hupe1980/resnav/internal/catalog"
)

// Filter is the interface for all resource filters.
// Filters are stateless — they receive a set of resources and return
// a result without modifying shared state.
type Filter interface {
	// Apply runs the filter on the given resources and returns a result.
	Apply(ctx context.Context, resources []catalog.Resource) (*Result, error)
}

// ExcludedResource records a resource that was excluded by a filter,
// with a human-readable reason for the query --explain output.
type ExcludedResource struct {
	// Resource is the excluded resource.
	Resource catalog.Resource
	// Reason is a human-readable explanation for the exclusion.
	Reason string
}

// Result holds the outcome of a filter application.
type Result struct {
	// Included are the resources that passed, in input order.
	Included []catalog.Resource
	// Excluded are the resources removed by the filter.
	Excluded []ExcludedResource
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{}
}

// Chain applies multiple filters sequentially, passing the included
// resources from each filter as input to the next. Because every filter
// narrows the set, a chain of active predicates gives AND semantics
// across the selection dimensions.
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from the given filters.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Apply runs all filters in order, accumulating excluded resources.
// Returns the combined result.
func (c *Chain) Apply(ctx context.Context, resources []catalog.Resource) (*Result, error) {
	combined := NewResult()
	current := resources

	for _, f := range c.filters {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		r, err := f.Apply(ctx, current)
		if err != nil {
			return nil, err
		}

		current = r.Included

		combined.Excluded = append(combined.Excluded, r.Excluded...)
	}

	combined.Included = current

	return combined, nil
}
