// Package resnav provides a public Go API for loading a community
// resource catalog and evaluating filter selections against it.
//
// This package exposes the resnav filter engine as a library, allowing
// programmatic use without the CLI or HTTP server.
//
// Basic usage:
//
//	result, err := resnav.Query(ctx, "path/to/catalog.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Count)
//
// With options:
//
//	result, err := resnav.Query(ctx, "path/to/catalog.yaml",
//	    resnav.WithTheme("health"),
//	    resnav.WithPersonas("newcomer", "senior"),
//	    resnav.WithSearch("clinic"),
//	)
//
// A selection can also be seeded from a shared URL:
//
//	result, err := resnav.Query(ctx, "catalog.yaml",
//	    resnav.WithQueryString("barrier=cost&personas=senior"),
//	)
package resnav

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/filter"
	"github.com/hupe1980/resnav/internal/selection"
	"github.com/hupe1980/resnav/internal/urlcodec"
)

// Option configures a catalog query.
// Use the With* functions to create Options.
type Option func(*options)

type options struct {
	theme       string
	barrier     string
	search      string
	personas    []string
	queryString string
	expression  string
}

// WithTheme selects a theme. Mutually exclusive with WithBarrier; the
// last of the two applied wins, matching the selection state machine.
func WithTheme(id string) Option { return func(o *options) { o.theme = id } }

// WithBarrier selects a barrier.
func WithBarrier(id string) Option { return func(o *options) { o.barrier = id } }

// WithSearch sets the free-text search input.
func WithSearch(text string) Option { return func(o *options) { o.search = text } }

// WithPersonas toggles the given persona tags on (OR semantics between them).
func WithPersonas(tags ...string) Option { return func(o *options) { o.personas = tags } }

// WithQueryString seeds the selection from a query string (the format
// produced by Result.Query and shared URLs). Unknown identifiers are
// dropped silently; explicit With* options apply on top.
func WithQueryString(query string) Option { return func(o *options) { o.queryString = query } }

// WithExpr adds a boolean filter expression evaluated per resource after
// the selection dimensions, e.g. `len(barriers) > 1`.
func WithExpr(expression string) Option { return func(o *options) { o.expression = expression } }

// Catalog is the immutable, queryable form of a loaded document.
type Catalog = catalog.Catalog

// State is the evaluated selection state.
type State = selection.State

// Resource is one catalog entry after normalization.
type Resource = catalog.Resource

// Theme is a top-level category with its derived weight and color.
type Theme = catalog.Theme

// Barrier is a secondary category with its derived weight and color.
type Barrier = catalog.Barrier

// Persona is a derived audience tag with its resource count.
type Persona = catalog.Persona

// Result holds the outcome of a catalog query.
type Result struct {
	// Resources are the visible resources, in catalog document order.
	Resources []Resource

	// Count is the number of visible resources.
	Count int

	// Themes are all catalog themes with derived weights.
	Themes []Theme

	// Barriers are all catalog barriers with derived weights and colors.
	Barriers []Barrier

	// Personas are all derived persona tags, sorted alphabetically.
	Personas []Persona

	// Selection is the evaluated selection state.
	Selection State

	// Query is the canonical query-string form of the selection, for
	// building shareable URLs.
	Query string
}

// Query loads a catalog file and evaluates a selection against it.
//
// Pass no options to see every resource:
//
//	result, err := resnav.Query(ctx, "catalog.yaml")
func Query(ctx context.Context, catalogPath string, opts ...Option) (*Result, error) {
	if catalogPath == "" {
		return nil, errors.New("catalog path must not be empty")
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	return QueryCatalog(ctx, cat, opts...)
}

// QueryCatalog evaluates a selection against an already-loaded catalog.
// Use this to amortize the load across many queries.
func QueryCatalog(ctx context.Context, cat *Catalog, opts ...Option) (*Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	sel, err := buildSelection(cat, o)
	if err != nil {
		return nil, err
	}

	filtered, err := filter.Explain(ctx, cat, sel)
	if err != nil {
		return nil, err
	}

	visible := filtered.Included

	if o.expression != "" {
		exprFilter, exprErr := filter.NewExprFilter(o.expression)
		if exprErr != nil {
			return nil, exprErr
		}

		exprResult, exprErr := exprFilter.Apply(ctx, visible)
		if exprErr != nil {
			return nil, exprErr
		}

		visible = exprResult.Included
	}

	return &Result{
		Resources: visible,
		Count:     len(visible),
		Themes:    cat.Themes(),
		Barriers:  cat.Barriers(),
		Personas:  cat.Personas(),
		Selection: sel,
		Query:     urlcodec.Encode(sel),
	}, nil
}

// LoadCatalog loads and normalizes a catalog file without evaluating a
// selection. The returned catalog is immutable and safe for concurrent use.
func LoadCatalog(path string) (*Catalog, error) {
	return catalog.Load(path)
}

// ParseCatalog parses catalog document bytes (YAML or JSON).
func ParseCatalog(data []byte) (*Catalog, error) {
	return catalog.Parse(data)
}

// buildSelection assembles the selection state: query-string seed first,
// then explicit options through the state machine transitions. Explicitly
// named identifiers the catalog does not define are errors.
func buildSelection(cat *catalog.Catalog, o *options) (selection.State, error) {
	var sel selection.State

	if o.queryString != "" {
		sel = urlcodec.Decode(o.queryString, cat)
	}

	if o.theme != "" {
		if !cat.HasTheme(o.theme) {
			return sel, fmt.Errorf("unknown theme %q", o.theme)
		}

		if sel.Theme != o.theme {
			sel.SelectTheme(o.theme)
		}
	}

	if o.barrier != "" {
		if !cat.HasBarrier(o.barrier) {
			return sel, fmt.Errorf("unknown barrier %q", o.barrier)
		}

		if sel.Barrier != o.barrier {
			sel.SelectBarrier(o.barrier)
		}
	}

	if o.search != "" {
		sel.SetSearch(o.search)
	}

	for _, tag := range o.personas {
		if !cat.HasPersona(tag) {
			return sel, fmt.Errorf("unknown persona %q", tag)
		}

		if !sel.HasPersona(tag) {
			sel.TogglePersona(tag)
		}
	}

	return sel, nil
}
