// Package filter computes the visible subset of a catalog for a given
// selection state.
//
// Filters are stateless predicates combined in a chain: a resource is
// visible iff every active filter passes (AND across dimensions, OR only
// within multi-valued dimensions such as personas). Filtering is stable —
// the result keeps the catalog's document order — and an empty result is
// a normal value, not an error.
package filter
