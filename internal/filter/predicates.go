package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/resnav/internal/catalog"
)

// ThemeFilter keeps resources belonging to one theme.
type ThemeFilter struct {
	themeID string
}

// NewThemeFilter creates a filter that keeps resources whose theme
// matches the given ID exactly.
func NewThemeFilter(themeID string) *ThemeFilter {
	return &ThemeFilter{themeID: themeID}
}

// Apply keeps resources with a matching theme reference.
func (f *ThemeFilter) Apply(_ context.Context, resources []catalog.Resource) (*Result, error) {
	r := NewResult()

	for _, res := range resources {
		if res.ThemeID == f.themeID {
			r.Included = append(r.Included, res)
		} else {
			r.Excluded = append(r.Excluded, ExcludedResource{
				Resource: res,
				Reason:   fmt.Sprintf("not in theme %s", f.themeID),
			})
		}
	}

	return r, nil
}

// BarrierFilter keeps resources tagged with one barrier.
type BarrierFilter struct {
	barrierID string
}

// NewBarrierFilter creates a filter that keeps resources whose barrier
// list contains the given ID.
func NewBarrierFilter(barrierID string) *BarrierFilter {
	return &BarrierFilter{barrierID: barrierID}
}

// Apply keeps resources whose barrier list contains the filter's ID.
func (f *BarrierFilter) Apply(_ context.Context, resources []catalog.Resource) (*Result, error) {
	r := NewResult()

	for _, res := range resources {
		if containsString(res.BarrierIDs, f.barrierID) {
			r.Included = append(r.Included, res)
		} else {
			r.Excluded = append(r.Excluded, ExcludedResource{
				Resource: res,
				Reason:   fmt.Sprintf("not tagged with barrier %s", f.barrierID),
			})
		}
	}

	return r, nil
}

// PersonaFilter keeps resources carrying at least one of the selected
// persona tags (OR semantics within the dimension).
type PersonaFilter struct {
	personas map[string]bool
}

// NewPersonaFilter creates a filter that keeps resources whose persona
// list intersects the given tags.
func NewPersonaFilter(personas []string) *PersonaFilter {
	m := make(map[string]bool, len(personas))
	for _, p := range personas {
		m[p] = true
	}

	return &PersonaFilter{personas: m}
}

// Apply keeps resources with a non-empty persona intersection.
func (f *PersonaFilter) Apply(_ context.Context, resources []catalog.Resource) (*Result, error) {
	r := NewResult()

	for _, res := range resources {
		if f.matches(res.Personas) {
			r.Included = append(r.Included, res)
		} else {
			r.Excluded = append(r.Excluded, ExcludedResource{
				Resource: res,
				Reason:   "no matching persona",
			})
		}
	}

	return r, nil
}

func (f *PersonaFilter) matches(personas []string) bool {
	for _, p := range personas {
		if f.personas[p] {
			return true
		}
	}

	return false
}

// SearchFilter keeps resources whose title or description contains the
// search text, case-insensitively. The text is trimmed at construction;
// a filter built from whitespace-only input matches everything.
type SearchFilter struct {
	needle string
}

// NewSearchFilter creates a case-insensitive substring filter over
// title and description.
func NewSearchFilter(text string) *SearchFilter {
	return &SearchFilter{needle: strings.ToLower(strings.TrimSpace(text))}
}

// Apply keeps resources matching the search text.
func (f *SearchFilter) Apply(_ context.Context, resources []catalog.Resource) (*Result, error) {
	r := NewResult()

	for _, res := range resources {
		if f.matches(res) {
			r.Included = append(r.Included, res)
		} else {
			r.Excluded = append(r.Excluded, ExcludedResource{
				Resource: res,
				Reason:   fmt.Sprintf("no match for %q", f.needle),
			})
		}
	}

	return r, nil
}

func (f *SearchFilter) matches(res catalog.Resource) bool {
	if f.needle == "" {
		return true
	}

	haystack := strings.ToLower(res.Title + " " + res.Description)

	return strings.Contains(haystack, f.needle)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
