package catalog

import (
	"sort"
	"strings"
)

// Catalog is the immutable, queryable form of a source document.
// It is built once at startup and shared freely afterwards: nothing in
// this package mutates a Catalog after New returns.
type Catalog struct {
	resources []Resource
	themes    []Theme
	barriers  []Barrier
	personas  []Persona

	themeIndex   map[string]int
	barrierIndex map[string]int
	personaIndex map[string]int
}

// New builds a Catalog from a raw document. It is total: every record is
// normalized, weights are counted, and theme/barrier colors are resolved
// (invalid hex degrades to NeutralGray, barrier colors derive from the
// parent theme via Lighten unless set explicitly).
func New(doc Document) *Catalog {
	c := &Catalog{
		resources:    make([]Resource, 0, len(doc.Resources)),
		themes:       make([]Theme, 0, len(doc.Themes)),
		barriers:     make([]Barrier, 0, len(doc.Barriers)),
		themeIndex:   make(map[string]int, len(doc.Themes)),
		barrierIndex: make(map[string]int, len(doc.Barriers)),
		personaIndex: make(map[string]int),
	}

	for _, raw := range doc.Themes {
		id := strings.TrimSpace(raw.ID)

		t := Theme{
			ID:    id,
			Label: raw.Label,
			Color: Lighten(raw.Color, 0), // normalizes, falls back to gray
		}

		// First definition wins on duplicate IDs; validation reports them.
		if _, exists := c.themeIndex[id]; !exists {
			c.themeIndex[id] = len(c.themes)
			c.themes = append(c.themes, t)
		}
	}

	for _, raw := range doc.Barriers {
		id := strings.TrimSpace(raw.ID)

		b := Barrier{
			ID:      id,
			Label:   raw.Label,
			ThemeID: strings.TrimSpace(raw.Theme),
			Color:   c.barrierColor(raw),
		}

		if _, exists := c.barrierIndex[id]; !exists {
			c.barrierIndex[id] = len(c.barriers)
			c.barriers = append(c.barriers, b)
		}
	}

	// Normalize records in document order; the order is part of the
	// contract (filtering is stable, never sorted).
	for _, raw := range doc.Resources {
		res := Normalize(raw)
		c.resources = append(c.resources, res)

		if i, ok := c.themeIndex[res.ThemeID]; ok {
			c.themes[i].Weight++
		}

		for _, bid := range res.BarrierIDs {
			if i, ok := c.barrierIndex[bid]; ok {
				c.barriers[i].Weight++
			}
		}

		for _, p := range res.Personas {
			if i, ok := c.personaIndex[p]; ok {
				c.personas[i].Count++
			} else {
				c.personaIndex[p] = len(c.personas)
				c.personas = append(c.personas, Persona{Tag: p, Count: 1})
			}
		}
	}

	sort.SliceStable(c.personas, func(i, j int) bool {
		return c.personas[i].Tag < c.personas[j].Tag
	})

	// Rebuild the persona index after sorting.
	for i, p := range c.personas {
		c.personaIndex[p.Tag] = i
	}

	return c
}

// barrierColor resolves a barrier's display color: an explicit valid color
// wins, otherwise the parent theme's color is lightened. Barriers without
// a resolvable parent shade the neutral gray instead.
func (c *Catalog) barrierColor(raw RawBarrier) string {
	if strings.TrimSpace(raw.Color) != "" {
		return Lighten(raw.Color, 0)
	}

	base := NeutralGray
	if i, ok := c.themeIndex[strings.TrimSpace(raw.Theme)]; ok {
		base = c.themes[i].Color
	}

	return Lighten(base, barrierLightenAmount)
}

// Resources returns all resources in document order. Callers must treat
// the returned slice as read-only.
func (c *Catalog) Resources() []Resource { return c.resources }

// Themes returns the themes with derived weights, in document order.
func (c *Catalog) Themes() []Theme { return c.themes }

// Barriers returns the barriers with derived weights and colors, in
// document order.
func (c *Catalog) Barriers() []Barrier { return c.barriers }

// Personas returns the derived persona tags with resource counts, sorted
// alphabetically.
func (c *Catalog) Personas() []Persona { return c.personas }

// HasTheme reports whether the catalog defines a theme with the given ID.
func (c *Catalog) HasTheme(id string) bool {
	_, ok := c.themeIndex[id]

	return ok
}

// HasBarrier reports whether the catalog defines a barrier with the given ID.
func (c *Catalog) HasBarrier(id string) bool {
	_, ok := c.barrierIndex[id]

	return ok
}

// HasPersona reports whether any resource carries the given persona tag.
func (c *Catalog) HasPersona(tag string) bool {
	_, ok := c.personaIndex[tag]

	return ok
}

// Theme returns the theme with the given ID, if defined.
func (c *Catalog) Theme(id string) (Theme, bool) {
	if i, ok := c.themeIndex[id]; ok {
		return c.themes[i], true
	}

	return Theme{}, false
}

// Barrier returns the barrier with the given ID, if defined.
func (c *Catalog) Barrier(id string) (Barrier, bool) {
	if i, ok := c.barrierIndex[id]; ok {
		return c.barriers[i], true
	}

	return Barrier{}, false
}
