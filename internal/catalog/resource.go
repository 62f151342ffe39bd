package catalog

// Resource is one catalog entry: a document or link tagged with a theme,
// zero or more barriers, and zero or more persona tags.
//
// After normalization every list field is non-nil (unset means empty list)
// and every scalar field is a plain string (missing means empty string).
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	ThemeID     string   `json:"themeId,omitempty"`
	BarrierIDs  []string `json:"barrierIds"`
	Personas    []string `json:"personas"`
}

// Theme is a top-level category, rendered as a primary donut segment.
// Weight is the number of resources referencing the theme, derived at
// catalog build time.
type Theme struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Weight int    `json:"weight"`
}

// Barrier is a secondary category, rendered as a nested donut segment.
// Its color is derived from the parent theme via a lightening transform
// unless the source document sets one explicitly.
type Barrier struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	ThemeID string `json:"themeId,omitempty"`
	Color   string `json:"color"`
	Weight  int    `json:"weight"`
}

// Persona is a derived audience tag with the number of resources
// carrying it.
type Persona struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
