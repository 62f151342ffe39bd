package catalog

import "fmt"

// Severity classifies a validation diagnostic.
type Severity string

// Diagnostic severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single non-fatal finding about a catalog document.
// Building a catalog never fails for these; they exist so the validate
// command can surface data-quality problems to catalog maintainers.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// Validation codes.
const (
	CodeDuplicateTheme   = "duplicate-theme"
	CodeDuplicateBarrier = "duplicate-barrier"
	CodeDuplicateID      = "duplicate-resource-id"
	CodeUnknownTheme     = "unknown-theme"
	CodeUnknownBarrier   = "unknown-barrier"
	CodeUnknownParent    = "unknown-parent-theme"
	CodeUnusedTheme      = "unused-theme"
	CodeMissingTitle     = "missing-title"
)

// Validate inspects a document against the catalog built from it and
// returns all diagnostics in a deterministic order. The catalog itself is
// already safe to use regardless of the findings.
func Validate(doc Document, c *Catalog) []Diagnostic {
	var diags []Diagnostic

	diags = append(diags, checkThemeDefinitions(doc)...)
	diags = append(diags, checkBarrierDefinitions(doc, c)...)
	diags = append(diags, checkResources(c)...)
	diags = append(diags, checkUnusedThemes(c)...)

	return diags
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

func checkThemeDefinitions(doc Document) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]bool, len(doc.Themes))

	for _, t := range doc.Themes {
		if seen[t.ID] {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeDuplicateTheme,
				Message:  fmt.Sprintf("theme %q is defined more than once; the first definition wins", t.ID),
			})
		}

		seen[t.ID] = true
	}

	return diags
}

func checkBarrierDefinitions(doc Document, c *Catalog) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]bool, len(doc.Barriers))

	for _, b := range doc.Barriers {
		if seen[b.ID] {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeDuplicateBarrier,
				Message:  fmt.Sprintf("barrier %q is defined more than once; the first definition wins", b.ID),
			})
		}

		seen[b.ID] = true

		if b.Theme != "" && !c.HasTheme(b.Theme) {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeUnknownParent,
				Message:  fmt.Sprintf("barrier %q references unknown parent theme %q; its color falls back to neutral gray", b.ID, b.Theme),
			})
		}
	}

	return diags
}

func checkResources(c *Catalog) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]bool, len(c.Resources()))

	for _, r := range c.Resources() {
		if r.ID != "" {
			if seen[r.ID] {
				diags = append(diags, Diagnostic{
					Severity: SeverityError,
					Code:     CodeDuplicateID,
					Message:  fmt.Sprintf("resource id %q appears more than once", r.ID),
				})
			}

			seen[r.ID] = true
		}

		if r.Title == "" {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeMissingTitle,
				Message:  fmt.Sprintf("resource %q has no title", r.ID),
			})
		}

		if r.ThemeID != "" && !c.HasTheme(r.ThemeID) {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeUnknownTheme,
				Message:  fmt.Sprintf("resource %q references unknown theme %q", r.ID, r.ThemeID),
			})
		}

		for _, bid := range r.BarrierIDs {
			if !c.HasBarrier(bid) {
				diags = append(diags, Diagnostic{
					Severity: SeverityError,
					Code:     CodeUnknownBarrier,
					Message:  fmt.Sprintf("resource %q references unknown barrier %q", r.ID, bid),
				})
			}
		}
	}

	return diags
}

func checkUnusedThemes(c *Catalog) []Diagnostic {
	var diags []Diagnostic

	for _, t := range c.Themes() {
		if t.Weight == 0 {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeUnusedTheme,
				Message:  fmt.Sprintf("theme %q has no resources", t.ID),
			})
		}
	}

	return diags
}
