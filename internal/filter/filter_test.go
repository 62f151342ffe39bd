package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/selection"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Document{
		Themes: []catalog.RawTheme{
			{ID: "T1", Label: "Data", Color: "#204060"},
			{ID: "T2", Label: "People", Color: "#996633"},
		},
		Barriers: []catalog.RawBarrier{
			{ID: "B1", Theme: "T1"},
			{ID: "B2", Theme: "T2"},
		},
		Resources: []catalog.RawRecord{
			{ID: "r1", Title: "Data handbook", Description: "How we handle data", Theme: "T1", Barriers: "B1", Personas: "Project|Finance"},
			{ID: "r2", Title: "Hiring guide", Description: "Recruiting playbook", Theme: "T2", Barriers: "B1|B2", Personas: "People"},
			{ID: "r3", Title: "Field notes", Description: "Raw DATA dumps", Personas: "Project"},
			{ID: "r4", Title: "Budget template", Theme: "T2", Personas: "Finance"},
		},
	})
}

func ids(resources []catalog.Resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.ID)
	}

	return out
}

// ---------------------------------------------------------------------------
// Visible: combination rules
// ---------------------------------------------------------------------------

func TestVisible_NoActiveFilters(t *testing.T) {
	got := Visible(testCatalog(), selection.State{})
	assert.Equal(t, []string{"r1", "r2", "r3", "r4"}, ids(got), "full catalog in document order")
}

func TestVisible_ThemeFilter(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Theme: "T2"})
	assert.Equal(t, []string{"r2", "r4"}, ids(got))
}

func TestVisible_BarrierFilterIsMembership(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Barrier: "B1"})
	assert.Equal(t, []string{"r1", "r2"}, ids(got))
}

func TestVisible_SearchCaseInsensitive(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Search: "data"})
	assert.Equal(t, []string{"r1", "r3"}, ids(got), "matches title and description, any case")
}

func TestVisible_SearchTrimmedAtEvalTime(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Search: "  data  "})
	assert.Equal(t, []string{"r1", "r3"}, ids(got))
}

func TestVisible_WhitespaceSearchIsInactive(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Search: "   "})
	assert.Len(t, got, 4)
}

func TestVisible_PersonaORWithinDimension(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Personas: []string{"Project", "People"}})
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(got))
}

func TestVisible_SinglePersona(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Personas: []string{"Project"}})
	assert.Equal(t, []string{"r1", "r3"}, ids(got))
}

func TestVisible_SearchAndPersonaIntersect(t *testing.T) {
	got := Visible(testCatalog(), selection.State{
		Search:   "data",
		Personas: []string{"Finance"},
	})
	assert.Equal(t, []string{"r1"}, ids(got), "AND across dimensions")
}

func TestVisible_ThemeAndSearch(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Theme: "T2", Search: "budget"})
	assert.Equal(t, []string{"r4"}, ids(got))
}

func TestVisible_EmptyResultIsNotAnError(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Search: "no such phrase"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVisible_UnknownThemeMatchesNothing(t *testing.T) {
	got := Visible(testCatalog(), selection.State{Theme: "does-not-exist"})
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Chain behaviour
// ---------------------------------------------------------------------------

func TestChain_Empty(t *testing.T) {
	resources := testCatalog().Resources()

	result, err := NewChain().Apply(context.Background(), resources)
	require.NoError(t, err)
	assert.Len(t, result.Included, 4)
	assert.Empty(t, result.Excluded)
}

func TestChain_AccumulatesExclusionReasons(t *testing.T) {
	chain := NewChain(
		NewThemeFilter("T2"),
		NewSearchFilter("budget"),
	)

	result, err := chain.Apply(context.Background(), testCatalog().Resources())
	require.NoError(t, err)
	assert.Len(t, result.Included, 1)
	assert.Len(t, result.Excluded, 3)
	assert.Contains(t, result.Excluded[0].Reason, "not in theme T2")
}

func TestChain_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := NewChain(NewThemeFilter("T1"), NewSearchFilter("x"))

	_, err := chain.Apply(ctx, testCatalog().Resources())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExplain_ReportsExclusions(t *testing.T) {
	result, err := Explain(context.Background(), testCatalog(), selection.State{Barrier: "B2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, ids(result.Included))
	assert.Len(t, result.Excluded, 3)
}

// ---------------------------------------------------------------------------
// Expression filter
// ---------------------------------------------------------------------------

func TestExprFilter_Basic(t *testing.T) {
	f, err := NewExprFilter(`"Project" in personas && theme == "T1"`)
	require.NoError(t, err)

	result, err := f.Apply(context.Background(), testCatalog().Resources())
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids(result.Included))
}

func TestExprFilter_ListFunctions(t *testing.T) {
	f, err := NewExprFilter(`len(barriers) > 1`)
	require.NoError(t, err)

	result, err := f.Apply(context.Background(), testCatalog().Resources())
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, ids(result.Included))
}

func TestExprFilter_CompileError(t *testing.T) {
	_, err := NewExprFilter(`title ==`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling filter expression")
}

func TestExprFilter_NonBooleanRejected(t *testing.T) {
	_, err := NewExprFilter(`title`)
	assert.Error(t, err, "expressions must be boolean")
}

func TestExprFilter_InChain(t *testing.T) {
	f, err := NewExprFilter(`url == ""`)
	require.NoError(t, err)

	chain := NewChain(NewPersonaFilter([]string{"Project"}), f)

	result, err := chain.Apply(context.Background(), testCatalog().Resources())
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r3"}, ids(result.Included))
}
