package urlcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/selection"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Document{
		Themes: []catalog.RawTheme{
			{ID: "T1", Label: "Data"},
			{ID: "T2", Label: "People"},
		},
		Barriers: []catalog.RawBarrier{
			{ID: "B1", Theme: "T1"},
			{ID: "B2", Theme: "T2"},
			{ID: "B3"},
		},
		Resources: []catalog.RawRecord{
			{ID: "r1", Title: "a", Theme: "T1", Barriers: "B1", Personas: "Project|Finance"},
			{ID: "r2", Title: "b", Theme: "T2", Barriers: "B2|B3", Personas: "People"},
		},
	})
}

// ---------------------------------------------------------------------------
// Encode
// ---------------------------------------------------------------------------

func TestEncode_EmptyStateIsEmptyString(t *testing.T) {
	assert.Equal(t, "", Encode(selection.State{}))
}

func TestEncode_OmitsDefaults(t *testing.T) {
	assert.Equal(t, "theme=T1", Encode(selection.State{Theme: "T1"}))
	assert.Equal(t, "barrier=B2", Encode(selection.State{Barrier: "B2"}))
}

func TestEncode_SearchEscaped(t *testing.T) {
	assert.Equal(t, "q=open+data", Encode(selection.State{Search: "open data"}))
}

func TestEncode_PersonasCommaDelimited(t *testing.T) {
	got := Encode(selection.State{Personas: []string{"Project", "Finance"}})
	assert.Equal(t, "personas=Project%2CFinance", got)
}

// ---------------------------------------------------------------------------
// Decode
// ---------------------------------------------------------------------------

func TestDecode_RecognizedKeys(t *testing.T) {
	sel := Decode("theme=T1&q=data&personas=Project,Finance", testCatalog())

	assert.Equal(t, "T1", sel.Theme)
	assert.Equal(t, "data", sel.Search)
	assert.Equal(t, []string{"Project", "Finance"}, sel.Personas)
}

func TestDecode_LeadingQuestionMark(t *testing.T) {
	sel := Decode("?theme=T1", testCatalog())
	assert.Equal(t, "T1", sel.Theme)
}

func TestDecode_UnknownThemeIgnored(t *testing.T) {
	sel := Decode("theme=does-not-exist", testCatalog())
	assert.Empty(t, sel.Theme)
}

func TestDecode_UnknownBarrierIgnored(t *testing.T) {
	sel := Decode("barrier=stale-id", testCatalog())
	assert.Empty(t, sel.Barrier)
}

func TestDecode_StalePersonasDropped(t *testing.T) {
	sel := Decode("personas=Project,Nobody,Finance", testCatalog())
	assert.Equal(t, []string{"Project", "Finance"}, sel.Personas)
}

func TestDecode_PersonasPipeDelimited(t *testing.T) {
	sel := Decode("personas=Project%7CFinance", testCatalog())
	assert.Equal(t, []string{"Project", "Finance"}, sel.Personas)
}

func TestDecode_PersonasDeduplicated(t *testing.T) {
	sel := Decode("personas=Project,Project&personas=Project", testCatalog())
	assert.Equal(t, []string{"Project"}, sel.Personas)
}

func TestDecode_BarrierWinsOverTheme(t *testing.T) {
	sel := Decode("theme=T1&barrier=B2", testCatalog())
	assert.Empty(t, sel.Theme, "exactly one of theme/barrier may survive decoding")
	assert.Equal(t, "B2", sel.Barrier)
}

func TestDecode_BarrierUnknownThemeSurvives(t *testing.T) {
	sel := Decode("theme=T1&barrier=stale", testCatalog())
	assert.Equal(t, "T1", sel.Theme)
	assert.Empty(t, sel.Barrier)
}

func TestDecode_UnknownKeysIgnored(t *testing.T) {
	sel := Decode("utm_source=mail&theme=T2&whatever=1", testCatalog())
	assert.Equal(t, "T2", sel.Theme)
}

func TestDecode_MalformedQueryBestEffort(t *testing.T) {
	// A malformed pair must not prevent decoding of well-formed pairs.
	sel := Decode("theme=T1&bad=%zz", testCatalog())
	assert.Equal(t, "T1", sel.Theme)
}

func TestDecode_EmptyQuery(t *testing.T) {
	sel := Decode("", testCatalog())
	assert.True(t, sel.IsEmpty())
}

// ---------------------------------------------------------------------------
// Round trips
// ---------------------------------------------------------------------------

func TestRoundTrip_MachineReachableStates(t *testing.T) {
	c := testCatalog()

	build := func(transitions ...func(*selection.State)) selection.State {
		var s selection.State
		for _, tr := range transitions {
			tr(&s)
		}

		return s
	}

	states := []selection.State{
		{},
		build(func(s *selection.State) { s.SelectTheme("T1") }),
		build(func(s *selection.State) { s.SelectBarrier("B3") }),
		build(
			func(s *selection.State) { s.SelectTheme("T1") },
			func(s *selection.State) { s.SelectBarrier("B2") },
		),
		build(
			func(s *selection.State) { s.SelectTheme("T2") },
			func(s *selection.State) { s.SetSearch("open data & more") },
			func(s *selection.State) { s.TogglePersona("Project") },
			func(s *selection.State) { s.TogglePersona("People") },
		),
	}

	for _, want := range states {
		got := Decode(Encode(want), c)
		assert.True(t, want.Equal(got), "round trip changed %+v into %+v", want, got)
	}
}

func TestRoundTrip_ClearAllEncodesEmpty(t *testing.T) {
	var s selection.State

	s.SelectTheme("T1")
	s.SetSearch("data")
	s.TogglePersona("Project")
	s.ClearAll()

	assert.Equal(t, "", Encode(s))
}

func TestRoundTrip_DecodeThenEncodeCanonicalizes(t *testing.T) {
	c := testCatalog()

	// Pipe-delimited personas and an unknown key decode to the same
	// filtering effect; re-encoding produces the canonical comma form.
	sel := Decode("personas=Project%7CFinance&utm=x", c)
	assert.Equal(t, "personas=Project%2CFinance", Encode(sel))

	again := Decode(Encode(sel), c)
	assert.True(t, sel.Equal(again))
}
