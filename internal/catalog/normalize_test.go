package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// ToListField tests
// ---------------------------------------------------------------------------

func TestToListField_PipeDelimitedString(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, ToListField("A|B| |C"))
}

func TestToListField_TrimsSegments(t *testing.T) {
	assert.Equal(t, []string{"Project", "Finance"}, ToListField(" Project | Finance "))
}

func TestToListField_Idempotent(t *testing.T) {
	first := ToListField("A|B| |C")
	second := ToListField(first)
	assert.Equal(t, first, second)
}

func TestToListField_ListPassesThrough(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, ToListField([]string{"x", "y"}))
}

func TestToListField_AnyListStringified(t *testing.T) {
	assert.Equal(t, []string{"a", "2", "true"}, ToListField([]any{"a", float64(2), true}))
}

func TestToListField_NilYieldsEmpty(t *testing.T) {
	got := ToListField(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestToListField_UnsupportedTypeYieldsEmpty(t *testing.T) {
	assert.Empty(t, ToListField(map[string]any{"a": 1}))
	assert.Empty(t, ToListField(42))
}

func TestToListField_WhitespaceOnlyString(t *testing.T) {
	assert.Empty(t, ToListField("   "))
	assert.Empty(t, ToListField(" | | "))
}

// ---------------------------------------------------------------------------
// Normalize tests
// ---------------------------------------------------------------------------

func TestNormalize_FullRecord(t *testing.T) {
	res := Normalize(RawRecord{
		ID:          "r1",
		Title:       "Data handbook",
		URL:         "https://example.org/handbook",
		Description: "How we handle data",
		Theme:       "T1",
		Barriers:    "B1|B2",
		Personas:    []any{"Project", "Finance"},
	})

	assert.Equal(t, "r1", res.ID)
	assert.Equal(t, "Data handbook", res.Title)
	assert.Equal(t, "T1", res.ThemeID)
	assert.Equal(t, []string{"B1", "B2"}, res.BarrierIDs)
	assert.Equal(t, []string{"Project", "Finance"}, res.Personas)
}

func TestNormalize_EmptyRecord(t *testing.T) {
	res := Normalize(RawRecord{})

	assert.Equal(t, "", res.ID)
	assert.Equal(t, "", res.Title)
	assert.Equal(t, "", res.URL)
	assert.NotNil(t, res.BarrierIDs, "list fields must never be nil")
	assert.NotNil(t, res.Personas, "list fields must never be nil")
	assert.Empty(t, res.BarrierIDs)
	assert.Empty(t, res.Personas)
}

func TestNormalize_NumericID(t *testing.T) {
	// JSON numbers arrive as float64.
	res := Normalize(RawRecord{ID: float64(42)})
	assert.Equal(t, "42", res.ID)
}

func TestNormalize_FractionalNumericID(t *testing.T) {
	res := Normalize(RawRecord{ID: 4.5})
	assert.Equal(t, "4.5", res.ID)
}

func TestNormalize_TrimsThemeReference(t *testing.T) {
	res := Normalize(RawRecord{Theme: "  T1  "})
	assert.Equal(t, "T1", res.ThemeID)
}

func TestNormalize_MalformedListField(t *testing.T) {
	res := Normalize(RawRecord{Barriers: map[string]any{"oops": true}})
	assert.Empty(t, res.BarrierIDs)
}
