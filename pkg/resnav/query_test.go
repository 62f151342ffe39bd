package resnav_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/resnav/pkg/resnav"
)

const fixtureYAML = `schemaVersion: "1.0"
themes:
  - id: health
    label: Health
    color: "#3b82f6"
  - id: housing
    label: Housing
    color: "#ef4444"
barriers:
  - id: cost
    label: Cost
    theme: health
resources:
  - id: r1
    title: Free Clinic Guide
    theme: health
    barriers: cost
    personas: newcomer|senior
  - id: r2
    title: Rental Assistance
    theme: housing
    personas: newcomer
  - id: r3
    title: Walk-in Dental
    description: Dental care without appointment
    theme: health
    personas: senior
`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))

	return path
}

func TestQuery_EmptyPath(t *testing.T) {
	_, err := resnav.Query(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog path must not be empty")
}

func TestQuery_MissingFile(t *testing.T) {
	_, err := resnav.Query(context.Background(), "/nonexistent/catalog.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog file")
}

func TestQuery_NoOptions(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Count)
	assert.Empty(t, result.Query)
	assert.True(t, result.Selection.IsEmpty())
	assert.Len(t, result.Themes, 2)
	assert.Len(t, result.Barriers, 1)
	assert.Len(t, result.Personas, 2)
}

func TestQuery_WithTheme(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithTheme("health"),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "theme=health", result.Query)
}

func TestQuery_UnknownTheme(t *testing.T) {
	_, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithTheme("nope"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "nope"`)
}

func TestQuery_DimensionsCompose(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithTheme("health"),
		resnav.WithPersonas("senior"),
		resnav.WithSearch("dental"),
	)
	require.NoError(t, err)

	require.Equal(t, 1, result.Count)
	assert.Equal(t, "r3", result.Resources[0].ID)
}

func TestQuery_BarrierClearsTheme(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithTheme("housing"),
		resnav.WithBarrier("cost"),
	)
	require.NoError(t, err)

	assert.Empty(t, result.Selection.Theme)
	assert.Equal(t, "cost", result.Selection.Barrier)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "r1", result.Resources[0].ID)
}

func TestQuery_FromQueryString(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithQueryString("theme=health&personas=newcomer"),
	)
	require.NoError(t, err)

	require.Equal(t, 1, result.Count)
	assert.Equal(t, "r1", result.Resources[0].ID)
}

func TestQuery_QueryStringStaleIDsDropped(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithQueryString("theme=removed&personas=ghost&x=1"),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Count)
	assert.True(t, result.Selection.IsEmpty())
}

func TestQuery_RoundTrip(t *testing.T) {
	first, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithTheme("health"),
		resnav.WithPersonas("senior"),
	)
	require.NoError(t, err)

	second, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithQueryString(first.Query),
	)
	require.NoError(t, err)

	assert.True(t, first.Selection.Equal(second.Selection))
	assert.Equal(t, first.Count, second.Count)
}

func TestQuery_WithExpr(t *testing.T) {
	result, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithExpr(`"senior" in personas && theme == "health"`),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
}

func TestQuery_InvalidExpr(t *testing.T) {
	_, err := resnav.Query(context.Background(), writeFixture(t),
		resnav.WithExpr("title +"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling filter expression")
}

func TestQueryCatalog_Reuse(t *testing.T) {
	cat, err := resnav.LoadCatalog(writeFixture(t))
	require.NoError(t, err)

	all, err := resnav.QueryCatalog(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)

	filtered, err := resnav.QueryCatalog(context.Background(), cat,
		resnav.WithBarrier("cost"),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.Count)
}

func TestParseCatalog(t *testing.T) {
	cat, err := resnav.ParseCatalog([]byte(fixtureYAML))
	require.NoError(t, err)
	assert.Len(t, cat.Resources(), 3)
}

func TestParseCatalog_UnsupportedSchema(t *testing.T) {
	_, err := resnav.ParseCatalog([]byte(`schemaVersion: "2.0"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schemaVersion")
}
