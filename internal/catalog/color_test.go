package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLighten_ZeroAmountNormalizes(t *testing.T) {
	assert.Equal(t, "#aabbcc", Lighten("#AABBCC", 0))
	assert.Equal(t, "#aabbcc", Lighten("aabbcc", 0))
	assert.Equal(t, "#aabbcc", Lighten("#abc", 0))
	assert.Equal(t, "#aabbcc", Lighten("abc", 0))
}

func TestLighten_FullAmountIsWhite(t *testing.T) {
	assert.Equal(t, "#ffffff", Lighten("#000000", 1))
	assert.Equal(t, "#ffffff", Lighten("#64748b", 1))
}

func TestLighten_HalfwayFromBlack(t *testing.T) {
	// Each channel moves from 0 halfway to 255 → round(127.5) = 128 = 0x80.
	assert.Equal(t, "#808080", Lighten("#000000", 0.5))
}

func TestLighten_InvalidInputFallsBackToGray(t *testing.T) {
	assert.Equal(t, NeutralGray, Lighten("", 0))
	assert.Equal(t, NeutralGray, Lighten("not-a-color", 0))
	assert.Equal(t, NeutralGray, Lighten("#12345", 0))
	assert.Equal(t, NeutralGray, Lighten("#gggggg", 0))
}

func TestLighten_AmountClamped(t *testing.T) {
	assert.Equal(t, "#aabbcc", Lighten("#aabbcc", -0.5))
	assert.Equal(t, "#ffffff", Lighten("#aabbcc", 2))
}

func TestLighten_AlwaysSixDigits(t *testing.T) {
	inputs := []string{"#000", "#fff", "123456", "#64748b", "bogus", ""}
	amounts := []float64{0, 0.1, 0.35, 0.5, 0.99, 1}

	for _, h := range inputs {
		for _, a := range amounts {
			got := Lighten(h, a)
			require.Len(t, got, 7, "Lighten(%q, %v) = %q", h, a, got)
			assert.Equal(t, byte('#'), got[0])
		}
	}
}

func TestLighten_MonotonicPerChannel(t *testing.T) {
	prev := -1

	for i := 0; i <= 10; i++ {
		a := float64(i) / 10
		got := Lighten("#204060", a)

		// Red channel as integer.
		var r int
		_, err := fmt.Sscanf(got[1:3], "%02x", &r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r, prev, "red channel decreased at amount %v", a)
		prev = r
	}
}

func TestLighten_Deterministic(t *testing.T) {
	first := Lighten("#336699", 0.35)
	second := Lighten("#336699", 0.35)
	assert.Equal(t, first, second)
}
