package catalog

import (
	"math"
	"strings"
)

// NeutralGray is the fallback color used when a theme or barrier carries
// an invalid or absent hex value.
const NeutralGray = "#64748b"

// barrierLightenAmount is how far barrier colors are moved toward white
// relative to their parent theme, so nested donut segments read as shades
// of the theme.
const barrierLightenAmount = 0.35

// Lighten moves each channel of a hex color toward 255 by the given
// fraction and returns the result as a "#rrggbb" string.
//
// The input may be a 3- or 6-digit hex color, with or without a leading
// "#"; 3-digit input is expanded by doubling each digit. Invalid or
// absent input is treated as NeutralGray. The amount is clamped to
// [0, 1], so Lighten(h, 0) returns the normalized form of h and
// Lighten(h, 1) returns "#ffffff". The transform is pure and
// deterministic.
func Lighten(hex string, amount float64) string {
	r, g, b := parseHex(hex)

	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}

	return "#" + channelHex(lightenChannel(r, amount)) +
		channelHex(lightenChannel(g, amount)) +
		channelHex(lightenChannel(b, amount))
}

// lightenChannel moves one channel toward 255 by the given fraction,
// rounding to the nearest integer and clamping to [0, 255].
func lightenChannel(c int, amount float64) int {
	v := int(math.Round(float64(c) + (255-float64(c))*amount))

	if v < 0 {
		return 0
	}

	if v > 255 {
		return 255
	}

	return v
}

// parseHex parses a 3- or 6-digit hex color into channels, falling back
// to NeutralGray for anything it cannot parse.
func parseHex(hex string) (r, g, b int) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(s) == 3 {
		s = expandShorthand(s)
	}

	if len(s) != 6 {
		return parseNeutral()
	}

	var channels [3]int

	for i := 0; i < 3; i++ {
		hi, okHi := hexDigit(s[i*2])
		lo, okLo := hexDigit(s[i*2+1])

		if !okHi || !okLo {
			return parseNeutral()
		}

		channels[i] = hi*16 + lo
	}

	return channels[0], channels[1], channels[2]
}

// parseNeutral returns the channels of NeutralGray.
func parseNeutral() (int, int, int) {
	return 0x64, 0x74, 0x8b
}

// expandShorthand doubles each digit of a 3-digit hex color: "abc" → "aabbcc".
func expandShorthand(s string) string {
	var sb strings.Builder

	for i := 0; i < 3; i++ {
		sb.WriteByte(s[i])
		sb.WriteByte(s[i])
	}

	return sb.String()
}

// hexDigit converts one hex character to its value.
func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// channelHex formats one channel value as two lowercase hex digits.
func channelHex(v int) string {
	const digits = "0123456789abcdef"

	return string([]byte{digits[v>>4], digits[v&0x0f]})
}
