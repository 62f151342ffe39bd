package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one entry of the source document before normalization.
// Fields that are conceptually lists (barriers, personas) may arrive as a
// structured list or as a single pipe-delimited string; scalar fields may
// be absent entirely. ID may be a string or a number.
type RawRecord struct {
	ID          any    `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Theme       string `json:"theme,omitempty"`
	Barriers    any    `json:"barriers,omitempty"`
	Personas    any    `json:"personas,omitempty"`
}

// Normalize converts a raw record into the canonical Resource shape.
// It is total: malformed or missing fields degrade to empty strings and
// empty lists, never to an error.
func Normalize(raw RawRecord) Resource {
	return Resource{
		ID:          stringField(raw.ID),
		Title:       raw.Title,
		URL:         raw.URL,
		Description: raw.Description,
		ThemeID:     strings.TrimSpace(raw.Theme),
		BarrierIDs:  ToListField(raw.Barriers),
		Personas:    ToListField(raw.Personas),
	}
}

// ToListField resolves the list-or-delimited-string ambiguity of raw
// multi-value fields, once, at ingestion:
//
//   - a list passes through, with each element stringified and trimmed;
//   - a string is split on "|", each segment trimmed;
//   - anything else (nil, numbers, maps) yields an empty list.
//
// Empty and whitespace-only segments are dropped, so the result is a
// possibly-empty ordered list of non-empty strings. Applying ToListField
// to its own output returns an equal list.
func ToListField(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		return splitPipes(val)
	case []string:
		return trimList(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringField(item))
		}

		return trimList(parts)
	default:
		return []string{}
	}
}

// splitPipes splits a pipe-delimited field into trimmed non-empty segments.
func splitPipes(s string) []string {
	return trimList(strings.Split(s, "|"))
}

// trimList trims each segment and drops the empty ones, preserving order.
func trimList(parts []string) []string {
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// stringField coerces a scalar of unknown type into a trimmed string.
// Numbers keep their shortest decimal form (JSON numbers arrive as
// float64, so 42 must not become "42.000000"). Unsupported types yield
// the empty string.
func stringField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}

		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		return ""
	}
}
