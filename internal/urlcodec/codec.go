// Package urlcodec maps selection state to and from its query-string
// representation, the only persisted form of the user's navigation state.
//
// Both directions are best-effort and never fail: Encode writes only
// non-default fields, and Decode silently drops unrecognized keys and
// stale identifiers instead of corrupting state. Decoding the encoding of
// any state the selection state machine can reach reproduces that state
// exactly; the reverse direction preserves filtering effect rather than
// bytes (canonicalization is allowed).
package urlcodec

import (
	"net/url"
	"strings"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/selection"
)

// Query-string keys. These form the address-bar interface and must stay
// stable across releases: shared URLs reference them.
const (
	KeyTheme    = "theme"
	KeyBarrier  = "barrier"
	KeySearch   = "q"
	KeyPersonas = "personas"
)

// Encode serializes a selection state as a query string without the
// leading "?". Default/empty fields are omitted entirely, so the empty
// state encodes to the empty string and URLs stay minimal and stable.
func Encode(sel selection.State) string {
	values := url.Values{}

	if sel.Theme != "" {
		values.Set(KeyTheme, sel.Theme)
	}

	if sel.Barrier != "" {
		values.Set(KeyBarrier, sel.Barrier)
	}

	if sel.Search != "" {
		values.Set(KeySearch, sel.Search)
	}

	if len(sel.Personas) > 0 {
		values.Set(KeyPersonas, strings.Join(sel.Personas, ","))
	}

	return values.Encode()
}

// Decode parses a query string (with or without a leading "?") into a
// selection state, validating identifiers against the catalog. It never
// fails:
//
//   - unknown keys are ignored;
//   - a theme, barrier, or persona that the catalog does not define is
//     dropped to "no selection" for that field;
//   - when both theme and barrier are present (unreachable through the
//     UI, but possible in a hand-edited URL) the barrier wins, restoring
//     the mutual-exclusivity invariant.
func Decode(query string, c *catalog.Catalog) selection.State {
	query = strings.TrimPrefix(query, "?")

	// ParseQuery reports an error on malformed pairs but still returns
	// everything it could parse; best-effort decoding uses that remainder.
	values, _ := url.ParseQuery(query)

	var sel selection.State

	if theme := values.Get(KeyTheme); theme != "" && c.HasTheme(theme) {
		sel.Theme = theme
	}

	if barrier := values.Get(KeyBarrier); barrier != "" && c.HasBarrier(barrier) {
		sel.Barrier = barrier
		sel.Theme = "" // barrier wins over theme
	}

	sel.Search = values.Get(KeySearch)
	sel.Personas = decodePersonas(values[KeyPersonas], c)

	return sel
}

// decodePersonas splits persona values with the same delimiter/trim/
// empty-drop rule the normalizer applies to raw list fields, accepting
// comma or pipe as the delimiter, then keeps known tags only,
// de-duplicated in first-seen order.
func decodePersonas(raw []string, c *catalog.Catalog) []string {
	var out []string

	seen := make(map[string]bool)

	for _, value := range raw {
		for _, tag := range catalog.ToListField(strings.ReplaceAll(value, ",", "|")) {
			if seen[tag] || !c.HasPersona(tag) {
				continue
			}

			seen[tag] = true
			out = append(out, tag)
		}
	}

	return out
}
