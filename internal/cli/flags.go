package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/selection"
	"github.com/hupe1980/resnav/internal/urlcodec"
)

// selectionOptions holds the shared filter flags used by every command
// that evaluates a selection against a catalog.
type selectionOptions struct {
	theme    string
	barrier  string
	search   string
	personas []string
	fromURL  string
}

// registerSelectionFlags adds the standard selection flags to a cobra command.
func registerSelectionFlags(cmd *cobra.Command, opts *selectionOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.theme, "theme", "", "filter by theme ID")
	f.StringVar(&opts.barrier, "barrier", "", "filter by barrier ID")
	f.StringVar(&opts.search, "search", "", "free-text search over title and description")
	f.StringSliceVar(&opts.personas, "personas", nil, "filter by persona tags (comma-separated, OR semantics)")
	f.StringVar(&opts.fromURL, "from-url", "", "seed the selection from a shared URL or query string")
}

// resolve builds the selection state from the flags. A --from-url value
// seeds the state first (best-effort, stale IDs dropped silently), then
// explicit flags apply on top through the state machine transitions.
// Unlike URL decoding, an explicitly flagged identifier the catalog does
// not define is an error: the user asked for it by name.
func (o *selectionOptions) resolve(c *catalog.Catalog) (selection.State, error) {
	var sel selection.State

	if o.fromURL != "" {
		query := o.fromURL
		if u, err := url.Parse(o.fromURL); err == nil && u.RawQuery != "" {
			query = u.RawQuery
		}

		sel = urlcodec.Decode(query, c)
	}

	if o.theme != "" {
		if !c.HasTheme(o.theme) {
			return sel, fmt.Errorf("unknown theme %q", o.theme)
		}

		if sel.Theme != o.theme {
			sel.SelectTheme(o.theme)
		}
	}

	if o.barrier != "" {
		if !c.HasBarrier(o.barrier) {
			return sel, fmt.Errorf("unknown barrier %q", o.barrier)
		}

		if sel.Barrier != o.barrier {
			sel.SelectBarrier(o.barrier)
		}
	}

	if o.search != "" {
		sel.SetSearch(o.search)
	}

	for _, raw := range o.personas {
		for _, tag := range catalog.ToListField(strings.ReplaceAll(raw, ",", "|")) {
			if !c.HasPersona(tag) {
				return sel, fmt.Errorf("unknown persona %q", tag)
			}

			if !sel.HasPersona(tag) {
				sel.TogglePersona(tag)
			}
		}
	}

	return sel, nil
}
