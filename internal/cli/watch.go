package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/filter"
	"github.com/hupe1980/resnav/internal/logging"
	"github.com/hupe1980/resnav/internal/watch"
)

type watchOptions struct {
	selectionOptions

	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <catalog-file>",
		Short: "Watch a catalog file and re-evaluate a selection on change",
		Long: `Watch monitors a catalog file and re-evaluates the given selection
every time the file changes, printing a compact status line with the
resource, theme, barrier, and visible counts.

File changes are debounced to avoid rapid re-runs during saves. This is
the edit loop for catalog maintainers: keep it running while adjusting
the data and see the effect of each save immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), cmd, args[0], opts)
		},
	}

	registerSelectionFlags(cmd, &opts.selectionOptions)
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "debounce interval for file changes")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, catalogPath string, opts *watchOptions) error {
	logger := logging.FromContext(ctx)

	runFn := func(context.Context) (*watch.RunResult, error) {
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}

		sel, err := opts.resolve(cat)
		if err != nil {
			return nil, err
		}

		visible := filter.Visible(cat, sel)

		return &watch.RunResult{
			ResourceCount: len(cat.Resources()),
			ThemeCount:    len(cat.Themes()),
			BarrierCount:  len(cat.Barriers()),
			VisibleCount:  len(visible),
		}, nil
	}

	watchOpts := watch.Options{
		CatalogPath: catalogPath,
		Debounce:    opts.debounce,
		Logger:      logger,
		Out:         cmd.ErrOrStderr(),
	}

	return watch.Run(ctx, watchOpts, runFn)
}
