package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/config"
	"github.com/hupe1980/resnav/internal/logging"
	"github.com/hupe1980/resnav/internal/server"
	"github.com/hupe1980/resnav/internal/watch"
)

type serveOptions struct {
	addr      string
	watchMode bool
	debounce  time.Duration
}

func newServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve <catalog-file>",
		Short: "Serve the catalog over HTTP",
		Long: `Serve starts an HTTP server exposing the catalog to browser clients:
derived themes, barriers, and personas for the chart, plus filtered
resource queries decoded from the same query-string format used in
shared URLs.

With --watch, the catalog file is monitored and reloaded on change;
requests in flight keep the snapshot they started with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", "", "listen address (default from config: :8080)")
	f.BoolVar(&opts.watchMode, "watch", false, "reload the catalog when the file changes")
	f.DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "debounce interval for file changes")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, catalogPath string, opts *serveOptions) error {
	logger := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	addr := opts.addr
	if addr == "" {
		addr = cfg.Addr
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	srv := server.New(addr, cat, logger)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.watchMode {
		watchOpts := watch.DefaultOptions()
		watchOpts.CatalogPath = catalogPath
		watchOpts.Debounce = opts.debounce
		watchOpts.Logger = logger
		watchOpts.Out = cmd.ErrOrStderr()

		go func() {
			err := watch.Run(sigCtx, watchOpts, func(context.Context) (*watch.RunResult, error) {
				reloaded, loadErr := catalog.Load(catalogPath)
				if loadErr != nil {
					// Keep serving the previous snapshot.
					return nil, loadErr
				}

				srv.Swap(reloaded)

				return &watch.RunResult{
					ResourceCount: len(reloaded.Resources()),
					ThemeCount:    len(reloaded.Themes()),
					BarrierCount:  len(reloaded.Barriers()),
					VisibleCount:  len(reloaded.Resources()),
				}, nil
			})
			if err != nil {
				logger.Error("catalog watcher stopped", slog.String("error", err.Error()))
			}
		}()
	}

	if err := srv.ListenAndServe(sigCtx); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("serving catalog: %w", err)}
	}

	return nil
}
