// Command snapshot fetches today's active-fire detections from the NASA
// FIRMS feed, logs descriptive statistics, and writes a single CSV snapshot
// sorted by fire radiative power, replacing any previous snapshot.
//
// A failed run logs the error and exits cleanly with an empty result; the
// snapshot from the previous run, if any, is left untouched.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/cinderwatch/firms-snapshot/internal/adapter/http"
	"github.com/cinderwatch/firms-snapshot/internal/config"
	"github.com/cinderwatch/firms-snapshot/internal/firms"
	"github.com/cinderwatch/firms-snapshot/internal/inspect"
	"github.com/cinderwatch/firms-snapshot/internal/observability"
	"github.com/cinderwatch/firms-snapshot/internal/pipeline"
	"github.com/cinderwatch/firms-snapshot/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := firms.NewClient(cfg.BaseURL, cfg.FetchTimeout, firms.DefaultSources(), logger, metrics)
	inspector := inspect.New(inspect.CSVLoader{}, logger)
	writer := snapshot.NewWriter(cfg.OutputDir, logger)

	p := pipeline.New(fetcher, inspector, writer, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional debug endpoint, scraped while the run is in flight.
	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(cfg.MetricsAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("debug endpoint error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("debug endpoint shutdown error", "error", err)
			}
		}()
	}

	result, err := p.Run(ctx)
	if err != nil {
		// Exhaustion and stage failures end the run without a process
		// failure signal; the next scheduled invocation tries again.
		logger.Error("snapshot run failed", "error", err)
		return
	}

	logger.Info("snapshot complete",
		"source", result.Source,
		"rows", result.Table.Len(),
		"path", result.Path,
	)
}
