package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
	"github.com/cinderwatch/firms-snapshot/internal/observability"
)

// Fetcher retrieves today's detections from the first responsive source.
type Fetcher interface {
	FetchToday(ctx context.Context) (domain.Table, string, error)
}

// Inspector round-trips a table through the external loader for diagnostics.
type Inspector interface {
	Inspect(ctx context.Context, table domain.Table, source string) error
}

// SnapshotWriter persists a table and returns the written path.
type SnapshotWriter interface {
	Write(table domain.Table) (string, error)
}

// Result is the outcome of one complete pipeline run.
type Result struct {
	Table  domain.Table
	Source string
	Path   string
}

// Pipeline orchestrates the fetch-inspect-analyze-write sequence. One call
// to Run performs the whole job; the pipeline holds no state between runs
// beyond readiness.
type Pipeline struct {
	fetcher   Fetcher
	inspector Inspector
	writer    SnapshotWriter
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, i Inspector, w SnapshotWriter, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:   f,
		inspector: i,
		writer:    w,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once a run has completed successfully, or an
// error describing why the job is not yet done.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no snapshot has been written yet")
	}
	return nil
}

// Run executes the four stages once and returns the written snapshot.
// Per-source fetch failures are handled inside the fetcher; any error
// surfacing here ends the run.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	table, source, err := p.timedFetch(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := p.timedInspect(ctx, table, source); err != nil {
		return Result{}, err
	}

	p.logSummary(domain.Summarize(table))

	path, err := p.timedWrite(table)
	if err != nil {
		return Result{}, err
	}

	p.metrics.RowsWritten.Add(float64(table.Len()))
	p.metrics.SnapshotTime.SetToCurrentTime()
	p.ready.Store(true)

	return Result{Table: table, Source: source, Path: path}, nil
}

func (p *Pipeline) timedFetch(ctx context.Context) (domain.Table, string, error) {
	start := time.Now()
	table, source, err := p.fetcher.FetchToday(ctx)
	p.metrics.StageDuration.WithLabelValues("fetch").Observe(time.Since(start).Seconds())
	return table, source, err
}

func (p *Pipeline) timedInspect(ctx context.Context, table domain.Table, source string) error {
	start := time.Now()
	err := p.inspector.Inspect(ctx, table, source)
	p.metrics.StageDuration.WithLabelValues("inspect").Observe(time.Since(start).Seconds())
	return err
}

func (p *Pipeline) timedWrite(table domain.Table) (string, error) {
	start := time.Now()
	path, err := p.writer.Write(table)
	p.metrics.StageDuration.WithLabelValues("write").Observe(time.Since(start).Seconds())
	return path, err
}

// logSummary emits the descriptive statistics for the day's detections.
// Absent columns simply produce no corresponding log lines.
func (p *Pipeline) logSummary(s domain.Summary) {
	p.logger.Info("total fire detections", "count", s.Total)

	if s.Confidence != nil {
		p.logger.Info("confidence",
			"mean", s.Confidence.Mean,
			"high_confidence_count", s.Confidence.HighCount,
		)
	}

	if s.Bounds != nil {
		p.logger.Info("detection bounds",
			"min_lat", s.Bounds.MinLat,
			"max_lat", s.Bounds.MaxLat,
			"min_lon", s.Bounds.MinLon,
			"max_lon", s.Bounds.MaxLon,
		)
	}

	for _, dc := range s.DailyCounts {
		p.logger.Info("daily fire count", "date", dc.Date, "count", dc.Count)
	}

	for _, sample := range s.Latest {
		p.logger.Info("latest detection",
			"acq_date", sample.Date,
			"acq_time", sample.Time,
			"latitude", sample.Lat,
			"longitude", sample.Lon,
		)
	}
}
