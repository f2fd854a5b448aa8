package firms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
	"github.com/cinderwatch/firms-snapshot/internal/observability"
)

// ErrAllSourcesExhausted is returned when no configured source yields
// detections for today.
var ErrAllSourcesExhausted = errors.New("all fire data sources exhausted")

// Source identifies one FIRMS feed. Name is the short label used in logs and
// metrics; Path and File locate the rolling 24-hour CSV under the base URL.
type Source struct {
	Name string
	Path string
	File string
}

// DefaultSources lists the feeds in fallback priority order. Each source
// resolves to its own endpoint, so a feed outage genuinely falls through to
// the next instrument.
func DefaultSources() []Source {
	return []Source{
		{Name: "modis", Path: "modis-c6.1", File: "MODIS_C6_1_Global_24h.csv"},
		{Name: "viirs", Path: "suomi-npp-viirs-c2", File: "SUOMI_VIIRS_C2_Global_24h.csv"},
		{Name: "viirs_noaa20", Path: "noaa-20-viirs-c2", File: "J1_VIIRS_C2_Global_24h.csv"},
	}
}

// Client fetches active-fire CSVs from the FIRMS feed.
type Client struct {
	baseURL    string
	sources    []Source
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a FIRMS client. The timeout bounds each source request.
func NewClient(baseURL string, timeout time.Duration, sources []Source, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		sources: sources,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// FetchToday tries each source in order and returns the first non-empty
// table of detections acquired today, along with the source name. Per-source
// failures are logged and counted, then the next source is tried. When every
// source fails or has no rows for today, ErrAllSourcesExhausted is returned.
func (c *Client) FetchToday(ctx context.Context) (domain.Table, string, error) {
	today := domain.Today()

	for _, src := range c.sources {
		table, err := c.attempt(ctx, src, today)
		if err != nil {
			c.logger.Warn("source fetch failed", "source", src.Name, "error", err)
			c.metrics.FetchAttempts.WithLabelValues(src.Name, "error").Inc()
			continue
		}
		if table.Empty() {
			c.logger.Info("no detections for today", "source", src.Name, "date", today)
			c.metrics.FetchAttempts.WithLabelValues(src.Name, "empty").Inc()
			continue
		}

		c.logger.Info("fetched fire detections",
			"source", src.Name,
			"date", today,
			"rows", table.Len(),
		)
		c.metrics.FetchAttempts.WithLabelValues(src.Name, "success").Inc()
		c.metrics.RowsFetched.Add(float64(table.Len()))
		return table, src.Name, nil
	}

	return domain.Table{}, "", ErrAllSourcesExhausted
}

// attempt fetches one source and filters it to today's rows. The returned
// table may be empty, which the caller treats as a soft miss rather than an
// error.
func (c *Client) attempt(ctx context.Context, src Source, today string) (domain.Table, error) {
	u := fmt.Sprintf("%s/%s/csv/%s", c.baseURL, src.Path, src.File)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Table{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Table{}, fmt.Errorf("fetch %s: %w", src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Table{}, fmt.Errorf("firms feed error: status %d: %s", resp.StatusCode, body)
	}

	table, err := domain.ParseCSV(resp.Body)
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse %s response: %w", src.Name, err)
	}
	if table.Empty() {
		return domain.Table{}, fmt.Errorf("source %s returned no data", src.Name)
	}
	if !table.HasColumn(domain.ColAcqDate) {
		return domain.Table{}, fmt.Errorf("source %s has no %s column", src.Name, domain.ColAcqDate)
	}

	return table.FilterDate(domain.ColAcqDate, today), nil
}
