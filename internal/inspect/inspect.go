// Package inspect hands a detection table off to an external tabular loader
// through a short-lived file, for diagnostics only. Nothing downstream
// consumes the loaded copy; the stage exists to verify that the snapshot
// serializes into a form other tooling can read back.
package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
)

// TableLoader loads a CSV file from disk into a table. Implementations may
// delegate to external tooling; CSVLoader is the built-in default.
type TableLoader interface {
	Load(ctx context.Context, path string) (domain.Table, error)
}

// CSVLoader reads the file back through the domain codec.
type CSVLoader struct{}

// Load implements TableLoader.
func (CSVLoader) Load(_ context.Context, path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()
	return domain.ParseCSV(f)
}

// Inspector round-trips tables through a temporary file and logs what the
// loader saw.
type Inspector struct {
	loader TableLoader
	logger *slog.Logger
}

// New creates an Inspector using the given loader.
func New(loader TableLoader, logger *slog.Logger) *Inspector {
	return &Inspector{loader: loader, logger: logger}
}

// Inspect writes the table to a temporary file, loads it back, and logs
// record count, column names, and a preview of the first rows. The temporary
// file is removed on every exit path, including loader failure.
func (i *Inspector) Inspect(ctx context.Context, table domain.Table, source string) error {
	tmp, err := os.CreateTemp("", "fire_detections-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if err := table.WriteCSV(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	loaded, err := i.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	i.logger.Info("loaded detection table",
		"source", source,
		"records", loaded.Len(),
		"columns", loaded.Columns,
	)
	i.logPreview(loaded)

	return nil
}

func (i *Inspector) logPreview(table domain.Table) {
	n := min(table.Len(), 5)
	for idx, row := range table.Rows[:n] {
		i.logger.Info("sample detection",
			"row", idx,
			"acq_date", table.Field(row, domain.ColAcqDate),
			"acq_time", table.Field(row, domain.ColAcqTime),
			"latitude", table.Field(row, domain.ColLatitude),
			"longitude", table.Field(row, domain.ColLongitude),
			"frp", table.Field(row, domain.ColFRP),
		)
	}
}
