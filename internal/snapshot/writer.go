// Package snapshot persists one day's detections as a single CSV file,
// replacing whatever snapshot a previous run left behind.
package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
)

const (
	// FileName is the fixed name of the snapshot inside the output directory.
	FileName = "fire_snapshot.csv"

	// filePattern matches current and historically suffixed snapshot files
	// so stale ones are cleared before writing.
	filePattern = "fire_snapshot*.csv"
)

// Writer writes detection tables into an output directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer targeting dir. The directory is created on the
// first Write if it does not exist.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Write clears prior snapshot files, sorts the table descending by frp when
// that column exists, and writes the result. It returns the path of the
// written file. There is no partial-write protection; a crash mid-write can
// leave a truncated file.
func (w *Writer) Write(table domain.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	if err := w.clearPrevious(); err != nil {
		return "", err
	}

	if table.HasColumn(domain.ColFRP) {
		table = table.SortedDescBy(domain.ColFRP)
		w.logger.Info("sorted detections by fire radiative power", "rows", table.Len())
	} else {
		w.logger.Info("no frp column, keeping feed order", "rows", table.Len())
	}

	path := filepath.Join(w.dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot file: %w", err)
	}

	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}

	w.logger.Info("wrote snapshot", "path", path, "rows", table.Len())
	return path, nil
}

func (w *Writer) clearPrevious() error {
	matches, err := filepath.Glob(filepath.Join(w.dir, filePattern))
	if err != nil {
		return fmt.Errorf("glob previous snapshots: %w", err)
	}
	for _, old := range matches {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("remove previous snapshot %s: %w", old, err)
		}
	}
	return nil
}
