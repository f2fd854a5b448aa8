package inspect_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
	"github.com/cinderwatch/firms-snapshot/internal/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLoader wraps a TableLoader and captures the path it was given.
type recordingLoader struct {
	inner inspect.TableLoader
	err   error
	path  string
}

func (l *recordingLoader) Load(ctx context.Context, path string) (domain.Table, error) {
	l.path = path
	if l.err != nil {
		return domain.Table{}, l.err
	}
	return l.inner.Load(ctx, path)
}

func testTable(t *testing.T) domain.Table {
	t.Helper()
	table, err := domain.ParseCSV(strings.NewReader(
		"latitude,longitude,acq_date,acq_time,frp\n10.1,20.1,2026-08-30,0100,3.2\n",
	))
	require.NoError(t, err)
	return table
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInspect_RemovesTempFileOnSuccess(t *testing.T) {
	loader := &recordingLoader{inner: inspect.CSVLoader{}}
	ins := inspect.New(loader, discardLogger())

	err := ins.Inspect(context.Background(), testTable(t), "modis")
	require.NoError(t, err)

	require.NotEmpty(t, loader.path)
	_, statErr := os.Stat(loader.path)
	assert.True(t, os.IsNotExist(statErr), "temp file should be removed")
}

func TestInspect_RemovesTempFileOnLoaderError(t *testing.T) {
	loader := &recordingLoader{err: errors.New("loader exploded")}
	ins := inspect.New(loader, discardLogger())

	err := ins.Inspect(context.Background(), testTable(t), "modis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loader exploded")

	require.NotEmpty(t, loader.path)
	_, statErr := os.Stat(loader.path)
	assert.True(t, os.IsNotExist(statErr), "temp file should be removed even on failure")
}

func TestInspect_LogsLoaderView(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ins := inspect.New(inspect.CSVLoader{}, logger)
	require.NoError(t, ins.Inspect(context.Background(), testTable(t), "modis"))

	out := buf.String()
	assert.Contains(t, out, "loaded detection table")
	assert.Contains(t, out, "records=1")
	assert.Contains(t, out, "sample detection")
	assert.Contains(t, out, "frp=3.2")
}

func TestCSVLoader_MissingFile(t *testing.T) {
	_, err := inspect.CSVLoader{}.Load(context.Background(), "/nonexistent/detections.csv")
	assert.Error(t, err)
}
