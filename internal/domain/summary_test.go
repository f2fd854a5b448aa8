package domain_test

import (
	"strings"
	"testing"

	"github.com/cinderwatch/firms-snapshot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	table := parse(t, multiDateCSV)

	s := domain.Summarize(table)

	assert.Equal(t, 4, s.Total)

	require.NotNil(t, s.Confidence)
	assert.InEpsilon(t, 72.5, s.Confidence.Mean, 0.0001)
	assert.Equal(t, 2, s.Confidence.HighCount)

	require.NotNil(t, s.Bounds)
	assert.InEpsilon(t, -5.5, s.Bounds.MinLat, 0.0001)
	assert.InEpsilon(t, 11.0, s.Bounds.MaxLat, 0.0001)
	assert.InEpsilon(t, 20.1, s.Bounds.MinLon, 0.0001)
	assert.InEpsilon(t, 30.0, s.Bounds.MaxLon, 0.0001)

	assert.Equal(t, []domain.DateCount{
		{Date: "2026-08-29", Count: 1},
		{Date: "2026-08-30", Count: 3},
	}, s.DailyCounts)

	// Ranked by acq_time only: 2350 sorts first even though its date is older.
	require.Len(t, s.Latest, 4)
	assert.Equal(t, "2350", s.Latest[0].Time)
	assert.Equal(t, "2026-08-29", s.Latest[0].Date)
	assert.Equal(t, "0230", s.Latest[1].Time)
}

func TestSummarize_LatestCappedAtFive(t *testing.T) {
	var b strings.Builder
	b.WriteString("acq_time\n")
	for _, v := range []string{"0010", "0940", "0230", "1315", "2355", "0600", "1200"} {
		b.WriteString(v + "\n")
	}
	table := parse(t, b.String())

	s := domain.Summarize(table)
	require.Len(t, s.Latest, 5)
	assert.Equal(t, "2355", s.Latest[0].Time)
	assert.Equal(t, "0600", s.Latest[4].Time)
}

func TestSummarize_NoTimeColumnUsesFirstRows(t *testing.T) {
	table := parse(t, "acq_date\n2026-08-30\n2026-08-30\n2026-08-30\n")

	s := domain.Summarize(table)
	require.Len(t, s.Latest, 3)
	assert.Equal(t, "2026-08-30", s.Latest[0].Date)
	assert.Equal(t, "N/A", s.Latest[0].Time)
	assert.Equal(t, "N/A", s.Latest[0].Lat)
}

func TestSummarize_MissingColumnsSkippedGracefully(t *testing.T) {
	table := parse(t, "brightness,scan\n300.1,1.2\n310.5,1.1\n")

	s := domain.Summarize(table)

	assert.Equal(t, 2, s.Total)
	assert.Nil(t, s.Confidence)
	assert.Nil(t, s.Bounds)
	assert.Empty(t, s.DailyCounts)
	require.Len(t, s.Latest, 2)
	assert.Equal(t, "N/A", s.Latest[0].Date)
}

func TestSummarize_LetterConfidenceSkipped(t *testing.T) {
	table := parse(t, "confidence\nh\n90\nl\n70\n")

	s := domain.Summarize(table)
	require.NotNil(t, s.Confidence)
	assert.InEpsilon(t, 80.0, s.Confidence.Mean, 0.0001)
	assert.Equal(t, 1, s.Confidence.HighCount)
}

func TestSummarize_EmptyTable(t *testing.T) {
	s := domain.Summarize(domain.Table{Columns: []string{"confidence"}})
	assert.Equal(t, 0, s.Total)
	require.NotNil(t, s.Confidence)
	assert.Zero(t, s.Confidence.Mean)
	assert.Empty(t, s.Latest)
}
