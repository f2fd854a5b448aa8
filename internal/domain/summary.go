package domain

import (
	"sort"
	"strconv"
	"strings"
)

// highConfidenceThreshold is the cutoff above which a detection counts as
// high confidence.
const highConfidenceThreshold = 80

// missingField is the placeholder rendered for absent sample fields.
const missingField = "N/A"

// Summary holds the descriptive statistics for one day's detections.
// Pointer fields are nil when the table lacks the columns they need.
type Summary struct {
	Total       int
	Confidence  *ConfidenceStats
	Bounds      *GeoBounds
	DailyCounts []DateCount
	Latest      []Sample
}

// ConfidenceStats aggregates the numeric confidence values in the table.
// Non-numeric values (VIIRS letter grades) are excluded from both fields.
type ConfidenceStats struct {
	Mean      float64
	HighCount int
}

// GeoBounds is the bounding box of all detections with parseable coordinates.
type GeoBounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// DateCount is the number of detections acquired on one date.
type DateCount struct {
	Date  string
	Count int
}

// Sample is one detection rendered for display, with missing fields
// replaced by a placeholder.
type Sample struct {
	Date string
	Time string
	Lat  string
	Lon  string
}

// Summarize computes descriptive statistics over a detection table. Every
// sub-analysis whose column is absent is skipped, leaving the corresponding
// field nil or empty.
func Summarize(t Table) Summary {
	return Summary{
		Total:       t.Len(),
		Confidence:  summarizeConfidence(t),
		Bounds:      summarizeBounds(t),
		DailyCounts: summarizeDates(t),
		Latest:      latestSamples(t, 5),
	}
}

func summarizeConfidence(t Table) *ConfidenceStats {
	i, ok := t.ColumnIndex(ColConfidence)
	if !ok {
		return nil
	}

	var stats ConfidenceStats
	var sum float64
	var n int
	for _, row := range t.Rows {
		if i >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			continue
		}
		sum += v
		n++
		if v > highConfidenceThreshold {
			stats.HighCount++
		}
	}
	if n > 0 {
		stats.Mean = sum / float64(n)
	}
	return &stats
}

func summarizeBounds(t Table) *GeoBounds {
	latIdx, okLat := t.ColumnIndex(ColLatitude)
	lonIdx, okLon := t.ColumnIndex(ColLongitude)
	if !okLat || !okLon {
		return nil
	}

	var bounds *GeoBounds
	for _, row := range t.Rows {
		if latIdx >= len(row) || lonIdx >= len(row) {
			continue
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(row[lonIdx]), 64)
		if errLat != nil || errLon != nil {
			continue
		}
		if bounds == nil {
			bounds = &GeoBounds{MinLat: lat, MaxLat: lat, MinLon: lon, MaxLon: lon}
			continue
		}
		bounds.MinLat = min(bounds.MinLat, lat)
		bounds.MaxLat = max(bounds.MaxLat, lat)
		bounds.MinLon = min(bounds.MinLon, lon)
		bounds.MaxLon = max(bounds.MaxLon, lon)
	}
	return bounds
}

func summarizeDates(t Table) []DateCount {
	i, ok := t.ColumnIndex(ColAcqDate)
	if !ok {
		return nil
	}

	counts := make(map[string]int)
	for _, row := range t.Rows {
		if i < len(row) {
			counts[row[i]]++
		}
	}

	out := make([]DateCount, 0, len(counts))
	for date, n := range counts {
		out = append(out, DateCount{Date: date, Count: n})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date < out[b].Date })
	return out
}

// latestSamples returns up to n rows ranked by acq_time descending, or the
// first n rows when that column is absent. Ranking compares time-of-day
// only; rows from different dates are not ordered chronologically.
func latestSamples(t Table, n int) []Sample {
	rows := t.Rows
	if i, ok := t.ColumnIndex(ColAcqTime); ok {
		sorted := make([][]string, len(rows))
		copy(sorted, rows)
		timeValue := func(row []string) int {
			if i >= len(row) {
				return -1
			}
			v, err := strconv.Atoi(strings.TrimSpace(row[i]))
			if err != nil {
				return -1
			}
			return v
		}
		sort.SliceStable(sorted, func(a, b int) bool {
			return timeValue(sorted[a]) > timeValue(sorted[b])
		})
		rows = sorted
	}

	if len(rows) > n {
		rows = rows[:n]
	}

	samples := make([]Sample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, Sample{
			Date: fieldOrMissing(t, row, ColAcqDate),
			Time: fieldOrMissing(t, row, ColAcqTime),
			Lat:  fieldOrMissing(t, row, ColLatitude),
			Lon:  fieldOrMissing(t, row, ColLongitude),
		})
	}
	return samples
}

func fieldOrMissing(t Table, row []string, name string) string {
	i, ok := t.ColumnIndex(name)
	if !ok || i >= len(row) || row[i] == "" {
		return missingField
	}
	return row[i]
}
