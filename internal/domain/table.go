package domain

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// DateLayout is the acq_date format used by all FIRMS feeds.
const DateLayout = "2006-01-02"

// Well-known FIRMS column names. Presence of any of them is optional.
const (
	ColAcqDate    = "acq_date"
	ColAcqTime    = "acq_time"
	ColLatitude   = "latitude"
	ColLongitude  = "longitude"
	ColConfidence = "confidence"
	ColFRP        = "frp"
)

// Table is an ordered, CSV-shaped collection of fire detection records.
// Cells are kept as strings so unknown source-specific columns survive a
// filter/sort/write cycle byte-for-byte.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ParseCSV reads a FIRMS CSV document into a Table. The first record is the
// header; header names are trimmed of surrounding whitespace.
func ParseCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = strings.TrimSpace(name)
	}

	return Table{Columns: columns, Rows: records[1:]}, nil
}

// WriteCSV serializes the table, header first, in current row order.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// ColumnIndex returns the position of a named column.
func (t Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether a named column exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Field returns the value of a named column in a row, or "" when the column
// is absent or the row is short.
func (t Table) Field(row []string, name string) string {
	i, ok := t.ColumnIndex(name)
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// FilterDate returns a table containing only rows whose column value equals
// date exactly, preserving relative order. A missing column yields an empty
// table.
func (t Table) FilterDate(column, date string) Table {
	i, ok := t.ColumnIndex(column)
	if !ok {
		return Table{Columns: t.Columns}
	}

	filtered := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if i < len(row) && row[i] == date {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}

// SortedDescBy returns a copy of the table stable-sorted descending by the
// numeric value of a column. Rows whose value does not parse sort after all
// numeric rows; among themselves they keep input order. If the column is
// absent the table is returned unchanged.
func (t Table) SortedDescBy(column string) Table {
	i, ok := t.ColumnIndex(column)
	if !ok {
		return t
	}

	rows := make([][]string, len(t.Rows))
	copy(rows, t.Rows)

	value := func(row []string) (float64, bool) {
		if i >= len(row) {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	sort.SliceStable(rows, func(a, b int) bool {
		va, oka := value(rows[a])
		vb, okb := value(rows[b])
		if oka && okb {
			return va > vb
		}
		return oka && !okb
	})

	return Table{Columns: t.Columns, Rows: rows}
}
