// Package frame provides a small labeled two-dimensional table that bridges
// worksheet ranges and columnar file formats (CSV, Parquet). The header row
// of a range maps to column labels.
package frame

import "fmt"

// Frame is a labeled table: an ordered list of column labels and rows of
// records, one value per column.
type Frame struct {
	columns []string
	records [][]any
}

// New creates an empty Frame with the given column labels.
func New(columns ...string) *Frame {
	return &Frame{columns: append([]string(nil), columns...)}
}

// FromRows builds a Frame from a sequence of rows whose first row holds the
// column labels. Short rows are padded with nil; long rows are an error.
func FromRows(rows [][]any) (*Frame, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("frame needs a header row")
	}

	header := rows[0]
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = fmt.Sprintf("%v", h)
	}

	f := New(columns...)
	for i, row := range rows[1:] {
		if err := f.Append(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return f, nil
}

// Append adds one record. Records shorter than the column list are padded
// with nil.
func (f *Frame) Append(record []any) error {
	if len(record) > len(f.columns) {
		return fmt.Errorf("record has %d values, frame has %d columns", len(record), len(f.columns))
	}
	padded := make([]any, len(f.columns))
	copy(padded, record)
	f.records = append(f.records, padded)
	return nil
}

// Columns returns the column labels in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Len returns the number of records, excluding the header.
func (f *Frame) Len() int {
	return len(f.records)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.columns)
}

// Record returns the i-th record.
func (f *Frame) Record(i int) []any {
	return append([]any(nil), f.records[i]...)
}

// At returns the value at record i in the labeled column.
func (f *Frame) At(i int, column string) (any, error) {
	for c, label := range f.columns {
		if label == column {
			return f.records[i][c], nil
		}
	}
	return nil, fmt.Errorf("no column %q", column)
}

// Column returns all values of the labeled column.
func (f *Frame) Column(column string) ([]any, error) {
	for c, label := range f.columns {
		if label != column {
			continue
		}
		out := make([]any, len(f.records))
		for i, rec := range f.records {
			out[i] = rec[c]
		}
		return out, nil
	}
	return nil, fmt.Errorf("no column %q", column)
}

// Rows returns the frame as a sequence of rows with the column labels as
// the first row, the inverse of FromRows.
func (f *Frame) Rows() [][]any {
	rows := make([][]any, 0, len(f.records)+1)
	header := make([]any, len(f.columns))
	for i, c := range f.columns {
		header[i] = c
	}
	rows = append(rows, header)
	for _, rec := range f.records {
		rows = append(rows, append([]any(nil), rec...))
	}
	return rows
}
