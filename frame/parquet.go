package frame

import (
	"fmt"
	"io"
	"sort"

	"github.com/parquet-go/parquet-go"
)

// cellRecord is the long-form Parquet row: one record per cell, keyed by
// record index and column label. Dynamic column sets rule out a wide
// schema, so frames round-trip through this fixed shape instead.
type cellRecord struct {
	Row    int32  `parquet:"row"`
	Column string `parquet:"column"`
	Value  string `parquet:"value"`
}

// WriteParquet writes the frame in long cell-record form. Values are
// rendered as strings; ReadParquet restores them as strings.
func (f *Frame) WriteParquet(w io.Writer) error {
	pw := parquet.NewGenericWriter[cellRecord](w)

	records := make([]cellRecord, 0, len(f.records)*len(f.columns))
	for i, rec := range f.records {
		for c, v := range rec {
			value := ""
			if v != nil {
				value = fmt.Sprintf("%v", v)
			}
			records = append(records, cellRecord{
				Row:    int32(i),
				Column: f.columns[c],
				Value:  value,
			})
		}
	}

	if len(records) > 0 {
		if _, err := pw.Write(records); err != nil {
			return fmt.Errorf("write parquet records: %w", err)
		}
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet rebuilds a Frame from long cell-record Parquet data. Column
// order follows first appearance in the lowest record; rows are ordered by
// their stored index.
func ReadParquet(r io.ReaderAt, size int64) (*Frame, error) {
	records, err := parquet.Read[cellRecord](r, size)
	if err != nil {
		return nil, fmt.Errorf("read parquet records: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Row < records[j].Row
	})

	var columns []string
	colIndex := make(map[string]int)
	byRow := make(map[int32]map[string]string)
	var rowOrder []int32

	for _, rec := range records {
		if _, ok := colIndex[rec.Column]; !ok {
			colIndex[rec.Column] = len(columns)
			columns = append(columns, rec.Column)
		}
		if _, ok := byRow[rec.Row]; !ok {
			byRow[rec.Row] = make(map[string]string)
			rowOrder = append(rowOrder, rec.Row)
		}
		byRow[rec.Row][rec.Column] = rec.Value
	}

	f := New(columns...)
	for _, row := range rowOrder {
		values := make([]any, len(columns))
		for col, v := range byRow[row] {
			values[colIndex[col]] = v
		}
		if err := f.Append(values); err != nil {
			return nil, err
		}
	}
	return f, nil
}
