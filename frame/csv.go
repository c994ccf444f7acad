package frame

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the frame as CSV with the column labels as the header
// row. Values are rendered with their default formatting.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(f.columns))
	for i, rec := range f.records {
		for c, v := range rec {
			if v == nil {
				record[c] = ""
			} else {
				record[c] = fmt.Sprintf("%v", v)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV builds a Frame from CSV data whose first record is the header row.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	f := New(header...)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		values := make([]any, len(record))
		for i, v := range record {
			values[i] = v
		}
		if err := f.Append(values); err != nil {
			return nil, err
		}
	}
	return f, nil
}
