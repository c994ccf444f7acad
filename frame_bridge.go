package excelhelper

import (
	"fmt"

	"github.com/rahulgurujala/excel-helper/frame"
)

// WriteFrame writes a data frame into the active sheet with its top-left
// cell at the 1-based (startRow, startCol) coordinate. The column labels
// become the first written row.
func (b *Book) WriteFrame(f *frame.Frame, startRow, startCol int) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := b.SetRange(startRow, startCol, f.Rows()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ReadFrame reads the rectangular range bounded by the 1-based corner
// coordinates into a data frame. The first row of the range supplies the
// column labels.
func (b *Book) ReadFrame(startRow, startCol, endRow, endCol int) (*frame.Frame, error) {
	values, err := b.Range(startRow, startCol, endRow, endCol)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}

	rows := make([][]any, len(values))
	for r, row := range values {
		anyRow := make([]any, len(row))
		for c, v := range row {
			anyRow[c] = v
		}
		rows[r] = anyRow
	}

	f, err := frame.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return f, nil
}
