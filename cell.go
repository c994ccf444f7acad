package excelhelper

import "fmt"

// SetCell writes a value to the cell at the 1-based (row, col) coordinate
// of the active sheet.
func (b *Book) SetCell(row, col int, value any) error {
	if err := checkCoord(row, col); err != nil {
		return err
	}
	if err := b.file.SetCellValue(b.active, CellName(row, col), value); err != nil {
		return fmt.Errorf("set cell %s: %w", CellName(row, col), err)
	}
	return nil
}

// Cell reads the rendered value of the cell at (row, col). Empty cells
// return the empty string.
func (b *Book) Cell(row, col int) (string, error) {
	if err := checkCoord(row, col); err != nil {
		return "", err
	}
	v, err := b.file.GetCellValue(b.active, CellName(row, col))
	if err != nil {
		return "", fmt.Errorf("get cell %s: %w", CellName(row, col), err)
	}
	return v, nil
}

// SetRow writes values into a row starting at column 1.
func (b *Book) SetRow(row int, values []any) error {
	if err := checkCoord(row, 1); err != nil {
		return err
	}
	if err := b.file.SetSheetRow(b.active, CellName(row, 1), &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}

// Row reads all populated values of a row. Rows beyond the sheet's used
// area return an empty slice.
func (b *Book) Row(row int) ([]string, error) {
	if err := checkCoord(row, 1); err != nil {
		return nil, err
	}
	rows, err := b.file.GetRows(b.active)
	if err != nil {
		return nil, fmt.Errorf("get row %d: %w", row, err)
	}
	if row > len(rows) {
		return nil, nil
	}
	return rows[row-1], nil
}

// SetColumn writes values into a column starting at row 1.
func (b *Book) SetColumn(col int, values []any) error {
	if err := checkCoord(1, col); err != nil {
		return err
	}
	if err := b.file.SetSheetCol(b.active, CellName(1, col), &values); err != nil {
		return fmt.Errorf("set column %s: %w", ColName(col), err)
	}
	return nil
}

// Column reads all populated values of a column.
func (b *Book) Column(col int) ([]string, error) {
	if err := checkCoord(1, col); err != nil {
		return nil, err
	}
	cols, err := b.file.GetCols(b.active)
	if err != nil {
		return nil, fmt.Errorf("get column %s: %w", ColName(col), err)
	}
	if col > len(cols) {
		return nil, nil
	}
	return cols[col-1], nil
}

// SetRange writes a two-dimensional block of values with its top-left cell
// at the 1-based (startRow, startCol) coordinate. Ragged rows are allowed.
func (b *Book) SetRange(startRow, startCol int, data [][]any) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	for r, rowData := range data {
		for c, value := range rowData {
			cell := CellName(startRow+r, startCol+c)
			if err := b.file.SetCellValue(b.active, cell, value); err != nil {
				return fmt.Errorf("set range cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// Range reads the rectangular block bounded by the 1-based corner
// coordinates, inclusive. The result always has (endRow-startRow+1) rows of
// (endCol-startCol+1) values; unset cells read as empty strings.
func (b *Book) Range(startRow, startCol, endRow, endCol int) ([][]string, error) {
	if err := checkCoord(startRow, startCol); err != nil {
		return nil, err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return nil, err
	}
	if endRow < startRow || endCol < startCol {
		return nil, fmt.Errorf("range %s: %w", RangeRef(startRow, startCol, endRow, endCol), ErrOutOfRange)
	}

	out := make([][]string, 0, endRow-startRow+1)
	for r := startRow; r <= endRow; r++ {
		rowVals := make([]string, 0, endCol-startCol+1)
		for c := startCol; c <= endCol; c++ {
			v, err := b.file.GetCellValue(b.active, CellName(r, c))
			if err != nil {
				return nil, fmt.Errorf("get range cell %s: %w", CellName(r, c), err)
			}
			rowVals = append(rowVals, v)
		}
		out = append(out, rowVals)
	}
	return out, nil
}
