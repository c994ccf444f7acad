package excelhelper

import "fmt"

// SumRange writes a SUM formula over the given range into the result cell.
func (b *Book) SumRange(startRow, startCol, endRow, endCol, resultRow, resultCol int) error {
	return b.setRangeFormula("SUM", startRow, startCol, endRow, endCol, resultRow, resultCol)
}

// AverageRange writes an AVERAGE formula over the given range into the result cell.
func (b *Book) AverageRange(startRow, startCol, endRow, endCol, resultRow, resultCol int) error {
	return b.setRangeFormula("AVERAGE", startRow, startCol, endRow, endCol, resultRow, resultCol)
}

// CountRange writes a COUNT formula over the given range into the result cell.
func (b *Book) CountRange(startRow, startCol, endRow, endCol, resultRow, resultCol int) error {
	return b.setRangeFormula("COUNT", startRow, startCol, endRow, endCol, resultRow, resultCol)
}

func (b *Book) setRangeFormula(fn string, startRow, startCol, endRow, endCol, resultRow, resultCol int) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return err
	}
	formula := fmt.Sprintf("=%s(%s)", fn, RangeRef(startRow, startCol, endRow, endCol))
	return b.SetFormula(resultRow, resultCol, formula)
}

// SetIf writes an IF formula that tests the condition cell and yields one of
// two quoted values, e.g. `=IF(A1, "High", "Low")`.
func (b *Book) SetIf(condRow, condCol int, trueValue, falseValue any, resultRow, resultCol int) error {
	if err := checkCoord(condRow, condCol); err != nil {
		return err
	}
	formula := fmt.Sprintf(`=IF(%s, "%v", "%v")`, CellName(condRow, condCol), trueValue, falseValue)
	return b.SetFormula(resultRow, resultCol, formula)
}

// SetVLookup writes an exact-match VLOOKUP formula. The lookup value cell,
// the table range, and the 1-based return column within the table are given
// by coordinate; the formula lands in the result cell.
func (b *Book) SetVLookup(lookupRow, lookupCol, tableStartRow, tableStartCol, tableEndRow, tableEndCol, colIndex, resultRow, resultCol int) error {
	if err := checkCoord(lookupRow, lookupCol); err != nil {
		return err
	}
	if err := checkCoord(tableStartRow, tableStartCol); err != nil {
		return err
	}
	if err := checkCoord(tableEndRow, tableEndCol); err != nil {
		return err
	}
	if colIndex < 1 {
		return fmt.Errorf("vlookup column index %d: %w", colIndex, ErrOutOfRange)
	}
	formula := fmt.Sprintf("=VLOOKUP(%s, %s, %d, FALSE)",
		CellName(lookupRow, lookupCol),
		RangeRef(tableStartRow, tableStartCol, tableEndRow, tableEndCol),
		colIndex,
	)
	return b.SetFormula(resultRow, resultCol, formula)
}
