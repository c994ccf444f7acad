package excelhelper

import (
	"fmt"
	"unicode/utf8"
)

// maxColWidth is the widest column the xlsx format allows, in characters.
const maxColWidth = 255

// ActiveSheet returns the name of the sheet that cell operations address.
func (b *Book) ActiveSheet() string {
	return b.active
}

// SheetNames returns the workbook's sheet names in tab order.
func (b *Book) SheetNames() []string {
	return b.file.GetSheetList()
}

// SelectSheet makes the named sheet the target of subsequent cell
// operations. Selecting a sheet that does not exist returns ErrSheetNotFound.
func (b *Book) SelectSheet(name string) error {
	idx, err := b.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("select sheet %q: %w", name, err)
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	b.file.SetActiveSheet(idx)
	b.active = name
	return nil
}

// AddSheet creates a new sheet and selects it.
func (b *Book) AddSheet(name string) error {
	idx, err := b.file.NewSheet(name)
	if err != nil {
		return fmt.Errorf("add sheet %q: %w", name, err)
	}
	b.file.SetActiveSheet(idx)
	b.active = name
	return nil
}

// DeleteSheet removes the named sheet. Deleting the active sheet moves the
// selection to the workbook's new active sheet.
func (b *Book) DeleteSheet(name string) error {
	if err := b.file.DeleteSheet(name); err != nil {
		return fmt.Errorf("delete sheet %q: %w", name, err)
	}
	if b.active == name {
		b.active = b.file.GetSheetName(b.file.GetActiveSheetIndex())
	}
	return nil
}

// AutoFitColumns sizes every column of the active sheet to its longest
// rendered value plus the Book's fit padding (default 2 characters).
func (b *Book) AutoFitColumns() error {
	cols, err := b.file.GetCols(b.active)
	if err != nil {
		return fmt.Errorf("auto-fit sheet %q: %w", b.active, err)
	}
	for i, col := range cols {
		maxLen := 0
		for _, v := range col {
			if n := utf8.RuneCountInString(v); n > maxLen {
				maxLen = n
			}
		}
		width := float64(maxLen) + b.fitPadding
		if width > maxColWidth {
			width = maxColWidth
		}
		name := ColName(i + 1)
		if err := b.file.SetColWidth(b.active, name, name, width); err != nil {
			return fmt.Errorf("auto-fit column %s: %w", name, err)
		}
	}
	return nil
}

// MergeCells merges the rectangular range given by 1-based corner coordinates.
func (b *Book) MergeCells(startRow, startCol, endRow, endCol int) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return err
	}
	err := b.file.MergeCell(b.active, CellName(startRow, startCol), CellName(endRow, endCol))
	if err != nil {
		return fmt.Errorf("merge %s: %w", RangeRef(startRow, startCol, endRow, endCol), err)
	}
	return nil
}
