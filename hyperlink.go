package excelhelper

import (
	"fmt"
	"strings"
)

// SetHyperlink attaches a hyperlink to a cell and, when display text is
// given, writes it as the cell value. Targets containing "!" that are not
// URLs are treated as in-workbook locations (e.g. "Sheet2!A1").
func (b *Book) SetHyperlink(row, col int, url, display string) error {
	if err := checkCoord(row, col); err != nil {
		return err
	}

	linkType := "External"
	if strings.Contains(url, "!") && !strings.HasPrefix(url, "http") {
		linkType = "Location"
	}

	cell := CellName(row, col)
	err := b.file.SetCellHyperLink(b.active, cell, url, linkType)
	if err != nil {
		return fmt.Errorf("set hyperlink at %s: %w", cell, err)
	}
	if display != "" {
		if err := b.file.SetCellValue(b.active, cell, display); err != nil {
			return fmt.Errorf("set hyperlink display at %s: %w", cell, err)
		}
	}
	return nil
}
