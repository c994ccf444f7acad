package excelhelper

import (
	"fmt"
	"io"
	"strings"
)

// Describe writes a human-readable summary of the workbook: each sheet with
// its used dimensions, formula cell count, and placeholder cell count.
// Useful for inspecting templates and generated reports during development.
func (b *Book) Describe(w io.Writer) error {
	name := b.path
	if name == "" {
		name = "<in-memory>"
	}
	fmt.Fprintf(w, "Workbook: %s\n", name)

	for _, sheet := range b.file.GetSheetList() {
		rows, err := b.file.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("describe sheet %q: %w", sheet, err)
		}

		maxCols := 0
		placeholders := 0
		formulas := 0
		for r, row := range rows {
			if len(row) > maxCols {
				maxCols = len(row)
			}
			for c, value := range row {
				if strings.Contains(value, placeholderBegin) {
					placeholders++
				}
				f, err := b.file.GetCellFormula(sheet, CellName(r+1, c+1))
				if err == nil && f != "" {
					formulas++
				}
			}
		}

		fmt.Fprintf(w, "  %s: %d rows x %d cols", sheet, len(rows), maxCols)
		if formulas > 0 {
			fmt.Fprintf(w, ", %d formulas", formulas)
		}
		if placeholders > 0 {
			fmt.Fprintf(w, ", %d placeholders", placeholders)
		}
		fmt.Fprintln(w)
	}
	return nil
}
