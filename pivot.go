package excelhelper

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PivotValueField aggregates one source column in the pivot's value area.
type PivotValueField struct {
	Column   string // source column header
	Name     string // display name, defaults to the column header
	Subtotal string // "Sum", "Count", "Average", "Max", "Min" (default "Sum")
}

// PivotConfig describes a pivot table. Ranges use sheet-qualified A1
// notation; the data range's first row must hold the column headers the
// field lists refer to.
type PivotConfig struct {
	DataRange  string // e.g. "Sheet1!A1:E31"
	PivotRange string // placement range, e.g. "Sheet1!G2:M34"
	Rows       []string
	Columns    []string
	Values     []PivotValueField
	Filters    []string
}

// AddPivotTable builds a pivot table from the configuration. Aggregation is
// performed by the spreadsheet application when the file is opened.
func (b *Book) AddPivotTable(cfg PivotConfig) error {
	if cfg.DataRange == "" || cfg.PivotRange == "" {
		return fmt.Errorf("pivot table needs both a data range and a placement range")
	}
	if len(cfg.Values) == 0 {
		return fmt.Errorf("pivot table needs at least one value field")
	}

	opts := &excelize.PivotTableOptions{
		DataRange:       cfg.DataRange,
		PivotTableRange: cfg.PivotRange,
	}
	for _, r := range cfg.Rows {
		opts.Rows = append(opts.Rows, excelize.PivotTableField{Data: r, DefaultSubtotal: true})
	}
	for _, c := range cfg.Columns {
		opts.Columns = append(opts.Columns, excelize.PivotTableField{Data: c, DefaultSubtotal: true})
	}
	for _, f := range cfg.Filters {
		opts.Filter = append(opts.Filter, excelize.PivotTableField{Data: f})
	}
	for _, v := range cfg.Values {
		subtotal := v.Subtotal
		if subtotal == "" {
			subtotal = "Sum"
		}
		name := v.Name
		if name == "" {
			name = v.Column
		}
		opts.Data = append(opts.Data, excelize.PivotTableField{
			Data:     v.Column,
			Name:     name,
			Subtotal: subtotal,
		})
	}

	if err := b.file.AddPivotTable(opts); err != nil {
		return fmt.Errorf("add pivot table over %s: %w", cfg.DataRange, err)
	}
	return nil
}
