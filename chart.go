package excelhelper

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ChartKind selects the chart type to render.
type ChartKind string

// Supported chart kinds.
const (
	ChartColumn  ChartKind = "col"
	ChartBar     ChartKind = "bar"
	ChartLine    ChartKind = "line"
	ChartPie     ChartKind = "pie"
	ChartArea    ChartKind = "area"
	ChartScatter ChartKind = "scatter"
)

var chartKinds = map[ChartKind]excelize.ChartType{
	ChartColumn:  excelize.Col,
	ChartBar:     excelize.Bar,
	ChartLine:    excelize.Line,
	ChartPie:     excelize.Pie,
	ChartArea:    excelize.Area,
	ChartScatter: excelize.Scatter,
}

// ChartSeries describes one data series of a chart. Ranges use A1 notation
// with sheet qualifiers, e.g. "Sheet1!B2:B10".
type ChartSeries struct {
	Name       string // series name or a cell reference holding it
	Categories string // category axis range
	Values     string // value range
}

// ChartConfig describes a chart to place on the active sheet.
type ChartConfig struct {
	Kind   ChartKind
	Title  string
	Anchor CellRef // top-left cell the chart is anchored to
	Series []ChartSeries
}

// AddChart places a chart on the active sheet. The chart renders from the
// ranges its series reference; no data is copied.
func (b *Book) AddChart(cfg ChartConfig) error {
	ct, ok := chartKinds[cfg.Kind]
	if !ok {
		return fmt.Errorf("unsupported chart kind %q", cfg.Kind)
	}
	if err := checkCoord(cfg.Anchor.Row, cfg.Anchor.Col); err != nil {
		return err
	}
	if len(cfg.Series) == 0 {
		return fmt.Errorf("chart needs at least one series")
	}

	chart := &excelize.Chart{Type: ct}
	for _, s := range cfg.Series {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       s.Name,
			Categories: s.Categories,
			Values:     s.Values,
		})
	}
	if cfg.Title != "" {
		chart.Title = []excelize.RichTextRun{{Text: cfg.Title}}
	}

	if err := b.file.AddChart(b.active, cfg.Anchor.String(), chart); err != nil {
		return fmt.Errorf("add %s chart at %s: %w", cfg.Kind, cfg.Anchor, err)
	}
	return nil
}
