package excelhelper

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Style is an explicit cell style configuration. Every supported property
// is a typed field; zero values leave the corresponding property untouched.
// This replaces free-form key-value styling with a validated record.
type Style struct {
	FontName   string
	FontSize   float64
	Bold       bool
	Italic     bool
	FontColor  string // RGB hex, e.g. "FF0000"

	FillColor string // RGB hex background, pattern fill

	Alignment     string // "left", "center", "right", "fill", "justify"
	VerticalAlign string // "top", "center", "bottom", "justify"
	WrapText      bool

	BorderStyle string // "thin", "medium", "dashed", "dotted", "thick", "double", "hair"
	BorderColor string // RGB hex, defaults to black when a border style is set

	NumberFormat string // custom number format code, e.g. "0.00%"
	Locked       bool
}

var borderStyles = map[string]int{
	"thin":   1,
	"medium": 2,
	"dashed": 3,
	"dotted": 4,
	"thick":  5,
	"double": 6,
	"hair":   7,
}

var horizontalAlignments = map[string]bool{
	"left": true, "center": true, "right": true, "fill": true, "justify": true,
}

var verticalAlignments = map[string]bool{
	"top": true, "center": true, "bottom": true, "justify": true,
}

// Validate checks that every enumerated property holds a supported value.
func (s Style) Validate() error {
	if s.Alignment != "" && !horizontalAlignments[s.Alignment] {
		return fmt.Errorf("unsupported horizontal alignment %q", s.Alignment)
	}
	if s.VerticalAlign != "" && !verticalAlignments[s.VerticalAlign] {
		return fmt.Errorf("unsupported vertical alignment %q", s.VerticalAlign)
	}
	if s.BorderStyle != "" {
		if _, ok := borderStyles[s.BorderStyle]; !ok {
			return fmt.Errorf("unsupported border style %q", s.BorderStyle)
		}
	}
	if s.FontSize < 0 {
		return fmt.Errorf("negative font size %v", s.FontSize)
	}
	return nil
}

// toEngine maps the Style onto the engine's style model.
func (s Style) toEngine() *excelize.Style {
	es := &excelize.Style{}

	if s.FontName != "" || s.FontSize > 0 || s.Bold || s.Italic || s.FontColor != "" {
		es.Font = &excelize.Font{
			Family: s.FontName,
			Size:   s.FontSize,
			Bold:   s.Bold,
			Italic: s.Italic,
			Color:  s.FontColor,
		}
	}

	if s.FillColor != "" {
		es.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.FillColor}}
	}

	if s.Alignment != "" || s.VerticalAlign != "" || s.WrapText {
		es.Alignment = &excelize.Alignment{
			Horizontal: s.Alignment,
			Vertical:   s.VerticalAlign,
			WrapText:   s.WrapText,
		}
	}

	if s.BorderStyle != "" {
		color := s.BorderColor
		if color == "" {
			color = "000000"
		}
		code := borderStyles[s.BorderStyle]
		for _, side := range []string{"left", "right", "top", "bottom"} {
			es.Border = append(es.Border, excelize.Border{Type: side, Color: color, Style: code})
		}
	}

	if s.NumberFormat != "" {
		fmtCode := s.NumberFormat
		es.CustomNumFmt = &fmtCode
	}

	if s.Locked {
		es.Protection = &excelize.Protection{Locked: true}
	}

	return es
}

// ApplyStyle applies a style to a single cell of the active sheet.
func (b *Book) ApplyStyle(row, col int, style Style) error {
	return b.ApplyStyleRange(row, col, row, col, style)
}

// ApplyStyleRange applies a style to every cell in the rectangular range
// bounded by the 1-based corner coordinates.
func (b *Book) ApplyStyleRange(startRow, startCol, endRow, endCol int, style Style) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return err
	}
	if err := style.Validate(); err != nil {
		return fmt.Errorf("apply style: %w", err)
	}

	styleID, err := b.file.NewStyle(style.toEngine())
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	err = b.file.SetCellStyle(b.active, CellName(startRow, startCol), CellName(endRow, endCol), styleID)
	if err != nil {
		return fmt.Errorf("apply style to %s: %w", RangeRef(startRow, startCol, endRow, endCol), err)
	}
	return nil
}
