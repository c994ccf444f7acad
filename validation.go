package excelhelper

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// AddDropList restricts the cells in the given range to a fixed list of
// allowed values, shown as an in-cell dropdown.
func (b *Book) AddDropList(startRow, startCol, endRow, endCol int, allowed []string) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return err
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = RangeRef(startRow, startCol, endRow, endCol)
	if err := dv.SetDropList(allowed); err != nil {
		return fmt.Errorf("drop list for %s: %w", dv.Sqref, err)
	}
	if err := b.file.AddDataValidation(b.active, dv); err != nil {
		return fmt.Errorf("add validation for %s: %w", dv.Sqref, err)
	}
	return nil
}

// AddWholeBetween restricts the cells in the given range to whole numbers
// between min and max, inclusive.
func (b *Book) AddWholeBetween(startRow, startCol, endRow, endCol, min, max int) error {
	return b.addRangeValidation(startRow, startCol, endRow, endCol, min, max, excelize.DataValidationTypeWhole)
}

// AddDecimalBetween restricts the cells in the given range to decimal
// numbers between min and max, inclusive.
func (b *Book) AddDecimalBetween(startRow, startCol, endRow, endCol int, min, max float64) error {
	return b.addRangeValidation(startRow, startCol, endRow, endCol, min, max, excelize.DataValidationTypeDecimal)
}

func (b *Book) addRangeValidation(startRow, startCol, endRow, endCol int, min, max any, vt excelize.DataValidationType) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return err
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = RangeRef(startRow, startCol, endRow, endCol)
	if err := dv.SetRange(min, max, vt, excelize.DataValidationOperatorBetween); err != nil {
		return fmt.Errorf("validation range for %s: %w", dv.Sqref, err)
	}
	if err := b.file.AddDataValidation(b.active, dv); err != nil {
		return fmt.Errorf("add validation for %s: %w", dv.Sqref, err)
	}
	return nil
}

// FormatRuleKind selects a conditional formatting rule type.
type FormatRuleKind string

// Supported conditional formatting rule kinds.
const (
	RuleCellValue  FormatRuleKind = "cell"       // compare each cell against Value (and MaxValue for "between")
	RuleTop        FormatRuleKind = "top"        // highlight the top N values
	RuleDuplicate  FormatRuleKind = "duplicate"  // highlight duplicate values
	RuleColorScale FormatRuleKind = "colorScale" // two-color scale between MinValue and MaxValue
	RuleDataBar    FormatRuleKind = "dataBar"    // in-cell data bars
)

// FormatRule is one conditional formatting rule. Criteria follows the
// engine's vocabulary for cell rules (">", "<", "between", "==", ...).
// For color scales and data bars, Value and MaxValue pin the scale to fixed
// numbers; when empty the scale spans the range's min and max.
type FormatRule struct {
	Kind     FormatRuleKind
	Criteria string
	Value    string
	MaxValue string

	// Formatting applied to matching cells (cell, top, duplicate rules).
	FontColor string
	FillColor string

	// Scale endpoint colors (colorScale rules) and bar color (dataBar rules).
	MinColor string
	MaxColor string
}

// SetConditionalFormat attaches conditional formatting rules to the
// rectangular range bounded by the 1-based corner coordinates.
func (b *Book) SetConditionalFormat(startRow, startCol, endRow, endCol int, rules []FormatRule) error {
	if err := checkCoord(startRow, startCol); err != nil {
		return err
	}
	if err := checkCoord(endRow, endCol); err != nil {
		return err
	}
	rangeRef := RangeRef(startRow, startCol, endRow, endCol)

	var opts []excelize.ConditionalFormatOptions
	for _, r := range rules {
		opt, err := b.formatRuleOptions(r)
		if err != nil {
			return fmt.Errorf("conditional format for %s: %w", rangeRef, err)
		}
		opts = append(opts, opt)
	}

	if err := b.file.SetConditionalFormat(b.active, rangeRef, opts); err != nil {
		return fmt.Errorf("set conditional format for %s: %w", rangeRef, err)
	}
	return nil
}

func (b *Book) formatRuleOptions(r FormatRule) (excelize.ConditionalFormatOptions, error) {
	opt := excelize.ConditionalFormatOptions{}

	switch r.Kind {
	case RuleCellValue:
		opt.Type = "cell"
		opt.Criteria = r.Criteria
		opt.Value = r.Value
		if r.MaxValue != "" {
			opt.MinValue = r.Value
			opt.MaxValue = r.MaxValue
		}
	case RuleTop:
		opt.Type = "top"
		opt.Criteria = r.Criteria
		opt.Value = r.Value
	case RuleDuplicate:
		opt.Type = "duplicate"
	case RuleColorScale:
		opt.Type = "2_color_scale"
		opt.MinType, opt.MinValue = scaleEndpoint(r.Value)
		opt.MaxType, opt.MaxValue = scaleEndpoint(r.MaxValue)
		if opt.MaxType == "min" {
			opt.MaxType = "max"
		}
		opt.MinColor = defaultColor(r.MinColor, "#FFFFFF")
		opt.MaxColor = defaultColor(r.MaxColor, "#63BE7B")
		return opt, nil
	case RuleDataBar:
		opt.Type = "data_bar"
		opt.MinType, opt.MinValue = scaleEndpoint(r.Value)
		opt.MaxType, opt.MaxValue = scaleEndpoint(r.MaxValue)
		if opt.MaxType == "min" {
			opt.MaxType = "max"
		}
		opt.BarColor = defaultColor(r.MinColor, "#638EC6")
		return opt, nil
	default:
		return opt, fmt.Errorf("unsupported rule kind %q", r.Kind)
	}

	if r.FontColor != "" || r.FillColor != "" {
		style := &excelize.Style{}
		if r.FontColor != "" {
			style.Font = &excelize.Font{Color: r.FontColor}
		}
		if r.FillColor != "" {
			style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{r.FillColor}}
		}
		styleID, err := b.file.NewConditionalStyle(style)
		if err != nil {
			return opt, fmt.Errorf("conditional style: %w", err)
		}
		opt.Format = &styleID
	}

	return opt, nil
}

// scaleEndpoint maps an optional fixed value to the engine's endpoint
// type/value pair; empty means "track the range extreme".
func scaleEndpoint(value string) (string, string) {
	if value == "" {
		return "min", ""
	}
	return "num", value
}

func defaultColor(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}
