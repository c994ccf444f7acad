package excelhelper

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// Severity indicates how serious a template issue is.
type Severity int

const (
	SeverityError   Severity = iota // rendering will fail
	SeverityWarning                 // rendering may produce unexpected output
)

// TemplateIssue is a single problem found while validating a template
// workbook.
type TemplateIssue struct {
	Severity Severity
	Sheet    string
	Cell     CellRef
	Message  string
}

// String formats the issue as "[ERROR] Sheet1!A2: message".
func (t TemplateIssue) String() string {
	sev := "ERROR"
	if t.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s!%s: %s", sev, t.Sheet, t.Cell, t.Message)
}

// ValidateTemplate statically checks every placeholder in the workbook
// without rendering: unterminated placeholders and expressions that fail to
// compile are reported with their cell positions. A non-nil error means the
// workbook itself could not be read.
func (b *Book) ValidateTemplate() ([]TemplateIssue, error) {
	var issues []TemplateIssue

	for _, sheet := range b.file.GetSheetList() {
		rows, err := b.file.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("validate sheet %q: %w", sheet, err)
		}
		for r, row := range rows {
			for c, value := range row {
				if !strings.Contains(value, placeholderBegin) {
					continue
				}
				issues = append(issues, checkCellPlaceholders(sheet, Ref(r+1, c+1), value)...)
			}
		}
	}
	return issues, nil
}

func checkCellPlaceholders(sheet string, ref CellRef, value string) []TemplateIssue {
	segments, err := splitPlaceholders(value)
	if err != nil {
		return []TemplateIssue{{
			Severity: SeverityError,
			Sheet:    sheet,
			Cell:     ref,
			Message:  "unterminated placeholder",
		}}
	}

	var issues []TemplateIssue
	for _, seg := range segments {
		if !seg.isExpr {
			continue
		}
		exprText := strings.TrimSpace(seg.text)
		if exprText == "" {
			issues = append(issues, TemplateIssue{
				Severity: SeverityWarning,
				Sheet:    sheet,
				Cell:     ref,
				Message:  "empty placeholder",
			})
			continue
		}
		if _, err := expr.Compile(exprText, expr.AllowUndefinedVariables()); err != nil {
			issues = append(issues, TemplateIssue{
				Severity: SeverityError,
				Sheet:    sheet,
				Cell:     ref,
				Message:  fmt.Sprintf("expression %q does not compile: %v", exprText, err),
			})
		}
	}
	return issues
}
