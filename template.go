package excelhelper

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Context holds the key-value data a template is rendered against and owns
// the expression evaluator with its compiled-program cache.
type Context struct {
	data map[string]any
	eval *evaluator
}

// NewContext creates a rendering context over the given data.
func NewContext(data map[string]any) *Context {
	if data == nil {
		data = make(map[string]any)
	}
	return &Context{data: data, eval: &evaluator{}}
}

// PutVar sets a variable in the context.
func (c *Context) PutVar(name string, value any) {
	c.data[name] = value
}

// GetVar returns a variable's value, or nil if absent.
func (c *Context) GetVar(name string) any {
	return c.data[name]
}

// Evaluate evaluates a single expression against the context data.
func (c *Context) Evaluate(expression string) (any, error) {
	return c.eval.eval(expression, c.data)
}

// renderValue renders a template cell value. A cell holding exactly one
// placeholder yields the evaluated value with its type intact; mixed
// content flattens to a string.
func (c *Context) renderValue(value string) (any, error) {
	if inner, ok := singlePlaceholder(value); ok {
		return c.Evaluate(inner)
	}

	segments, err := splitPlaceholders(value)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, seg := range segments {
		if !seg.isExpr {
			b.WriteString(seg.text)
			continue
		}
		v, err := c.Evaluate(seg.text)
		if err != nil {
			return nil, err
		}
		if v != nil {
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String(), nil
}

// RenderTemplate replaces every {{ }} placeholder in the workbook with its
// value evaluated against data. Placeholder-only cells receive typed values
// (numbers stay numbers, booleans stay booleans); cells mixing literal text
// and placeholders become strings. Cells without placeholders are untouched.
func (b *Book) RenderTemplate(data map[string]any) error {
	ctx := NewContext(data)
	for _, sheet := range b.file.GetSheetList() {
		if err := b.renderSheet(ctx, sheet); err != nil {
			return err
		}
	}
	return nil
}

func (b *Book) renderSheet(ctx *Context, sheet string) error {
	rows, err := b.file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("render sheet %q: %w", sheet, err)
	}
	for r, row := range rows {
		for c, value := range row {
			if !strings.Contains(value, placeholderBegin) {
				continue
			}
			cell := CellName(r+1, c+1)
			rendered, err := ctx.renderValue(value)
			if err != nil {
				return fmt.Errorf("render %s!%s: %w", sheet, cell, err)
			}
			if err := b.file.SetCellValue(sheet, cell, rendered); err != nil {
				return fmt.Errorf("render %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// RenderTemplateFile opens a template workbook, renders it against data,
// and saves the result to outPath.
func RenderTemplateFile(templatePath, outPath string, data map[string]any) error {
	b, err := Open(templatePath)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.RenderTemplate(data); err != nil {
		return err
	}
	return b.SaveAs(outPath)
}

// RenderSheets produces one rendered copy of the template sheet per item.
// Each copy is named by evaluating nameExpr against the item's data
// (sanitized for sheet-name rules); colliding or empty names fall back to a
// unique generated name. The template sheet itself is removed afterwards.
func (b *Book) RenderSheets(templateSheet, nameExpr string, items []map[string]any) error {
	srcIdx, err := b.file.GetSheetIndex(templateSheet)
	if err != nil {
		return fmt.Errorf("render sheets: %w", err)
	}
	if srcIdx < 0 {
		return fmt.Errorf("render sheets: %w: %q", ErrSheetNotFound, templateSheet)
	}

	seen := make(map[string]bool, len(items))
	for _, sheet := range b.file.GetSheetList() {
		seen[sheet] = true
	}

	for i, item := range items {
		ctx := NewContext(item)

		name := ""
		if nameExpr != "" {
			v, err := ctx.Evaluate(nameExpr)
			if err != nil {
				return fmt.Errorf("render sheets: sheet name for item %d: %w", i, err)
			}
			if v != nil {
				name = SafeSheetName(fmt.Sprintf("%v", v))
			}
		}
		if name == "" || seen[name] {
			name = scratchSheetName()
		}
		seen[name] = true

		dstIdx, err := b.file.NewSheet(name)
		if err != nil {
			return fmt.Errorf("render sheets: create %q: %w", name, err)
		}
		if err := b.file.CopySheet(srcIdx, dstIdx); err != nil {
			return fmt.Errorf("render sheets: copy template to %q: %w", name, err)
		}
		if err := b.renderSheet(ctx, name); err != nil {
			return err
		}
	}

	if err := b.file.DeleteSheet(templateSheet); err != nil {
		return fmt.Errorf("render sheets: remove template %q: %w", templateSheet, err)
	}
	if b.active == templateSheet {
		b.active = b.file.GetSheetName(b.file.GetActiveSheetIndex())
	}
	return nil
}

// scratchSheetName generates a collision-free sheet name within the
// 31-character sheet name limit.
func scratchSheetName() string {
	return "report-" + uuid.NewString()[:8]
}

// SafeSheetName sanitizes a string for use as a sheet name: forbidden
// characters become underscores and the result is truncated to 31 runes.
func SafeSheetName(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		switch r {
		case '/', '\\', ':', '*', '?', '[', ']':
			runes[i] = '_'
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
