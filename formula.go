package excelhelper

import (
	"fmt"
	"strconv"
	"strings"
)

// FormulaMarker is the leading symbol identifying a stored cell string as a
// formula rather than a literal value.
const FormulaMarker = "="

// refToken is a single cell reference found inside a formula, with each
// component independently flagged as absolute ("$" locked) or relative.
type refToken struct {
	start, end int    // byte span in the formula string
	text       string // original token text, kept for pass-through
	row, col   int    // 1-based coordinates
	rowAbs     bool
	colAbs     bool
}

// TranslateFormula rewrites a formula written for the origin cell so that it
// behaves correctly when placed in the target cell, mirroring a spreadsheet
// copy-paste. Every relative reference component shifts by the row/column
// delta between origin and target; "$"-locked components never move.
//
// Inputs that do not begin with the formula marker "=" are returned
// unchanged, matching the behavior of copying a plain value. References
// inside double-quoted string constants are never rewritten, and a
// letters-plus-digits token directly followed by "(" is treated as a
// function name, not a reference.
//
// A reference whose shifted row or column would fall outside the sheet's
// addressable area, in either direction, is left entirely unshifted; the
// rest of the formula still translates. Callers that need stricter handling
// should validate the delta up front.
func TranslateFormula(formula string, origin, target CellRef) string {
	if !strings.HasPrefix(formula, FormulaMarker) {
		return formula
	}
	dRow := target.Row - origin.Row
	dCol := target.Col - origin.Col
	if dRow == 0 && dCol == 0 {
		return formula
	}

	tokens := scanRefTokens(formula)
	if len(tokens) == 0 {
		return formula
	}

	var b strings.Builder
	b.Grow(len(formula) + 8)
	last := 0
	for _, t := range tokens {
		b.WriteString(formula[last:t.start])
		b.WriteString(t.shifted(dRow, dCol))
		last = t.end
	}
	b.WriteString(formula[last:])
	return b.String()
}

// shifted renders the token after applying the delta to its relative
// components. Out-of-range results keep the original token text.
func (t refToken) shifted(dRow, dCol int) string {
	row, col := t.row, t.col
	if !t.rowAbs {
		row += dRow
	}
	if !t.colAbs {
		col += dCol
	}
	if row < 1 || col < 1 || row > MaxRows || col > MaxColumns {
		return t.text
	}

	var b strings.Builder
	if t.colAbs {
		b.WriteByte('$')
	}
	b.WriteString(ColName(col))
	if t.rowAbs {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(row))
	return b.String()
}

// scanRefTokens walks the formula and collects cell reference tokens
// matching [$]Letters[$]Digits, skipping double-quoted string constants.
// Up to three column letters are accepted (the xlsx maximum is "XFD").
func scanRefTokens(formula string) []refToken {
	var tokens []refToken

	i := 0
	for i < len(formula) {
		ch := formula[i]

		// String constants are opaque. Excel escapes a literal quote by
		// doubling it, so "" inside a string does not terminate it.
		if ch == '"' {
			i++
			for i < len(formula) {
				if formula[i] == '"' {
					if i+1 < len(formula) && formula[i+1] == '"' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			continue
		}

		if ch != '$' && !isRefLetter(ch) {
			i++
			continue
		}

		// A reference cannot start in the middle of an identifier.
		if i > 0 && isIdentByte(formula[i-1]) {
			i++
			continue
		}

		tok, next, ok := matchRefToken(formula, i)
		if !ok {
			i = next
			continue
		}
		// Function names look like references until the "(" that follows.
		if tok.end < len(formula) && formula[tok.end] == '(' {
			i = tok.end
			continue
		}
		tokens = append(tokens, tok)
		i = tok.end
	}
	return tokens
}

// matchRefToken attempts to match [$]Letter{1,3}[$]Digit+ starting at pos.
// On failure it returns the position scanning should resume from.
func matchRefToken(formula string, pos int) (refToken, int, bool) {
	i := pos
	colAbs := false
	if formula[i] == '$' {
		colAbs = true
		i++
	}

	letterStart := i
	for i < len(formula) && isRefLetter(formula[i]) && i-letterStart < 3 {
		i++
	}
	if i == letterStart || (i < len(formula) && isRefLetter(formula[i])) {
		return refToken{}, pos + 1, false
	}

	colName := formula[letterStart:i]
	rowAbs := false
	if i < len(formula) && formula[i] == '$' {
		rowAbs = true
		i++
	}

	digitStart := i
	for i < len(formula) && formula[i] >= '0' && formula[i] <= '9' {
		i++
	}
	if i == digitStart {
		return refToken{}, pos + 1, false
	}
	// Trailing identifier characters mean this was a longer name, not a ref.
	if i < len(formula) && isIdentByte(formula[i]) {
		return refToken{}, i, false
	}

	col, err := ColIndex(colName)
	if err != nil || col > MaxColumns {
		return refToken{}, i, false
	}
	row, err := strconv.Atoi(formula[digitStart:i])
	if err != nil || row < 1 {
		return refToken{}, i, false
	}

	return refToken{
		start:  pos,
		end:    i,
		text:   formula[pos:i],
		row:    row,
		col:    col,
		rowAbs: rowAbs,
		colAbs: colAbs,
	}, i, true
}

func isRefLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '.' || b == '$' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// SetFormula stores a formula in the given cell of the active sheet. The
// leading "=" marker is accepted and stripped before handing the formula to
// the engine.
func (b *Book) SetFormula(row, col int, formula string) error {
	if err := checkCoord(row, col); err != nil {
		return err
	}
	formula = strings.TrimPrefix(formula, FormulaMarker)
	if err := b.file.SetCellFormula(b.active, CellName(row, col), formula); err != nil {
		return fmt.Errorf("set formula at %s: %w", CellName(row, col), err)
	}
	return nil
}

// Formula returns the formula stored in the given cell, including the "="
// marker. Cells holding no formula return the empty string.
func (b *Book) Formula(row, col int) (string, error) {
	if err := checkCoord(row, col); err != nil {
		return "", err
	}
	f, err := b.file.GetCellFormula(b.active, CellName(row, col))
	if err != nil {
		return "", fmt.Errorf("get formula at %s: %w", CellName(row, col), err)
	}
	if f == "" {
		return "", nil
	}
	return FormulaMarker + f, nil
}

// CopyFormula copies the formula from one cell to another on the active
// sheet, adjusting relative references for the new position. Copying from a
// cell that holds no formula is a no-op.
func (b *Book) CopyFormula(fromRow, fromCol, toRow, toCol int) error {
	if err := checkCoord(fromRow, fromCol); err != nil {
		return err
	}
	if err := checkCoord(toRow, toCol); err != nil {
		return err
	}

	src, err := b.Formula(fromRow, fromCol)
	if err != nil {
		return err
	}
	if src == "" {
		return nil
	}

	translated := TranslateFormula(src, Ref(fromRow, fromCol), Ref(toRow, toCol))
	return b.SetFormula(toRow, toCol, translated)
}
