package excelhelper

import (
	"fmt"
	"strconv"
	"strings"
)

// Addressable limits of an xlsx worksheet: columns run A through "XFD",
// rows 1 through 1048576.
const (
	MaxColumns = 16384
	MaxRows    = 1048576
)

// CellRef identifies a single cell by 1-based row and column indices.
type CellRef struct {
	Row int
	Col int
}

// Ref creates a CellRef from 1-based row and column indices.
func Ref(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// String renders the reference in A1 notation, e.g. Ref(5, 1) → "A5".
func (c CellRef) String() string {
	return ColName(c.Col) + strconv.Itoa(c.Row)
}

// CellName renders a 1-based (row, col) pair in A1 notation.
func CellName(row, col int) string {
	return ColName(col) + strconv.Itoa(row)
}

// RangeRef renders a rectangular range in A1 notation, e.g. "A1:C5".
func RangeRef(startRow, startCol, endRow, endCol int) string {
	return CellName(startRow, startCol) + ":" + CellName(endRow, endCol)
}

// ColName converts a 1-based column index to its alphabetic label using
// bijective base-26 numbering: 1→"A", 26→"Z", 27→"AA".
func ColName(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append(b, byte('A'+col%26))
		col /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ColIndex converts an alphabetic column label back to its 1-based index.
// It is the inverse of ColName: ColIndex(ColName(n)) == n.
func ColIndex(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range strings.ToUpper(name) {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col, nil
}

// ParseCellName parses an A1-notation cell name into a CellRef. Lock
// markers ("$A$1") and a leading sheet qualifier ("Sheet1!A1") are accepted
// and discarded; only the coordinate survives.
func ParseCellName(s string) (CellRef, error) {
	orig := s
	s = strings.TrimSpace(s)
	if idx := strings.LastIndex(s, "!"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.ReplaceAll(s, "$", "")
	if s == "" {
		return CellRef{}, fmt.Errorf("invalid cell name %q", orig)
	}

	i := 0
	for i < len(s) && isColLetter(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return CellRef{}, fmt.Errorf("invalid cell name %q", orig)
	}

	col, err := ColIndex(s[:i])
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell name %q: %w", orig, err)
	}
	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return CellRef{}, fmt.Errorf("invalid row in cell name %q", orig)
	}
	return CellRef{Row: row, Col: col}, nil
}

func isColLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
