package excelhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateFormula(t *testing.T) {
	cases := []struct {
		name    string
		formula string
		origin  CellRef
		target  CellRef
		want    string
	}{
		{
			name:    "relative range shifts",
			formula: "=SUM(A1:A5)",
			origin:  Ref(1, 1),
			target:  Ref(2, 2),
			want:    "=SUM(B2:B6)",
		},
		{
			name:    "absolute references are fixed",
			formula: "=SUM($A$1:$A$5)",
			origin:  Ref(1, 1),
			target:  Ref(2, 2),
			want:    "=SUM($A$1:$A$5)",
		},
		{
			name:    "locked column relative row",
			formula: "=$A1+B$2",
			origin:  Ref(1, 1),
			target:  Ref(3, 3),
			want:    "=$A3+D$2",
		},
		{
			name:    "string literals untouched",
			formula: `=IF(A1, "True", "False")`,
			origin:  Ref(1, 1),
			target:  Ref(2, 1),
			want:    `=IF(A2, "True", "False")`,
		},
		{
			name:    "reference-like text inside string untouched",
			formula: `=CONCATENATE("A1", B2)`,
			origin:  Ref(1, 1),
			target:  Ref(2, 2),
			want:    `=CONCATENATE("A1", C3)`,
		},
		{
			name:    "escaped quote inside string",
			formula: `=IF(A1, "say ""A1""", B1)`,
			origin:  Ref(1, 1),
			target:  Ref(2, 1),
			want:    `=IF(A2, "say ""A1""", B2)`,
		},
		{
			name:    "function name with digits is not a reference",
			formula: "=LOG10(A1)",
			origin:  Ref(1, 1),
			target:  Ref(2, 1),
			want:    "=LOG10(A2)",
		},
		{
			name:    "sheet-qualified reference shifts its cell part",
			formula: "=Sheet2!A1*2",
			origin:  Ref(1, 1),
			target:  Ref(2, 2),
			want:    "=Sheet2!B2*2",
		},
		{
			name:    "plain value is a no-op",
			formula: "Hello",
			origin:  Ref(1, 1),
			target:  Ref(5, 5),
			want:    "Hello",
		},
		{
			name:    "zero delta is identity",
			formula: "=A1+B2",
			origin:  Ref(3, 3),
			target:  Ref(3, 3),
			want:    "=A1+B2",
		},
		{
			name:    "shift below row 1 keeps the reference unshifted",
			formula: "=A1+C5",
			origin:  Ref(2, 2),
			target:  Ref(1, 1),
			want:    "=A1+B4",
		},
		{
			name:    "shift below column A keeps the reference unshifted",
			formula: "=A3+C3",
			origin:  Ref(1, 3),
			target:  Ref(1, 1),
			want:    "=A3+A3",
		},
		{
			name:    "shift beyond the last column keeps the reference unshifted",
			formula: "=XFD1+A1",
			origin:  Ref(1, 1),
			target:  Ref(1, 2),
			want:    "=XFD1+B1",
		},
		{
			name:    "shift beyond the last row keeps the reference unshifted",
			formula: "=A1048576+A1",
			origin:  Ref(1, 1),
			target:  Ref(2, 1),
			want:    "=A1048576+A2",
		},
		{
			name:    "huge column delta keeps the reference unshifted",
			formula: "=A1",
			origin:  Ref(1, 1),
			target:  Ref(1, 475255),
			want:    "=A1",
		},
		{
			name:    "no references passes through",
			formula: "=1+2*3",
			origin:  Ref(1, 1),
			target:  Ref(9, 9),
			want:    "=1+2*3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TranslateFormula(tc.formula, tc.origin, tc.target)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTranslateFormulaRoundTrip(t *testing.T) {
	// Translating by a delta and back must restore the original as long as
	// every relative reference stays in range both ways.
	formulas := []string{
		"=SUM(C10:C20)",
		"=VLOOKUP(E5, C10:F20, 2, FALSE)",
		"=D4*E4+F4",
		`=IF(C3>0, "yes", "no")`,
	}
	pairs := []struct{ origin, target CellRef }{
		{Ref(1, 1), Ref(2, 2)},
		{Ref(3, 3), Ref(1, 1)},
		{Ref(3, 1), Ref(3, 9)},
		{Ref(2, 2), Ref(4, 1)},
	}

	for _, f := range formulas {
		for _, p := range pairs {
			there := TranslateFormula(f, p.origin, p.target)
			back := TranslateFormula(there, p.target, p.origin)
			assert.Equal(t, f, back, "formula %q via %s->%s", f, p.origin, p.target)
		}
	}
}

func TestTranslateFormulaAbsoluteIdentity(t *testing.T) {
	formula := "=$B$2+SUM($C$1:$C$9)"
	for _, target := range []CellRef{Ref(1, 1), Ref(50, 3), Ref(7, 40)} {
		assert.Equal(t, formula, TranslateFormula(formula, Ref(4, 4), target))
	}
}

func TestTranslateFormulaPreservesTokenOrder(t *testing.T) {
	got := TranslateFormula("=A1+B2-C3/D4", Ref(1, 1), Ref(2, 2))
	assert.Equal(t, "=B2+C3-D4/E5", got)
}

func TestBookSetAndGetFormula(t *testing.T) {
	b := New()
	defer b.Close()

	require.NoError(t, b.SetFormula(1, 1, "=SUM(A1:A5)"))
	f, err := b.Formula(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "=SUM(A1:A5)", f)

	// Cells without formulas read as empty.
	f, err = b.Formula(9, 9)
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestBookCopyFormula(t *testing.T) {
	b := New()
	defer b.Close()

	require.NoError(t, b.SetFormula(1, 1, "=SUM(A1:A5)"))
	require.NoError(t, b.CopyFormula(1, 1, 2, 2))

	f, err := b.Formula(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "=SUM(B2:B6)", f)
}

func TestBookCopyFormulaNonFormulaSourceIsNoop(t *testing.T) {
	b := New()
	defer b.Close()

	require.NoError(t, b.SetCell(1, 1, "Hello"))
	require.NoError(t, b.CopyFormula(1, 1, 2, 2))

	f, err := b.Formula(2, 2)
	require.NoError(t, err)
	assert.Empty(t, f)

	v, err := b.Cell(2, 2)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestBookCopyFormulaBadCoords(t *testing.T) {
	b := New()
	defer b.Close()

	err := b.CopyFormula(0, 1, 2, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = b.CopyFormula(1, 1, 0, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
