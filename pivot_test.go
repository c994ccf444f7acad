package excelhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPivotTable(t *testing.T) {
	b := New()
	defer b.Close()

	rows := [][]any{{"Month", "Region", "Sales"}}
	months := []string{"Jan", "Feb", "Mar"}
	regions := []string{"East", "West"}
	for i, m := range months {
		for j, r := range regions {
			rows = append(rows, []any{m, r, (i + 1) * (j + 2) * 100})
		}
	}
	require.NoError(t, b.SetRange(1, 1, rows))

	err := b.AddPivotTable(PivotConfig{
		DataRange:  "Sheet1!A1:C7",
		PivotRange: "Sheet1!E1:L12",
		Rows:       []string{"Month"},
		Columns:    []string{"Region"},
		Values:     []PivotValueField{{Column: "Sales", Subtotal: "Sum"}},
	})
	require.NoError(t, err)

	pivots, err := b.File().GetPivotTables(b.ActiveSheet())
	require.NoError(t, err)
	require.Len(t, pivots, 1)
}

func TestAddPivotTableRejectsBadConfig(t *testing.T) {
	b := New()
	defer b.Close()

	err := b.AddPivotTable(PivotConfig{})
	assert.Error(t, err)

	err = b.AddPivotTable(PivotConfig{
		DataRange:  "Sheet1!A1:C7",
		PivotRange: "Sheet1!E1:L12",
	})
	assert.Error(t, err) // no value fields
}
