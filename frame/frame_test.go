package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRowsAndBack(t *testing.T) {
	rows := [][]any{
		{"Product", "Quantity", "Price"},
		{"Apple", 10, 0.5},
		{"Banana", 15, 0.3},
	}

	f, err := FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"Product", "Quantity", "Price"}, f.Columns())
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, rows, f.Rows())
}

func TestFromRowsNeedsHeader(t *testing.T) {
	_, err := FromRows(nil)
	assert.Error(t, err)
}

func TestAppend(t *testing.T) {
	f := New("a", "b")

	require.NoError(t, f.Append([]any{1, 2}))
	require.NoError(t, f.Append([]any{3})) // short rows are padded
	assert.Equal(t, []any{3, nil}, f.Record(1))

	err := f.Append([]any{1, 2, 3})
	assert.Error(t, err)
}

func TestAtAndColumn(t *testing.T) {
	f := New("name", "dept")
	require.NoError(t, f.Append([]any{"Ada", "Eng"}))
	require.NoError(t, f.Append([]any{"Grace", "Ops"}))

	v, err := f.At(1, "name")
	require.NoError(t, err)
	assert.Equal(t, "Grace", v)

	col, err := f.Column("dept")
	require.NoError(t, err)
	assert.Equal(t, []any{"Eng", "Ops"}, col)

	_, err = f.At(0, "missing")
	assert.Error(t, err)
	_, err = f.Column("missing")
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	f := New("Product", "Quantity")
	require.NoError(t, f.Append([]any{"Apple", 10}))
	require.NoError(t, f.Append([]any{"Banana", 15}))

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Equal(t, f.Columns(), got.Columns())
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []any{"Apple", "10"}, got.Record(0))
	assert.Equal(t, []any{"Banana", "15"}, got.Record(1))
}

func TestWriteCSVRendersNilAsEmpty(t *testing.T) {
	f := New("a", "b")
	require.NoError(t, f.Append([]any{"x"}))

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "x,", lines[1])
}

func TestParquetRoundTrip(t *testing.T) {
	f := New("Product", "Quantity")
	require.NoError(t, f.Append([]any{"Apple", 10}))
	require.NoError(t, f.Append([]any{"Banana", 15}))

	var buf bytes.Buffer
	require.NoError(t, f.WriteParquet(&buf))

	got, err := ReadParquet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	assert.Equal(t, f.Columns(), got.Columns())
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []any{"Apple", "10"}, got.Record(0))
	assert.Equal(t, []any{"Banana", "15"}, got.Record(1))
}

func TestParquetEmptyFrame(t *testing.T) {
	f := New("a", "b")

	var buf bytes.Buffer
	require.NoError(t, f.WriteParquet(&buf))

	got, err := ReadParquet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
