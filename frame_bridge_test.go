package excelhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulgurujala/excel-helper/frame"
)

func TestWriteAndReadFrame(t *testing.T) {
	b := New()
	defer b.Close()

	f := frame.New("Product", "Quantity")
	require.NoError(t, f.Append([]any{"Apple", 10}))
	require.NoError(t, f.Append([]any{"Banana", 15}))

	require.NoError(t, b.WriteFrame(f, 1, 1))

	// Header row lands first, records follow.
	v, err := b.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Product", v)
	v, err = b.Cell(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "15", v)

	got, err := b.ReadFrame(1, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Product", "Quantity"}, got.Columns())
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []any{"Apple", "10"}, got.Record(0))
}

func TestWriteFrameBadCoords(t *testing.T) {
	b := New()
	defer b.Close()

	err := b.WriteFrame(frame.New("a"), 0, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReadFrameEmptyRange(t *testing.T) {
	b := New()
	defer b.Close()

	// A frame read from untouched cells has empty-string labels but the
	// right shape.
	f, err := b.ReadFrame(1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 2, f.Width())
}
