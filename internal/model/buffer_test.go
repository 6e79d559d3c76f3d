package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_LineCount(t *testing.T) {
	t.Run("empty buffer has no lines", func(t *testing.T) {
		b := NewBuffer("empty.rb", nil)

		assert.Equal(t, 0, b.LineCount())
	})

	t.Run("trailing newline does not add a line", func(t *testing.T) {
		b := NewBuffer("a.rb", []byte("one\ntwo\n"))

		assert.Equal(t, 2, b.LineCount())
	})

	t.Run("missing trailing newline keeps last line", func(t *testing.T) {
		b := NewBuffer("a.rb", []byte("one\ntwo"))

		assert.Equal(t, 2, b.LineCount())
	})
}

func TestBuffer_LineRegion(t *testing.T) {
	b := NewBuffer("a.rb", []byte("first\nsecond\n\nlast"))

	t.Run("spans exclude the terminator", func(t *testing.T) {
		region, ok := b.LineRegion(1)
		require.True(t, ok)
		assert.Equal(t, Region{Start: 0, End: 5}, region)

		region, ok = b.LineRegion(2)
		require.True(t, ok)
		assert.Equal(t, Region{Start: 6, End: 12}, region)
	})

	t.Run("blank line yields empty region", func(t *testing.T) {
		region, ok := b.LineRegion(3)
		require.True(t, ok)
		assert.Equal(t, Region{Start: 13, End: 13}, region)
	})

	t.Run("final line without newline runs to end", func(t *testing.T) {
		region, ok := b.LineRegion(4)
		require.True(t, ok)
		assert.Equal(t, Region{Start: 14, End: 18}, region)
	})

	t.Run("out of range lines report false", func(t *testing.T) {
		_, ok := b.LineRegion(0)
		assert.False(t, ok)

		_, ok = b.LineRegion(5)
		assert.False(t, ok)
	})

	t.Run("carriage return is excluded", func(t *testing.T) {
		crlf := NewBuffer("b.rb", []byte("one\r\ntwo\r\n"))

		region, ok := crlf.LineRegion(1)
		require.True(t, ok)
		assert.Equal(t, Region{Start: 0, End: 3}, region)
	})
}

func TestBuffer_Markers(t *testing.T) {
	b := NewBuffer("a.rb", []byte("first\nsecond\n"))

	region, ok := b.LineRegion(2)
	require.True(t, ok)

	id := b.CreateMarker(region, "#ffcccc")
	assert.Equal(t, MarkerID(1), id)
	assert.Equal(t, 1, b.MarkerCount())

	t.Run("marker ids keep increasing", func(t *testing.T) {
		next := b.CreateMarker(region, "#ffcccc")
		assert.Equal(t, MarkerID(2), next)
	})

	t.Run("remove all leaves zero markers", func(t *testing.T) {
		b.RemoveAllMarkers()
		assert.Equal(t, 0, b.MarkerCount())
		assert.Empty(t, b.Markers())
	})
}
