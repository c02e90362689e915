package xymap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wingDrawing is the layout as drawn in the wiring notes.
const wingDrawing = `
//      0  1  2  3  4  5  6  7
//   +-------------------------
 0 |  0  1  2  3  4  5  .  .
 1 |  6  7  8  9 10  .  .  .
 2 | 11 12 13 14 15  .  .  .
 3 | 16 17 18 19 20  .  .  .
 4 | 21 22 23 24 25  .  .  .
 5 | 26 27 28 29 30 31  .  .
 6 | 32 33 34 35 36 37 38  .
 7 | 39 40 41 42 43 44 45 46
 8 | 47 48 49 50 51 52 53  .
 9 | 54 55 56 57 58  .  .  .
10| 59 60 61 62  .  .  .  .
`

func TestParseMaskDiagram(t *testing.T) {
	m, err := ParseMask(strings.NewReader(wingDrawing))
	require.NoError(t, err)
	assert.Equal(t, 8, m.Width())
	assert.Equal(t, 11, m.Height())
	assert.Equal(t, 63, m.Count())
	assert.True(t, m.Equal(MaskOf(Reference())))
}

func TestParseMaskCompactRows(t *testing.T) {
	m, err := ParseMask(strings.NewReader("; wing tip\n##..\nX.x.\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.True(t, m.At(0, 1))
	assert.False(t, m.At(1, 1))
	assert.True(t, m.At(2, 1))
	assert.False(t, m.At(9, 9))
}

func TestParseMaskErrors(t *testing.T) {
	_, err := ParseMask(strings.NewReader("\n// nothing\n"))
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = ParseMask(strings.NewReader("###\n##\n"))
	assert.ErrorIs(t, err, ErrRaggedMask)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseMask(strings.NewReader("#?#\n"))
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestFormatRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Reference()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "      0  1  2  3  4  5  6  7", lines[0])
	assert.Equal(t, "   +------------------------", lines[1])
	assert.Equal(t, " 0 |  0  1  2  3  4  5  .  .", lines[2])
	assert.Equal(t, "10 | 59 60 61 62  .  .  .  .", lines[12])

	m, err := ParseMask(&buf)
	require.NoError(t, err)
	assert.True(t, m.Equal(MaskOf(Reference())))
}

func TestMaskSetOutsideIgnored(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(5, 5, true)
	m.Set(-1, 0, true)
	assert.Equal(t, 0, m.Count())
}
