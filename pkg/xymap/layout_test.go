package xymap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceMatchesXY(t *testing.T) {
	l := Reference()
	require.NotNil(t, l)
	assert.Equal(t, Width, l.Width())
	assert.Equal(t, Height, l.Height())
	assert.Equal(t, 63, l.Visible())
	assert.Equal(t, 25, l.Holes())
	assert.Equal(t, LastVisibleLED, l.LastVisible())
	assert.Equal(t, OverflowLED, l.Overflow())
	assert.Equal(t, NumLEDs, l.BufferLen())

	for x := 0; x <= 255; x++ {
		for y := 0; y <= 255; y++ {
			if got, want := l.Index(uint8(x), uint8(y)), XY(uint8(x), uint8(y)); got != want {
				t.Fatalf("Index(%d,%d) = %d, XY = %d", x, y, got, want)
			}
		}
	}
}

func TestNewLayoutReproducesReference(t *testing.T) {
	l, err := NewLayout(MaskOf(Reference()), Progressive)
	require.NoError(t, err)
	ref := Table()
	assert.Equal(t, ref[:], l.Table())
}

func TestNewLayoutSerpentine(t *testing.T) {
	m, err := ParseMask(strings.NewReader(`
		###
		##.
		###
	`))
	require.NoError(t, err)

	l, err := NewLayout(m, Serpentine)
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		0, 1, 2,
		4, 3, 8,
		5, 6, 7,
	}, l.Table())
	assert.Equal(t, uint8(8), l.Overflow())
	assert.Equal(t, uint8(8), l.Index(3, 0))
	assert.Equal(t, uint8(8), l.Index(2, 1), "overflow shares the first hole slot")
}

func TestNewLayoutWithoutHolesReservesOverflowSlot(t *testing.T) {
	m := NewMask(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, true)
		}
	}
	l, err := NewLayout(m, Progressive)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Holes())
	assert.Equal(t, uint8(16), l.Overflow())
	assert.Equal(t, 17, l.BufferLen())
	assert.Less(t, int(l.Index(200, 3)), l.BufferLen())

	_, _, ok := l.Coord(16)
	assert.False(t, ok)
}

func TestNewLayoutErrors(t *testing.T) {
	_, err := NewLayout(NewMask(0, 3), Progressive)
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewLayout(NewMask(17, 16), Progressive)
	assert.ErrorIs(t, err, ErrLayoutTooLarge)

	_, err = NewLayout(NewMask(4, 4), Progressive)
	assert.ErrorIs(t, err, ErrVisibleCount, "a layout needs at least one LED")

	full := NewMask(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			full.Set(x, y, true)
		}
	}
	_, err = NewLayout(full, Progressive)
	assert.ErrorIs(t, err, ErrLayoutTooLarge, "no room left for the overflow slot")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		w, h    uint8
		visible int
		table   []uint8
		want    error
	}{
		{"ok", 2, 2, 3, []uint8{0, 1, 3, 2}, nil},
		{"empty", 0, 2, 1, nil, ErrEmptyLayout},
		{"short", 2, 2, 3, []uint8{0, 1, 2}, ErrTableSize},
		{"out of range", 2, 2, 3, []uint8{0, 1, 2, 4}, ErrIndexRange},
		{"duplicate", 2, 2, 3, []uint8{0, 1, 1, 2}, ErrDuplicateIndex},
		{"no visible", 2, 2, 0, []uint8{0, 1, 2, 3}, ErrVisibleCount},
		{"too many visible", 2, 2, 5, []uint8{0, 1, 2, 3}, ErrVisibleCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.w, tt.h, tt.visible, tt.table)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	ref := Table()
	assert.NoError(t, Validate(Width, Height, int(LastVisibleLED)+1, ref[:]))
}

func TestFromTableCopies(t *testing.T) {
	src := []uint8{0, 1, 3, 2}
	l, err := FromTable(2, 2, 3, src)
	require.NoError(t, err)
	src[0] = 3
	assert.Equal(t, uint8(0), l.Index(0, 0))

	out := l.Table()
	out[1] = 0
	assert.Equal(t, uint8(1), l.Index(1, 0))
}

func TestCoordInvertsIndex(t *testing.T) {
	l := Reference()
	for y := uint8(0); y < l.Height(); y++ {
		for x := uint8(0); x < l.Width(); x++ {
			cx, cy, ok := l.Coord(l.Index(x, y))
			require.True(t, ok)
			assert.Equal(t, [2]uint8{x, y}, [2]uint8{cx, cy})
		}
	}
	x, y, ok := l.Coord(59)
	assert.True(t, ok)
	assert.Equal(t, [2]uint8{0, 10}, [2]uint8{x, y})

	_, _, ok = l.Coord(200)
	assert.False(t, ok)
}

func TestOnLayout(t *testing.T) {
	l := Reference()
	assert.True(t, l.OnLayout(7, 7))
	assert.False(t, l.OnLayout(7, 8))
	assert.False(t, l.OnLayout(8, 7))
}

func TestParseWiring(t *testing.T) {
	w, err := ParseWiring("Serpentine")
	require.NoError(t, err)
	assert.Equal(t, Serpentine, w)
	assert.Equal(t, "serpentine", w.String())

	w, err = ParseWiring("")
	require.NoError(t, err)
	assert.Equal(t, Progressive, w)

	_, err = ParseWiring("spiral")
	assert.Error(t, err)
}

func TestLayoutConcurrentReads(t *testing.T) {
	l := Reference()
	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for y := uint8(0); y < 12; y++ {
				for x := uint8(0); x < 9; x++ {
					_ = l.Index(x, y)
				}
			}
		}()
	}
	for g := 0; g < 4; g++ {
		<-done
	}
	assert.Equal(t, uint8(0), l.Index(0, 0))
}
