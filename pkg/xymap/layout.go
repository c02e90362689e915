package xymap

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-errors/errors"
)

// Wiring is the order in which the LED strip runs through the rows.
type Wiring int

const (
	// Progressive wiring runs every row left to right.
	Progressive Wiring = iota
	// Serpentine wiring alternates, odd rows run right to left.
	Serpentine
)

func (w Wiring) String() string {
	switch w {
	case Progressive:
		return "progressive"
	case Serpentine:
		return "serpentine"
	}
	return fmt.Sprintf("Wiring(%d)", int(w))
}

// ParseWiring accepts the names returned by Wiring.String.
func ParseWiring(s string) (Wiring, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "progressive", "":
		return Progressive, nil
	case "serpentine", "zigzag":
		return Serpentine, nil
	}
	return Progressive, errors.Errorf("xymap: unknown wiring %q", s)
}

// maxSlots is the number of buffer slots an 8-bit index can address.
const maxSlots = 256

// Layout is an immutable lookup table for one irregular matrix. It is safe
// for concurrent use.
type Layout struct {
	w, h    uint8
	visible int
	table   []uint8
	coords  [][2]uint8
}

// NewLayout numbers the visible positions of m in wiring order starting at
// zero, then gives every hole its own index, row by row, after the last
// visible LED.
func NewLayout(m Mask, wiring Wiring) (*Layout, error) {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 {
		return nil, errors.New(ErrEmptyLayout)
	}
	if w > 255 || h > 255 || w*h > maxSlots {
		return nil, errors.Errorf("%w: %dx%d", ErrLayoutTooLarge, w, h)
	}

	table := make([]uint8, w*h)
	next := 0
	for y := 0; y < h; y++ {
		for i := 0; i < w; i++ {
			x := i
			if wiring == Serpentine && y%2 == 1 {
				x = w - 1 - i
			}
			if m.At(x, y) {
				table[y*w+x] = uint8(next)
				next++
			}
		}
	}
	visible := next
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.At(x, y) {
				table[y*w+x] = uint8(next)
				next++
			}
		}
	}
	return newLayout(uint8(w), uint8(h), visible, table)
}

// FromTable adopts an existing lookup table whose indices below visible are
// displayed LEDs. The table is copied.
func FromTable(w, h uint8, visible int, table []uint8) (*Layout, error) {
	return newLayout(w, h, visible, append([]uint8(nil), table...))
}

var reference = sync.OnceValue(func() *Layout {
	l, err := FromTable(Width, Height, int(LastVisibleLED)+1, table[:])
	if err != nil {
		panic(err)
	}
	return l
})

// Reference returns the layout of the ear wing, backed by the same table as
// XY.
func Reference() *Layout { return reference() }

func newLayout(w, h uint8, visible int, table []uint8) (*Layout, error) {
	if err := Validate(w, h, visible, table); err != nil {
		return nil, err
	}
	l := &Layout{w: w, h: h, visible: visible, table: table, coords: make([][2]uint8, len(table))}
	for i, idx := range table {
		l.coords[idx] = [2]uint8{uint8(i % int(w)), uint8(i / int(w))}
	}
	Logger().Debug("xymap: layout ready",
		"width", w, "height", h, "visible", visible, "holes", l.Holes())
	return l, nil
}

// Validate checks that table is a bijection from the w*h rectangle onto
// [0, w*h) and that the buffer, overflow slot included, fits 8-bit indices.
func Validate(w, h uint8, visible int, table []uint8) error {
	if w == 0 || h == 0 {
		return errors.New(ErrEmptyLayout)
	}
	n := int(w) * int(h)
	if len(table) != n {
		return errors.Errorf("%w: got %d entries, want %d", ErrTableSize, len(table), n)
	}
	if visible < 1 || visible > n {
		return errors.Errorf("%w: %d of %d", ErrVisibleCount, visible, n)
	}
	if bufferLen(n, visible) > maxSlots {
		return errors.Errorf("%w: %d slots", ErrLayoutTooLarge, bufferLen(n, visible))
	}
	var seen [maxSlots]bool
	for i, idx := range table {
		if int(idx) >= n {
			return errors.Errorf("%w: %d at (%d,%d)", ErrIndexRange, idx, i%int(w), i/int(w))
		}
		if seen[idx] {
			return errors.Errorf("%w: %d at (%d,%d)", ErrDuplicateIndex, idx, i%int(w), i/int(w))
		}
		seen[idx] = true
	}
	return nil
}

// bufferLen leaves room for the overflow slot when there are no holes.
func bufferLen(n, visible int) int {
	if visible == n {
		return n + 1
	}
	return n
}

// Index returns the buffer index for (x, y). Coordinates outside the
// rectangle return Overflow.
func (l *Layout) Index(x, y uint8) uint8 {
	if x >= l.w || y >= l.h {
		return l.Overflow()
	}
	return l.table[int(y)*int(l.w)+int(x)]
}

// Width returns the number of columns.
func (l *Layout) Width() uint8 { return l.w }

// Height returns the number of rows.
func (l *Layout) Height() uint8 { return l.h }

// Visible returns the number of physical LEDs.
func (l *Layout) Visible() int { return l.visible }

// Holes returns the number of positions without an LED.
func (l *Layout) Holes() int { return len(l.table) - l.visible }

// LastVisible returns the highest displayed index.
func (l *Layout) LastVisible() uint8 { return uint8(l.visible - 1) }

// Overflow is the slot shared by all out of range coordinates. It is the
// first hidden slot, so it coincides with the lowest numbered hole.
func (l *Layout) Overflow() uint8 { return uint8(l.visible) }

// BufferLen is the minimum length of a buffer indexed through l.
func (l *Layout) BufferLen() int { return bufferLen(len(l.table), l.visible) }

// IsVisible reports whether i is a displayed LED.
func (l *Layout) IsVisible(i uint8) bool { return int(i) < l.visible }

// OnLayout reports whether (x, y) addresses a physical LED.
func (l *Layout) OnLayout(x, y uint8) bool { return l.IsVisible(l.Index(x, y)) }

// Coord returns the position that maps to index i. ok is false for the
// overflow slot of a layout without holes and for indices past the table.
func (l *Layout) Coord(i uint8) (x, y uint8, ok bool) {
	if int(i) >= len(l.coords) {
		return 0, 0, false
	}
	c := l.coords[i]
	return c[0], c[1], true
}

// Table returns a copy of the lookup table.
func (l *Layout) Table() []uint8 { return append([]uint8(nil), l.table...) }

func (l *Layout) String() string {
	return fmt.Sprintf("%dx%d layout, %d visible, %d holes", l.w, l.h, l.visible, l.Holes())
}
