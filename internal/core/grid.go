package core

import "github.com/raypp2/LED-Ear-Wings/pkg/xymap"

// Buffer is the LED buffer of one display. It holds one byte per slot,
// holes and the overflow slot included, and is addressed through a layout so
// any (x, y) can be written without bounds checks.
//
// Buffer is not safe for concurrent writers.
type Buffer struct {
	layout *xymap.Layout
	data   []uint8
}

// NewBuffer allocates a buffer for l. A nil layout selects the ear wing.
func NewBuffer(l *xymap.Layout) *Buffer {
	if l == nil {
		l = xymap.Reference()
	}
	return &Buffer{layout: l, data: make([]uint8, l.BufferLen())}
}

// Layout returns the layout the buffer is indexed through.
func (b *Buffer) Layout() *xymap.Layout { return b.layout }

// Size returns the dimensions of the bounding rectangle.
func (b *Buffer) Size() Size {
	return Size{W: int(b.layout.Width()), H: int(b.layout.Height())}
}

// Cells exposes every slot so callers can read/write values directly.
func (b *Buffer) Cells() []uint8 { return b.data }

// Rendered returns the slots that reach a physical LED, in wiring order.
func (b *Buffer) Rendered() []uint8 { return b.data[:b.layout.Visible()] }

// Index returns the slot for coordinates (x, y).
func (b *Buffer) Index(x, y uint8) uint8 { return b.layout.Index(x, y) }

// Set writes v at (x, y). Writes outside the layout land in the overflow slot.
func (b *Buffer) Set(x, y, v uint8) { b.data[b.layout.Index(x, y)] = v }

// At reads the value at (x, y).
func (b *Buffer) At(x, y uint8) uint8 { return b.data[b.layout.Index(x, y)] }

// Clear fills the buffer with zeros.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}
