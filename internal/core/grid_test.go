package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

func TestBufferDefaultsToWing(t *testing.T) {
	b := NewBuffer(nil)
	assert.Len(t, b.Cells(), xymap.NumLEDs)
	assert.Len(t, b.Rendered(), int(xymap.LastVisibleLED)+1)
	assert.Equal(t, Size{W: 8, H: 11}, b.Size())
}

func TestBufferOutOfRangeWritesHitOverflowOnly(t *testing.T) {
	b := NewBuffer(nil)
	for x := 0; x <= 255; x++ {
		b.Set(uint8(x), 200, 7)
	}
	b.Set(8, 0, 9)

	for i, v := range b.Cells() {
		if uint8(i) == xymap.OverflowLED {
			assert.Equal(t, uint8(9), v)
			continue
		}
		assert.Zerof(t, v, "slot %d written", i)
	}
	assert.Equal(t, uint8(9), b.At(255, 255))
	for _, v := range b.Rendered() {
		assert.Zero(t, v)
	}
}

func TestBufferHolesRetainData(t *testing.T) {
	b := NewBuffer(nil)
	b.Set(7, 10, 42)
	assert.Equal(t, uint8(42), b.At(7, 10))
	assert.Equal(t, uint8(87), b.Index(7, 10))

	b.Set(0, 10, 5)
	assert.Equal(t, uint8(5), b.Rendered()[59])

	b.Clear()
	assert.Zero(t, b.At(7, 10))
}

func TestBufferWithoutHoles(t *testing.T) {
	m := xymap.NewMask(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			m.Set(x, y, true)
		}
	}
	l, err := xymap.NewLayout(m, xymap.Progressive)
	require.NoError(t, err)

	b := NewBuffer(l)
	assert.Len(t, b.Cells(), 5)
	assert.NotPanics(t, func() { b.Set(9, 9, 1) })
	assert.Equal(t, uint8(1), b.Cells()[4])
}
