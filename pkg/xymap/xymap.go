// Package xymap translates (x, y) coordinates on the ear wing LED matrix into
// indices of the linear LED buffer.
//
// The wing is not a full rectangle. It is described by an 8x11 bounding
// rectangle in which some positions have no LED ("holes"):
//
//	     0  1  2  3  4  5  6  7
//	 0 |  0  1  2  3  4  5  .  .
//	 1 |  6  7  8  9 10  .  .  .
//	 2 | 11 12 13 14 15  .  .  .
//	 3 | 16 17 18 19 20  .  .  .
//	 4 | 21 22 23 24 25  .  .  .
//	 5 | 26 27 28 29 30 31  .  .
//	 6 | 32 33 34 35 36 37 38  .
//	 7 | 39 40 41 42 43 44 45 46
//	 8 | 47 48 49 50 51 52 53  .
//	 9 | 54 55 56 57 58  .  .  .
//	10 | 59 60 61 62  .  .  .  .
//
// Holes get their own indices after the last visible LED, so writing to them
// is allowed and the data is retained, it is just never displayed. Every
// coordinate outside the rectangle maps to the first hidden slot, which makes
// it safe to write leds[XY(x, y)] without checking x or y first.
package xymap

const (
	// Width is the number of columns of the bounding rectangle.
	Width uint8 = 8
	// Height is the number of rows of the bounding rectangle.
	Height uint8 = 11

	// NumLEDs is the number of buffer slots the table addresses, holes included.
	NumLEDs = int(Width) * int(Height)

	// LastVisibleLED is the highest index that corresponds to a physical LED.
	LastVisibleLED uint8 = 62

	// OverflowLED is returned for every coordinate outside the rectangle. It
	// is the first hidden slot.
	OverflowLED = LastVisibleLED + 1
)

// table is indexed by y*Width + x. The lookup is much smaller and faster than
// working the irregular outline out with arithmetic on every pixel.
var table = [NumLEDs]uint8{
	0, 1, 2, 3, 4, 5, 63, 64,
	6, 7, 8, 9, 10, 65, 66, 67,
	11, 12, 13, 14, 15, 68, 69, 70,
	16, 17, 18, 19, 20, 71, 72, 73,
	21, 22, 23, 24, 25, 74, 75, 76,
	26, 27, 28, 29, 30, 31, 77, 78,
	32, 33, 34, 35, 36, 37, 38, 79,
	39, 40, 41, 42, 43, 44, 45, 46,
	47, 48, 49, 50, 51, 52, 53, 80,
	54, 55, 56, 57, 58, 81, 82, 83,
	59, 60, 61, 62, 84, 85, 86, 87,
}

// XY returns the LED index for the given coordinates. Out of bounds
// coordinates return OverflowLED.
func XY(x, y uint8) uint8 {
	if x >= Width || y >= Height {
		return OverflowLED
	}
	return table[int(y)*int(Width)+int(x)]
}

// OnLayout reports whether (x, y) addresses a physical LED.
func OnLayout(x, y uint8) bool { return XY(x, y) <= LastVisibleLED }

// Visible reports whether index i is a displayed LED.
func Visible(i uint8) bool { return i <= LastVisibleLED }

// Table returns a copy of the reference lookup table.
func Table() [NumLEDs]uint8 { return table }
