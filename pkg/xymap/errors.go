package xymap

import "errors"

// Errors returned while building or validating a Layout. They are wrapped with
// a stack trace, so compare with errors.Is.
var (
	ErrEmptyLayout    = errors.New("xymap: layout has no rows or columns")
	ErrLayoutTooLarge = errors.New("xymap: layout does not fit 8-bit indices")
	ErrTableSize      = errors.New("xymap: table length does not match width*height")
	ErrIndexRange     = errors.New("xymap: index outside the table")
	ErrDuplicateIndex = errors.New("xymap: index used more than once")
	ErrVisibleCount   = errors.New("xymap: visible count outside the table")
	ErrRaggedMask     = errors.New("xymap: mask rows differ in length")
	ErrBadToken       = errors.New("xymap: unrecognised mask token")
)
