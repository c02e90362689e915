package core

// Size describes the bounding rectangle of a layout.
type Size struct {
	W int
	H int
}
