//go:build !ebiten

package ui

import "github.com/raypp2/LED-Ear-Wings/pkg/xymap"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*xymap.Layout, int, bool) *Overlay { return &Overlay{} }

// SetLayout is a no-op in headless builds.
func (o *Overlay) SetLayout(*xymap.Layout) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
