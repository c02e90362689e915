//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/raypp2/LED-Ear-Wings/internal/core"
)

// GridPainter keeps a single image of the bounding rectangle, one pixel per
// position, and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h rectangle.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the buffer into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *core.Buffer, palette []color.RGBA, hole color.RGBA, scale int) {
	if s := b.Size(); s.W != gp.w || s.H != gp.h {
		return
	}
	FillRGBA(gp.buf, b, palette, hole)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
