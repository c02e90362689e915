//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

var (
	labelColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	infoColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	infoShadow = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Overlay draws LED indices over each cell and describes the cell under the
// mouse cursor.
type Overlay struct {
	layout *xymap.Layout
	scale  int
	labels bool

	hover   bool
	hoverX  uint8
	hoverY  uint8
	hoverIx uint8
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(l *xymap.Layout, scale int, labels bool) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{layout: l, scale: scale, labels: labels}
}

// SetLayout switches the layout being described.
func (o *Overlay) SetLayout(l *xymap.Layout) { o.layout = l }

// Update toggles labels and tracks the cell under the mouse.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.labels = !o.labels
	}

	mx, my := ebiten.CursorPosition()
	cx, cy := mx/o.scale, my/o.scale
	o.hover = mx >= 0 && my >= 0 && cx < int(o.layout.Width()) && cy < int(o.layout.Height())
	if o.hover {
		o.hoverX, o.hoverY = uint8(cx), uint8(cy)
		o.hoverIx = o.layout.Index(o.hoverX, o.hoverY)
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	if o.labels && o.scale >= 24 {
		for y := uint8(0); y < o.layout.Height(); y++ {
			for x := uint8(0); x < o.layout.Width(); x++ {
				idx := o.layout.Index(x, y)
				if !o.layout.IsVisible(idx) {
					continue
				}
				s := strconv.Itoa(int(idx))
				px := int(x)*o.scale + (o.scale-len(s)*face.Advance)/2
				py := int(y)*o.scale + (o.scale+face.Ascent)/2
				text.Draw(screen, s, face, px, py, labelColor)
			}
		}
	}

	if o.hover {
		info := fmt.Sprintf("(%d,%d) -> %d %s", o.hoverX, o.hoverY, o.hoverIx, o.kind(o.hoverIx))
		text.Draw(screen, info, face, 5, face.Height+1, infoShadow)
		text.Draw(screen, info, face, 4, face.Height, infoColor)
	}
}

func (o *Overlay) kind(idx uint8) string {
	switch {
	case o.layout.IsVisible(idx):
		return "led"
	case idx == o.layout.Overflow():
		return "hole/overflow"
	}
	return "hole"
}
