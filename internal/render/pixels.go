package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/go-errors/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/raypp2/LED-Ear-Wings/internal/core"
)

// FillRGBA converts the buffer into W*H RGBA pixels in buf, one pixel per
// position of the bounding rectangle. LEDs take their colour from the palette
// entry named by their cell value, clamped to the last entry; holes are
// painted with hole. With an empty palette LEDs are transparent black.
func FillRGBA(buf []byte, b *core.Buffer, palette []color.RGBA, hole color.RGBA) {
	l := b.Layout()
	cells := b.Cells()
	w, h := int(l.Width()), int(l.Height())
	if len(buf) < 4*w*h {
		return
	}

	last := len(palette) - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col := hole
			if idx := l.Index(uint8(x), uint8(y)); l.IsVisible(idx) {
				col = color.RGBA{}
				if last >= 0 {
					c := min(int(cells[idx]), last)
					col = palette[c]
				}
			}
			base := (y*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Image renders the buffer into a new image the size of the bounding
// rectangle.
func Image(b *core.Buffer, palette []color.RGBA, hole color.RGBA) *image.RGBA {
	s := b.Size()
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	FillRGBA(img.Pix, b, palette, hole)
	return img
}

// WritePNG encodes img scaled up by scale with nearest neighbour sampling.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		r := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*scale, r.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, r, draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return errors.WrapPrefix(err, "render: encoding png", 0)
	}
	return nil
}

// Gradient returns n colours sweeping the hue circle from red to magenta, so
// neighbouring LEDs in wiring order get neighbouring hues.
func Gradient(n int) []color.RGBA {
	palette := make([]color.RGBA, n)
	for i := range palette {
		hue := 0.0
		if n > 1 {
			hue = 300 * float64(i) / float64(n-1)
		}
		r, g, b := colorful.Hsv(hue, 0.85, 1).RGB255()
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// WiringOrder fills every LED with its own index so that rendering with
// Gradient(l.Visible()) shows the order the strip runs in.
func WiringOrder(b *core.Buffer) {
	rendered := b.Rendered()
	for i := range rendered {
		rendered[i] = uint8(i)
	}
}
