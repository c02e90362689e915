//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/raypp2/LED-Ear-Wings/internal/core"
	"github.com/raypp2/LED-Ear-Wings/internal/render"
	"github.com/raypp2/LED-Ear-Wings/internal/ui"
	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

var (
	holeColor   = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	cursorColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Game shows a layout on screen: every LED tinted by its position along the
// strip, holes dark, and a cursor that can be chased along the wiring.
type Game struct {
	mask    xymap.Mask
	wiring  xymap.Wiring
	buf     *core.Buffer
	painter *render.GridPainter
	overlay *ui.Overlay
	palette []color.RGBA

	scale    int
	cursor   int
	chasing  bool
	tickOnce bool
}

// New constructs a Game for the provided layout.
func New(l *xymap.Layout, wiring xymap.Wiring, scale int, labels bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		mask:    xymap.MaskOf(l),
		wiring:  wiring,
		painter: render.NewGridPainter(int(l.Width()), int(l.Height())),
		overlay: ui.NewOverlay(l, scale, labels),
		scale:   scale,
	}
	g.setLayout(l)
	return g
}

func (g *Game) setLayout(l *xymap.Layout) {
	g.buf = core.NewBuffer(l)
	g.palette = append(render.Gradient(l.Visible()), cursorColor)
	g.cursor = 0
	g.overlay.SetLayout(l)
}

func (g *Game) toggleWiring() {
	next := xymap.Serpentine
	if g.wiring == xymap.Serpentine {
		next = xymap.Progressive
	}
	l, err := xymap.NewLayout(g.mask, next)
	if err != nil {
		return
	}
	g.wiring = next
	g.setLayout(l)
}

// Update handles per-frame input and advances the chase cursor.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.chasing = !g.chasing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cursor = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.toggleWiring()
	}

	g.overlay.Update()

	if g.chasing || g.tickOnce {
		g.cursor = (g.cursor + 1) % g.buf.Layout().Visible()
		g.tickOnce = false
	}

	render.WiringOrder(g.buf)
	g.buf.Rendered()[g.cursor] = uint8(len(g.palette) - 1)
	return nil
}

// Draw renders the buffer and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.buf, g.palette, holeColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.buf.Size()
	return s.W * g.scale, s.H * g.scale
}
