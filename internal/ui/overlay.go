//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/Leden/go-life/internal/render"
	"github.com/Leden/go-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// heatPalette maps a live-neighbor count (0..8) to a tint whose opacity grows
// with the count. Index 0 is fully transparent. Components are premultiplied
// by alpha, as ReplacePixels expects.
var heatPalette = []color.RGBA{
	{},
	{R: 8, G: 19, B: 26, A: 30},
	{R: 15, G: 39, B: 52, A: 60},
	{R: 23, G: 58, B: 79, A: 90},
	{R: 30, G: 77, B: 105, A: 120},
	{R: 38, G: 96, B: 131, A: 150},
	{R: 45, G: 116, B: 157, A: 180},
	{R: 53, G: 135, B: 184, A: 210},
	{R: 60, G: 154, B: 210, A: 240},
}

const (
	stripHeight   = 16
	stripPadding  = 6
	stripBaseline = 12
)

// Overlay draws the status strip and optional debugging visuals on top of
// the base board.
type Overlay struct {
	scale    int
	showHeat bool

	heat   *render.GridPainter
	counts []uint8

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a board of size w*h drawn at the
// given pixel scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{
		scale:  scale,
		heat:   render.NewGridPainter(w, h),
		counts: make([]uint8, w*h),
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, w life.World, st Status) {
	if o.showHeat {
		o.drawHeat(screen, w)
	}
	o.drawStatus(screen, st)
}

// drawHeat tints every dead cell by its live-neighbor count. Live cells stay
// untinted so the base board remains readable underneath.
func (o *Overlay) drawHeat(screen *ebiten.Image, w life.World) {
	size := w.Size()
	if len(o.counts) != size.W*size.H {
		return
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			pos := life.Cell{X: x, Y: y}
			idx := y*size.W + x
			if w.IsAlive(pos) {
				o.counts[idx] = 0
				continue
			}
			o.counts[idx] = uint8(w.NeighborCount(pos))
		}
	}
	o.heat.BlitPalette(screen, o.counts, heatPalette, o.scale)
}

func (o *Overlay) drawStatus(screen *ebiten.Image, st Status) {
	if o.pixel == nil {
		return
	}
	width := screen.Bounds().Dx()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(stripHeight))
	op.ColorM.Scale(0, 0, 0, 0.65)
	screen.DrawImage(o.pixel, op)

	state := "RUNNING"
	if st.Paused {
		state = "PAUSED"
	}
	line := fmt.Sprintf("%s  gen %d  pop %d  %d gps  %s",
		st.Engine, st.Generation, st.Population, st.Rate, state)
	text.Draw(screen, line, basicfont.Face7x13, stripPadding, stripBaseline,
		color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
