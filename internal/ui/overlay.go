//go:build ebiten

package ui

import (
	"image/color"

	"toruslife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the cell grid lines on top of the simulation.
type Overlay struct {
	side  int
	lines []int
	show  bool
	color color.Color
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for an n×n grid drawn at scale.
func NewOverlay(n, scale int, show bool) *Overlay {
	o := &Overlay{
		side:  n * scale,
		lines: render.GridLines(n, scale),
		show:  show,
		color: render.LineColor,
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the lines with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.side <= 0 {
		return
	}
	for _, offset := range o.lines {
		// The closing line sits on the last pixel row/column.
		if offset >= o.side {
			offset = o.side - 1
		}
		o.fillRect(screen, offset, 0, 1, o.side)
		o.fillRect(screen, 0, offset, o.side, 1)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(o.color)
	screen.DrawImage(o.pixel, op)
}
