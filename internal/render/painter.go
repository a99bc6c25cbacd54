//go:build ebiten

package render

import (
	"image/color"

	"toruslife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on cell data.
type GridPainter struct {
	n     int
	img   *ebiten.Image
	buf   []byte
	cells []core.Cell
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int) *GridPainter {
	gp := &GridPainter{n: n, buf: make([]byte, 4*n*n)}
	gp.img = ebiten.NewImage(n, n)
	return gp
}

// Blit uploads the view's current generation into the painter image and
// draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, view core.View, on, off color.Color, scale int) {
	gp.cells = view.Render(gp.cells)
	if len(gp.cells) != gp.n*gp.n {
		return
	}
	fillBinaryRGBA(gp.buf, gp.cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
