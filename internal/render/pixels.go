package render

import (
	"image/color"

	"toruslife/internal/core"
)

// Default cell palette.
var (
	AliveColor = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	DeadColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LineColor  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// fillBinaryRGBA converts cell states into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// GridLines returns the pixel offsets of the n+1 lines separating n cells of
// the given scale, starting at 0 and ending at n*scale.
func GridLines(n, scale int) []int {
	if n <= 0 || scale <= 0 {
		return nil
	}
	lines := make([]int, n+1)
	for i := range lines {
		lines[i] = i * scale
	}
	return lines
}
