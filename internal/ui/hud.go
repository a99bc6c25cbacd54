//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"toruslife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	runColor   = color.RGBA{R: 120, G: 210, B: 130, A: 255}
)

// HUD renders the status and speed panel to the right of the grid.
type HUD struct {
	params     core.ParameterProvider
	setter     core.IntParameterSetter
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	controlsTop  int
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided view and panel width.
func NewHUD(view core.View, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := view.(core.ParameterProvider); ok {
		h.params = provider
		h.snapshot = provider.Parameters()
	}
	if provider, ok := view.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls())
		h.controlsTop = infoTop + len(h.snapshot.Params)*infoHeight + infoHeight/2
		layoutControls(h.controls, h.width, h.controlsTop)
	}
	if setter, ok := view.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles clicks on the -/+ buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.params == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.params.Parameters()
	refreshControlValues(h.controls, h.snapshot)
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		direction := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			direction = -1
		case pointInRect(px, my, state.plusRect):
			direction = 1
		default:
			continue
		}
		if target, changed := adjustTarget(state.control, state.value, direction); changed {
			if h.setter.SetIntParameter(state.control.Key, target) {
				state.value = target
			}
		}
		return
	}
}

// Draw paints the HUD panel at offsetX, spanning the grid height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawInfo()
	h.drawControls()
	h.drawHelp(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawInfo() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i, param := range h.snapshot.Params {
		y := infoTop + i*infoHeight + labelBaseline/2
		text.Draw(h.panel, param.Label, face, panelPadding, y, dimColor)
		valueColor := textColor
		if param.Key == "mode" && param.Value == core.ModeRunning.String() {
			valueColor = runColor
		}
		bounds := text.BoundString(face, param.Value)
		text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+labelBaseline, textColor)
		_, canDown := adjustTarget(state.control, state.value, -1)
		_, canUp := adjustTarget(state.control, state.value, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}
}

func (h *HUD) drawHelp(height int) {
	face := basicfont.Face7x13
	top := height - panelPadding - len(helpLines)*infoHeight
	for i, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, top+(i+1)*infoHeight, dimColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
