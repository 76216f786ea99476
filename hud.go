package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/portalgun/common"
	"github.com/milk9111/portalgun/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const instructionsText = `Move: A / D    Jump: Space
Aim with the mouse. Hold Shift if aiming requires it.
Left click: capture or release. Right click: use the other capture mode.
Q: toggle capture mode    E: toggle preview mode
Portals carry boxes and projectiles to their partner.
Reach the green zone to finish the level.

Click to start.`

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 16
	ebtext.Draw(screen, s, hudFace, op)
}

func drawModeLine(screen *ebiten.Image, capture component.CaptureMode, preview component.PreviewMode) {
	line := fmt.Sprintf("%s  |  %s  |  Esc: pause", captureLabel(capture), previewLabel(preview))
	drawText(screen, line, 12, common.BaseHeight-24, colornames.White)
}

func drawInstructions(screen *ebiten.Image) {
	const w, h = 560, 160
	x := float32(common.BaseWidth-w) / 2
	y := float32(common.BaseHeight-h) / 2
	vector.FillRect(screen, x, y, w, h, color.NRGBA{A: 210}, false)
	drawText(screen, instructionsText, float64(x)+20, float64(y)+16, colornames.White)
}

func drawWin(screen *ebiten.Image) {
	const w, h = 320, 64
	x := float32(common.BaseWidth-w) / 2
	y := float32(common.BaseHeight-h) / 3
	vector.FillRect(screen, x, y, w, h, color.NRGBA{A: 210}, false)
	drawText(screen, "Level complete!\nPress R to play again.", float64(x)+24, float64(y)+16, colornames.Lime)
}

func captureLabel(m component.CaptureMode) string {
	return "Capture: " + m.String()
}

func previewLabel(m component.PreviewMode) string {
	return "Preview: " + m.String()
}
