package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/renderer"
)

// styleColor maps a markup style to its HUD colour
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleAction:
		return colorAction
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleWin:
		return colorWin
	default:
		return colorText
	}
}

// drawMarkup draws a marked-up line with its top-left corner at (x, y),
// scaling every segment's alpha.
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, msg string, x, y float64, face *text.GoTextFace, alpha float32) {
	for _, seg := range renderer.ParseMarkup(msg) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(styleColor(seg.Style))
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, seg.Text, face, op)
		x += text.Advance(seg.Text, face)
	}
}

// measureMarkup returns the drawn width of a marked-up line
func measureMarkup(msg string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(renderer.StripMarkup(msg), face, 0)
	return w
}

// drawHUD draws the controls in the top-left corner and the message log in
// the bottom-left corner
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, w, h int) {
	face := e.getUIFontFace()
	lineHeight := face.Size * 1.4
	g := e.session.Game

	y := float64(hudMargin)
	for _, line := range renderer.ControlLines(g.Scene) {
		e.drawMarkup(screen, line, hudMargin, y, face, 1)
		y += lineHeight
	}

	lines := append([]string{}, g.Messages...)
	if status := renderer.StatusLine(g, e.modal.open); status != "" {
		lines = append(lines, status)
	}
	y = float64(h) - hudMargin - lineHeight*float64(len(lines))
	for _, line := range lines {
		e.drawMarkup(screen, line, hudMargin, y, face, 1)
		y += lineHeight
	}
}

// drawModal draws the win notification centred on a dimmed screen
func (e *EbitenRenderer) drawModal(screen *ebiten.Image, w, h int) {
	alpha := e.modal.alpha
	title := e.getTitleFontFace()
	body := e.getUIFontFace()
	hint := i18n.Get("ACKNOWLEDGE")

	titleW, titleH := text.Measure(e.modal.msg, title, 0)
	hintW := measureMarkup(hint, body)

	panelW := float32(max(titleW, hintW)) + 80
	panelH := float32(titleH+body.Size) + 80
	px := (float32(w) - panelW) / 2
	py := (float32(h) - panelH) / 2

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fade(color.RGBA{0, 0, 0, 140}, alpha), false)
	vector.DrawFilledRect(screen, px, py, panelW, panelH, fade(colorPanelBackground, alpha), false)
	vector.StrokeRect(screen, px, py, panelW, panelH, 2, fade(colorModalBorder, alpha), false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2-titleW/2, float64(py)+30)
	op.ColorScale.ScaleWithColor(colorWin)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, e.modal.msg, title, op)

	e.drawMarkup(screen, hint, float64(w)/2-hintW/2, float64(py)+30+titleH+10, body, alpha)
}

// fade returns c with its alpha scaled; RGBA is premultiplied so every
// channel scales
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{a(c.R), a(c.G), a(c.B), a(c.A)}
}
