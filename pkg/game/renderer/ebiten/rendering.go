package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/scene"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	s := e.session.Game.Scene
	screen.Fill(s.Background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	e.drawStars(screen, s.Stars, w, h)

	for _, wall := range s.Walls {
		e.drawBox(screen, wall, w, h)
	}
	if s.Pickup != nil {
		e.drawCylinder(screen, s.Pickup, w, h)
	}
	for i, p := range s.Players {
		e.drawSphere(screen, e.glides[i].pos, p.Object, w, h)
	}

	e.drawHUD(screen, w, h)
	if e.modal.open {
		e.drawModal(screen, w, h)
	}
}

// drawStars draws each visible star as a small square scaled by depth
func (e *EbitenRenderer) drawStars(screen *ebiten.Image, sf *scene.StarField, w, h int) {
	if sf == nil {
		return
	}
	for i := 0; i < sf.Len(); i++ {
		p := sf.WorldPoint(i)
		x, y, ok := e.camera.Project(p, w, h)
		if !ok {
			continue
		}
		size := float32(scene.StarSize * e.camera.PixelsPerUnit(p, h))
		if size < 1 {
			size = 1
		}
		vector.DrawFilledRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, sf.Color, false)
	}
}

// drawBox draws the camera-facing side of a box with an edge outline
func (e *EbitenRenderer) drawBox(screen *ebiten.Image, o *scene.Object, w, h int) {
	x, y, ok := e.camera.Project(o.Position, w, h)
	if !ok {
		return
	}
	ppu := e.camera.PixelsPerUnit(o.Position, h)
	bw := float32(o.Shape.Width * ppu)
	bh := float32(o.Shape.Height * ppu)
	left, top := float32(x)-bw/2, float32(y)-bh/2

	vector.DrawFilledRect(screen, left, top, bw, bh, o.Color, false)
	vector.StrokeRect(screen, left, top, bw, bh, 1, colorWallEdge, false)
}

// drawCylinder draws a Y-axis cylinder seen side on: a rectangle capped by
// an ellipse approximated with a circle on top
func (e *EbitenRenderer) drawCylinder(screen *ebiten.Image, o *scene.Object, w, h int) {
	x, y, ok := e.camera.Project(o.Position, w, h)
	if !ok {
		return
	}
	ppu := e.camera.PixelsPerUnit(o.Position, h)
	r := float32(o.Shape.Radius * ppu)
	ch := float32(o.Shape.Height * ppu)

	vector.DrawFilledRect(screen, float32(x)-r, float32(y)-ch/2, 2*r, ch, o.Color, true)
	vector.StrokeCircle(screen, float32(x), float32(y)-ch/2, r/2, 1, shade(o.Color, 0.7), true)
}

// drawSphere draws a shaded disc at the glide position, not the logical one
func (e *EbitenRenderer) drawSphere(screen *ebiten.Image, at world.Vec3, o *scene.Object, w, h int) {
	x, y, ok := e.camera.Project(at, w, h)
	if !ok {
		return
	}
	r := float32(o.Shape.Radius * e.camera.PixelsPerUnit(at, h))

	vector.DrawFilledCircle(screen, float32(x), float32(y), r, o.Color, true)
	vector.DrawFilledCircle(screen, float32(x)-r/3, float32(y)-r/3, r/4, shade(o.Color, 1.6), true)
}

// shade scales a colour's brightness, clamping each channel
func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if factor > 1 && f < 64 {
			f = 64 * factor
		}
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
