package ebiten

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"oxygenmaze/pkg/engine/world"
)

// glide eases a player's drawn position toward its logical position so a
// half-unit step does not jump. Collision and win checks never see it.
type glide struct {
	pos    world.Vec3
	target world.Vec3
	tx, ty *gween.Tween
}

func newGlide(at world.Vec3) *glide {
	return &glide{pos: at, target: at}
}

// retarget starts a new tween from the current drawn position when the
// logical position has changed.
func (g *glide) retarget(to world.Vec3) {
	if to == g.target {
		return
	}
	g.target = to
	g.tx = gween.New(float32(g.pos.X), float32(to.X), glideDuration, ease.OutQuad)
	g.ty = gween.New(float32(g.pos.Y), float32(to.Y), glideDuration, ease.OutQuad)
	g.pos.Z = to.Z
}

func (g *glide) update(dt float32) {
	if g.tx != nil {
		x, done := g.tx.Update(dt)
		g.pos.X = float64(x)
		if done {
			g.pos.X = g.target.X
			g.tx = nil
		}
	}
	if g.ty != nil {
		y, done := g.ty.Update(dt)
		g.pos.Y = float64(y)
		if done {
			g.pos.Y = g.target.Y
			g.ty = nil
		}
	}
}

// modal is the blocking win notification. While open, only acknowledge
// keys reach the session.
type modal struct {
	msg   string
	open  bool
	alpha float32
	fade  *gween.Tween
}

func (m *modal) show(msg string) {
	m.msg = msg
	m.open = true
	m.alpha = 0
	m.fade = gween.New(0, 1, fadeDuration, ease.OutCubic)
}

func (m *modal) close() {
	m.open = false
	m.fade = nil
}

func (m *modal) update(dt float32) {
	if m.fade == nil {
		return
	}
	a, done := m.fade.Update(dt)
	m.alpha = a
	if done {
		m.alpha = 1
		m.fade = nil
	}
}
