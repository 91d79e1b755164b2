package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oxygenmaze/pkg/engine/world"
)

func TestProject_OriginIsCentre(t *testing.T) {
	c := NewCamera()
	x, y, ok := c.Project(world.Vec3{}, 800, 600)
	assert.True(t, ok)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
}

func TestProject_AxesAndScale(t *testing.T) {
	c := NewCamera()
	ppu := c.PixelsPerUnit(world.Vec3{}, 600)
	want := 300 / (10 * math.Tan(37.5*math.Pi/180))
	assert.InDelta(t, want, ppu, 1e-9)

	x, y, ok := c.Project(world.Vec3{X: 1, Y: 1}, 800, 600)
	assert.True(t, ok)
	assert.InDelta(t, 400+ppu, x, 1e-9, "+X goes right")
	assert.InDelta(t, 300-ppu, y, 1e-9, "+Y goes up")
}

func TestProject_ClipsBehindCamera(t *testing.T) {
	c := NewCamera()
	_, _, ok := c.Project(world.Vec3{Z: 10}, 800, 600)
	assert.False(t, ok)
	_, _, ok = c.Project(world.Vec3{Z: 20}, 800, 600)
	assert.False(t, ok)
	_, _, ok = c.Project(world.Vec3{Z: -2000}, 800, 600)
	assert.False(t, ok)
}

func TestStarFieldRotate_Wraps(t *testing.T) {
	sf := &StarField{Points: []world.Vec3{{X: 1}}}
	sf.Rotate(math.Pi / 2)
	p := sf.WorldPoint(0)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, -1, p.Z, 1e-12)

	sf.Rotate(2 * math.Pi)
	assert.InDelta(t, math.Pi/2, sf.Rotation, 1e-12)
}
