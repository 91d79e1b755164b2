package scene

import (
	"math"

	"oxygenmaze/pkg/engine/world"
)

// Camera defaults
const (
	DefaultFovY = 75.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
	DefaultEyeZ = 10.0
)

// Camera is a perspective camera looking down -Z with +Y up
type Camera struct {
	Position world.Vec3
	FovY     float64 // vertical field of view in degrees
	Near     float64
	Far      float64
}

// NewCamera returns the default camera, ten units in front of the maze
func NewCamera() *Camera {
	return &Camera{
		Position: world.Vec3{Z: DefaultEyeZ},
		FovY:     DefaultFovY,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

func (c *Camera) focal() float64 {
	return 1 / math.Tan(c.FovY*math.Pi/360)
}

// Project maps a world point onto a surface of width x height pixels.
// ok is false when the point is outside the near/far range.
func (c *Camera) Project(p world.Vec3, width, height int) (x, y float64, ok bool) {
	v := p.Sub(c.Position)
	depth := -v.Z
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}

	aspect := float64(width) / float64(height)
	f := c.focal()
	ndcX := f / aspect * v.X / depth
	ndcY := f * v.Y / depth

	x = (ndcX + 1) / 2 * float64(width)
	y = (1 - ndcY) / 2 * float64(height)
	return x, y, true
}

// PixelsPerUnit returns how many pixels one world unit spans at the depth
// of p, for a surface of the given height.
func (c *Camera) PixelsPerUnit(p world.Vec3, height int) float64 {
	depth := c.Position.Z - p.Z
	if depth <= 0 {
		return 0
	}
	return c.focal() / depth * float64(height) / 2
}
