package world

import "math"

// Collision defaults, in world units
const (
	DefaultPlayerRadius    = 0.6
	DefaultWallHalfExtent  = 0.3
	DefaultCollisionRadius = DefaultPlayerRadius + DefaultWallHalfExtent

	// WallSize is the edge length of a wall block
	WallSize = 1.0
)

// Collider decides whether a candidate position overlaps any wall.
// Wall positions are the centres of unit wall blocks.
type Collider interface {
	Collides(candidate Vec3, walls []Vec3) bool
}

// PointRadius treats walls as points: a candidate collides when it lies
// strictly closer than Radius to any wall centre (measured on the play plane).
type PointRadius struct {
	Radius float64
}

// NewPointRadius returns the point collider with the default radius
func NewPointRadius() PointRadius {
	return PointRadius{Radius: DefaultCollisionRadius}
}

// Collides implements Collider
func (p PointRadius) Collides(candidate Vec3, walls []Vec3) bool {
	for _, w := range walls {
		if candidate.PlanarDistanceTo(w) < p.Radius {
			return true
		}
	}
	return false
}

// BoxCircle treats walls as axis-aligned unit boxes and the player as a
// circle of PlayerRadius. Touching a box edge is not a collision.
type BoxCircle struct {
	PlayerRadius float64
}

// NewBoxCircle returns the box collider sized to the rendered player sphere
func NewBoxCircle() BoxCircle {
	return BoxCircle{PlayerRadius: 0.5}
}

// Collides implements Collider
func (b BoxCircle) Collides(candidate Vec3, walls []Vec3) bool {
	const half = WallSize / 2
	for _, w := range walls {
		nx := clamp(candidate.X, w.X-half, w.X+half)
		ny := clamp(candidate.Y, w.Y-half, w.Y+half)
		if math.Hypot(candidate.X-nx, candidate.Y-ny) < b.PlayerRadius {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
