package world

import "math"

// Vec3 is a position or offset in world units
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the 3D Euclidean distance between v and o
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// PlanarDistanceTo returns the distance between v and o ignoring Z
func (v Vec3) PlanarDistanceTo(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// RotateY rotates v around the vertical axis by angle radians (right-handed).
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// WrapAngle maps an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
