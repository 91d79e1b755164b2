package scene

import (
	"image/color"
	"math/rand"

	"oxygenmaze/pkg/engine/world"
)

// StarRotationStep is the rotation applied around the vertical axis per frame
const StarRotationStep = 0.0005

// StarSize is the point size of a star in world units
const StarSize = 0.1

// StarField is a cloud of points rotating slowly around the vertical axis
type StarField struct {
	Points   []world.Vec3
	Rotation float64
	Color    color.RGBA
}

// NewStarField scatters count points uniformly in a cube of edge spread
// centred on the origin.
func NewStarField(count int, spread float64, rng *rand.Rand) *StarField {
	sf := &StarField{
		Points: make([]world.Vec3, count),
		Color:  ColorStar,
	}
	for i := range sf.Points {
		sf.Points[i] = world.Vec3{
			X: (rng.Float64() - 0.5) * spread,
			Y: (rng.Float64() - 0.5) * spread,
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return sf
}

// Rotate adds delta radians to the field's rotation, kept in [0, 2π)
func (sf *StarField) Rotate(delta float64) {
	sf.Rotation = world.WrapAngle(sf.Rotation + delta)
}

// WorldPoint returns star i after the field's rotation is applied
func (sf *StarField) WorldPoint(i int) world.Vec3 {
	return sf.Points[i].RotateY(sf.Rotation)
}

// Len returns the number of stars
func (sf *StarField) Len() int {
	return len(sf.Points)
}
