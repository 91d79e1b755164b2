// Package scene turns a loaded maze into positioned visual objects: the
// retained scene that renderers draw and gameplay mutates.
package scene

import (
	"image/color"

	"oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/engine/world"
)

// ObjectKind identifies what an object represents in the game
type ObjectKind int

const (
	KindWall ObjectKind = iota
	KindPlayer
	KindPickup
)

// String returns the string representation of an object kind
func (k ObjectKind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindPlayer:
		return "Player"
	case KindPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// ShapeKind is the geometry used to draw an object
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCylinder
)

// Shape describes an object's geometry in world units.
// Boxes use Width/Height/Depth, spheres use Radius, cylinders use Radius
// and Height with the axis along world Y.
type Shape struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Depth  float64
	Radius float64
}

// Object is a positioned visual in the scene
type Object struct {
	ID       int
	Kind     ObjectKind
	Position world.Vec3
	Shape    Shape
	Color    color.RGBA

	// Cell is the grid cell the object was built from
	Cell world.Cell
}

// Player is a controllable avatar
type Player struct {
	// Index is zero-based; the user-facing number is Index+1
	Index    int
	Object   *Object
	Bindings input.PlayerBindings
}

// Number returns the 1-based player number
func (p *Player) Number() int {
	return p.Index + 1
}

// Position returns the player's current world position
func (p *Player) Position() world.Vec3 {
	return p.Object.Position
}

// SetPosition moves the player's visual
func (p *Player) SetPosition(v world.Vec3) {
	p.Object.Position = v
}

// Scene holds every object created for a session
type Scene struct {
	Background color.RGBA

	Objects []*Object
	Walls   []*Object
	Players []*Player
	Pickup  *Object

	// Stars is the decorative particle field; nil when disabled
	Stars *StarField

	// Grid is the map the scene was built from
	Grid *world.Grid

	wallPositions []world.Vec3
}

// Add inserts an object into the scene and assigns its ID
func (s *Scene) Add(o *Object) {
	o.ID = len(s.Objects)
	s.Objects = append(s.Objects, o)
}

// WallPositions returns the centre of every wall. Walls never move, so the
// slice is built once.
func (s *Scene) WallPositions() []world.Vec3 {
	if len(s.wallPositions) != len(s.Walls) {
		s.wallPositions = make([]world.Vec3, len(s.Walls))
		for i, w := range s.Walls {
			s.wallPositions[i] = w.Position
		}
	}
	return s.wallPositions
}

// PlayerPositions returns each player's current position, by index
func (s *Scene) PlayerPositions() []world.Vec3 {
	out := make([]world.Vec3, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Position()
	}
	return out
}
