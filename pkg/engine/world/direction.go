package world

// Direction represents a cardinal direction on the play plane
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Unit returns the world-space unit vector for this direction.
// North is +Y because world Y grows up the screen.
func (d Direction) Unit() Vec3 {
	switch d {
	case North:
		return Vec3{Y: 1}
	case East:
		return Vec3{X: 1}
	case South:
		return Vec3{Y: -1}
	case West:
		return Vec3{X: -1}
	default:
		return Vec3{}
	}
}
