// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/scene"
)

// StepSize is how far one key press moves a player, in world units
const StepSize = 0.5

// Candidate returns the position one step from pos in direction dir
func Candidate(pos world.Vec3, dir world.Direction) world.Vec3 {
	return pos.Add(dir.Unit().Scale(StepSize))
}

// TryMove moves p one step in dir unless the candidate collides with a wall.
// A blocked move leaves the position untouched; there is no sliding along
// the other axis.
func TryMove(p *scene.Player, dir world.Direction, walls []world.Vec3, collider world.Collider) bool {
	candidate := Candidate(p.Position(), dir)
	if collider.Collides(candidate, walls) {
		return false
	}
	p.SetPosition(candidate)
	return true
}
