// Package renderer holds what every rendering backend shares: the backend
// interface, per-frame scene animation and message markup.
package renderer

import (
	"oxygenmaze/pkg/game/scene"
)

// AdvanceFrame applies one display refresh worth of animation to the scene.
// Backends call it exactly once per frame regardless of game phase.
func AdvanceFrame(s *scene.Scene) {
	if s == nil || s.Stars == nil {
		return
	}
	s.Stars.Rotate(scene.StarRotationStep)
}
