package renderer

import (
	"fmt"
	"strings"

	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/scene"
	"oxygenmaze/pkg/game/state"
)

// ControlLines returns one marked-up line per player naming their keys
func ControlLines(s *scene.Scene) []string {
	lines := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		lines = append(lines, fmt.Sprintf(i18n.Get("PLAYER_CONTROLS"), p.Number(), strings.Join(p.Bindings.Codes(), " ")))
	}
	return lines
}

// StatusLine is shown under the message log: the acknowledge hint while a
// notification is pending, the quit hint after a win, nothing otherwise.
func StatusLine(g *state.Game, notifying bool) string {
	switch {
	case notifying:
		return i18n.Get("ACKNOWLEDGE")
	case !g.IsPlaying():
		return i18n.Get("GAME_OVER")
	default:
		return ""
	}
}
