package gameplay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	engineinput "oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/game/i18n"
)

// HandleInput is the dispatcher callback
func (s *Session) HandleInput(ev engineinput.DebouncedInput) {
	s.HandleKey(ev.Code)
}

// HandleKey processes one key press: every player bound to the key tries a
// single step, then the win condition is checked whether or not the key is
// bound. Once a player has won, movement and win checks are skipped.
func (s *Session) HandleKey(code string) {
	g := s.Game
	g.KeyEvents++
	s.log.WithFields(logrus.Fields{
		"key":   code,
		"bound": s.bindings.IsBound(code),
	}).Debug("key pressed")

	intents := s.bindings.MapToIntents(engineinput.DebouncedInput{Code: code})
	for _, intent := range intents {
		if intent.Action == engineinput.ActionQuit {
			s.quit = true
			return
		}
	}

	if !g.IsPlaying() {
		return
	}

	walls := g.Scene.WallPositions()
	for _, intent := range intents {
		dir, ok := intent.Action.Direction()
		if !ok || intent.Player < 0 || intent.Player >= len(g.Scene.Players) {
			continue
		}

		p := g.Scene.Players[intent.Player]
		from := p.Position()
		entry := s.log.WithFields(logrus.Fields{
			"player":    p.Number(),
			"action":    engineinput.ActionName(intent.Action),
		})

		if TryMove(p, dir, walls, s.collider) {
			g.Moves[p.Index]++
			entry.WithField("position", fmt.Sprintf("%.1f,%.1f", p.Position().X, p.Position().Y)).Debug("player moved")
		} else {
			g.AddMessage(fmt.Sprintf(i18n.Get("PLAYER_BLOCKED"), p.Number()))
			entry.WithField("position", fmt.Sprintf("%.1f,%.1f", from.X, from.Y)).Debug("move blocked")
		}
	}

	s.checkWin()
}
