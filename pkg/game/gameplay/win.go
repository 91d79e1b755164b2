package gameplay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/scene"
)

// WinThreshold is the distance to the oxygen tank below which a player wins
const WinThreshold = 0.5

// CheckWin returns the lowest-indexed player strictly closer than
// WinThreshold to the pickup.
func CheckWin(players []*scene.Player, pickup *scene.Object) (int, bool) {
	if pickup == nil {
		return -1, false
	}
	for _, p := range players {
		if p.Position().DistanceTo(pickup.Position) < WinThreshold {
			return p.Index, true
		}
	}
	return -1, false
}

// WinMessage is the notification text for a zero-based player index
func WinMessage(player int) string {
	return fmt.Sprintf(i18n.Get("PLAYER_WINS"), player+1)
}

func (s *Session) checkWin() {
	g := s.Game
	winner, ok := CheckWin(g.Scene.Players, g.Scene.Pickup)
	if !ok {
		return
	}

	g.Win(winner)
	msg := WinMessage(winner)
	g.AddMessage("WIN{" + msg + "}")
	s.log.WithFields(logrus.Fields{
		"player":     winner + 1,
		"key_events": g.KeyEvents,
	}).Info("player reached the oxygen tank")
	s.notifier.Notify(msg)
}
