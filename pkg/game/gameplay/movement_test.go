package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/scene"
)

// makeOpenSession builds a session on a small open room: P at (2,1),
// J at (2,5) and the tank at (4,3) of a 6x7 walled grid.
func makeOpenSession(t *testing.T, notify Notifier) *Session {
	t.Helper()
	require.NoError(t, i18n.SetLocale(i18n.DefaultLocale))
	setup := DefaultSetup()
	setup.Rows = []string{
		"1111111",
		"1000001",
		"1P000J1",
		"1000001",
		"100O001",
		"1111111",
	}
	setup.Scene.StarCount = 0
	setup.Session.Notifier = notify
	sess, err := BuildSession(setup)
	require.NoError(t, err)
	return sess
}

func TestCandidate(t *testing.T) {
	assert.Equal(t, world.Vec3{X: 1, Y: 2.5}, Candidate(world.Vec3{X: 1, Y: 2}, world.North))
	assert.Equal(t, world.Vec3{X: 0.5, Y: 2}, Candidate(world.Vec3{X: 1, Y: 2}, world.West))
}

func TestTryMove_BlockedLeavesPosition(t *testing.T) {
	p := &scene.Player{Object: &scene.Object{Position: world.Vec3{X: 0, Y: 0}}}
	walls := []world.Vec3{{X: 0, Y: 1}}

	moved := TryMove(p, world.North, walls, world.NewPointRadius())
	assert.False(t, moved)
	assert.Equal(t, world.Vec3{}, p.Position())

	moved = TryMove(p, world.South, walls, world.NewPointRadius())
	assert.True(t, moved)
	assert.Equal(t, world.Vec3{Y: -0.5}, p.Position())
}

func TestHandleKey_MovesOnlyBoundPlayer(t *testing.T) {
	sess := makeOpenSession(t, nil)
	players := sess.Game.Scene.Players
	p1, p2 := players[0].Position(), players[1].Position()

	sess.HandleKey("w")
	assert.Equal(t, p1, players[0].Position(), "w must not move player one")
	assert.Equal(t, p2.Add(world.Vec3{Y: 0.5}), players[1].Position())

	p1 = players[0].Position()
	p2 = players[1].Position()

	sess.HandleKey("ArrowUp")
	assert.Equal(t, p1.Add(world.Vec3{Y: 0.5}), players[0].Position())
	assert.Equal(t, p2, players[1].Position(), "ArrowUp must not move player two")
}

func TestHandleKey_UnboundKeyChangesNothing(t *testing.T) {
	sess := makeOpenSession(t, nil)
	before := sess.Game.Scene.PlayerPositions()

	sess.HandleKey("W")
	sess.HandleKey("x")
	assert.Equal(t, before, sess.Game.Scene.PlayerPositions())
	assert.Equal(t, 2, sess.Game.KeyEvents)
}

func TestHandleKey_CollisionKeepsPosition(t *testing.T) {
	sess := makeOpenSession(t, nil)
	p := sess.Game.Scene.Players[0]
	before := p.Position()

	// Wall directly to the left of P
	sess.HandleKey("ArrowLeft")
	assert.Equal(t, before, p.Position())
	assert.Equal(t, 0, sess.Game.Moves[0])
	assert.Contains(t, sess.Game.Messages[len(sess.Game.Messages)-1], "Jugador 1")
}

func TestHandleKey_AllFourDirections(t *testing.T) {
	dirs := []struct {
		name  string
		code  string
		delta world.Vec3
	}{
		{"North", "w", world.Vec3{Y: 0.5}},
		{"South", "s", world.Vec3{Y: -0.5}},
		{"East", "d", world.Vec3{X: 0.5}},
		{"West", "a", world.Vec3{X: -0.5}},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			sess := makeOpenSession(t, nil)
			p := sess.Game.Scene.Players[1]
			// Move J into the open middle first
			sess.HandleKey("s")
			sess.HandleKey("a")
			start := p.Position()

			sess.HandleKey(d.code)
			assert.Equal(t, start.Add(d.delta), p.Position())
		})
	}
}
