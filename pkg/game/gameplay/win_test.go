package gameplay

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/scene"
	"oxygenmaze/pkg/game/state"
)

func TestCheckWin_StrictThreshold(t *testing.T) {
	pickup := &scene.Object{Position: world.Vec3{}}
	player := &scene.Player{Index: 0, Object: &scene.Object{}}
	players := []*scene.Player{player}

	player.SetPosition(world.Vec3{X: 0.5})
	_, ok := CheckWin(players, pickup)
	assert.False(t, ok, "distance exactly 0.5 is not a win")

	player.SetPosition(world.Vec3{X: 0.49})
	winner, ok := CheckWin(players, pickup)
	assert.True(t, ok)
	assert.Equal(t, 0, winner)
}

func TestCheckWin_LowestIndexFirst(t *testing.T) {
	pickup := &scene.Object{}
	players := []*scene.Player{
		{Index: 0, Object: &scene.Object{Position: world.Vec3{X: 3}}},
		{Index: 1, Object: &scene.Object{Position: world.Vec3{X: 0.1}}},
		{Index: 2, Object: &scene.Object{Position: world.Vec3{Y: 0.1}}},
	}
	winner, ok := CheckWin(players, pickup)
	require.True(t, ok)
	assert.Equal(t, 1, winner)

	_, ok = CheckWin(players, nil)
	assert.False(t, ok)
}

func TestSession_WinNotifiesOnceAndStopsPlay(t *testing.T) {
	var notes []string
	sess := makeOpenSession(t, NotifierFunc(func(msg string) { notes = append(notes, msg) }))
	p1 := sess.Game.Scene.Players[0]

	// P (2,1) to tank (4,3): four steps right, four steps down
	for i := 0; i < 4; i++ {
		sess.HandleKey("ArrowRight")
	}
	for i := 0; i < 4; i++ {
		sess.HandleKey("ArrowDown")
	}

	require.Equal(t, []string{"¡Jugador 1 ha ganado!"}, notes)
	assert.Equal(t, state.PhaseWon, sess.Game.Phase)
	assert.Equal(t, 0, sess.Game.Winner)

	at := p1.Position()
	sess.HandleKey("ArrowDown")
	sess.HandleKey("ArrowUp")
	assert.Equal(t, at, p1.Position(), "no movement after a win")
	assert.Len(t, notes, 1, "no repeated notification")
}

func TestSession_UnboundKeyStillChecksWin(t *testing.T) {
	var notes []string
	sess := makeOpenSession(t, NotifierFunc(func(msg string) { notes = append(notes, msg) }))
	sess.Game.Scene.Players[0].SetPosition(sess.Game.Scene.Pickup.Position)

	sess.HandleKey("x")
	assert.Equal(t, []string{"¡Jugador 1 ha ganado!"}, notes)
	assert.Equal(t, state.PhaseWon, sess.Game.Phase)
}

func TestSession_QuitKey(t *testing.T) {
	sess := makeOpenSession(t, nil)
	assert.False(t, sess.QuitRequested())
	sess.HandleKey("Escape")
	assert.True(t, sess.QuitRequested())
}

func TestSession_StartAndClose(t *testing.T) {
	sess := makeOpenSession(t, nil)
	d := input.NewDispatcher()

	sess.Start(d)
	sess.Start(d)
	assert.Equal(t, 1, d.Len(), "restarting does not leak a listener")

	p := sess.Game.Scene.Players[1]
	before := p.Position()
	d.Dispatch(input.RawInput{Code: "s"})
	assert.NotEqual(t, before, p.Position())

	sess.Close()
	sess.Close()
	assert.Equal(t, 0, d.Len())

	moved := p.Position()
	d.Dispatch(input.RawInput{Code: "s"})
	assert.Equal(t, moved, p.Position())
}

func TestSession_StartLogsControls(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	setup := DefaultSetup()
	setup.Scene.StarCount = 0
	setup.Session.Logger = logrus.NewEntry(logger)
	sess, err := BuildSession(setup)
	require.NoError(t, err)

	sess.Start(input.NewDispatcher())
	defer sess.Close()

	var controls []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "controls" {
			controls = append(controls, e)
		}
	}
	require.Len(t, controls, 2)
	assert.Equal(t, 1, controls[0].Data["player"])
	assert.Equal(t, "ArrowUp", controls[0].Data["move_north"])
	assert.Equal(t, "w", controls[1].Data["move_north"])
	assert.Equal(t, "Escape q", controls[1].Data["quit"])
}

func TestBuildSession_Station(t *testing.T) {
	sess, err := BuildSession(DefaultSetup())
	require.NoError(t, err)
	assert.Len(t, sess.Game.Scene.Players, 2)
	assert.Equal(t, 2, sess.Bindings().Players())
	assert.True(t, sess.Game.IsPlaying())
}

func TestBuildSession_LegacyFailsExactlyOnePickup(t *testing.T) {
	setup := DefaultSetup()
	setup.Rows = []string{"1111", "1PO1", "1JO1", "1111"}
	_, err := BuildSession(setup)
	assert.Error(t, err)
}
