package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/gameplay"
	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/state"
)

const (
	keyUp    = "\x1b[A"
	keyDown  = "\x1b[B"
	keyRight = "\x1b[C"
)

func newTestSession(t *testing.T) *gameplay.Session {
	t.Helper()
	require.NoError(t, i18n.SetLocale(i18n.DefaultLocale))
	setup := gameplay.DefaultSetup()
	setup.Rows = []string{
		"1111111",
		"1000001",
		"1P000J1",
		"1000001",
		"100O001",
		"1111111",
	}
	setup.Scene.StarCount = 20
	sess, err := gameplay.BuildSession(setup)
	require.NoError(t, err)
	return sess
}

func runWithInput(t *testing.T, sess *gameplay.Session, keys string) string {
	t.Helper()
	var out bytes.Buffer
	r := New(sess, Options{
		In:            strings.NewReader(keys),
		Out:           &out,
		Width:         80,
		Height:        24,
		FrameInterval: time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Run(ctx))
	require.NoError(t, ctx.Err(), "run should end on quit, not on timeout")
	return out.String()
}

func TestRun_MovesPlayersAndQuits(t *testing.T) {
	sess := newTestSession(t)
	before := sess.Game.Scene.PlayerPositions()

	runWithInput(t, sess, "w"+keyUp+"q")

	after := sess.Game.Scene.PlayerPositions()
	assert.Equal(t, before[0].Add(world.Vec3{Y: 0.5}), after[0])
	assert.Equal(t, before[1].Add(world.Vec3{Y: 0.5}), after[1])
	assert.True(t, sess.QuitRequested())
}

func TestRun_WinBlocksUntilAcknowledged(t *testing.T) {
	sess := newTestSession(t)
	p1 := sess.Game.Scene.Players[0]

	// The moves after the win are ignored; Enter dismisses the notification
	keys := strings.Repeat(keyRight, 4) + strings.Repeat(keyDown, 4) + "\r" + keyUp + "q"
	out := runWithInput(t, sess, keys)

	assert.Equal(t, state.PhaseWon, sess.Game.Phase)
	assert.Equal(t, 0, sess.Game.Winner)
	assert.Contains(t, out, "¡Jugador 1 ha ganado!")
	assert.Equal(t, sess.Game.Scene.Pickup.Position, p1.Position())
}

func TestRun_EscapeDuringNotificationQuits(t *testing.T) {
	sess := newTestSession(t)
	keys := strings.Repeat(keyRight, 4) + strings.Repeat(keyDown, 4) + "\x1b"
	runWithInput(t, sess, keys)
	assert.Equal(t, state.PhaseWon, sess.Game.Phase)
}

func TestRun_EndOfInput(t *testing.T) {
	sess := newTestSession(t)
	out := runWithInput(t, sess, "")
	assert.Contains(t, out, i18n.Get("GOODBYE"))
}

func TestProject_PlacesObjects(t *testing.T) {
	sess := newTestSession(t)
	sess.Game.Scene.Stars = nil
	r := New(sess, Options{Out: &bytes.Buffer{}, Width: 80, Height: 24})

	c := r.project(80, 20)
	var walls, players, pickups int
	for row := 0; row < c.h; row++ {
		for col := 0; col < c.w; col++ {
			switch c.at(col, row) {
			case IconWall:
				walls++
			case IconPlayer:
				players++
			case IconPickup:
				pickups++
			}
		}
	}
	assert.Equal(t, 2, players)
	assert.Equal(t, 1, pickups)
	assert.Greater(t, walls, len(sess.Game.Scene.Walls))
}

func TestCellAt_ClipsJustOffCanvas(t *testing.T) {
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0.5, 1.5, 0, 0},
		{3.9, 5.0, 3, 2},
		{-0.5, 3.0, -1, 1},
		{2.0, -0.4, 2, -1},
	}
	for _, tt := range tests {
		col, row := cellAt(tt.x, tt.y)
		assert.Equal(t, tt.col, col, "x=%v", tt.x)
		assert.Equal(t, tt.row, row, "y=%v", tt.y)
	}

	c := newCanvas(4, 4)
	col, row := cellAt(-0.5, 3.0)
	c.set(col, row, IconPlayer, nil)
	assert.NotEqual(t, IconPlayer, c.at(0, 1))
}

func TestFormatText(t *testing.T) {
	r := New(newTestSession(t), Options{Out: &bytes.Buffer{}})
	out := r.FormatText("Jugador 1: DENIED{bloqueado}")
	assert.Contains(t, out, "Jugador 1: ")
	assert.Contains(t, out, "bloqueado")
	assert.NotContains(t, out, "DENIED{")
}
