package devtools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxygenmaze/pkg/game/gameplay"
)

func TestDumpMap(t *testing.T) {
	setup := gameplay.DefaultSetup()
	setup.Rows = []string{
		"11111",
		"1P0J1",
		"10O01",
		"11111",
	}
	setup.Scene.StarCount = 0
	sess, err := gameplay.BuildSession(setup)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DumpMap(&buf, sess.Game))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, []string{"#####", "#1.2#", "#.O.#", "#####"}, lines[:4])
	assert.Contains(t, buf.String(), "4x5, 14 walls")
	assert.Contains(t, buf.String(), "player 1 at (-1.5, 1.0) moves=0")
	assert.Contains(t, buf.String(), "tank at (-0.5, 0.0)")
}
