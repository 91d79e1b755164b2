package input

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, in string) []string {
	t.Helper()
	k := NewKeyReader(strings.NewReader(in))
	var codes []string
	for {
		code, err := k.ReadKey()
		if err == io.EOF {
			return codes
		}
		require.NoError(t, err)
		codes = append(codes, code)
	}
}

func TestReadKey_ArrowSequences(t *testing.T) {
	codes := readAll(t, "\x1b[A\x1b[B\x1b[C\x1b[D\x1bOA")
	assert.Equal(t, []string{"ArrowUp", "ArrowDown", "ArrowRight", "ArrowLeft", "ArrowUp"}, codes)
}

func TestReadKey_PlainAndControl(t *testing.T) {
	codes := readAll(t, "wasd\r\x03W")
	assert.Equal(t, []string{"w", "a", "s", "d", CodeEnter, CodeInterrupt, "W"}, codes)
}

func TestReadKey_LoneEscape(t *testing.T) {
	assert.Equal(t, []string{CodeEscape}, readAll(t, "\x1b"))
}

func TestReadKey_UnknownSequenceDiscarded(t *testing.T) {
	assert.Equal(t, []string{"w"}, readAll(t, "\x1b[Zw"))
}

func TestReadKey_LongSequencesConsumedWhole(t *testing.T) {
	codes := readAll(t, "\x1b[1;5A\x1b[3~w\x1b[15;2~")
	assert.Equal(t, []string{"ArrowUp", "w"}, codes)
}

func TestReadKeys_ClosesOnEOF(t *testing.T) {
	out := make(chan RawInput, 4)
	err := NewKeyReader(strings.NewReader("ws")).ReadKeys(context.Background(), out)
	require.NoError(t, err)

	var codes []string
	for ev := range out {
		assert.Equal(t, DeviceTerminal, ev.Device)
		codes = append(codes, ev.Code)
	}
	assert.Equal(t, []string{"w", "s"}, codes)
}
