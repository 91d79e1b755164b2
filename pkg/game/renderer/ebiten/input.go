package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	engineinput "oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/game/renderer"
)

// Update advances one frame: scene animation, key dispatch, tweens
// (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("window opened")
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	renderer.AdvanceFrame(e.session.Game.Scene)
	e.handleKeys()

	dt := float32(1.0 / float64(ebiten.TPS()))
	for i, p := range e.session.Game.Scene.Players {
		e.glides[i].retarget(p.Position())
		e.glides[i].update(dt)
	}
	e.modal.update(dt)

	if e.session.QuitRequested() {
		e.log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

// handleKeys forwards every key pressed this frame to the dispatcher.
// While the win overlay is open only acknowledge keys get through, and they
// close it.
func (e *EbitenRenderer) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])

	for _, k := range e.keys {
		code := keyCode(k, shift)
		if code == "" {
			continue
		}

		if e.modal.open {
			if !isAcknowledge(code) {
				continue
			}
			e.modal.close()
			if code != engineinput.CodeEscape {
				continue
			}
		}

		e.dispatcher.Dispatch(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		})
	}
}

// keyCode converts an Ebiten key to the code names the bindings use.
// Letters are lower case unless shift is held, so "W" does not match "w".
func keyCode(k ebiten.Key, shift bool) string {
	switch k {
	case ebiten.KeySpace:
		return " "
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return engineinput.CodeEnter
	case ebiten.KeyEscape:
		return engineinput.CodeEscape
	case ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight:
		return k.String()
	}

	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		if shift {
			return name
		}
		return strings.ToLower(name)
	}
	return ""
}

func isAcknowledge(code string) bool {
	return code == engineinput.CodeEnter || code == " " || code == engineinput.CodeEscape
}
