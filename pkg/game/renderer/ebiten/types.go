package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	engineinput "oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/game/gameplay"
	"oxygenmaze/pkg/game/scene"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It implements
// ebiten.Game and owns the session for the lifetime of the window.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	session    *gameplay.Session
	dispatcher *engineinput.Dispatcher
	camera     *scene.Camera
	log        *logrus.Entry

	// ctx is only set while Run is active
	ctx context.Context

	// Font source for all HUD text
	fontSource *text.GoTextFaceSource

	// Cached font faces
	cachedUIFace    *text.GoTextFace
	cachedTitleFace *text.GoTextFace

	// keys is reused every Update for just-pressed keys
	keys []ebiten.Key

	// glides hold the displayed position of each player, by index
	glides []*glide

	// Win notification overlay
	modal modal

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
