package ebiten

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/game/gameplay"
	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/scene"
)

// New creates an Ebiten renderer for sess. Non-positive sizes fall back to
// the defaults.
func New(sess *gameplay.Session, width, height int) *EbitenRenderer {
	if width <= 0 {
		width = defaultWindowWidth
	}
	if height <= 0 {
		height = defaultWindowHeight
	}

	e := &EbitenRenderer{
		windowWidth:  width,
		windowHeight: height,
		session:      sess,
		dispatcher:   engineinput.NewDispatcher(),
		camera:       scene.NewCamera(),
		log:          sess.Logger().WithField("renderer", "ebiten"),
	}
	for _, p := range sess.Game.Scene.Players {
		e.glides = append(e.glides, newGlide(p.Position()))
	}
	return e
}

// Name implements renderer.Renderer
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Notify opens the win overlay. It is called from the session while Update
// is dispatching keys.
func (e *EbitenRenderer) Notify(msg string) {
	e.log.WithField("message", msg).Debug("notification shown")
	e.modal.show(msg)
}

// Run opens the window and blocks until the user quits or ctx is cancelled
func (e *EbitenRenderer) Run(ctx context.Context) error {
	if err := e.loadFonts(); err != nil {
		return err
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	e.ctx = ctx
	e.session.SetNotifier(e)
	e.session.Start(e.dispatcher)
	defer e.session.Close()

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("running ebiten: %w", err)
	}
	return nil
}

// Layout uses the window size as the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
