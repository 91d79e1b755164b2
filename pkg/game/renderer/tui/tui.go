// Package tui renders the maze in a terminal: the scene is projected
// through the same camera as the graphical backend onto a character grid.
package tui

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/engine/terminal"
	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/gameplay"
	"oxygenmaze/pkg/game/i18n"
	"oxygenmaze/pkg/game/renderer"
	"oxygenmaze/pkg/game/scene"
)

// Icons
const (
	IconWall   = '█'
	IconPlayer = '●'
	IconPickup = '◆'
	IconStar   = '·'
	IconVoid   = ' '
)

// DefaultFrameInterval is the redraw period; every redraw is one frame of
// star rotation
const DefaultFrameInterval = time.Second / 30

// ANSI control sequences
const (
	seqClear      = "\x1b[2J"
	seqHome       = "\x1b[H"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqClearLine  = "\x1b[K"
)

// Options configures a TUI renderer. Zero values select stdin, stdout, the
// terminal size and DefaultFrameInterval.
type Options struct {
	In            io.Reader
	Out           io.Writer
	Width         int
	Height        int
	FrameInterval time.Duration
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorText   color.Style
	colorAction color.Style
	colorDenied color.Style
	colorItem   color.Style
	colorWin    color.Style
	colorWall   color.Style
	colorStar   color.Style
	colorPickup color.Style
	colorPlayer []color.Style

	session    *gameplay.Session
	dispatcher *input.Dispatcher
	camera     *scene.Camera
	log        *logrus.Entry

	in            io.Reader
	out           io.Writer
	width         int
	height        int
	frameInterval time.Duration

	ctx     context.Context
	keys    chan input.RawInput
	pending string
	quit    bool
}

// New creates a new TUI renderer for sess
func New(sess *gameplay.Session, opts Options) *TUIRenderer {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	t := &TUIRenderer{
		session:       sess,
		dispatcher:    input.NewDispatcher(),
		camera:        scene.NewCamera(),
		log:           sess.Logger().WithField("renderer", "tui"),
		in:            opts.In,
		out:           opts.Out,
		width:         opts.Width,
		height:        opts.Height,
		frameInterval: opts.FrameInterval,
	}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorText = color.Style{color.FgWhite}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorWin = color.Style{color.FgYellow, color.OpBold}
	t.colorWall = color.Style{color.FgGray}
	t.colorStar = color.Style{color.FgWhite}
	t.colorPickup = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = []color.Style{
		{color.FgBlue, color.OpBold},
		{color.FgRed, color.OpBold},
	}
}

// Name implements renderer.Renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleWin:
		return t.colorWin.Sprint(text)
	default:
		return text
	}
}

// FormatText renders a marked-up message with terminal colours
func (t *TUIRenderer) FormatText(msg string) string {
	var b strings.Builder
	for _, seg := range renderer.ParseMarkup(msg) {
		b.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return b.String()
}

// Run drives the render loop until a quit key, end of input or ctx
// cancellation.
func (t *TUIRenderer) Run(ctx context.Context) error {
	if f, ok := t.in.(*os.File); ok && f == os.Stdin && terminal.IsTerminal() {
		restore, err := input.RawMode()
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer restore()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	t.ctx = ctx

	// The reader goroutine only forwards key codes; all game state stays on
	// this goroutine.
	t.keys = make(chan input.RawInput, 16)
	go func() {
		if err := input.NewKeyReader(t.in).ReadKeys(ctx, t.keys); err != nil && ctx.Err() == nil {
			t.log.WithError(err).Warn("key reader stopped")
		}
	}()

	t.session.SetNotifier(t)
	t.session.Start(t.dispatcher)
	defer t.session.Close()

	fmt.Fprint(t.out, seqClear+seqHideCursor)
	defer fmt.Fprint(t.out, seqShowCursor+"\r\n"+i18n.Get("GOODBYE")+"\r\n")

	ticker := time.NewTicker(t.frameInterval)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-t.keys:
			if !ok {
				t.log.Debug("input closed")
				return nil
			}
			t.handleKey(raw)
			if t.quit || t.session.QuitRequested() {
				t.log.Info("quit requested")
				return nil
			}
			t.draw()
		case <-ticker.C:
			renderer.AdvanceFrame(t.session.Game.Scene)
			t.draw()
		}
	}
}

// handleKey forwards a key to the session; ctrl+c quits immediately
func (t *TUIRenderer) handleKey(raw input.RawInput) {
	if raw.Code == input.CodeInterrupt {
		t.quit = true
		return
	}
	t.dispatcher.Dispatch(raw)
}

// Notify draws the message and blocks the loop until Enter or Space.
// Escape and ctrl+c acknowledge and quit.
func (t *TUIRenderer) Notify(msg string) {
	t.pending = msg
	defer func() { t.pending = "" }()
	t.draw()

	for {
		select {
		case <-t.ctx.Done():
			return
		case raw, ok := <-t.keys:
			if !ok {
				return
			}
			switch raw.Code {
			case input.CodeEnter, " ":
				return
			case input.CodeEscape, input.CodeInterrupt:
				t.quit = true
				return
			}
		}
	}
}

// size returns the drawable terminal size
func (t *TUIRenderer) size() (int, int) {
	if t.width > 0 && t.height > 0 {
		return t.width, t.height
	}
	return terminal.GetSize()
}

// draw renders a full frame: the projected scene followed by the HUD
func (t *TUIRenderer) draw() {
	w, h := t.size()
	g := t.session.Game

	hud := renderer.ControlLines(g.Scene)
	hud = append(hud, g.Messages...)
	if t.pending != "" {
		hud = append(hud, "WIN{"+t.pending+"}")
	}
	if status := renderer.StatusLine(g, t.pending != ""); status != "" {
		hud = append(hud, status)
	}

	rows := h - len(hud) - 1
	if rows < 1 {
		rows = 1
	}
	c := t.project(w, rows)

	var b strings.Builder
	b.WriteString(seqHome)
	for row := 0; row < c.h; row++ {
		c.writeRow(&b, row)
		b.WriteString(seqClearLine + "\r\n")
	}
	for _, line := range hud {
		b.WriteString(t.FormatText(line))
		b.WriteString(seqClearLine + "\r\n")
	}
	fmt.Fprint(t.out, b.String())
}

// project draws the scene onto a w x rows character canvas. The camera
// sees a surface of w x 2*rows pixels since a character cell is about
// twice as tall as it is wide.
func (t *TUIRenderer) project(w, rows int) *canvas {
	c := newCanvas(w, rows)
	pw, ph := w, rows*2
	s := t.session.Game.Scene

	if s.Stars != nil {
		for i := 0; i < s.Stars.Len(); i++ {
			if x, y, ok := t.camera.Project(s.Stars.WorldPoint(i), pw, ph); ok {
				col, row := cellAt(x, y)
				c.set(col, row, IconStar, &t.colorStar)
			}
		}
	}

	for _, wall := range s.Walls {
		t.fillObject(c, wall.Position, wall.Shape.Width, wall.Shape.Height, pw, ph, IconWall, &t.colorWall)
	}
	if s.Pickup != nil {
		x, y, ok := t.camera.Project(s.Pickup.Position, pw, ph)
		if ok {
			col, row := cellAt(x, y)
			c.set(col, row, IconPickup, &t.colorPickup)
		}
	}
	for _, p := range s.Players {
		x, y, ok := t.camera.Project(p.Position(), pw, ph)
		if ok {
			col, row := cellAt(x, y)
			c.set(col, row, IconPlayer, &t.colorPlayer[p.Index%len(t.colorPlayer)])
		}
	}
	return c
}

// cellAt maps surface pixels to a character cell. Flooring keeps points
// just off the left or top edge off the canvas.
func cellAt(x, y float64) (col, row int) {
	return int(math.Floor(x)), int(math.Floor(y / 2))
}

// fillObject covers the projected extent of an axis-aligned rectangle
func (t *TUIRenderer) fillObject(c *canvas, at world.Vec3, width, height float64, pw, ph int, r rune, style *color.Style) {
	x, y, ok := t.camera.Project(at, pw, ph)
	if !ok {
		return
	}
	ppu := t.camera.PixelsPerUnit(at, ph)
	hw, hh := width*ppu/2, height*ppu/2

	col0, col1 := int(math.Round(x-hw)), int(math.Round(x+hw))
	row0, row1 := int(math.Round((y-hh)/2)), int(math.Round((y+hh)/2))
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			c.set(col, row, r, style)
		}
	}
}
