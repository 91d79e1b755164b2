package renderer

import (
	"context"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleItem
	StyleAction
	StyleDenied
	StyleWin
)

// Renderer defines the interface for game rendering backends.
// Implementations include the terminal (TUI) and Ebiten.
type Renderer interface {
	// Run drives the render loop until the user quits or ctx is cancelled
	Run(ctx context.Context) error

	// Notify shows a message the user has to acknowledge before play
	// continues. It is called from inside the render loop.
	Notify(msg string)

	// Name identifies the backend in logs
	Name() string
}
