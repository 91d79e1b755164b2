package state

import (
	"github.com/google/uuid"

	"oxygenmaze/pkg/game/scene"
)

// Phase is the game phase
type Phase int

// Phases
const (
	PhasePlaying Phase = iota
	PhaseWon
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

const maxMessages = 5

// Game represents the state of one session of the maze
type Game struct {
	ID uuid.UUID

	Scene *scene.Scene

	Phase Phase

	// Winner is the zero-based index of the winning player; valid only in PhaseWon
	Winner int

	// KeyEvents counts every key event the session handled
	KeyEvents int

	// Moves counts accepted moves per player
	Moves []int

	Messages []string
}

// NewGame creates a new game over a built scene
func NewGame(s *scene.Scene) *Game {
	return &Game{
		ID:       uuid.New(),
		Scene:    s,
		Phase:    PhasePlaying,
		Winner:   -1,
		Moves:    make([]int, len(s.Players)),
		Messages: make([]string, 0),
	}
}

// IsPlaying reports whether moves are still accepted
func (g *Game) IsPlaying() bool {
	return g.Phase == PhasePlaying
}

// Win moves the game into PhaseWon for the given player
func (g *Game) Win(player int) {
	g.Phase = PhaseWon
	g.Winner = player
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}
