package input

import (
	"time"

	"oxygenmaze/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionQuit
	ActionAcknowledge // Dismiss a notification (Enter/Space)
)

// NoPlayer marks an intent that is not addressed to a specific player.
const NoPlayer = -1

// Intent is the 4th‑layer, high‑level description of what a player wants to do.
type Intent struct {
	Action Action
	Player int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is the literal, case-sensitive key name (e.g. "ArrowUp", "w").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Both backends already deliver one event per key press, so this is a thin
// wrapper that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// MoveAction returns the movement action for a direction
func MoveAction(d world.Direction) Action {
	switch d {
	case world.North:
		return ActionMoveNorth
	case world.South:
		return ActionMoveSouth
	case world.West:
		return ActionMoveWest
	case world.East:
		return ActionMoveEast
	default:
		return ActionNone
	}
}

// Direction returns the direction of a movement action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionQuit:
		return "Quit"
	case ActionAcknowledge:
		return "Acknowledge"
	default:
		return "None"
	}
}
