package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"oxygenmaze/pkg/engine/world"
)

// ErrBindingConflict is returned when one key code is bound twice
var ErrBindingConflict = errors.New("key bound more than once")

// PlayerBindings maps the four movement directions of one player to key codes.
type PlayerBindings struct {
	Up    string
	Down  string
	Left  string
	Right string
}

// Default control schemes
var (
	ArrowBindings = PlayerBindings{Up: "ArrowUp", Down: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight"}
	WASDBindings  = PlayerBindings{Up: "w", Down: "s", Left: "a", Right: "d"}
)

// Codes returns the bound codes in Up, Down, Left, Right order
func (p PlayerBindings) Codes() []string {
	return []string{p.Up, p.Down, p.Left, p.Right}
}

// Direction returns the direction bound to code, if any
func (p PlayerBindings) Direction(code string) (world.Direction, bool) {
	switch code {
	case "":
		return 0, false
	case p.Up:
		return world.North, true
	case p.Down:
		return world.South, true
	case p.Left:
		return world.West, true
	case p.Right:
		return world.East, true
	}
	return 0, false
}

// globalBindings are codes that are not tied to a player.
var globalBindings = map[string]Action{
	"Escape": ActionQuit,
	"q":      ActionQuit,
	"Enter":  ActionAcknowledge,
	" ":      ActionAcknowledge,
}

// Bindings is the 3rd layer: it resolves key codes to per-player intents.
// Bindings are owned by a session rather than shared process-wide.
type Bindings struct {
	players []PlayerBindings
	global  map[string]Action
	bound   mapset.Set[string]
}

// NewBindings builds a binding table for the given players in order.
// Every code must be unique across players and global keys.
func NewBindings(players ...PlayerBindings) (*Bindings, error) {
	b := &Bindings{
		players: players,
		global:  globalBindings,
		bound:   mapset.New[string](),
	}

	for code := range b.global {
		b.bound.Put(code)
	}

	for i, p := range players {
		for _, code := range p.Codes() {
			if code == "" {
				return nil, fmt.Errorf("player %d: empty key code", i+1)
			}
			if b.bound.Has(code) {
				return nil, fmt.Errorf("player %d: %q: %w", i+1, code, ErrBindingConflict)
			}
			b.bound.Put(code)
		}
	}

	return b, nil
}

// Players returns the number of players with bindings
func (b *Bindings) Players() int {
	return len(b.players)
}

// IsBound reports whether a code triggers anything
func (b *Bindings) IsBound(code string) bool {
	return b.bound.Has(code)
}

// MapToIntents applies the bindings to a debounced input. A code produces
// at most one global intent, or one movement intent per matching player.
func (b *Bindings) MapToIntents(ev DebouncedInput) []Intent {
	if act, ok := b.global[ev.Code]; ok {
		return []Intent{{Action: act, Player: NoPlayer}}
	}

	var intents []Intent
	for i, p := range b.players {
		if dir, ok := p.Direction(ev.Code); ok {
			intents = append(intents, Intent{Action: MoveAction(dir), Player: i})
		}
	}
	return intents
}

// GetBindingsByAction returns the codes bound for each action of player i,
// sorted so the HUD doesn't flicker.
func (b *Bindings) GetBindingsByAction(player int) map[Action][]string {
	result := make(map[Action][]string)
	p := b.players[player]
	for _, dir := range world.AllDirections() {
		for _, code := range p.Codes() {
			if d, ok := p.Direction(code); ok && d == dir {
				result[MoveAction(dir)] = append(result[MoveAction(dir)], code)
			}
		}
	}
	for code, act := range b.global {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
