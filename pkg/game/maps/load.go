package maps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"oxygenmaze/pkg/engine/world"
)

// Load errors
var (
	ErrRaggedRows      = errors.New("map rows have different lengths")
	ErrNoPickup        = errors.New("map has no oxygen tank")
	ErrMultiplePickups = errors.New("map has more than one oxygen tank")
)

// RaggedPolicy decides what happens to rows shorter than the widest row
type RaggedPolicy int

const (
	// RaggedPad pads short rows with empty floor
	RaggedPad RaggedPolicy = iota
	// RaggedReject fails the load
	RaggedReject
)

// PickupPolicy decides how many oxygen tanks a map may contain
type PickupPolicy int

const (
	// PickupExactlyOne fails unless there is exactly one tank
	PickupExactlyOne PickupPolicy = iota
	// PickupLastWins keeps the last tank in reading order and ignores the rest
	PickupLastWins
)

// Options controls map loading
type Options struct {
	Ragged RaggedPolicy
	Pickup PickupPolicy
}

// Map is a loaded, validated maze
type Map struct {
	Grid *world.Grid

	// Pickup is the grid cell of the single oxygen tank
	Pickup world.Cell

	// Padded lists the rows that were shorter than the grid width
	Padded []int
}

// Load normalises rows into a rectangular grid and validates the pickup
// invariant.
func Load(rows []string, opts Options) (*Map, error) {
	normalised, padded, err := normalise(rows, opts.Ragged)
	if err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(normalised)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	pickups := mapset.New[world.Cell]()
	var last world.Cell
	grid.ForEachCell(func(row, col int, cell world.Cell) {
		if cell.IsPickup() {
			pickups.Put(cell)
			last = cell
		}
	})

	switch {
	case pickups.Size() == 0:
		return nil, ErrNoPickup
	case pickups.Size() > 1 && opts.Pickup == PickupExactlyOne:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePickups, pickups.Size())
	}

	return &Map{Grid: grid, Pickup: last, Padded: padded}, nil
}

func normalise(rows []string, policy RaggedPolicy) ([]string, []int, error) {
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}

	var padded []int
	out := make([]string, len(rows))
	for i, r := range rows {
		n := len([]rune(r))
		if n == width {
			out[i] = r
			continue
		}
		if policy == RaggedReject {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, n, width)
		}
		out[i] = r + strings.Repeat(string(world.GlyphEmptyFiller), width-n)
		padded = append(padded, i)
	}
	return out, padded, nil
}
