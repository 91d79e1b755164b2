// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"

	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/state"
)

// cellSymbol returns the single-character symbol for a cell (no player overlay).
func cellSymbol(cell world.Cell) rune {
	switch cell.Kind {
	case world.CellWall:
		return '#'
	case world.CellPickupStart:
		return 'O'
	default:
		return '.'
	}
}

// DumpMap writes the loaded grid with each player drawn as its number at
// the nearest cell, followed by a legend of world positions.
func DumpMap(w io.Writer, g *state.Game) error {
	s := g.Scene
	grid := s.Grid

	overlay := make(map[[2]int]rune, len(s.Players))
	for _, p := range s.Players {
		row, col := grid.GridPosition(p.Position())
		overlay[[2]int{row, col}] = rune('0' + p.Number()%10)
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell, _ := grid.GetCell(row, col)
			sym := cellSymbol(cell)
			if r, ok := overlay[[2]int{row, col}]; ok {
				sym = r
			}
			bw.WriteRune(sym)
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "\n%dx%d, %d walls\n", grid.Rows(), grid.Cols(), len(s.Walls))
	for _, p := range s.Players {
		pos := p.Position()
		fmt.Fprintf(bw, "player %d at (%.1f, %.1f) moves=%d\n", p.Number(), pos.X, pos.Y, g.Moves[p.Index])
	}
	if s.Pickup != nil {
		fmt.Fprintf(bw, "tank at (%.1f, %.1f)\n", s.Pickup.Position.X, s.Pickup.Position.Y)
	}
	return bw.Flush()
}
