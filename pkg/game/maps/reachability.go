package maps

import (
	"github.com/zyedidia/generic/mapset"

	"oxygenmaze/pkg/engine/world"
)

type cellPos struct {
	row, col int
}

// Reachable returns every non-wall cell reachable from (row, col) by
// orthogonal steps. Half-unit moves through open cells never come within
// the collision radius of a wall, so grid reachability matches what a
// player can actually walk.
func Reachable(grid *world.Grid, row, col int) *mapset.Set[cellPos] {
	reachable := mapset.New[cellPos]()
	queue := []cellPos{{row, col}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		cell, ok := grid.GetCell(current.row, current.col)
		if !ok || cell.IsWall() || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, d := range world.AllDirections() {
			u := d.Unit()
			// North is +Y in world space, which is one row up
			n := cellPos{current.row - int(u.Y), current.col + int(u.X)}
			if !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// Stranded returns the player start cells from which the tank cannot be
// reached, in reading order.
func (m *Map) Stranded() []world.Cell {
	var out []world.Cell
	m.Grid.ForEachCell(func(row, col int, cell world.Cell) {
		if !cell.IsPlayerStart() {
			return
		}
		if !Reachable(m.Grid, row, col).Has(cellPos{m.Pickup.Row, m.Pickup.Col}) {
			out = append(out, cell)
		}
	})
	return out
}
