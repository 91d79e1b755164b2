package world

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid is returned when a grid is built from no rows or empty rows
var ErrEmptyGrid = errors.New("grid has no cells")

// Grid represents the game map with encapsulated cell storage.
// A grid is always rectangular; ragged input must be normalised by the caller.
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int
}

// NewGrid parses rectangular rows of map characters into a grid.
// Every row must have the same number of characters.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		cells: make([][]Cell, len(rows)),
		rows:  len(rows),
		cols:  cols,
	}

	for r, line := range rows {
		glyphs := []rune(line)
		if len(glyphs) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(glyphs), cols)
		}

		g.cells[r] = make([]Cell, cols)
		for c, glyph := range glyphs {
			g.cells[r][c] = ParseCell(r, c, glyph)
		}
	}

	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position and whether it exists
func (g *Grid) GetCell(row, col int) (Cell, bool) {
	if !g.IsValidPosition(row, col) {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// WorldPosition converts a grid position to world units on the z=0 plane.
// The map is centred on the origin and the row axis is flipped so that
// increasing rows go down the screen while world Y goes up.
func (g *Grid) WorldPosition(row, col int) Vec3 {
	return Vec3{
		X: float64(col) - float64(g.cols)/2,
		Y: float64(g.rows)/2 - float64(row),
	}
}

// GridPosition converts a world position back to the nearest grid cell.
func (g *Grid) GridPosition(p Vec3) (row, col int) {
	col = int(roundHalfUp(p.X + float64(g.cols)/2))
	row = int(roundHalfUp(float64(g.rows)/2 - p.Y))
	return row, col
}

// Count returns how many cells satisfy the predicate
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	g.ForEachCell(func(_, _ int, cell Cell) {
		if pred(cell) {
			n++
		}
	})
	return n
}
