// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// CellKind is the variant of a single map character.
type CellKind int

// Cell kinds
const (
	CellEmpty CellKind = iota
	CellWall
	CellPlayerStart
	CellPickupStart
)

// Map characters
const (
	GlyphWall        = '1'
	GlyphPlayerOne   = 'P'
	GlyphPlayerTwo   = 'J'
	GlyphPickup      = 'O'
	GlyphEmptyFiller = '0'
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellWall:
		return "Wall"
	case CellPlayerStart:
		return "PlayerStart"
	case CellPickupStart:
		return "PickupStart"
	default:
		return "Unknown"
	}
}

// Cell represents a single cell/tile in the grid.
// Cells are immutable after the grid is built.
type Cell struct {
	Row int
	Col int

	Kind CellKind

	// Glyph is the character the cell was parsed from.
	Glyph rune
}

// ParseCell classifies a map character at the given position.
// Any character that is not a wall, player start or pickup is empty floor.
func ParseCell(row, col int, glyph rune) Cell {
	c := Cell{Row: row, Col: col, Glyph: glyph}
	switch glyph {
	case GlyphWall:
		c.Kind = CellWall
	case GlyphPlayerOne, GlyphPlayerTwo:
		c.Kind = CellPlayerStart
	case GlyphPickup:
		c.Kind = CellPickupStart
	default:
		c.Kind = CellEmpty
	}
	return c
}

// IsWall returns true if the cell is a wall
func (c Cell) IsWall() bool {
	return c.Kind == CellWall
}

// IsPlayerStart returns true if a player spawns on this cell
func (c Cell) IsPlayerStart() bool {
	return c.Kind == CellPlayerStart
}

// IsPickup returns true if the pickup spawns on this cell
func (c Cell) IsPickup() bool {
	return c.Kind == CellPickupStart
}

func (c Cell) String() string {
	return fmt.Sprintf("%v(%d,%d)", c.Kind, c.Row, c.Col)
}
