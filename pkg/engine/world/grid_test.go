package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_Empty(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([]string{""})
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestNewGrid_RejectsRaggedRows(t *testing.T) {
	_, err := NewGrid([]string{"111", "10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestNewGrid_ParsesGlyphs(t *testing.T) {
	g, err := NewGrid([]string{
		"1111",
		"1PO1",
		"1Jx1",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())

	cases := []struct {
		row, col int
		want     CellKind
	}{
		{0, 0, CellWall},
		{1, 1, CellPlayerStart},
		{1, 2, CellPickupStart},
		{2, 1, CellPlayerStart},
		{2, 2, CellEmpty},
	}
	for _, tc := range cases {
		cell, ok := g.GetCell(tc.row, tc.col)
		require.True(t, ok)
		assert.Equal(t, tc.want, cell.Kind, "cell (%d,%d)", tc.row, tc.col)
	}

	_, ok := g.GetCell(3, 0)
	assert.False(t, ok)
	assert.Equal(t, 8, g.Count(Cell.IsWall))
}

func TestWorldPosition_CentresAndFlips(t *testing.T) {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = "0000000000000000000000"
	}
	g, err := NewGrid(rows)
	require.NoError(t, err)

	assert.Equal(t, Vec3{X: 8, Y: 2}, g.WorldPosition(3, 19))
	assert.Equal(t, Vec3{X: -3, Y: -2}, g.WorldPosition(7, 8))
	assert.Equal(t, Vec3{X: -11, Y: 5}, g.WorldPosition(0, 0))

	row, col := g.GridPosition(Vec3{X: 8, Y: 2})
	assert.Equal(t, 3, row)
	assert.Equal(t, 19, col)
}
