package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointRadius_BoundaryIsExclusive(t *testing.T) {
	walls := []Vec3{{X: 0, Y: 0}}
	c := NewPointRadius()

	assert.False(t, c.Collides(Vec3{X: 0.9}, walls), "distance exactly 0.9 must not collide")
	assert.True(t, c.Collides(Vec3{X: 0.89}, walls), "distance 0.89 must collide")
	assert.False(t, c.Collides(Vec3{Y: -1}, walls))
	assert.True(t, c.Collides(Vec3{}, walls))
}

func TestPointRadius_NoWalls(t *testing.T) {
	assert.False(t, NewPointRadius().Collides(Vec3{}, nil))
}

func TestPointRadius_AnyWallCounts(t *testing.T) {
	walls := []Vec3{{X: 10, Y: 10}, {X: 3, Y: 0}}
	assert.True(t, NewPointRadius().Collides(Vec3{X: 3, Y: 0.5}, walls))
}

func TestBoxCircle(t *testing.T) {
	walls := []Vec3{{X: 0, Y: 0}}
	c := NewBoxCircle()

	tests := []struct {
		name      string
		candidate Vec3
		want      bool
	}{
		{"inside box", Vec3{X: 0.2, Y: 0.1}, true},
		{"touching edge", Vec3{X: 1, Y: 0}, false},
		{"overlapping edge", Vec3{X: 0.9, Y: 0}, true},
		{"corner gap", Vec3{X: 0.9, Y: 0.9}, false},
		{"far away", Vec3{X: 3, Y: 3}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Collides(tc.candidate, walls))
		})
	}
}
