package scene

import (
	"fmt"
	"image/color"
	"math/rand"

	"oxygenmaze/pkg/engine/input"
	"oxygenmaze/pkg/engine/world"
	"oxygenmaze/pkg/game/maps"
)

// Materials
var (
	ColorBackground = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorWall       = color.RGBA{0x88, 0x88, 0x88, 0xff}
	ColorPickup     = color.RGBA{0x00, 0xff, 0x00, 0xff}
	ColorStar       = color.RGBA{0xff, 0xff, 0xff, 0xff}

	// PlayerColors is keyed by the start glyph
	PlayerColors = map[rune]color.RGBA{
		world.GlyphPlayerOne: {0x00, 0x00, 0xff, 0xff},
		world.GlyphPlayerTwo: {0xff, 0x00, 0x00, 0xff},
	}
)

// Geometries
var (
	WallShape   = Shape{Kind: ShapeBox, Width: world.WallSize, Height: world.WallSize, Depth: world.WallSize}
	PlayerShape = Shape{Kind: ShapeSphere, Radius: 0.5}
	PickupShape = Shape{Kind: ShapeCylinder, Radius: 0.3, Height: 0.3}
)

// Star field defaults
const (
	DefaultStarCount  = 500
	DefaultStarSpread = 50.0
)

// Options controls scene construction
type Options struct {
	// Bindings maps a player start glyph to its controls
	Bindings map[rune]input.PlayerBindings

	StarCount  int
	StarSpread float64
	StarSeed   int64
}

// DefaultOptions returns the two-player layout: arrows for P, WASD for J
func DefaultOptions() Options {
	return Options{
		Bindings: map[rune]input.PlayerBindings{
			world.GlyphPlayerOne: input.ArrowBindings,
			world.GlyphPlayerTwo: input.WASDBindings,
		},
		StarCount:  DefaultStarCount,
		StarSpread: DefaultStarSpread,
		StarSeed:   1,
	}
}

// Build walks the map once and creates one object per wall, player start
// and pickup cell. Players are numbered in reading order.
func Build(m *maps.Map, opts Options) (*Scene, error) {
	s := &Scene{
		Background: ColorBackground,
		Grid:       m.Grid,
	}

	if opts.StarCount > 0 {
		rng := rand.New(rand.NewSource(opts.StarSeed))
		s.Stars = NewStarField(opts.StarCount, opts.StarSpread, rng)
	}

	var buildErr error
	m.Grid.ForEachCell(func(row, col int, cell world.Cell) {
		if buildErr != nil {
			return
		}

		pos := m.Grid.WorldPosition(row, col)

		switch cell.Kind {
		case world.CellWall:
			wall := &Object{Kind: KindWall, Position: pos, Shape: WallShape, Color: ColorWall, Cell: cell}
			s.Add(wall)
			s.Walls = append(s.Walls, wall)

		case world.CellPlayerStart:
			bindings, ok := opts.Bindings[cell.Glyph]
			if !ok {
				buildErr = fmt.Errorf("player start %q at (%d,%d) has no controls", cell.Glyph, row, col)
				return
			}
			obj := &Object{Kind: KindPlayer, Position: pos, Shape: PlayerShape, Color: PlayerColors[cell.Glyph], Cell: cell}
			s.Add(obj)
			s.Players = append(s.Players, &Player{
				Index:    len(s.Players),
				Object:   obj,
				Bindings: bindings,
			})

		case world.CellPickupStart:
			// The loader guarantees a single effective pickup
			if cell != m.Pickup {
				return
			}
			s.Pickup = &Object{Kind: KindPickup, Position: pos, Shape: PickupShape, Color: ColorPickup, Cell: cell}
			s.Add(s.Pickup)
		}
	})
	if buildErr != nil {
		return nil, buildErr
	}

	if s.Pickup == nil {
		return nil, maps.ErrNoPickup
	}

	return s, nil
}

// Bindings returns the player bindings in player order, ready for
// input.NewBindings.
func (s *Scene) Bindings() []input.PlayerBindings {
	out := make([]input.PlayerBindings, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Bindings
	}
	return out
}
