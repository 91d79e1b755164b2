package tui

import (
	"strings"

	"github.com/gookit/color"
)

type glyph struct {
	r     rune
	style *color.Style
}

// canvas is a character grid; later writes overwrite earlier ones
type canvas struct {
	w, h  int
	cells []glyph
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]glyph, w*h)}
	for i := range c.cells {
		c.cells[i].r = IconVoid
	}
	return c
}

func (c *canvas) set(col, row int, r rune, style *color.Style) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.cells[row*c.w+col] = glyph{r: r, style: style}
}

func (c *canvas) at(col, row int) rune {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return IconVoid
	}
	return c.cells[row*c.w+col].r
}

// writeRow writes one row, grouping runs that share a style
func (c *canvas) writeRow(b *strings.Builder, row int) {
	var run []rune
	var style *color.Style

	flush := func() {
		if len(run) == 0 {
			return
		}
		if style == nil {
			b.WriteString(string(run))
		} else {
			b.WriteString(style.Sprint(string(run)))
		}
		run = run[:0]
	}

	for col := 0; col < c.w; col++ {
		g := c.cells[row*c.w+col]
		if g.style != style {
			flush()
			style = g.style
		}
		run = append(run, g.r)
	}
	flush()
}
