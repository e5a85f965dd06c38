package tui

import (
	"strings"

	"github.com/san-kum/physlab/internal/shape"
	"github.com/san-kum/physlab/internal/world"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
)

var kindGlyph = map[shape.Kind]rune{
	shape.Sphere:   'O',
	shape.Box:      '#',
	shape.Cylinder: 'H',
	shape.Compound: '@',
}

// canvas draws a side view (x horizontal, y vertical) of the world.
type canvas struct {
	grid [][]rune
}

func newCanvas() *canvas {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = make([]rune, canvasWidth)
	}
	return &canvas{grid: grid}
}

func (c *canvas) clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = ' '
		}
	}
}

func (c *canvas) set(x, y int, r rune) {
	if x >= 0 && x < canvasWidth && y >= 0 && y < canvasHeight {
		c.grid[y][x] = r
	}
}

func (c *canvas) draw(w *world.World) {
	c.clear()

	// Floor line.
	for x := 0; x < canvasWidth; x++ {
		c.set(x, canvasHeight-1, '_')
	}

	sx := float64(canvasWidth) / w.Bounds.X
	sy := float64(canvasHeight-1) / w.Bounds.Y

	for _, b := range w.Bodies() {
		px := int((b.Position.X + w.Bounds.X/2) * sx)
		py := canvasHeight - 2 - int(b.Position.Y*sy)
		c.set(px, py, kindGlyph[b.Shape().Kind])
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for _, row := range c.grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
