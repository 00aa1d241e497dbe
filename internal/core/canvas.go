package core

import "math"

// Surface is the drawing target the game renders each frame onto.
// Coordinates are world pixels; implementations scale as they need.
type Surface interface {
	ClearRect(b Box)
	FillRect(b Box, c Color)
	StrokeRect(b Box, c Color, lineWidth float64)
}

// FillRune is the character CellCanvas uses for filled rectangles.
const FillRune = '█'

// heavyStrokeWidth is the line width from which strokes use heavy box lines.
const heavyStrokeWidth = 3

// CellCanvas rasterises world-pixel drawing onto a Screen, stretching the
// world to cover the whole screen.
type CellCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCellCanvas creates a canvas that maps a worldW x worldH pixel area onto dst.
func NewCellCanvas(dst *Screen, worldW, worldH float64) *CellCanvas {
	return &CellCanvas{screen: dst, worldW: worldW, worldH: worldH}
}

// CellRect converts a world box to the cells it covers.
// Non-empty boxes always cover at least one cell on each axis.
func (c *CellCanvas) CellRect(b Box) Rect {
	sx := float64(c.screen.Width()) / c.worldW
	sy := float64(c.screen.Height()) / c.worldH

	x0, x1 := span(b.X, b.Right(), sx)
	y0, y1 := span(b.Y, b.Bottom(), sy)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

func span(lo, hi, scale float64) (int, int) {
	a := int(math.Round(lo * scale))
	b := int(math.Round(hi * scale))
	if b <= a && hi > lo {
		b = a + 1
	}
	return a, b
}

// ClearRect blanks the cells covered by b.
func (c *CellCanvas) ClearRect(b Box) {
	c.screen.ClearRect(c.CellRect(b))
}

// FillRect paints the cells covered by b.
func (c *CellCanvas) FillRect(b Box, col Color) {
	c.screen.DrawRect(c.CellRect(b), FillRune, col)
}

// StrokeRect outlines the cells covered by b.
func (c *CellCanvas) StrokeRect(b Box, col Color, lineWidth float64) {
	style := BoxLight
	if lineWidth >= heavyStrokeWidth {
		style = BoxHeavy
	}
	c.screen.DrawBox(c.CellRect(b), style, col)
}
