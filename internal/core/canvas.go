package core

import "math"

// Runes used by ScreenCanvas when rasterizing sprites into cells.
const (
	FillRune    = '█'
	WedgeRune   = '▲'
	ImageRune   = '▓'
	OutlineRune = '░'
)

// ScreenCanvas adapts a Screen to the Canvas interface by scaling a fixed
// world size onto the screen's character grid.
type ScreenCanvas struct {
	screen         *Screen
	scaleX, scaleY float64
}

// NewScreenCanvas creates a canvas that maps a worldW x worldH world onto dst.
func NewScreenCanvas(dst *Screen, worldW, worldH float64) *ScreenCanvas {
	c := &ScreenCanvas{screen: dst}
	if worldW > 0 {
		c.scaleX = float64(dst.Width()) / worldW
	}
	if worldH > 0 {
		c.scaleY = float64(dst.Height()) / worldH
	}
	return c
}

// Fill clears the screen. Terminal cells only carry a foreground color, so
// the background color is left to the terminal.
func (c *ScreenCanvas) Fill(Color) {
	c.screen.Clear()
}

// HasImage always reports false: terminals cannot draw images.
func (c *ScreenCanvas) HasImage(string) bool {
	return false
}

// DrawText writes text starting at the cell containing (x, y).
func (c *ScreenCanvas) DrawText(x, y float64, text string, col Color) {
	cx, cy := c.cell(x, y)
	c.screen.DrawTextColored(cx, cy, text, col)
}

// Draw rasterizes a sprite into cells.
func (c *ScreenCanvas) Draw(s Sprite) {
	switch sp := s.(type) {
	case RectSprite:
		c.drawRect(float64(sp.Rect.X), float64(sp.Rect.Y), float64(sp.Rect.W), float64(sp.Rect.H), sp.Color, sp.Outline, FillRune)
	case ImageSprite:
		c.drawRect(sp.X, sp.Y, sp.W, sp.H, ColorDefault, false, ImageRune)
	case PolygonSprite:
		for _, tri := range sp.Triangles() {
			c.drawTriangle(tri, sp.Color, sp.Outline)
		}
	}
}

// cell converts a world position to the cell that contains it.
func (c *ScreenCanvas) cell(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}

// span converts a world interval to a half-open cell interval that covers
// at least one cell, so thin shapes never vanish.
func span(start, length, scale float64) (int, int) {
	a := int(math.Floor(start * scale))
	b := int(math.Floor((start + length) * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (c *ScreenCanvas) drawRect(x, y, w, h float64, col Color, outline bool, fill rune) {
	x0, x1 := span(x, w, c.scaleX)
	y0, y1 := span(y, h, c.scaleY)
	r := NewRect(x0, y0, x1-x0, y1-y0)

	if !outline {
		c.screen.DrawRect(r, fill, col)
		return
	}
	if r.W < 2 || r.H < 2 {
		c.screen.DrawRect(r, OutlineRune, col)
		return
	}
	c.screen.DrawBox(r, col)
}

func (c *ScreenCanvas) drawTriangle(tri Triangle, col Color, outline bool) {
	if c.scaleX == 0 || c.scaleY == 0 {
		return
	}
	minX, minY, maxX, maxY := tri.Bounds()
	x0, x1 := span(minX, maxX-minX, c.scaleX)
	y0, y1 := span(minY, maxY-minY, c.scaleY)

	inside := func(cx, cy int) bool {
		center := Vec2{X: (float64(cx) + 0.5) / c.scaleX, Y: (float64(cy) + 0.5) / c.scaleY}
		return tri.Contains(center)
	}

	hit := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if !inside(cx, cy) {
				continue
			}
			hit = true
			if outline && inside(cx-1, cy) && inside(cx+1, cy) && inside(cx, cy-1) && inside(cx, cy+1) {
				continue
			}
			r := WedgeRune
			if outline {
				r = OutlineRune
			}
			c.screen.SetColored(cx, cy, r, col)
		}
	}

	// Triangles narrower than a cell still need to show up somewhere.
	if !hit {
		ax, ay := c.cell(tri.A.X, tri.A.Y)
		c.screen.SetColored(ax, ay, WedgeRune, col)
	}
}
