package core

// Sprite is the render geometry of one entity. It is a closed set of
// variants; renderers switch on the concrete type and simulation code
// never inspects it.
type Sprite interface {
	sprite()
}

// ImageSprite draws a loaded image scaled into a world-space box.
type ImageSprite struct {
	Handle string // Asset name, e.g. "player"
	X, Y   float64
	W, H   float64
}

// PolygonSprite draws a filled (or outlined) convex polygon.
type PolygonSprite struct {
	Points  []Vec2
	Color   Color
	Outline bool
}

// RectSprite draws a filled (or outlined) rectangle.
type RectSprite struct {
	Rect    Rect
	Color   Color
	Outline bool
}

func (ImageSprite) sprite()   {}
func (PolygonSprite) sprite() {}
func (RectSprite) sprite()    {}

// Triangles splits a convex polygon into a triangle fan.
func (p PolygonSprite) Triangles() []Triangle {
	if len(p.Points) < 3 {
		return nil
	}
	tris := make([]Triangle, 0, len(p.Points)-2)
	for i := 1; i+1 < len(p.Points); i++ {
		tris = append(tris, Triangle{A: p.Points[0], B: p.Points[i], C: p.Points[i+1]})
	}
	return tris
}

// Canvas is the drawing surface a game paints onto each frame.
// Coordinates are world space: origin top-left, y increasing downward.
type Canvas interface {
	// Fill clears the whole surface to a background color.
	Fill(c Color)
	// Draw renders one sprite.
	Draw(s Sprite)
	// DrawText renders a line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
	// HasImage reports whether the image asset was loaded; games fall
	// back to shapes when it was not.
	HasImage(handle string) bool
}
