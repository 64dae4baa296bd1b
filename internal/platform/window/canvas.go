package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/poligon98/arcade/internal/core"
)

// outlineWidth is the stroke width of outlined shapes, in world pixels.
const outlineWidth = 2

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws sprites onto an Ebitengine image. The destination is
// swapped in every frame by the runner.
type Canvas struct {
	dst    *ebiten.Image
	images map[string]*ebiten.Image
}

// NewCanvas creates a canvas that can draw the given loaded images.
func NewCanvas(images map[string]*ebiten.Image) *Canvas {
	if images == nil {
		images = map[string]*ebiten.Image{}
	}
	return &Canvas{images: images}
}

// Fill paints the whole destination.
func (c *Canvas) Fill(col core.Color) {
	c.dst.Fill(col.RGBA())
}

// HasImage reports whether the named image was loaded.
func (c *Canvas) HasImage(handle string) bool {
	_, ok := c.images[handle]
	return ok
}

// DrawText prints text with the debug font. The font has a single color.
func (c *Canvas) DrawText(x, y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}

// Draw renders one sprite.
func (c *Canvas) Draw(s core.Sprite) {
	switch sp := s.(type) {
	case core.RectSprite:
		c.drawRect(sp)
	case core.PolygonSprite:
		c.drawPolygon(sp)
	case core.ImageSprite:
		c.drawImage(sp)
	}
}

func (c *Canvas) drawRect(sp core.RectSprite) {
	x, y := float32(sp.Rect.X), float32(sp.Rect.Y)
	w, h := float32(sp.Rect.W), float32(sp.Rect.H)
	if sp.Outline {
		vector.StrokeRect(c.dst, x, y, w, h, outlineWidth, sp.Color.RGBA(), false)
		return
	}
	vector.DrawFilledRect(c.dst, x, y, w, h, sp.Color.RGBA(), false)
}

func (c *Canvas) drawPolygon(sp core.PolygonSprite) {
	col := sp.Color.RGBA()
	if sp.Outline {
		n := len(sp.Points)
		for i, p := range sp.Points {
			q := sp.Points[(i+1)%n]
			vector.StrokeLine(c.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), outlineWidth, col, true)
		}
		return
	}

	tris := sp.Triangles()
	vs := make([]ebiten.Vertex, 0, len(tris)*3)
	is := make([]uint16, 0, len(tris)*3)
	r, g, b, a := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff, float32(col.A)/0xff
	for _, t := range tris {
		for _, p := range []core.Vec2{t.A, t.B, t.C} {
			is = append(is, uint16(len(vs)))
			vs = append(vs, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *Canvas) drawImage(sp core.ImageSprite) {
	img, ok := c.images[sp.Handle]
	if !ok {
		return
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sp.W/float64(bounds.Dx()), sp.H/float64(bounds.Dy()))
	op.GeoM.Translate(sp.X, sp.Y)
	c.dst.DrawImage(img, op)
}
