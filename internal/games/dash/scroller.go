package dash

import (
	"github.com/poligon98/arcade/internal/core"
)

// Scroller is the shared state of anything that slides leftward across
// the play field at a constant speed.
type Scroller struct {
	Pos    core.Vec2 // Top-left corner
	Width  int
	Height int
	Speed  float64 // px/s, always positive
}

// Update moves the scroller left by speed * dt.
func (s *Scroller) Update(dt float64) {
	s.Pos.X -= s.Speed * dt
}

// OffScreen reports whether the right edge has passed the left side of
// the world.
func (s *Scroller) OffScreen() bool {
	return s.Pos.X+float64(s.Width) < 0
}

// Spike is a triangular hazard standing on the ground.
type Spike struct {
	Scroller
	Companion bool // Spawned alongside a platform
}

// NewSpike creates a spike whose base rests on groundY.
func NewSpike(x float64, groundY, width, height int, speed float64) *Spike {
	return &Spike{
		Scroller: Scroller{
			Pos:    core.Vec2{X: x, Y: float64(groundY - height)},
			Width:  width,
			Height: height,
			Speed:  speed,
		},
	}
}

// Apex returns the top-center hitbox point.
func (s *Spike) Apex() core.Point {
	return core.Point{X: int(s.Pos.X + float64(s.Width)/2), Y: int(s.Pos.Y)}
}

// BaseLeft returns the bottom-left hitbox point.
func (s *Spike) BaseLeft() core.Point {
	return core.Point{X: int(s.Pos.X), Y: int(s.Pos.Y + float64(s.Height))}
}

// BaseRight returns the bottom-right hitbox point.
func (s *Spike) BaseRight() core.Point {
	return core.Point{X: int(s.Pos.X + float64(s.Width)), Y: int(s.Pos.Y + float64(s.Height))}
}

// Hitbox returns the apex, base-left and base-right points, computed from
// the current position.
func (s *Spike) Hitbox() (core.Point, core.Point, core.Point) {
	return s.Apex(), s.BaseLeft(), s.BaseRight()
}

// Platform is a floating bar the player can land on.
type Platform struct {
	Scroller
	rect core.Rect
}

// NewPlatform creates a platform with its top-left corner at (x, y).
func NewPlatform(x, y float64, width, height int, speed float64) *Platform {
	return &Platform{
		Scroller: Scroller{
			Pos:    core.Vec2{X: x, Y: y},
			Width:  width,
			Height: height,
			Speed:  speed,
		},
		rect: core.NewRect(int(x), int(y), width, height),
	}
}

// Update moves the platform and re-derives its collision rect.
func (p *Platform) Update(dt float64) {
	p.Scroller.Update(dt)
	p.rect.X = int(p.Pos.X)
}

// Rect returns the collision rectangle.
func (p *Platform) Rect() core.Rect {
	return p.rect
}
