package dash

import (
	"github.com/poligon98/arcade/internal/config"
	"github.com/poligon98/arcade/internal/core"
)

// Player is the square kinematic body the user controls. Only vertical
// motion is simulated; the world scrolls past it horizontally.
type Player struct {
	pos      core.Vec2 // Top-left corner, world pixels
	size     int
	velY     float64 // Positive is downward
	onGround bool
	rect     core.Rect // Pixel-grid bounds, refreshed at the end of Update

	gravity      float64
	jumpVelocity float64
	groundY      int
}

// NewPlayer creates a player standing on the ground line.
func NewPlayer(cfg *config.DashConfig) *Player {
	size := cfg.Player.Size
	p := &Player{
		pos:          core.Vec2{X: float64(cfg.Player.X), Y: float64(cfg.World.GroundY - size)},
		size:         size,
		onGround:     true,
		gravity:      cfg.Physics.Gravity,
		jumpVelocity: cfg.Physics.JumpVelocity,
		groundY:      cfg.World.GroundY,
	}
	p.refreshRect()
	return p
}

// Jump launches the player if it is standing on something.
// Airborne jumps are ignored.
func (p *Player) Jump() {
	if !p.onGround {
		return
	}
	p.velY = p.jumpVelocity
	p.onGround = false
}

// Update integrates gravity over dt seconds and resolves landing on
// platforms and the ground.
//
// The platform test uses the rect from the end of the previous update,
// so a landing is detected one tick after the body first overlaps.
// The first platform in slice order wins.
func (p *Player) Update(dt float64, platforms []*Platform) {
	if !p.onGround {
		p.velY += p.gravity * dt
	}
	p.pos.Y += p.velY * dt

	// Grounded state is re-derived every tick.
	p.onGround = false

	for _, pl := range platforms {
		if p.rect.Intersects(pl.Rect()) && p.velY >= 0 {
			p.velY = 0
			// One pixel of overlap keeps the contact stable next tick.
			p.pos.Y = float64(pl.Rect().Top() - p.size + 1)
			p.onGround = true
			break
		}
	}

	if !p.onGround {
		groundTop := float64(p.groundY - p.size)
		if p.pos.Y >= groundTop {
			p.pos.Y = groundTop
			p.onGround = true
			p.velY = 0
		}
	}

	p.refreshRect()
}

func (p *Player) refreshRect() {
	p.rect = core.NewRect(int(p.pos.X), int(p.pos.Y), p.size, p.size)
}

// Rect returns the pixel-grid bounds of the player.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Foot returns the bottom-center point used by the spike test.
func (p *Player) Foot() core.Point {
	return core.Point{X: p.rect.CenterX(), Y: p.rect.Bottom()}
}

// Pos returns the continuous top-left position.
func (p *Player) Pos() core.Vec2 {
	return p.pos
}

// VelY returns the vertical velocity in px/s.
func (p *Player) VelY() float64 {
	return p.velY
}

// OnGround reports whether the player stands on the ground or a platform.
func (p *Player) OnGround() bool {
	return p.onGround
}

// Size returns the side length of the player's square.
func (p *Player) Size() int {
	return p.size
}
