package dash

import (
	"math"
	"testing"

	"github.com/poligon98/arcade/internal/config"
	"github.com/poligon98/arcade/internal/core"
)

const tick = 1.0 / 60

func TestPlayerStartsGrounded(t *testing.T) {
	cfg := config.DefaultDashConfig()
	p := NewPlayer(&cfg)

	want := core.NewRect(80, 390, 60, 60)
	if p.Rect() != want {
		t.Errorf("initial rect = %+v, want %+v", p.Rect(), want)
	}
	if !p.OnGround() || p.VelY() != 0 {
		t.Errorf("player should start grounded at rest, onGround=%v velY=%v", p.OnGround(), p.VelY())
	}
}

func TestPlayerGravityMonotonic(t *testing.T) {
	cfg := config.DefaultDashConfig()
	p := NewPlayer(&cfg)
	p.Jump()

	if p.VelY() != cfg.Physics.JumpVelocity {
		t.Fatalf("velY after jump = %v, want %v", p.VelY(), cfg.Physics.JumpVelocity)
	}

	prev := p.VelY()
	for i := 0; i < 200 && !p.OnGround(); i++ {
		p.Update(tick, nil)
		if p.OnGround() {
			break
		}
		if p.VelY() <= prev {
			t.Fatalf("tick %d: velY %v did not increase from %v", i, p.VelY(), prev)
		}
		prev = p.VelY()
	}
	if !p.OnGround() {
		t.Fatal("player never landed")
	}
}

func TestPlayerGroundClamp(t *testing.T) {
	cfg := config.DefaultDashConfig()
	p := NewPlayer(&cfg)
	p.Jump()

	for i := 0; i < 300; i++ {
		p.Update(tick, nil)
		if p.Rect().Bottom() > cfg.World.GroundY {
			t.Fatalf("tick %d: player sank below ground, bottom=%d", i, p.Rect().Bottom())
		}
		if p.OnGround() && p.VelY() != 0 {
			t.Fatalf("tick %d: grounded with velY=%v", i, p.VelY())
		}
	}
	if !p.OnGround() || p.Pos().Y != float64(cfg.World.GroundY-cfg.Player.Size) {
		t.Errorf("player should rest on ground, y=%v onGround=%v", p.Pos().Y, p.OnGround())
	}
}

func TestPlayerAirborneJumpIgnored(t *testing.T) {
	cfg := config.DefaultDashConfig()
	p := NewPlayer(&cfg)
	p.Jump()
	p.Update(tick, nil)

	before := p.VelY()
	p.Jump()
	if p.VelY() != before {
		t.Errorf("airborne jump changed velY from %v to %v", before, p.VelY())
	}
}

func TestPlayerLandsOnPlatformOneTickLate(t *testing.T) {
	cfg := config.DefaultDashConfig()
	p := NewPlayer(&cfg)
	p.pos.Y = 300
	p.velY = 100
	p.onGround = false
	p.refreshRect()

	platforms := []*Platform{NewPlatform(50, 360, 200, 20, 0)}

	// Bottom edge touches the platform top: no overlap yet.
	p.Update(0.01, platforms)
	if p.OnGround() {
		t.Fatal("touching edges should not land")
	}
	if p.Rect().Bottom() != 361 {
		t.Fatalf("bottom = %d, want 361", p.Rect().Bottom())
	}

	// The rect from the previous tick now overlaps.
	p.Update(0.01, platforms)
	if !p.OnGround() || p.VelY() != 0 {
		t.Fatalf("player should land, onGround=%v velY=%v", p.OnGround(), p.VelY())
	}
	if p.Pos().Y != 301 {
		t.Errorf("landed y = %v, want 301", p.Pos().Y)
	}

	// Resting contact is stable.
	for i := 0; i < 10; i++ {
		p.Update(tick, platforms)
		if !p.OnGround() || p.Pos().Y != 301 {
			t.Fatalf("tick %d: lost footing, y=%v", i, p.Pos().Y)
		}
	}
}

func TestPlayerLandsOnFirstOverlappingPlatform(t *testing.T) {
	low := func() *Platform { return NewPlatform(50, 360, 200, 20, 0) }
	high := func() *Platform { return NewPlatform(50, 340, 200, 20, 0) }

	tests := []struct {
		name      string
		platforms []*Platform
		wantY     float64
	}{
		{"lower platform first", []*Platform{low(), high()}, 301},
		{"higher platform first", []*Platform{high(), low()}, 281},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultDashConfig()
			p := NewPlayer(&cfg)
			// Rect spans y 320..380 and overlaps both platforms.
			p.pos.Y = 320
			p.velY = 100
			p.onGround = false
			p.refreshRect()

			p.Update(0.01, tc.platforms)
			if !p.OnGround() {
				t.Fatal("player should land")
			}
			if p.Pos().Y != tc.wantY {
				t.Errorf("landed y = %v, want %v", p.Pos().Y, tc.wantY)
			}
		})
	}
}

func TestPlayerRisingPassesThroughPlatform(t *testing.T) {
	cfg := config.DefaultDashConfig()
	p := NewPlayer(&cfg)
	platforms := []*Platform{NewPlatform(50, 360, 200, 20, 0)}
	p.Jump()

	for i := 0; i < 5; i++ {
		p.Update(tick, platforms)
		if p.OnGround() {
			t.Fatalf("tick %d: rising player should not land", i)
		}
	}
}

func TestScrollerMovement(t *testing.T) {
	s := NewSpike(100, 450, 50, 60, 450)
	s.Update(0.1)
	if math.Abs(s.Pos.X-55) > 1e-9 {
		t.Errorf("x = %v, want 55", s.Pos.X)
	}

	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-50, false}, // Right edge exactly at 0
		{-50.5, true},
		{-200, true},
	}
	for _, tt := range tests {
		s.Pos.X = tt.x
		if got := s.OffScreen(); got != tt.want {
			t.Errorf("OffScreen() at x=%v = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPlatformRectFollowsX(t *testing.T) {
	p := NewPlatform(100, 360, 200, 20, 30)
	p.Update(0.01) // x = 99.7

	if p.Rect().X != 99 {
		t.Errorf("rect x = %d, want 99", p.Rect().X)
	}
	if p.Rect().Y != 360 || p.Rect().W != 200 || p.Rect().H != 20 {
		t.Errorf("rect = %+v", p.Rect())
	}
}

func TestSpikeHitboxTruncates(t *testing.T) {
	s := NewSpike(70.6, 110, 60, 60, 0)

	apex, left, right := s.Hitbox()
	if apex != (core.Point{X: 100, Y: 50}) {
		t.Errorf("apex = %+v", apex)
	}
	if left != (core.Point{X: 70, Y: 110}) {
		t.Errorf("base-left = %+v", left)
	}
	if right != (core.Point{X: 130, Y: 110}) {
		t.Errorf("base-right = %+v", right)
	}
}

func TestLethal(t *testing.T) {
	s := NewSpike(70, 110, 60, 60, 450) // Apex (100,50), base (70,110)-(130,110)

	tests := []struct {
		name string
		foot core.Point
		want bool
	}{
		{"deep in the middle", core.Point{X: 100, Y: 109}, true},
		{"above the apex", core.Point{X: 100, Y: 40}, false},
		{"within forgiveness", core.Point{X: 100, Y: 59}, false},
		{"just past forgiveness", core.Point{X: 100, Y: 60}, true},
		{"outside left margin", core.Point{X: 75, Y: 109}, false},
		{"outside right margin", core.Point{X: 125, Y: 109}, false},
		{"right flank below", core.Point{X: 120, Y: 100}, true},
		{"right flank on threshold", core.Point{X: 120, Y: 99}, false},
		{"band edge", core.Point{X: 121, Y: 109}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lethal(s, tt.foot, 0.15, 0.15); got != tt.want {
				t.Errorf("Lethal(%+v) = %v, want %v", tt.foot, got, tt.want)
			}
		})
	}
}

func TestLethalZeroWidth(t *testing.T) {
	s := NewSpike(100, 110, 0, 60, 0)
	if Lethal(s, core.Point{X: 100, Y: 109}, 0.15, 0.15) {
		t.Error("zero-width spike should never be lethal")
	}
}
