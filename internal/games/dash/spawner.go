package dash

import (
	"github.com/poligon98/arcade/internal/config"
)

// Rand is the random source the spawner draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// ObstacleKind identifies what the spawner places next.
type ObstacleKind int

const (
	KindSpike ObstacleKind = iota
	KindPlatform
)

func (k ObstacleKind) String() string {
	switch k {
	case KindSpike:
		return "spike"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Field receives spawned obstacles. Session implements it.
type Field interface {
	AddSpike(s *Spike)
	AddPlatform(p *Platform)
}

// companionPad widens the platform before scaling it into a companion
// spike side.
const companionPad = 50

// Spawner places obstacles at the right edge of the world on a timer,
// alternating spikes and platforms.
type Spawner struct {
	pattern    []ObstacleKind // Ring; pattern[head] spawns next
	head       int
	timer      float64 // Seconds until the next spawn
	minGapTime float64 // Time for the world to scroll the minimum gap
	speed      float64
	cfg        *config.DashConfig
	rng        Rand
}

// NewSpawner creates a spawner whose first Update spawns immediately.
func NewSpawner(cfg *config.DashConfig, rng Rand) *Spawner {
	return &Spawner{
		pattern:    []ObstacleKind{KindSpike, KindPlatform},
		minGapTime: cfg.Spawning.MinGap / cfg.Physics.ScrollSpeed,
		speed:      cfg.Physics.ScrollSpeed,
		cfg:        cfg,
		rng:        rng,
	}
}

// Update counts down the timer and spawns at most one obstacle into f.
// It returns the kind spawned and whether anything was spawned.
func (sp *Spawner) Update(dt float64, f Field) (ObstacleKind, bool) {
	sp.timer -= dt
	if sp.timer > 0 {
		return 0, false
	}

	kind := sp.pattern[sp.head]
	sp.head = (sp.head + 1) % len(sp.pattern)

	x := float64(sp.cfg.World.Width + sp.cfg.Spawning.SpawnOffset)
	switch kind {
	case KindSpike:
		w := sp.between(sp.cfg.Spikes.MinWidth, sp.cfg.Spikes.MaxWidth)
		h := sp.between(sp.cfg.Spikes.MinHeight, sp.cfg.Spikes.MaxHeight)
		f.AddSpike(NewSpike(x, sp.cfg.World.GroundY, w, h, sp.speed))
	case KindPlatform:
		pc := sp.cfg.Platforms
		w := sp.between(pc.MinWidth, pc.MaxWidth)
		y := float64(sp.cfg.World.GroundY - pc.Elevation)
		f.AddPlatform(NewPlatform(x, y, w, pc.Height, sp.speed))

		if pc.CompanionSpike {
			side := max(pc.CompanionMinSize, int(float64(w+companionPad)*pc.CompanionScale))
			cx := x + float64(int(float64(w)*pc.CompanionOffset))
			s := NewSpike(cx, sp.cfg.World.GroundY, side, side, sp.speed)
			s.Companion = true
			f.AddSpike(s)
		}
	}

	slack := sp.cfg.Spawning.MinSlack + sp.rng.Float64()*(sp.cfg.Spawning.MaxSlack-sp.cfg.Spawning.MinSlack)
	sp.timer = sp.minGapTime + slack*sp.minGapTime
	return kind, true
}

// between returns a uniform integer in [lo, hi].
func (sp *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + sp.rng.Intn(hi-lo+1)
}

// Timer returns the seconds left until the next spawn.
func (sp *Spawner) Timer() float64 {
	return sp.timer
}
