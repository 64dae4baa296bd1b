package dash

import (
	"github.com/poligon98/arcade/internal/core"
)

// Snapshot is a read-only copy of the session at the end of a tick.
type Snapshot struct {
	Tick      uint64
	Player    PlayerSnapshot
	Spikes    []SpikeSnapshot
	Platforms []PlatformSnapshot
	Score     float64
	Best      float64
	Running   bool
}

// PlayerSnapshot holds the player's bounds and grounded state.
type PlayerSnapshot struct {
	Rect     core.Rect
	VelY     float64
	OnGround bool
}

// SpikeSnapshot holds a spike's position and hitbox points.
type SpikeSnapshot struct {
	X, Y      float64
	W, H      int
	Apex      core.Point
	BaseLeft  core.Point
	BaseRight core.Point
	Companion bool
}

// PlatformSnapshot holds a platform's collision rect.
type PlatformSnapshot struct {
	X, Y float64
	Rect core.Rect
}

// Snapshot copies the current state. Later updates do not change it.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: s.ticks,
		Player: PlayerSnapshot{
			Rect:     s.player.Rect(),
			VelY:     s.player.VelY(),
			OnGround: s.player.OnGround(),
		},
		Spikes:    make([]SpikeSnapshot, 0, len(s.spikes)),
		Platforms: make([]PlatformSnapshot, 0, len(s.platforms)),
		Score:     s.score,
		Best:      s.best,
		Running:   s.running,
	}
	for _, sp := range s.spikes {
		apex, left, right := sp.Hitbox()
		snap.Spikes = append(snap.Spikes, SpikeSnapshot{
			X: sp.Pos.X, Y: sp.Pos.Y,
			W: sp.Width, H: sp.Height,
			Apex: apex, BaseLeft: left, BaseRight: right,
			Companion: sp.Companion,
		})
	}
	for _, pl := range s.platforms {
		snap.Platforms = append(snap.Platforms, PlatformSnapshot{
			X: pl.Pos.X, Y: pl.Pos.Y,
			Rect: pl.Rect(),
		})
	}
	return snap
}
