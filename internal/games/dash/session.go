package dash

import (
	"github.com/poligon98/arcade/internal/config"
	"github.com/poligon98/arcade/internal/core"
)

// Session is one run of the game: the player, live obstacles, the spawn
// timer and the score. Best survives Reset for the life of the Session.
type Session struct {
	cfg       config.DashConfig
	rng       Rand
	player    *Player
	spikes    []*Spike    // Spawn order
	platforms []*Platform // Spawn order
	spawner   *Spawner
	score     float64
	best      float64
	running   bool
	ticks     uint64
}

// NewSession creates a running session. cfg must be valid.
func NewSession(cfg config.DashConfig, rng Rand) *Session {
	s := &Session{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset starts a fresh round. The best score is kept.
func (s *Session) Reset() {
	s.player = NewPlayer(&s.cfg)
	clear(s.spikes)
	s.spikes = s.spikes[:0]
	clear(s.platforms)
	s.platforms = s.platforms[:0]
	s.spawner = NewSpawner(&s.cfg, s.rng)
	s.score = 0
	s.running = true
	s.ticks = 0
}

// Jump forwards a jump request to the player while the round runs.
func (s *Session) Jump() {
	if !s.running {
		return
	}
	s.player.Jump()
}

// Update advances the round by dt seconds. It does nothing once the
// player has died. Negative or non-finite dt counts as zero.
func (s *Session) Update(dt float64) {
	if !s.running {
		return
	}
	dt = core.SanitizeDelta(dt)
	s.ticks++

	s.player.Update(dt, s.platforms)
	s.spawner.Update(dt, s)

	for _, sp := range s.spikes {
		sp.Update(dt)
	}
	for _, pl := range s.platforms {
		pl.Update(dt)
	}

	// Remove obstacles that have scrolled past the left edge
	liveSpikes := s.spikes[:0]
	for _, sp := range s.spikes {
		if !sp.OffScreen() {
			liveSpikes = append(liveSpikes, sp)
		}
	}
	clear(s.spikes[len(liveSpikes):])
	s.spikes = liveSpikes

	livePlatforms := s.platforms[:0]
	for _, pl := range s.platforms {
		if !pl.OffScreen() {
			livePlatforms = append(livePlatforms, pl)
		}
	}
	clear(s.platforms[len(livePlatforms):])
	s.platforms = livePlatforms

	foot := s.player.Foot()
	for _, sp := range s.spikes {
		if Lethal(sp, foot, s.cfg.Spikes.BaseMargin, s.cfg.Spikes.Forgiveness) {
			s.best = max(s.best, s.score)
			s.running = false
			return
		}
	}

	s.score += dt * s.cfg.Physics.ScorePerSecond
}

// AddSpike appends a spike to the live set.
func (s *Session) AddSpike(sp *Spike) {
	s.spikes = append(s.spikes, sp)
}

// AddPlatform appends a platform to the live set.
func (s *Session) AddPlatform(p *Platform) {
	s.platforms = append(s.platforms, p)
}

// Player returns the current player.
func (s *Session) Player() *Player { return s.player }

// Spikes returns the live spikes in spawn order. The slice is owned by
// the session and changes on the next Update.
func (s *Session) Spikes() []*Spike { return s.spikes }

// Platforms returns the live platforms in spawn order.
func (s *Session) Platforms() []*Platform { return s.platforms }

// Spawner returns the spawn scheduler of the current round.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Score returns the score of the current round.
func (s *Session) Score() float64 { return s.score }

// Best returns the highest score reached by a finished round.
func (s *Session) Best() float64 { return s.best }

// Running reports whether the player is still alive.
func (s *Session) Running() bool { return s.running }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.DashConfig { return s.cfg }
