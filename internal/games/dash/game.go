// Package dash implements a Geometry Dash-style auto-runner.
// The world scrolls left at a constant speed; the player jumps over
// spikes and onto floating platforms until a spike catches them.
package dash

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/poligon98/arcade/internal/config"
	"github.com/poligon98/arcade/internal/core"
	"github.com/poligon98/arcade/internal/registry"
)

// Image handles the window frontend may load.
const (
	ImagePlayer = "player"
	ImageSpike  = "triangle"
	ImageGround = "ground"
)

// groundTile is the side of one square ground image tile.
const groundTile = 150

// Images lists every handle Paint may ask for.
var Images = []string{ImagePlayer, ImageSpike, ImageGround}

// Game adapts a Session to the registry: input actions, pause,
// hitbox overlay and drawing.
type Game struct {
	id           string
	classic      bool // Platforms spawn without companion spikes
	session      *Session
	cfg          config.DashConfig
	runtime      core.RuntimeConfig
	paused       bool
	showHitboxes bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// scroll speed from the config.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used for config fallbacks and round results.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Dash game with companion spikes next to platforms.
func New() *Game {
	return &Game{id: "dash", cfg: config.DefaultDashConfig()}
}

// NewClassic creates a Dash game whose platforms spawn alone.
func NewClassic() *Game {
	return &Game{id: "dash-classic", classic: true, cfg: config.DefaultDashConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Dash (Classic)"
	}
	return "Dash"
}

// Reset loads the config and starts a new session. The best score of a
// previous session carries over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, source, err := config.LoadDash(configPath)
	if err != nil {
		logger.Warn("using default config", "game", g.id, "err", err)
		cfg = config.DefaultDashConfig()
		source = "builtin"
	}
	config.ApplyDashPreset(&cfg, difficultyPreset)
	if g.classic {
		cfg.Platforms.CompanionSpike = false
	}
	logger.Debug("config loaded", "game", g.id, "source", source, "speed", cfg.Physics.ScrollSpeed)

	var best float64
	if g.session != nil {
		best = g.session.Best()
	}
	g.cfg = cfg
	g.session = NewSession(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.session.best = best
	g.paused = false
	g.showHitboxes = cfg.Display.ShowHitboxes
}

// Step applies one frame of input and advances the session by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionToggleHitboxes) {
		g.showHitboxes = !g.showHitboxes
	}

	if !g.session.Running() {
		if in.Has(core.ActionRestart) {
			g.session.Reset()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.Jump()
	}

	g.session.Update(dt)

	died := !g.session.Running()
	if died {
		logger.Info("round over", "game", g.id, "score", int(g.session.Score()), "best", int(g.session.Best()))
	}
	return core.StepResult{State: g.State(), Died: died}
}

// Paint draws the world, the overlay and the HUD onto c.
func (g *Game) Paint(c core.Canvas) {
	w := g.cfg.World
	snap := g.session.Snapshot()
	c.Fill(core.ColorSky)

	// Ground band
	ground := core.NewRect(0, w.GroundY, w.Width, w.Height-w.GroundY)
	if c.HasImage(ImageGround) {
		for x := 0; x < w.Width; x += groundTile {
			c.Draw(core.ImageSprite{
				Handle: ImageGround,
				X:      float64(x), Y: float64(ground.Y),
				W: groundTile, H: groundTile,
			})
		}
	} else {
		c.Draw(core.RectSprite{Rect: ground, Color: core.ColorGray})
	}

	for _, pl := range snap.Platforms {
		c.Draw(core.RectSprite{Rect: pl.Rect, Color: core.ColorGray})
		if g.showHitboxes {
			c.Draw(core.RectSprite{Rect: pl.Rect, Color: core.ColorBrightRed, Outline: true})
		}
	}

	useSpikeImage := c.HasImage(ImageSpike) && !g.showHitboxes
	for _, sp := range snap.Spikes {
		if useSpikeImage {
			c.Draw(core.ImageSprite{
				Handle: ImageSpike,
				X:      sp.X, Y: sp.Y,
				W: float64(sp.W), H: float64(sp.H),
			})
			continue
		}
		col := core.ColorRed
		if g.showHitboxes {
			col = core.ColorBrightRed
		}
		c.Draw(core.PolygonSprite{
			Points: []core.Vec2{toVec(sp.Apex), toVec(sp.BaseLeft), toVec(sp.BaseRight)},
			Color:  col,
		})
	}

	pr := snap.Player.Rect
	if c.HasImage(ImagePlayer) {
		c.Draw(core.ImageSprite{
			Handle: ImagePlayer,
			X:      float64(pr.X), Y: float64(pr.Y),
			W: float64(pr.W), H: float64(pr.H),
		})
	} else {
		c.Draw(core.RectSprite{Rect: pr, Color: core.ColorYellow})
	}
	if g.showHitboxes {
		c.Draw(core.RectSprite{Rect: pr, Color: core.ColorBrightRed, Outline: true})
	}

	// HUD
	c.DrawText(12, 12, fmt.Sprintf("Score: %d", int(snap.Score)), core.ColorWhite)
	c.DrawText(12, 44, fmt.Sprintf("Best: %d", int(snap.Best)), core.ColorWhite)

	cx, cy := float64(w.Width)/2, float64(w.Height)/2
	if g.paused {
		c.DrawText(cx-30, cy-20, "PAUSED", core.ColorWhite)
	}
	if !snap.Running {
		c.DrawText(cx-160, cy-20, "You Died! Press R to restart", core.ColorWhite)
	}
}

func toVec(p core.Point) core.Vec2 {
	return core.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Render paints the game onto a terminal screen, scaling the world to
// the screen's cells.
func (g *Game) Render(dst *core.Screen) {
	g.Paint(core.NewScreenCanvas(dst, float64(g.cfg.World.Width), float64(g.cfg.World.Height)))
}

// WorldSize returns the world dimensions in pixels.
func (g *Game) WorldSize() (int, int) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// HitboxesShown reports whether the collision overlay is on.
func (g *Game) HitboxesShown() bool {
	return g.showHitboxes
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Score()),
		Best:     int(g.session.Best()),
		GameOver: !g.session.Running(),
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register("dash", func() registry.Game {
		return New()
	})
	registry.Register("dash-classic", func() registry.Game {
		return NewClassic()
	})
}
