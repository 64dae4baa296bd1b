// Package window runs arcade games in a desktop window through Ebitengine.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/poligon98/arcade/internal/core"
	"github.com/poligon98/arcade/internal/registry"
)

// Options configures the window frontend.
type Options struct {
	Scale     float64  // Window size relative to the world size
	AssetsDir string   // Directory holding <handle>.png images
	Images    []string // Image handles the game may draw
	Logger    *log.Logger
}

// keyBindings maps keys to actions. Several keys may share an action.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyH, core.ActionToggleHitboxes},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
}

// helpText lists the bindings, grouped by action in table order.
var helpText = core.HelpLine(helpHints())

func helpHints() []core.Hint {
	var hints []core.Hint
	index := make(map[core.Action]int)
	for _, b := range keyBindings {
		i, ok := index[b.action]
		if !ok {
			i = len(hints)
			index[b.action] = i
			hints = append(hints, core.Hint{Action: b.action})
		}
		hints[i].Keys = append(hints[i].Keys, b.key.String())
	}
	return append(hints, core.Hint{Action: core.ActionQuit, Keys: []string{"Esc"}})
}

// Runner adapts a registry game to ebiten.Game.
type Runner struct {
	game   registry.Game
	canvas *Canvas
	input  core.InputFrame
	logger *log.Logger
}

// Update polls input and advances the game by one fixed step.
func (r *Runner) Update() error {
	r.input.Clear()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			r.input.Set(b.action)
		}
	}

	res := r.game.Step(r.input, core.StepForRate(ebiten.TPS()).Elapsed())
	if res.Died {
		r.logger.Info("player died", "game", r.game.ID(), "score", res.State.Score, "best", res.State.Best)
	}
	return nil
}

// Draw paints the game in world coordinates and the key help below it.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.dst = screen
	r.game.Paint(r.canvas)

	_, h := r.game.WorldSize()
	ebitenutil.DebugPrintAt(screen, helpText, 12, h-28)
}

// Layout keeps the logical screen at the world size; Ebitengine scales it
// to the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.game.WorldSize()
}

// Run opens a window and plays the game until it is closed or Esc is
// pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	game.Reset(cfg)
	w, h := game.WorldSize()

	ebiten.SetWindowSize(int(float64(w)*opts.Scale), int(float64(h)*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	r := &Runner{
		game:   game,
		canvas: NewCanvas(LoadImages(opts.AssetsDir, opts.Images, logger)),
		input:  core.NewInputFrame(),
		logger: logger,
	}
	logger.Info("window opened", "game", game.ID(), "size", [2]int{w, h}, "tps", ebiten.TPS(), "seed", cfg.Seed)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
