package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/poligon98/arcade/internal/core"
	"github.com/poligon98/arcade/internal/games/dash"
	"github.com/poligon98/arcade/internal/platform/tui"
	"github.com/poligon98/arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game (default: dash) in the terminal.

Controls:
  Space/Up   - Jump
  H          - Toggle hitboxes
  R          - Restart (after death)
  P          - Pause
  Ctrl+S     - Save a text screenshot
  Esc/Q      - Quit

Difficulty options:
  easy   - Scroll at 80% speed
  normal - Scroll at the configured speed
  hard   - Scroll at 125% speed

Logs are discarded unless --log-file is set, so they do not draw over
the game.

Examples:
  arcade play
  arcade play dash-classic
  arcade play --difficulty hard
  arcade play --config ./my-dash.yaml --log-file dash.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameFromArgs(args)
	configureGames()

	logger, closeLog := mustLogger(io.Discard, "arcade")
	defer closeLog()
	dash.SetLogger(logger)

	// Defaults cover a terminal that cannot report its size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
