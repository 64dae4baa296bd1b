package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/poligon98/arcade/internal/config"
	"github.com/poligon98/arcade/internal/core"
	"github.com/poligon98/arcade/internal/games/dash"
	"github.com/poligon98/arcade/internal/platform/window"
	"github.com/poligon98/arcade/internal/registry"
)

var (
	flagScale  float64
	flagAssets string
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game (default: dash).

Images are loaded from the assets directory (player.png, triangle.png,
ground.png). Missing images are drawn as plain shapes.

Controls:
  Space/Up   - Jump
  H          - Toggle hitboxes
  R          - Restart (after death)
  P          - Pause
  Esc        - Quit

Examples:
  arcade window
  arcade window --scale 1.5 --assets ./assets
  arcade window dash-classic --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world size")
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Image directory (default: display.assets_dir from config)")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := gameFromArgs(args)
	configureGames()

	logger, closeLog := mustLogger(os.Stderr, "arcade")
	defer closeLog()
	dash.SetLogger(logger)

	assets := flagAssets
	if assets == "" {
		dashCfg, _, err := config.LoadDash(flagConfig)
		if err == nil {
			assets = dashCfg.Display.AssetsDir
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	cfg.ScreenW, cfg.ScreenH = game.WorldSize()

	err = window.Run(game, cfg, window.Options{
		Scale:     flagScale,
		AssetsDir: assets,
		Images:    dash.Images,
		Logger:    logger,
	})
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
