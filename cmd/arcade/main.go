// arcade plays obstacle-dodge arcade games in the terminal, in a window,
// or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game in the terminal
//	arcade menu              - Pick a game from a menu
//	arcade window [game]     - Play a game in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade config [game]     - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poligon98/arcade/internal/config"
	"github.com/poligon98/arcade/internal/games/dash"
	"github.com/poligon98/arcade/internal/registry"
)

const defaultGame = "dash"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - jump over spikes in your terminal",
	Long: `Arcade is a small platform for real-time arcade games. The Dash runner
scrolls spikes and platforms toward you; jump over them as long as you can.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Interactive game picker menu
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the default config YAML

Examples:
  arcade list
  arcade play
  arcade play dash-classic --difficulty hard
  arcade window --seed 42
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// gameFromArgs returns the requested game ID, or exits if it is unknown.
func gameFromArgs(args []string) string {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	return gameID
}

// configureGames checks the config flags and hands them to the games.
// A broken custom config is reported here rather than silently replaced
// by defaults later.
func configureGames() {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, _, err := config.LoadDash(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	dash.SetConfigPath(flagConfig)
	dash.SetDifficultyPreset(flagDifficulty)
}
