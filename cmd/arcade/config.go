package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poligon98/arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config YAML",
	Long: `Print the built-in config for a game (default: dash). Save it to
~/.arcade/configs/dash.yaml or ./configs/dash.yaml and edit the keys you
want to change, or pass it with --config.

Examples:
  arcade config > my-dash.yaml
  arcade play --config my-dash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := gameFromArgs(args)

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: game %q has no config\n", gameID)
		os.Exit(1)
	}
	_, _ = os.Stdout.Write(data)
}
