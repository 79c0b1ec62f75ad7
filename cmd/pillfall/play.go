package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pillfall/pillfall/internal/core"
	"github.com/pillfall/pillfall/internal/game"
	"github.com/pillfall/pillfall/internal/platform/tui"
	"github.com/pillfall/pillfall/internal/registry"
	"github.com/pillfall/pillfall/internal/storage"
)

var (
	flagConfig string
	flagSpeed  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Pillfall.

Controls:
  A/Left     - Move pill left
  D/Right    - Move pill right
  W/Up/X     - Rotate pill
  S/Down     - Soft drop
  Space      - Hard drop
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Speed presets:
  low  - relaxed drop rate
  med  - the classic pace (default)
  hi   - pills barely pause

Examples:
  pillfall play
  pillfall play --speed hi
  pillfall play --config ./my-pillfall.yaml
  pillfall play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: low, med, hi (interactive selector if omitted)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the speed selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)

	// Pick the speed: flag wins, otherwise show the selector
	if flagSpeed != "" {
		game.SetSpeedPreset(flagSpeed)
	} else {
		preset, selErr := tui.RunSpeedSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if preset == "" {
			return
		}
		game.SetSpeedPreset(string(preset))
	}

	// Create game instance
	g, err := registry.Create("pillfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
