// pillfall is a falling-pill puzzle game for the terminal.
//
// Usage:
//
//	pillfall play            - Play the game
//	pillfall scores          - Show high scores and stats
//	pillfall serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pillfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/pillfall/pillfall/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pillfall",
	Short: "Pillfall - Clear the virus field with falling pills",
	Long: `Pillfall is a terminal puzzle game: two-colored pills fall into a
bottle seeded with viruses, and runs of four or more same-colored cells
clear. Clear every virus to win.

Available commands:
  play     - Play the game
  scores   - View high scores and statistics
  serve    - Start SSH server for remote play

Examples:
  pillfall play
  pillfall play --speed hi
  pillfall scores
  pillfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pillfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
