package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pillfall/pillfall/internal/platform/tui"
	"github.com/pillfall/pillfall/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and statistics",
	Long: `Display the top 10 high scores and aggregate statistics.

Examples:
  pillfall scores
  pillfall scores --interactive
  pillfall scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a scrollable table")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		runScoreboard(store)
		return
	}

	// Get top scores
	scores, err := store.TopScores("pillfall", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Pillfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pillfall play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-5s  %s\n", "Rank", "Score", "Viruses", "Result", "Speed", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-5s  %s\n", "----", "-----", "-------", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6s  %-5s  %s\n",
			i+1, entry.Score, entry.VirusesCleared, result, entry.Speed, dateStr)
	}

	// Show aggregate stats
	stats, err := store.GetGameStats("pillfall")
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Avg: %.0f  Viruses cleared: %d\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalViruses)
}

// runScoreboard opens the scrollable score table.
func runScoreboard(store *storage.Store) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}
