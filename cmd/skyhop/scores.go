package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skyhop-game/skyhop/internal/platform/tui"
	"github.com/skyhop-game/skyhop/internal/sim"
	"github.com/skyhop-game/skyhop/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top scores per difficulty.

Without arguments, shows the top five for every difficulty. With a
difficulty argument, shows that tier only. Use --interactive for a
browsable scoreboard.

Examples:
  skyhop scores
  skyhop scores hard
  skyhop scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	tiers := sim.Tiers()
	if len(args) == 1 {
		tier, err := sim.ParseTier(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Valid difficulties: easy, medium, hard")
			os.Exit(1)
		}
		tiers = []sim.Tier{tier}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, tier := range tiers {
		printTierScores(store, tier)
	}
}

// printTierScores prints the top scores and stats for one difficulty.
func printTierScores(store *storage.Store, tier sim.Tier) {
	fmt.Printf("High Scores - %s\n", tier)
	fmt.Println()

	scores, err := store.TopScores(tier.String(), sim.LeaderboardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Println()
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, statsErr := store.GetTierStats(tier.String()); statsErr == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("  %d games played, average score %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	fmt.Println()
}
