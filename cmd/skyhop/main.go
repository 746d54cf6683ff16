// skyhop is a terminal side-scroller: steer a hopper through barrier gaps,
// bank backward passes for streak bonuses, and climb per-difficulty
// leaderboards.
//
// Usage:
//
//	skyhop play              - Play a match
//	skyhop scores            - Show high scores
//	skyhop serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyhop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "skyhop",
	Short: "Skyhop - A side-scrolling hopper for your terminal",
	Long: `Skyhop is a terminal game where you keep a hopper airborne through
an endless field of barrier gaps. Pass barriers forward to score; slip back
past cleared barriers to build a bonus streak.

Available commands:
  play     - Play a match
  scores   - View high scores per difficulty
  serve    - Start SSH server for remote play

Examples:
  skyhop play
  skyhop play --difficulty hard
  skyhop scores
  skyhop serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
