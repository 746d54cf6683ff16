package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skyhop-game/skyhop/internal/config"
	"github.com/skyhop-game/skyhop/internal/core"
	"github.com/skyhop-game/skyhop/internal/platform/tui"
	"github.com/skyhop-game/skyhop/internal/sim"
	"github.com/skyhop-game/skyhop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in the terminal.

Controls:
  Space/W/Up - Flap
  A/D        - Drift left/right
  1/2/3      - Select difficulty (title screen)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  skyhop play
  skyhop play --difficulty hard
  skyhop play --config ./my-skyhop.yaml
  skyhop play --seed 12345`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tier := sim.TierMedium
	if flagDifficulty != "" {
		tier, err = sim.ParseTier(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Valid difficulties: easy, medium, hard")
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	boards := tui.LoadBoards(store)
	feed := tui.NewEventFeed()

	match := sim.NewMatch(tuning.SimWorld(cfg.TickRate), tuning.Profiles(), boards, cfg.Seed, feed)
	match.SelectTier(tier)

	runErr := tui.Run(match, feed, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
