package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-frenzy/internal/platform/tui"
	"github.com/vovakirdan/coin-frenzy/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagTUI   bool
	flagRunID string
	flagIDs   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top finished runs: score, level reached, player and when.

Examples:
  frenzy scores
  frenzy scores --limit 25
  frenzy scores --tui
  frenzy scores --ids
  frenzy scores --run 0b4c9e1e-6f1c-4c52-9a51-2d0f3e7f9a10
  frenzy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved runs")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its run ID")
	scoresCmd.Flags().BoolVar(&flagIDs, "ids", false, "Include run IDs in the listing")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagRunID != "" {
		showRun(store, flagRunID)
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Coin Frenzy")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frenzy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %-6s  %s\n", "Rank", "Score", "Level", "Player", "Mode", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %-12s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		when := r.CreatedAt.Format("2006-01-02 15:04")
		if !r.CreatedAt.IsZero() {
			when += " (" + humanize.Time(r.CreatedAt) + ")"
		}
		fmt.Printf("  %-4d  %-10s  %-5d  %-12s  %-6s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Level, r.Player, r.Difficulty, when)
		if flagIDs {
			fmt.Printf("        run %s\n", r.RunID)
		}
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s over %s runs (best level %d)\n",
			humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.Runs)), stats.BestLevel)
	}
}

func showRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fail("retrieving run: %v", err)
	}
	if run == nil {
		fail("no run with ID %q", runID)
	}

	fmt.Printf("Run %s\n", run.RunID)
	fmt.Printf("  Score:  %s\n", humanize.Comma(int64(run.Score)))
	fmt.Printf("  Level:  %d\n", run.Level)
	fmt.Printf("  Player: %s\n", run.Player)
	fmt.Printf("  Mode:   %s\n", run.Difficulty)
	if !run.CreatedAt.IsZero() {
		fmt.Printf("  Played: %s (%s)\n", run.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(run.CreatedAt))
	}
}
