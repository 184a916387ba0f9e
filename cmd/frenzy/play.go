package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-frenzy/internal/core"
	"github.com/vovakirdan/coin-frenzy/internal/platform/tui"
	"github.com/vovakirdan/coin-frenzy/internal/storage"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Coin Frenzy",
	Long: `Start Coin Frenzy in the terminal.

The title menu lets you pick a difficulty and view high scores. After a
game you return to the menu. Use --no-menu to jump straight into a game.

Controls:
  W/S        - Move forward/back
  A/D        - Strafe left/right
  Q/E        - Turn left/right
  Space/F    - Fire
  M          - Toggle coin magnet
  C          - Toggle cheat (no contact damage)
  P          - Pause
  R          - Restart
  ?          - Full help
  Ctrl+S     - Screenshot
  Esc/Ctrl+C - Quit

Difficulty options:
  easy   - 5 lives, enemies hit for 10
  normal - 3 lives, enemies hit for 15
  hard   - 1 life, enemies hit for 25

Logs go to ~/.frenzy/frenzy.log unless --log-file is set.

Examples:
  frenzy play
  frenzy play --difficulty hard
  frenzy play --no-menu --seed 42
  frenzy play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the title menu and start a game")
}

func runPlay(_ *cobra.Command, _ []string) {
	arenaCfg, difficulty, err := loadArena()
	if err != nil {
		fail("%v", err)
	}

	// The TUI owns the terminal, so logs go to a file
	logOut, err := logFileWriter()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(logOut, "frenzy")
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
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

	opts := tui.GameOptions{
		Arena:      arenaCfg,
		Difficulty: difficulty,
		Runtime:    cfg,
		Store:      store,
		Logger:     logger,
	}

	if flagNoMenu {
		final, err := tui.Run(opts)
		if err != nil {
			logger.Error("game failed", "error", err)
			fail("running game: %v", err)
		}
		reportGame(logger, final)
		if run := final.LastRun(); run != nil {
			fmt.Printf("Last run: %s points, level %d (run %s)\n",
				humanize.Comma(int64(run.Score)), run.Level, run.RunID)
		}
		return
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		// A fixed --seed replays the same arena every game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		opts.Runtime = cfg
		opts.Difficulty = difficulty

		final, err := tui.Run(opts)
		if err != nil {
			logger.Error("game failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		reportGame(logger, final)
	}
}

// reportGame logs how a closed game ended.
func reportGame(logger *log.Logger, m tui.Model) {
	session := m.Session()
	if session == nil {
		return
	}
	snap := session.Snapshot()
	fields := []any{"ticks", session.Tick(), "score", snap.Score, "level", snap.Level}
	if run := m.LastRun(); run != nil {
		fields = append(fields, "last_run", run.RunID, "last_score", run.Score)
	}
	logger.Info("game closed", fields...)
}
