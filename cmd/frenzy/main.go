// frenzy is Coin Frenzy, a top-down arena game for the terminal: move, turn
// and shoot enemies while collecting every coin to advance a level.
//
// Usage:
//
//	frenzy play              - Start the title menu and play
//	frenzy serve             - Start SSH server for remote play
//	frenzy scores            - Show high scores
//	frenzy config            - Print the default arena config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--db <path>           - Set database path (default: ~/.frenzy/scores.db)
//	--config <path>       - Use a custom arena config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Log file (default: ~/.frenzy/frenzy.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-frenzy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frenzy",
	Short: "Coin Frenzy - a top-down arena shooter in your terminal",
	Long: `Coin Frenzy drops you in a walled arena full of coins and enemies.
Collect every coin to clear the level; each level brings more of both.

Available commands:
  play     - Start the title menu and play
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default arena config

Examples:
  frenzy play
  frenzy play --difficulty hard --seed 42
  frenzy serve --ssh :2222
  frenzy scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frenzy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", string(config.DifficultyNormal), "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.frenzy/frenzy.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadArena loads the arena config and checks the difficulty flag.
func loadArena() (config.ArenaConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return config.ArenaConfig{}, "", err
	}

	preset := config.DifficultyPreset(flagDifficulty)
	check := cfg
	if err := config.ApplyArenaPreset(&check, preset); err != nil {
		return config.ArenaConfig{}, "", err
	}
	return cfg, preset, nil
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
