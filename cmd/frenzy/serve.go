package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-frenzy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Coin Frenzy SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent arena session with a title
menu. Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.frenzy/host_key

Logs go to stderr, and also to --log-file when it is set.

Examples:
  frenzy serve                           # Listen on :23234 with auto-generated key
  frenzy serve --ssh :2222               # Listen on port 2222
  frenzy serve --host-key ./my_host_key  # Use specific host key
  frenzy serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	arenaCfg, difficulty, err := loadArena()
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = os.Stderr
	if flagLogFile != "" {
		fileOut, fileErr := logFileWriter()
		if fileErr != nil {
			fail("%v", fileErr)
		}
		logOut = io.MultiWriter(os.Stderr, fileOut)
	}
	logger, err := newLogger(logOut, "frenzy-ssh")
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Arena:       arenaCfg,
		Difficulty:  difficulty,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Coin Frenzy SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
