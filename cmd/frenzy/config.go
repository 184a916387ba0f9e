package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/coin-frenzy/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the arena config",
	Long: `Print the embedded default arena config as YAML.

Save it to ~/.frenzy/configs/arena.yaml or ./configs/arena.yaml and edit
the values you want to change; missing keys keep their defaults.

With --resolved, prints the config that play would use: the file found by
the search order (or --config) with the --difficulty preset applied.

Examples:
  frenzy config > ~/.frenzy/configs/arena.yaml
  frenzy config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, difficulty, err := loadArena()
	if err != nil {
		fail("%v", err)
	}
	if err := config.ApplyArenaPreset(&cfg, difficulty); err != nil {
		fail("%v", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(out))
}
