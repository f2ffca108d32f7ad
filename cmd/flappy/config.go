package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML, after the search for config files.

Config search order:
  --config <path>
  ~/.flappy/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
