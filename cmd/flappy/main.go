// flappy is a terminal Flappy Bird.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy serve             - Start SSH server for remote play
//	flappy best              - Show the best score of a profile
//	flappy reset-best        - Forget the best score of a profile
//	flappy scores            - Show the best score of every profile
//	flappy bot               - Let the autopilot play headless
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappy/scores.db)
//	--config <path>     - Load game config from a YAML file
//	--profile <name>    - Profile the best score is stored under
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagProfile  string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappy",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal: flap through the gaps between pipes
and try to beat your best score.

Available commands:
  play        - Play in the terminal
  serve       - Start SSH server for remote play
  best        - Show the best score of a profile
  reset-best  - Forget the best score of a profile
  scores      - Show the best score of every profile
  bot         - Let the autopilot play headless
  config      - Print the effective game config

Examples:
  flappy play
  flappy play --profile alice --mute
  flappy serve --ssh :2222
  flappy scores
  flappy bot --duration 1m`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", defaultProfile(), "Profile the best score is stored under")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(resetBestCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultProfile names the profile after the login user.
func defaultProfile() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
