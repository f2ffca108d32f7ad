package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagDuration time.Duration
	flagMargin   float64
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Let the autopilot play headless",
	Long: `Run the game without a terminal UI and let the autopilot play.
Sessions restart after every collision until --duration has passed
or Ctrl+C is pressed. Progress is logged at info level.

Examples:
  flappy bot --duration 1m --log-level info
  flappy bot --seed 42 --fps 240`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

func init() {
	botCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "How long the bot plays")
	botCmd.Flags().Float64Var(&flagMargin, "margin", 10, "How far above the bottom of a gap the bot keeps")
}

// botEvents logs what happens in the simulation and counts sessions.
type botEvents struct {
	logger   *log.Logger
	sessions int
}

func (e *botEvents) OnFlap() {}

func (e *botEvents) OnScore(score int) {
	e.logger.Debug("scored", "score", score)
}

func (e *botEvents) OnCollision(outcome flappy.Outcome) {
	e.logger.Debug("collision", "with", outcome)
}

func (e *botEvents) OnSessionEnd(score, best int) {
	e.sessions++
	e.logger.Info("session ended", "session", e.sessions, "score", score, "best", best)
}

func runBot(cmd *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	events := &botEvents{logger: logger.WithPrefix("bot")}
	game := flappy.New(gameCfg,
		flappy.WithSeed(seed()),
		flappy.WithEvents(events),
	)
	pilot := flappy.Autopilot{Margin: flagMargin, Restart: true}

	driver := flappy.NewDriver(game, flagFPS, func(s flappy.Snapshot) {
		game.Submit(pilot.Decide(s))
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	game.Submit(flappy.CommandStart)
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	snap := game.Snapshot()
	fmt.Printf("Sessions: %d\n", events.sessions)
	fmt.Printf("Score: %d (%s)\n", snap.Score, snap.Phase)
	fmt.Printf("Best: %d\n", snap.Best)
	return nil
}
