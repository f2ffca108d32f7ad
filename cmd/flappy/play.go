package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Enter  - Flap (starts and restarts too)
  Left click        - Flap
  S                 - Start
  R                 - Restart (after game over)
  P/Esc             - Pause
  M                 - Toggle sound
  Q/Ctrl+C          - Quit

The game pauses by itself while the terminal is not focused.

Examples:
  flappy play
  flappy play --fps 30
  flappy play --profile alice
  flappy play --config ./my-flappy.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
		Profile:  flagProfile,
		Muted:    flagMute || !gameCfg.Audio.Enabled,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, best score will not be kept", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	opts := []flappy.Option{
		flappy.WithSeed(cfg.Seed),
		flappy.WithBestScoreStore(storage.NewProfile(store, cfg.Profile, logger.WithPrefix("profile"))),
	}

	sound := openSound(gameCfg.Audio, flagMute)
	var toggler tui.Toggler
	if sound != nil {
		defer sound.Close()
		opts = append(opts, flappy.WithEvents(sound))
		toggler = sound
	}

	game := flappy.New(gameCfg, opts...)
	if err := tui.Run(game, cfg, toggler); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openSound returns a ready sound manager, or nil when audio is disabled or
// no device is available.
func openSound(cfg config.AudioConfig, muted bool) *audio.SoundManager {
	if !cfg.Enabled {
		return nil
	}

	sound := audio.NewSoundManager(cfg)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "error", err)
		return nil
	}
	if muted {
		sound.Toggle()
	}
	return sound
}
