package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Best scores are stored per SSH user
in the server's database. Sound is never played on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy/host_key

Examples:
  flappy serve                           # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key
  flappy serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Game = gameCfg

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("ssh"))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting flappy SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
