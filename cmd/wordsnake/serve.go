package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Word Snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the pack menu. Scores are
stored per-server (all users share the same leaderboard). Sessions are
silent; sound only plays in local games.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordsnake/host_key

Examples:
  wordsnake serve                           # Listen on :23234 with auto-generated key
  wordsnake serve --ssh :2222               # Listen on port 2222
  wordsnake serve --host-key ./my_host_key  # Use specific host key
  wordsnake serve --packs ./packs           # Serve extra clue packs

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
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = settings.Storage.DBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.PackDir = flagPackDir
	cfg.Game = settings
	cfg.TickRate = flagFPS

	logger.SetReportTimestamp(true)
	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("wordsnake-ssh"))
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting Word Snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
