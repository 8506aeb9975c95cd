package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skyfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game session with a variant
picker menu. Scores are stored per server (all users share the same
leaderboard).

The listen address defaults to $SKYFALL_SSH_ADDR, or :23234 when unset.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skyfall/host_key

Examples:
  skyfall serve                           # Listen on :23234 with auto-generated key
  skyfall serve --ssh :2222               # Listen on port 2222
  skyfall serve --host-key ./my_host_key  # Use specific host key
  skyfall serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", config.GetEnv(config.EnvSSHAddr, defaults.Address), "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard")
}

func runServe(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	base, err := config.LoadSkyfall(flagConfig)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	cfg.Base = base
	cfg.Preset = preset

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("skyfall-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting skyfall SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
