package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func newServeCmd() *cobra.Command {
	var (
		addr        string
		hostKey     string
		idleTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the snake SSH server",
		Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own snake built from the game config.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), addr, hostKey, idleTimeout)
		},
	}

	defaults := tui.DefaultSSHServerConfig()
	cmd.Flags().StringVar(&addr, "ssh", defaults.Address, "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().DurationVar(&idleTimeout, "idle-timeout", defaults.IdleTimeout, "Idle time before disconnecting")
	return cmd
}

func runServe(ctx context.Context, addr, hostKey string, idleTimeout time.Duration) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake-ssh", true)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		IdleTimeout: idleTimeout,
		Game:        gameCfg,
	}, logger)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
