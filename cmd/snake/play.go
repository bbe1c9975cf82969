package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play snake in this terminal",
		Long: `Start a game of snake in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Esc             - Pause
  R                 - Restart (after a collision)
  Q/Ctrl+C          - Quit

The terminal owns the screen while playing, so logs are only written
when --log-file is set.

Examples:
  snake play
  snake play --fps 30
  snake play --config ./my-snake.yaml --log-file snake.log`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake", false)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := snake.New(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
	}

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
