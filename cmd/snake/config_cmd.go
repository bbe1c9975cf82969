package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective game config as YAML",
		Long: `Print the game config that play and serve would use, after the
config file search and the --fps override.

Search order:
  1. --config path
  2. ~/.snake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. built-in defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadGameConfig()
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
