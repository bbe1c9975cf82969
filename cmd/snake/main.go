// snake is a terminal Snake game.
//
// Usage:
//
//	snake play                 - Play in the terminal
//	snake serve                - Start SSH server for remote play
//	snake simulate <cmd>...    - Run a direction script headless
//	snake config               - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate
//	--config <path>      - Game config YAML
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "snake",
		Short: "Snake - the classic game in your terminal",
		Long: `Snake is a terminal version of the classic game. Steer the snake
around the field; touching the border ends the round.

Available commands:
  play      - Play locally
  serve     - Start SSH server for remote play
  simulate  - Run a direction script and print every step
  config    - Print the effective game config

Examples:
  snake play
  snake play --config ./my-snake.yaml
  snake serve --ssh :2222
  snake simulate --rows 5 --cols 5 up*4
  snake config > ~/.snake/configs/snake.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(root)

	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newConfigCmd())
	return root
}
