package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type simulateOptions struct {
	rows     uint64
	cols     uint64
	speed    uint32
	steering string
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate <command>...",
		Short: "Run a direction script and print every step",
		Long: `Spawn a snake and feed it a script without a terminal UI.

Commands:
  up, down, left, right (or u, d, l, r)  - Move with that direction
  grow (or g)                            - Grow one cell
  <command>*N                            - Repeat a command N times (N <= 10000)

The field, speed and steering default to the game config. The run stops at
the first boundary collision.

Examples:
  snake simulate up*3 right*2
  snake simulate --rows 5 --cols 5 up*4
  snake simulate --steering stored left up`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().Uint64Var(&opts.rows, "rows", 0, "Field rows (0 = use the game config)")
	cmd.Flags().Uint64Var(&opts.cols, "cols", 0, "Field columns (0 = use the game config)")
	cmd.Flags().Uint32Var(&opts.speed, "speed", 0, "Snake speed (0 = use the game config)")
	cmd.Flags().StringVar(&opts.steering, "steering", "", "Steering mode: adopt or stored (empty = use the game config)")
	return cmd
}

func runSimulate(w io.Writer, opts simulateOptions, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if opts.rows > 0 {
		cfg.Field.Rows = opts.rows
	}
	if opts.cols > 0 {
		cfg.Field.Cols = opts.cols
	}
	if opts.speed > 0 {
		cfg.Speed = opts.speed
	}
	if opts.steering != "" {
		cfg.Steering = opts.steering
	}

	fs, err := cfg.FieldSize()
	if err != nil {
		return err
	}
	steering, err := snake.ParseSteering(cfg.Steering)
	if err != nil {
		return err
	}
	cmds, err := snake.ParseScript(args)
	if err != nil {
		return err
	}

	s, err := snake.Spawn(fs, snake.WithSpeed(cfg.Speed), snake.WithSteering(steering))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Field %s, spawn %s, steering %s\n", fs, s.Head(), s.Steering())
	steps := snake.Trace(s, cmds)
	renderTrace(w, steps)

	if s.State() == snake.StateCollided {
		fmt.Fprintf(w, "Collided after %d of %d commands\n", len(steps), len(cmds))
	} else {
		fmt.Fprintf(w, "Alive after %d commands, length %d\n", len(steps), s.Size())
	}
	return nil
}

func renderTrace(w io.Writer, steps []snake.TraceStep) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Command", "Heading", "Size", "Head", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	for _, step := range steps {
		head := "-"
		if len(step.Body) > 0 {
			head = step.Body[0].String()
		}
		table.Append([]string{
			strconv.Itoa(step.Index),
			step.Command.String(),
			step.Heading.String(),
			strconv.Itoa(step.Size),
			head,
			traceResult(step.Err),
		})
	}

	table.Render()
}

func traceResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case snake.IsCollision(err):
		return "collision"
	default:
		return err.Error()
	}
}
