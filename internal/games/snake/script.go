package snake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxRepeat is the largest repeat count a script word may carry.
const MaxRepeat = 10000

// Command is one instruction of a headless run: either grow the snake or
// move it with a requested direction.
type Command struct {
	Grow bool
	Dir  core.Direction
}

func (c Command) String() string {
	if c.Grow {
		return "grow"
	}
	return c.Dir.String()
}

// ParseScript parses words such as "grow", "up" or "l" into commands.
// A word may carry a repeat count after a '*', as in "up*5", of at most
// MaxRepeat.
func ParseScript(words []string) ([]Command, error) {
	var cmds []Command
	for _, word := range words {
		name, count, err := splitRepeat(word)
		if err != nil {
			return nil, err
		}

		var cmd Command
		if name == "grow" || name == "g" {
			cmd.Grow = true
		} else {
			d, err := core.ParseDirection(name)
			if err != nil {
				return nil, fmt.Errorf("snake: bad script word %q: %w", word, err)
			}
			cmd.Dir = d
		}

		for range count {
			cmds = append(cmds, cmd)
		}
	}
	return cmds, nil
}

func splitRepeat(word string) (string, int, error) {
	name, rest, found := strings.Cut(strings.ToLower(strings.TrimSpace(word)), "*")
	if !found {
		return name, 1, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("snake: bad repeat count in %q", word)
	}
	if n > MaxRepeat {
		return "", 0, fmt.Errorf("snake: repeat count in %q exceeds %d", word, MaxRepeat)
	}
	return name, n, nil
}

// TraceStep records the snake after one command.
type TraceStep struct {
	Index   int
	Command Command
	Heading core.Direction
	Size    int
	Body    []core.Coord
	Err     error
}

// Trace runs cmds against s and records every step. It stops after the
// first collision; that step is included with Err set.
func Trace(s *Snake, cmds []Command) []TraceStep {
	steps := make([]TraceStep, 0, len(cmds))
	for i, cmd := range cmds {
		var err error
		if cmd.Grow {
			s.Grow()
		} else {
			err = s.Move(cmd.Dir)
		}

		steps = append(steps, TraceStep{
			Index:   i + 1,
			Command: cmd,
			Heading: s.Direction(),
			Size:    s.Size(),
			Body:    s.MovementData(),
			Err:     err,
		})
		if err != nil {
			break
		}
	}
	return steps
}
