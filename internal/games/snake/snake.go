// Package snake implements the snake state machine and the tick driver that
// runs it inside the terminal platform.
package snake

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultSpeed is the speed a snake spawns with. The snake only stores it;
// pacing is up to the driver.
const DefaultSpeed = 12

// ErrBoundaryCollision is returned by Move when the head would leave the field.
// It is terminal for the snake that reported it.
var ErrBoundaryCollision = errors.New("snake: boundary collision")

// ErrInvalidConfiguration is returned by Spawn for unusable fields.
var ErrInvalidConfiguration = core.ErrInvalidConfiguration

// State is the lifecycle state of a snake.
type State int

const (
	StateAlive State = iota
	StateCollided
)

// String returns "alive", "collided" or "unknown".
func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Steering selects how Move treats its direction argument.
type Steering int

const (
	// SteerAdopt turns the snake to the requested direction before stepping.
	SteerAdopt Steering = iota
	// SteerStored ignores the requested direction and keeps the heading the
	// snake already has.
	SteerStored
)

// String returns the config name of the mode, or "unknown".
func (s Steering) String() string {
	switch s {
	case SteerAdopt:
		return "adopt"
	case SteerStored:
		return "stored"
	default:
		return "unknown"
	}
}

// ParseSteering parses "adopt" or "stored". An empty string means adopt.
func ParseSteering(s string) (Steering, error) {
	switch s {
	case "", "adopt":
		return SteerAdopt, nil
	case "stored":
		return SteerStored, nil
	}
	return 0, fmt.Errorf("%w: unknown steering mode %q", ErrInvalidConfiguration, s)
}

// Option customizes a snake at spawn time.
type Option func(*Snake)

// WithSpeed overrides DefaultSpeed.
func WithSpeed(speed uint32) Option {
	return func(s *Snake) {
		s.speed = speed
	}
}

// WithSteering sets how Move treats its direction argument.
func WithSteering(mode Steering) Option {
	return func(s *Snake) {
		s.steering = mode
	}
}

// Snake is a body of cells moving across a fixed field.
// The body is ordered head first; the head is always the newest cell.
// A Snake is not safe for concurrent use.
type Snake struct {
	body      deque.Deque[core.Coord]
	size      int
	direction core.Direction
	speed     uint32
	fieldSize core.FieldSize
	steering  Steering
	state     State
}

// Spawn creates a one-cell snake heading up from the center of fs.
func Spawn(fs core.FieldSize, opts ...Option) (*Snake, error) {
	if err := fs.Validate(); err != nil {
		return nil, fmt.Errorf("snake: cannot spawn: %w", err)
	}

	s := &Snake{
		direction: core.DirUp,
		speed:     DefaultSpeed,
		fieldSize: fs,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.body.PushFront(core.Centered(fs))
	s.size = 1
	return s, nil
}

// Size returns the number of body cells.
func (s *Snake) Size() int {
	return s.size
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Speed returns the stored speed value.
func (s *Snake) Speed() uint32 {
	return s.speed
}

// FieldSize returns the field the snake was spawned into.
func (s *Snake) FieldSize() core.FieldSize {
	return s.fieldSize
}

// Steering returns how Move treats its direction argument.
func (s *Snake) Steering() Steering {
	return s.steering
}

// State reports whether the snake is still alive.
func (s *Snake) State() State {
	return s.state
}

// Head returns the head cell.
func (s *Snake) Head() core.Coord {
	return s.body.Front()
}

// MovementData returns the body from head to tail.
// The slice is a copy; calling it never changes the snake.
func (s *Snake) MovementData() []core.Coord {
	cells := make([]core.Coord, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// nextHeadCoord returns the cell one step ahead of the head.
// ok is false when that step would go below zero on either axis.
func (s *Snake) nextHeadCoord() (core.Coord, bool) {
	return s.Head().Step(s.direction)
}

// Grow adds a new head one step ahead in the current direction. The field
// boundary is not checked. When the step would go below zero the new head
// is stacked on the current one. Grow does nothing once the snake collided.
func (s *Snake) Grow() {
	if s.state == StateCollided {
		return
	}

	next, _ := s.nextHeadCoord()
	s.body.PushFront(next)
	s.size++
}

// reduceByOne drops the tail. A one-cell snake is left as is.
func (s *Snake) reduceByOne() {
	if s.size <= 1 {
		return
	}
	s.body.PopBack()
	s.size--
}

// Move advances the snake one cell. With SteerAdopt the snake first turns to
// dir. If the head would leave the field the snake becomes collided and an
// error wrapping ErrBoundaryCollision is returned; a collided snake never
// moves again.
func (s *Snake) Move(dir core.Direction) error {
	if s.state == StateCollided {
		return fmt.Errorf("%w: snake already collided at %s", ErrBoundaryCollision, s.Head())
	}

	if s.steering == SteerAdopt && dir.Valid() {
		s.direction = dir
	}

	next, ok := s.nextHeadCoord()
	if !ok || !s.fieldSize.Contains(next) {
		s.state = StateCollided
		return fmt.Errorf("%w: head %s moving %s leaves field %s",
			ErrBoundaryCollision, s.Head(), s.direction, s.fieldSize)
	}

	s.Grow()
	s.reduceByOne()
	return nil
}
