package snake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func mustSpawn(t *testing.T, rows, cols uint64, opts ...Option) *Snake {
	t.Helper()
	fs, err := core.NewFieldSize(rows, cols)
	require.NoError(t, err)
	s, err := Spawn(fs, opts...)
	require.NoError(t, err)
	return s
}

func TestSpawnCentered(t *testing.T) {
	for rows := uint64(1); rows <= 9; rows++ {
		for cols := uint64(1); cols <= 9; cols++ {
			fs := core.FieldSize{Rows: rows, Cols: cols}
			s, err := Spawn(fs)
			require.NoError(t, err)

			assert.Equal(t, []core.Coord{core.Centered(fs)}, s.MovementData())
			assert.Equal(t, 1, s.Size())
		}
	}
}

func TestSpawnDefaults(t *testing.T) {
	s := mustSpawn(t, 10, 10)

	assert.Equal(t, core.NewCoord(5, 5), s.Head())
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, core.DirUp, s.Direction())
	assert.Equal(t, uint32(DefaultSpeed), s.Speed())
	assert.Equal(t, core.FieldSize{Rows: 10, Cols: 10}, s.FieldSize())
	assert.Equal(t, SteerAdopt, s.Steering())
	assert.Equal(t, StateAlive, s.State())
}

func TestSpawnOptions(t *testing.T) {
	s := mustSpawn(t, 10, 10, WithSpeed(3), WithSteering(SteerStored))

	assert.Equal(t, uint32(3), s.Speed())
	assert.Equal(t, SteerStored, s.Steering())
}

func TestSpawnRejectsZeroField(t *testing.T) {
	for _, fs := range []core.FieldSize{{Rows: 0, Cols: 5}, {Rows: 5, Cols: 0}, {}} {
		s, err := Spawn(fs)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "field %s: %v", fs, err)
	}
}

func TestMovementDataIsACopy(t *testing.T) {
	s := mustSpawn(t, 20, 20)
	s.Grow()
	s.Grow()

	first := s.MovementData()
	second := s.MovementData()
	assert.Equal(t, first, second)

	first[0] = core.NewCoord(99, 99)
	assert.Equal(t, second, s.MovementData(), "mutating the result must not touch the snake")
}

func TestGrowIncrementsSize(t *testing.T) {
	s := mustSpawn(t, 50, 50)

	for n := 1; n <= 30; n++ {
		before := s.Head()
		s.Grow()

		require.Equal(t, 1+n, s.Size())
		require.Len(t, s.MovementData(), s.Size())
		require.Equal(t, before, s.MovementData()[1], "previous head becomes the second cell")
	}
}

func TestGrowNineTimes(t *testing.T) {
	s := mustSpawn(t, 50, 50)

	for range 9 {
		s.Grow()
	}

	assert.Equal(t, 10, s.Size())
	assert.Len(t, s.MovementData(), 10)
	assert.Equal(t, core.NewCoord(25, 16), s.Head())
	assert.Equal(t, core.NewCoord(25, 25), s.MovementData()[9], "spawn cell is the tail")
}

func TestGrowIgnoresBoundary(t *testing.T) {
	s := mustSpawn(t, 4, 4)
	require.NoError(t, s.Move(core.DirDown))
	require.Equal(t, core.NewCoord(2, 3), s.Head())

	s.Grow()
	assert.Equal(t, core.NewCoord(2, 4), s.Head())
	assert.False(t, s.FieldSize().Contains(s.Head()))
	assert.Equal(t, StateAlive, s.State())
}

func TestGrowStacksAtZero(t *testing.T) {
	s := mustSpawn(t, 3, 3)
	s.Grow()
	s.Grow()
	require.Equal(t, core.NewCoord(2, 0), s.Head())

	s.Grow()
	assert.Equal(t, 4, s.Size())
	assert.Equal(t, []core.Coord{
		core.NewCoord(2, 0),
		core.NewCoord(2, 0),
		core.NewCoord(2, 1),
		core.NewCoord(2, 2),
	}, s.MovementData())
}

func TestReduceByOne(t *testing.T) {
	s := mustSpawn(t, 10, 10)
	s.reduceByOne()
	assert.Equal(t, 1, s.Size(), "a single cell cannot shrink")
	assert.Equal(t, core.NewCoord(5, 5), s.Head())

	s.Grow()
	s.Grow()
	s.reduceByOne()
	assert.Equal(t, []core.Coord{core.NewCoord(5, 3), core.NewCoord(5, 4)}, s.MovementData(),
		"the tail goes, the head stays")
}

func TestMovePreservesLength(t *testing.T) {
	s := mustSpawn(t, 50, 50)
	for range 4 {
		s.Grow()
	}

	path := []core.Direction{
		core.DirLeft, core.DirLeft, core.DirLeft,
		core.DirUp, core.DirUp,
		core.DirRight, core.DirRight, core.DirRight, core.DirRight, core.DirRight, core.DirRight,
		core.DirDown,
	}

	for i, d := range path {
		before := s.MovementData()
		require.NoError(t, s.Move(d), "move %d", i)

		after := s.MovementData()
		require.Equal(t, len(before), s.Size())
		require.Len(t, after, len(before))

		want, ok := before[0].Step(d)
		require.True(t, ok)
		assert.Equal(t, want, after[0], "move %d: head advances by one cell", i)
		assert.Equal(t, before[:len(before)-1], after[1:], "move %d: body shifts by one", i)
		assert.NotContains(t, after, before[len(before)-1], "move %d: old tail is vacated", i)
		assert.Equal(t, d, s.Direction())
	}
}

func TestMoveSingleCell(t *testing.T) {
	s := mustSpawn(t, 10, 10)

	require.NoError(t, s.Move(core.DirRight))
	assert.Equal(t, []core.Coord{core.NewCoord(6, 5)}, s.MovementData())
	assert.Equal(t, core.DirRight, s.Direction())
}

func TestMoveUntilTopEdge(t *testing.T) {
	s := mustSpawn(t, 50, 50)
	for range 4 {
		s.Grow()
	}
	require.Equal(t, 5, s.Size())

	require.NoError(t, s.Move(core.DirUp))
	assert.Equal(t, 5, s.Size())
	assert.Equal(t, uint64(20), s.Head().Y)

	for s.Head().Y > 0 {
		require.NoError(t, s.Move(core.DirUp))
		require.Equal(t, 5, s.Size())
	}

	before := s.MovementData()
	err := s.Move(core.DirUp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBoundaryCollision))
	assert.True(t, IsCollision(err))
	assert.Equal(t, StateCollided, s.State())
	assert.Equal(t, before, s.MovementData(), "a failed move leaves the body alone")
}

func TestSingleCellFieldAlwaysCollides(t *testing.T) {
	for _, d := range core.Directions() {
		t.Run(d.String(), func(t *testing.T) {
			s := mustSpawn(t, 1, 1)
			err := s.Move(d)
			assert.True(t, errors.Is(err, ErrBoundaryCollision), "got %v", err)
		})
	}
}

func TestMoveCollidesOnEveryEdge(t *testing.T) {
	tests := []struct {
		dir   core.Direction
		moves int // successful moves from the center of a 6x6 field
	}{
		{core.DirUp, 3},
		{core.DirDown, 2},
		{core.DirLeft, 3},
		{core.DirRight, 2},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := mustSpawn(t, 6, 6)
			for i := range tc.moves {
				require.NoError(t, s.Move(tc.dir), "move %d", i)
			}
			assert.True(t, errors.Is(s.Move(tc.dir), ErrBoundaryCollision))
		})
	}
}

func TestCollidedIsTerminal(t *testing.T) {
	s := mustSpawn(t, 1, 1)
	require.Error(t, s.Move(core.DirUp))

	body := s.MovementData()
	dir := s.Direction()

	err := s.Move(core.DirDown)
	assert.True(t, errors.Is(err, ErrBoundaryCollision))
	s.Grow()

	assert.Equal(t, body, s.MovementData())
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, dir, s.Direction())
	assert.Equal(t, StateCollided, s.State())
}

func TestStoredSteeringIgnoresRequest(t *testing.T) {
	s := mustSpawn(t, 10, 10, WithSteering(SteerStored))

	require.NoError(t, s.Move(core.DirLeft))
	assert.Equal(t, core.DirUp, s.Direction())
	assert.Equal(t, core.NewCoord(5, 4), s.Head(), "stored heading is used")
}

func TestAdoptSteeringIgnoresInvalidDirection(t *testing.T) {
	s := mustSpawn(t, 10, 10)

	require.NoError(t, s.Move(core.Direction(99)))
	assert.Equal(t, core.DirUp, s.Direction())
	assert.Equal(t, core.NewCoord(5, 4), s.Head())
}

func TestParseSteering(t *testing.T) {
	for in, want := range map[string]Steering{"": SteerAdopt, "adopt": SteerAdopt, "stored": SteerStored} {
		got, err := ParseSteering(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if in != "" {
			assert.Equal(t, in, got.String())
		}
	}

	_, err := ParseSteering("wild")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "alive", StateAlive.String())
	assert.Equal(t, "collided", StateCollided.String())
	assert.Equal(t, "unknown", State(7).String())

	assert.Equal(t, "adopt", SteerAdopt.String())
	assert.Equal(t, "stored", SteerStored.String())
	assert.Equal(t, "unknown", Steering(7).String())
}
