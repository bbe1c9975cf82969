package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType names what the driver is doing in a Snapshot.
type GameStateType string

const (
	SnapshotPlaying     GameStateType = "playing"
	SnapshotPaused      GameStateType = "paused"
	SnapshotGameOver    GameStateType = "game_over"
	SnapshotPausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick           uint64
	Moves          uint64
	Length         int
	Head           core.Coord
	Body           []core.Coord
	Dir            core.Direction
	Speed          uint32
	MoveEveryTicks int
	State          GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := SnapshotPlaying
	switch {
	case g.tooSmall:
		state = SnapshotPausedSmall
	case g.crash != nil:
		state = SnapshotGameOver
	case g.paused:
		state = SnapshotPaused
	}

	snap := Snapshot{
		Tick:           g.tick,
		Moves:          g.moves,
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
	}
	if g.snake != nil {
		snap.Length = g.snake.Size()
		snap.Head = g.snake.Head()
		snap.Body = g.snake.MovementData()
		snap.Dir = g.snake.Direction()
		snap.Speed = g.snake.Speed()
	}
	return snap
}
