package snake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const defaultTickRate = 60

// Game drives a Snake from platform ticks: it turns input into move
// requests, paces moves by the snake's speed and draws the field.
type Game struct {
	cfg       config.SnakeConfig
	fieldSize core.FieldSize
	steering  Steering

	snake     *Snake
	requested core.Direction // Heading passed to the next Move
	crash     error          // Set once the snake collided

	tick           uint64
	moves          uint64
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Layout
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	screenW    int
	screenH    int
	tickRate   int

	paused   bool
	tooSmall bool
}

// New creates a game for the given config. The config is validated here so
// that Reset cannot fail later.
func New(cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fs, err := cfg.FieldSize()
	if err != nil {
		return nil, err
	}
	steering, err := ParseSteering(cfg.Steering)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:       cfg,
		fieldSize: fs,
		steering:  steering,
		hudHeight: 2,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset spawns a fresh snake and recomputes the layout.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.moves = 0
	g.moveTicker = 0
	g.paused = false
	g.crash = nil

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = g.cfg.TickRate
	}
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}

	// Fields were validated in New, Spawn cannot fail here.
	g.snake, _ = Spawn(g.fieldSize,
		WithSpeed(g.cfg.Speed),
		WithSteering(g.steering),
	)
	g.requested = g.snake.Direction()
	g.moveEveryTicks = max(1, g.tickRate/int(g.snake.Speed()))

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize recomputes the layout for a new screen size without touching the snake.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	boxW, boxH := g.boxSize()
	g.tooSmall = w < boxW || h < boxH+g.hudHeight
	if g.tooSmall {
		return
	}

	g.mapOffsetX = (w - boxW) / 2
	g.mapOffsetY = g.hudHeight
}

// boxSize returns the screen size of the bordered field.
func (g *Game) boxSize() (int, int) {
	return int(g.fieldSize.Cols) + 2, int(g.fieldSize.Rows) + 2
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.crash != nil {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.crash == nil {
		g.paused = !g.paused
	}

	if g.crash != nil || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if d, ok := input.Direction(); ok {
		g.requested = d
	}

	g.moveTicker++
	if g.moveTicker < g.moveEveryTicks {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	if err := g.snake.Move(g.requested); err != nil {
		g.crash = err
		return core.StepResult{State: g.State()}
	}
	g.moves++
	return core.StepResult{State: g.State(), Moved: true}
}

// Snake exposes the snake being driven.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Err returns the collision that ended the game, or nil.
func (g *Game) Err() error {
	return g.crash
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.snake != nil {
		length = g.snake.Size()
	}
	return core.GameState{
		Length:   length,
		GameOver: g.crash != nil,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		boxW, boxH := g.boxSize()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", boxW, boxH+g.hudHeight))
		return
	}

	boxW, boxH := g.boxSize()
	dst.DrawBox(core.NewRect(g.mapOffsetX, g.mapOffsetY, boxW, boxH), core.ColorGray)
	g.renderSnake(dst)

	switch {
	case g.crash != nil:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.snake == nil {
		return
	}
	hud := fmt.Sprintf(" Snake | Length: %d  Heading: %s  Speed: %d  Field: %s",
		g.snake.Size(), g.snake.Direction(), g.snake.Speed(), g.fieldSize)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderSnake draws the body from tail to head so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen) {
	if g.snake == nil {
		return
	}
	cells := g.snake.MovementData()
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if !g.fieldSize.Contains(c) {
			continue
		}
		sx := g.mapOffsetX + 1 + int(c.X)
		sy := g.mapOffsetY + 1 + int(c.Y)
		if i == 0 {
			color := core.ColorBrightGreen
			if g.crash != nil {
				color = core.ColorRed
			}
			dst.SetColored(sx, sy, 'O', color)
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Moves: %d\n", g.tick, g.moves)
	if g.snake != nil {
		fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: %s\n", g.snake.Size(), g.snake.Direction(), g.snake.Head())
	}
	fmt.Fprintf(&b, "GameOver: %v, Paused: %v, TooSmall: %v\n", g.crash != nil, g.paused, g.tooSmall)
	return b.String()
}

// IsCollision reports whether err ended a game by leaving the field.
func IsCollision(err error) bool {
	return errors.Is(err, ErrBoundaryCollision)
}
