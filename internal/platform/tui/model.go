package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// debugStater is implemented by games that can dump their state for logs.
type debugStater interface {
	DebugState() string
}

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	styles     Styles
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; the game gets it minus the help line.
// A nil logger discards output.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	cfg.ScreenH = playHeight(cfg.ScreenH)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		styles:     NewStyles(nil),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// WithStyles returns a copy of the model that renders with st.
func (m Model) WithStyles(st Styles) Model {
	m.styles = st
	return m
}

func playHeight(termH int) int {
	return max(0, termH-helpHeight)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("game quit",
			"game", m.game.ID(),
			"length", m.gameState.Length,
		)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the current round and only moves it on screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case !prev.GameOver && m.gameState.GameOver:
		m.logger.Info("snake collided",
			"game", m.game.ID(),
			"length", m.gameState.Length,
		)
		if d, ok := m.game.(debugStater); ok {
			m.logger.Debug("final state", "game", m.game.ID(), "state", d.DebugState())
		}
	case prev.GameOver && !m.gameState.GameOver:
		m.logger.Debug("round restarted", "game", m.game.ID())
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
