package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// footerRows is the number of terminal rows reserved for the key help.
const footerRows = 1

// Model is the Bubble Tea model for running the platformer.
type Model struct {
	game          *platformer.Game
	runtime       core.RuntimeConfig
	screen        *core.Screen
	canvas        *core.CellCanvas
	overlay       *messageOverlay
	keys          KeyMap
	help          help.Model
	held          *HeldKeys
	pending       core.InputFrame // one-shot actions waiting for the next tick
	gameState     core.GameState
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a Bubble Tea model and starts a fresh run of game.
// A nil logger discards output.
func NewModel(game *platformer.Game, runtime core.RuntimeConfig, logger *log.Logger) Model {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := game.Config()
	screen := core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-footerRows, 1))
	overlay := &messageOverlay{}

	game.SetOverlay(overlay)
	game.Reset(runtime)

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".platformer", "screenshots")
	}

	return Model{
		game:          game,
		runtime:       runtime,
		screen:        screen,
		canvas:        core.NewCellCanvas(screen, cfg.Canvas.Width, cfg.Canvas.Height),
		overlay:       overlay,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		held:          NewHeldKeys(cfg.Input.HoldTicks),
		pending:       core.NewInputFrame(),
		gameState:     game.State(),
		logger:        logger,
		screenshotDir: dir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("run started", "seed", m.game.Seed(), "tick_rate", m.runtime.TickRate)
	return tickCmd(m.runtime.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.held.Press(a)
	case core.ActionPause, core.ActionRestart:
		m.pending.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events. The run keeps going;
// only the cell grid the world is stretched over changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.held.Apply(&frame)

	if frame.Has(core.ActionRestart) {
		m.held.Release()
		frame = m.pending.Clone()
		m.logger.Debug("run restarted", "ticks", m.gameState.Ticks)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	if result.WonThisTick {
		m.logger.Info("target reached", "ticks", m.gameState.Ticks)
	}

	m.held.Tick()
	m.pending.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// paint draws the current frame into the cell buffer.
func (m Model) paint() {
	m.screen.Clear()
	m.game.Render(m.canvas)
	m.overlay.Draw(m.screen)
	if m.gameState.Paused {
		drawCenteredMessage(m.screen, "PAUSED", "P to resume")
	}
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", errors.New("no screenshot directory")
	}
	m.paint()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.paint()
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game *platformer.Game, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, runtime, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
