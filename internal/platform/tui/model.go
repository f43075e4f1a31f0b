package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-capy/internal/core"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
	"github.com/vovakirdan/flappy-capy/internal/sound"
	"github.com/vovakirdan/flappy-capy/internal/storage"
)

// History receives finished runs.
type History interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options configures the terminal frontend.
type Options struct {
	History       History      // May be nil: runs are not recorded
	Player        sound.Player // May be nil: silent
	Logger        *log.Logger  // May be nil: discard
	ScreenshotDir string       // Defaults to ~/.capy/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *capy.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  capy.GameState
	quitting   bool
	lastShot   string // Path of the last screenshot, shown in the help line
}

// helpHeight is the number of rows reserved below the play field.
const helpHeight = 1

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *capy.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == nil {
		opts.Player = sound.Nop{}
	}
	if opts.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ScreenshotDir = filepath.Join(home, ".capy", "screenshots")
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapPointer(msg, m.gameState.Phase); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are queued and applied on
// the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.gameState.Phase, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize changes only the presentation scale. The simulation keeps
// running in world units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	sound.PlayEvents(m.opts.Player, result.Events)
	if result.Events.Has(capy.EventEnded) {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun appends the finished run to the history. Best effort.
func (m *Model) saveRun() {
	sum, ok := m.game.Summary()
	if !ok || m.opts.History == nil {
		return
	}
	run := storage.Run{
		Score:  sum.Score,
		Hearts: sum.Hearts,
		Cause:  sum.Cause.String(),
		Steps:  m.game.Snapshot().Frame,
	}
	if _, err := m.opts.History.SaveRun(run); err != nil {
		m.opts.Logger.Warn("cannot save run", "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "score", run.Score, "hearts", run.Hearts, "cause", run.Cause)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("capy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.lastShot = path
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpLine := m.help.View(m.keys.Keys)
	if m.lastShot != "" {
		helpLine = "saved " + m.lastShot
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpLine)
}

// Run starts the Bubble Tea program for the game.
func Run(game *capy.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses hop
	)

	_, err := p.Run()
	return err
}
