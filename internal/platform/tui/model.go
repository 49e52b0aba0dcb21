package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

// Options configure the terminal frontend.
type Options struct {
	CellWidth     int         // Surface pixels per terminal column (default 8)
	CellHeight    int         // Surface pixels per terminal row (default 16)
	Cols, Rows    int         // Initial terminal size; 0 = 80x24
	ScreenshotDir string      // Empty = ~/.runner/screenshots
	Logger        *log.Logger // Nil = discard
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 16
	}
	if o.Cols <= 0 {
		o.Cols = 80
	}
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// surfaceSizer is implemented by games that can report their drawing
// surface, so clicks outside of it are not treated as taps.
type surfaceSizer interface {
	SurfaceSize() (float64, float64)
}

// Model is the Bubble Tea model for running a runner session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal row is kept for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	opts = opts.withDefaults()
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	rows := core.Max(opts.Rows-1, 1)
	cfg.WindowW = opts.Cols * opts.CellWidth
	cfg.WindowH = rows * opts.CellHeight

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Cols, rows),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click on the surface into a tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.onSurface(msg.X, msg.Y) {
		m.inputFrame.Set(core.ActionTap)
	}
	return m, nil
}

// onSurface reports whether the cell lies over the game's surface, which
// is drawn centered in the screen.
func (m Model) onSurface(x, y int) bool {
	s, ok := m.game.(surfaceSizer)
	if !ok {
		return y < m.screen.Height()
	}
	w, h := s.SurfaceSize()
	cols := core.Min(int(w)/m.opts.CellWidth, m.screen.Width())
	rows := core.Min(int(h)/m.opts.CellHeight, m.screen.Height())
	area := core.NewRect((m.screen.Width()-cols)/2, (m.screen.Height()-rows)/2, cols, rows)
	return area.Contains(x, y)
}

// handleResize reports the new terminal size to the game in surface pixels.
// The session keeps running; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := core.Max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	m.config.WindowW = msg.Width * m.opts.CellWidth
	m.config.WindowH = rows * m.opts.CellHeight
	m.game.Resize(m.config.WindowW, m.config.WindowH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Has(core.EventPhase) {
		m.opts.Logger.Debug("phase changed", "phase", m.gameState.Phase, "of", m.gameState.Phases)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".runner", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))
	return b.String()
}

// State returns the session state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are taps
	)

	_, err := p.Run()
	return err
}
