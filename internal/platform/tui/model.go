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
	"github.com/google/uuid"

	"github.com/seb-mtl/Space-Invaders/internal/config"
	"github.com/seb-mtl/Space-Invaders/internal/core"
	"github.com/seb-mtl/Space-Invaders/internal/engine"
	"github.com/seb-mtl/Space-Invaders/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Config   config.Config
	Store    *storage.Store     // optional run history
	Scores   engine.ScoreKeeper // optional, defaults to the configured highscore file
	Logger   *log.Logger
	Player   string
	TickRate int
	Seed     int64
	Width    int
	Height   int

	// ScreenshotDir defaults to ~/.invaders/screenshots.
	ScreenshotDir string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	engine   *engine.Engine
	screen   *core.Screen
	hold     *HoldTracker
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	player   string
	tickRate int
	shotDir  string
	runSaved bool // whether the current game over has been recorded
	quitting bool
}

// NewModel creates a Bubble Tea model with a fresh engine.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	// The last row holds the help footer.
	screen := core.NewScreen(opts.Width, max(opts.Height-1, 1))
	hold := NewHoldTracker(
		time.Duration(opts.Config.Input.HoldMS)*time.Millisecond,
		time.Duration(opts.Config.Input.FireHoldMS)*time.Millisecond,
	)

	eng := engine.New(engine.Options{
		Config:   opts.Config,
		Clock:    core.NewWallClock(),
		Input:    hold,
		Renderer: NewCanvasRenderer(screen, opts.Config.Canvas),
		Scores:   opts.Scores,
		Seed:     opts.Seed,
		Logger:   opts.Logger,
	})

	h := help.New()
	h.Width = opts.Width

	return Model{
		engine:   eng,
		screen:   screen,
		hold:     hold,
		keys:     DefaultKeyMap(),
		help:     h,
		store:    opts.Store,
		logger:   opts.Logger,
		player:   opts.Player,
		tickRate: opts.TickRate,
		shotDir:  opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
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

	case tea.BlurMsg:
		// No more key repeats will arrive while another window has focus.
		m.hold.Reset()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		if err := m.engine.Close(); err != nil {
			m.logger.Warn("could not write highscore", "error", err)
		}
		return m, tea.Quit
	}
	m.hold.Press(action)

	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal. The
// simulation canvas is fixed, so the game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.engine.HandleEvents()
	m.engine.Update()
	m.trackRun(m.engine.Status())

	return m, tickCmd(m.tickRate)
}

// trackRun records each finished run exactly once.
func (m *Model) trackRun(status engine.Status) {
	if !status.GameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true
	m.saveRun(status)
}

// saveRun stores a finished run in the history. Empty runs are skipped.
func (m *Model) saveRun(status engine.Status) {
	if m.store == nil || status.Score <= 0 {
		return
	}

	run := storage.RunRecord{
		RunID:  uuid.NewString(),
		Score:  status.Score,
		Level:  status.Level,
		Player: m.player,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", run.RunID, "score", run.Score, "level", run.Level, "player", run.Player)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.engine.Draw()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".invaders", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("invaders_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.engine.Draw()

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
