package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/session"
)

// DefaultScreenshotDir is where ctrl+s writes screen dumps.
const DefaultScreenshotDir = "~/.flappy/screenshots"

// Options configures the terminal driver.
type Options struct {
	Width, Height int // Initial terminal size; updated on resize
	Logger        *log.Logger
	ScreenshotDir string
}

// Model is the Bubble Tea model driving one session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	logger   *log.Logger
	shotDir  string
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for the session.
func NewModel(s *session.Session, opts Options) Model {
	cfg := core.DefaultConfig()
	if opts.Width > 0 && opts.Height > 0 {
		cfg.ScreenW, cfg.ScreenH = opts.Width, opts.Height
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}

	return Model{
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		logger:  opts.Logger,
		shotDir: opts.ScreenshotDir,
	}
}

// playRows reserves the last terminal row for the help footer.
func playRows(height int) int {
	return core.Max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("cannot save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick applies buffered input, then advances the session by the wall
// time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.session.Interval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.input.Has(core.ActionPause) {
		m.session.TogglePause()
	}
	if m.input.Has(core.ActionJump) {
		if m.session.Jump() {
			m.logger.Debug("restarted", "seed", m.session.Seed())
		}
	}
	m.input.Clear()

	m.session.Advance(elapsed)

	return m, tickCmd(m.session.Interval())
}

// draw renders the session into the screen buffer.
func (m Model) draw() {
	flappy.Render(m.screen, m.session.Snapshot(), m.session.Config().Board)
	if m.session.Paused() {
		flappy.DrawMessage(m.screen, "PAUSED", "P to resume")
	}
}

// saveScreenshot writes the current screen to a text file.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	dir, err := logging.ExpandHome(m.shotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session.
func Run(s *session.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(s, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
