package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/effects"
	"github.com/vovakirdan/emerald-city/internal/session"
	"github.com/vovakirdan/emerald-city/internal/sim"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

// Frame delay bounds for the +/- keys.
const (
	minFrameDelay = 5 * time.Millisecond
	maxFrameDelay = 500 * time.Millisecond
	statusLines   = 1
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorYellow.Hex()))
)

// Model is the Bubble Tea model that animates one walk.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	keys     WalkKeyMap
	help     help.Model
	delay    time.Duration
	paused   bool
	done     bool
	summary  sim.Summary
	runID    string
	quitting bool
}

// NewModel creates a model animating sess on a screen of the given size.
func NewModel(sess *session.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Model{
		sess:   sess,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-statusLines)),
		store:  store,
		logger: logger,
		keys:   DefaultWalkKeyMap(),
		help:   help.New(),
		delay:  cfg.FrameDelay,
	}
}

// Summary returns the final summary once the walk is over.
func (m *Model) Summary() (sim.Summary, bool) {
	return m.summary, m.done
}

// Init draws the city and starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.sess.Walker.Setup()
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.done && msg.Action == tea.MouseActionPress {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-statusLines))
		m.help.Width = msg.Width

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		// Any key closes the finished map
		m.quitting = true
		return m, tea.Quit
	}

	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.Close()
		m.quitting = true
		return m, tea.Quit
	case ActionPause:
		m.paused = !m.paused
	case ActionFaster:
		m.delay = core.Clamp(m.delay/2, minFrameDelay, maxFrameDelay)
	case ActionSlower:
		m.delay = core.Clamp(m.delay*2, minFrameDelay, maxFrameDelay)
	case ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleTick advances the walk to its next redraw point.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.delay)
	}

	if m.sess.Walker.StepFrame() {
		return m, tickCmd(m.delay)
	}

	m.finish()
	return m, nil
}

// Close shuts the canvas, aborts an unfinished walk and records the run.
// Calling it again after the walk is over does nothing.
func (m *Model) Close() {
	if m.done {
		return
	}
	m.sess.Canvas.Close()
	if !m.sess.Walker.Done() {
		m.sess.Walker.Abort(canvas.ErrClosed)
	}
	m.finish()
}

// finish closes out the walk once and records it.
func (m *Model) finish() {
	if m.done {
		return
	}
	m.summary = m.sess.Walker.Finish()
	m.done = true

	id, err := m.sess.Save(m.store, m.summary)
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.runID = id
}

// saveScreenshot writes the current map as plain text.
func (m *Model) saveScreenshot() (string, error) {
	Rasterize(m.screen, m.sess.Canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".emerald", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("emerald_%d_%s.txt", m.sess.Seed, timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.screen, m.sess.Canvas)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m *Model) statusLine() string {
	if m.done {
		saved := ""
		if len(m.runID) >= 8 {
			saved = "  [run " + m.runID[:8] + "]"
		}
		return doneStyle.Render(fmt.Sprintf("Quest complete! %s%s  -  click or press any key to exit",
			effects.HUDLine(m.summary.Gathered, m.summary.Total, m.summary.Score), saved))
	}
	status := fmt.Sprintf("step %d/%d  seed %d  ", m.sess.Walker.StepsTaken(), m.sess.Config.Walk.Steps, m.sess.Seed)
	if m.paused {
		status += "[paused]  "
	}
	return statusStyle.Render(status + m.help.View(m.keys))
}

// Run animates sess in the terminal and returns the final summary.
func Run(sess *session.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (sim.Summary, error) {
	model := NewModel(sess, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to exit once the walk is over
	)

	if _, err := p.Run(); err != nil {
		return sim.Summary{}, err
	}
	model.finish()
	return model.summary, nil
}
