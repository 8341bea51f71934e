package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emoji-flappy/internal/audio"
	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/core"
	"github.com/vovakirdan/emoji-flappy/internal/flappy"
	"github.com/vovakirdan/emoji-flappy/internal/platform/host"
	"github.com/vovakirdan/emoji-flappy/internal/skin"
)

// Options configures the terminal host.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Screen size, tick rate and seed
	Skin    skin.Skin
	EmojiOK bool
	Audio   *audio.Player // Optional
	Logger  *log.Logger   // Optional
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	ctrl       *host.Controller
	screen     *core.Screen
	logger     *log.Logger
	skin       skin.Skin
	emojiOK    bool
	runtime    core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	runs       runsTable
	lastTick   time.Time
}

// NewModel creates the model and its session.
func NewModel(opts Options) (Model, error) {
	session, err := flappy.New(opts.Config, flappy.WithSeed(opts.Runtime.Seed))
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultRuntimeConfig().TickRate
	}
	ctrl := host.NewController(session, opts.Audio, opts.Logger)

	h := help.New()
	h.ShowAll = false

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		ctrl:       ctrl,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		logger:     logger,
		skin:       opts.Skin,
		emojiOK:    opts.EmojiOK,
		runtime:    opts.Runtime,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		runs:       newRunsTable(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"skin", m.skin.ID,
		"seed", m.runtime.Seed,
		"fps", m.runtime.TickRate,
	)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key's action for the next frame. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.ctrl.Quit()
		return m, tea.Quit
	}

	// The runs table scrolls with the arrow keys while it is open.
	if m.ctrl.ShowRuns() {
		var cmd tea.Cmd
		m.runs.table, cmd = m.runs.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleResize adapts the screen buffer. The world is scaled, so the session
// keeps running unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.runs.resize(msg.Width, msg.Height, m.ctrl.Runs())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the frame's inputs, then advances the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.runtime.TickRate)
	m.lastTick = now

	m.ctrl.Apply(m.inputFrame)
	m.inputFrame.Clear()
	m.ctrl.Step(dt, now)
	m.runs.sync(m.ctrl.Runs())

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.ctrl.Quitting() {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.ctrl.ShowRuns() {
		return m.runs.view(m.runtime.ScreenW) + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	Draw(m.screen, m.ctrl.Session().Snapshot(), m.skin, m.emojiOK)
	if m.ctrl.Paused() {
		DrawPaused(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session exposes the running session.
func (m Model) Session() *flappy.Session {
	return m.ctrl.Session()
}

// Runs returns the finished runs, newest first.
func (m Model) Runs() []host.RunRecord {
	return m.ctrl.Runs()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
