package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slevin48/dragon-flame-fly/internal/core"
	"github.com/slevin48/dragon-flame-fly/internal/session"
	"github.com/slevin48/dragon-flame-fly/internal/storage"
)

// Model is the Bubble Tea model hosting one game session. It owns the
// session controller and forwards ticks and mapped key actions to it; the
// controller owns all game semantics.
type Model struct {
	ctrl      *session.Controller
	screen    *core.Screen
	tickRate  int
	keyMapper *KeyMapper
	quitting  bool
}

// NewModel creates a model for the given session controller.
func NewModel(ctrl *session.Controller, tickRate, screenW, screenH int) Model {
	return Model{
		ctrl:      ctrl,
		screen:    core.NewScreen(screenW, screenH),
		tickRate:  tickRate,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the projection changes; the 400x600 world is untouched.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.ctrl.Tick()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey maps keys to session commands according to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		// Finalize a live run so its score is persisted before exit.
		m.ctrl.Reset()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		switch m.ctrl.Phase() {
		case session.PhaseMenu:
			m.ctrl.Start()
		case session.PhasePlaying:
			m.ctrl.Jump()
		}

	case core.ActionPause:
		m.ctrl.TogglePause()

	case core.ActionRestart:
		if m.ctrl.Phase() == session.PhaseGameOver {
			m.ctrl.Reset()
		}

	case core.ActionBack:
		if m.ctrl.Phase() == session.PhaseMenu {
			m.quitting = true
			return m, tea.Quit
		}
		m.ctrl.Reset()
	}

	return m, nil
}

// View renders the current phase to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.ctrl.Phase() {
	case session.PhaseMenu:
		drawMenu(m.screen, m.ctrl.HighScore())

	case session.PhasePlaying:
		snap, _ := m.ctrl.Snapshot()
		drawWorld(m.screen, snap)
		drawHUD(m.screen, m.ctrl.Score(), m.ctrl.HighScore(), m.ctrl.Paused())

	case session.PhaseGameOver:
		if snap, ok := m.ctrl.Snapshot(); ok {
			drawWorld(m.screen, snap)
			drawHUD(m.screen, m.ctrl.Score(), m.ctrl.HighScore(), false)
		}
		drawGameOver(m.screen, m.ctrl.Score())
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one local session.
func Run(store *storage.Store, tickRate, screenW, screenH int, seed int64) error {
	var scoreStore session.ScoreStore
	if store != nil {
		scoreStore = store
	}
	ctrl := session.New(scoreStore, seed)
	model := NewModel(ctrl, tickRate, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
