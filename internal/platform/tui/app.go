package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/sim"
	"github.com/vovakirdan/zxrescue/internal/storage"
)

// appScreen is the screen the app currently shows.
type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game -> menu, with the rescue
// log one key away. Local play and SSH sessions both run it.
type AppModel struct {
	store    *storage.Store
	base     config.Config
	logger   *log.Logger
	config   core.RuntimeConfig
	username string

	screen   appScreen
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	preset   config.DifficultyPreset
	notice   string // Shown under the menu, e.g. a failed session start
	quitting bool
}

// NewAppModel creates the app. store may be nil, in which case nothing
// is persisted and the rescue log stays empty.
func NewAppModel(store *storage.Store, base config.Config, preset config.DifficultyPreset, cfg core.RuntimeConfig, logger *log.Logger, username string) AppModel {
	if logger == nil {
		logger = log.Default()
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return AppModel{
		store:    store,
		base:     base,
		logger:   logger,
		config:   cfg,
		username: username,
		preset:   preset,
		menu:     NewMenuModel(cfg, base.Session.DefaultSeed, preset),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.store, "", m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.screen = screenScores
		m.menu.openScoreboard = false
		return m, nil

	case m.menu.Started():
		m.menu.started = false
		m.preset = m.menu.Preset()
		session, err := m.newSession(m.menu.Seed(), m.preset)
		if err != nil {
			m.logger.Error("cannot start session", "seed", m.menu.Seed(), "error", err)
			m.notice = err.Error()
			return m, nil
		}
		m.notice = ""
		cfg := m.config
		cfg.SeedText = session.Seed()
		game := NewModel(session, cfg)
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// newSession applies the preset to the base config and builds a session.
func (m AppModel) newSession(seed string, preset config.DifficultyPreset) (*sim.Session, error) {
	cfg := m.base
	config.ApplyPreset(&cfg, preset)

	opts := []sim.Option{
		sim.WithLogger(m.logger.With("seed", seed, "user", m.username)),
	}
	// A nil *Store must not reach the session as a non-nil interface.
	if m.store != nil {
		opts = append(opts, sim.WithSaver(m.store))
	}
	return sim.NewSession(cfg, seed, opts...)
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.WantsBack() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config, m.base.Session.DefaultSeed, m.preset)
		return m, m.menu.Init()
	}

	if m.game.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the rescue log is shown.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.scores = nil
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.notice != "" {
		view += "\n" + currentTheme.MenuError.Render(centerText(m.notice, m.config.ScreenW))
	}
	return view
}

// RunApp runs the menu-driven app in the local terminal.
func RunApp(store *storage.Store, base config.Config, preset config.DifficultyPreset, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewAppModel(store, base, preset, cfg, logger, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
