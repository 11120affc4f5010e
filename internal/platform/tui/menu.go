package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
)

// Menu rows, top to bottom.
const (
	rowSeed = iota
	rowDifficulty
	rowStart
	rowRandom
	rowScores
	rowQuit
	rowCount
)

// maxSeedLen bounds the seed field.
const maxSeedLen = 32

var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// RandomSeed returns a fresh seed text such as "SEED-3F9A1C".
func RandomSeed() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SEED-" + strings.ToUpper(id[:6])
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	seed      textinput.Model
	preset    int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	standalone     bool
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The seed field starts with
// cfg.SeedText, or defaultSeed when that is empty.
func NewMenuModel(cfg core.RuntimeConfig, defaultSeed string, preset config.DifficultyPreset) MenuModel {
	ti := textinput.New()
	ti.Placeholder = defaultSeed
	ti.CharLimit = maxSeedLen
	ti.Width = maxSeedLen
	ti.Prompt = ""
	ti.SetValue(cfg.SeedText)
	ti.Focus()

	m := MenuModel{
		seed:      ti,
		preset:    1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range menuPresets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.seed, cmd = m.seed.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input for menu navigation. Keys that do
// not navigate are typed into the seed field while it has the cursor.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		if m.cursor != rowSeed {
			m.moveTo(rowSeed)
		}
		return m, nil

	case MenuActionUp:
		m.moveTo((m.cursor + rowCount - 1) % rowCount)
		return m, nil

	case MenuActionDown:
		m.moveTo((m.cursor + 1) % rowCount)
		return m, nil

	case MenuActionLeft:
		if m.cursor == rowDifficulty {
			m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)
			return m, nil
		}

	case MenuActionRight:
		if m.cursor == rowDifficulty {
			m.preset = (m.preset + 1) % len(menuPresets)
			return m, nil
		}

	case MenuActionSelect:
		return m.selectRow()
	}

	if m.cursor == rowSeed {
		var cmd tea.Cmd
		m.seed, cmd = m.seed.Update(msg)
		return m, cmd
	}
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *MenuModel) moveTo(row int) {
	m.cursor = row
	if row == rowSeed {
		m.seed.Focus()
	} else {
		m.seed.Blur()
	}
}

func (m MenuModel) selectRow() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case rowSeed, rowStart:
		m.started = true
	case rowDifficulty:
		m.preset = (m.preset + 1) % len(menuPresets)
		return m, nil
	case rowRandom:
		m.seed.SetValue(RandomSeed())
		m.seed.CursorEnd()
		return m, nil
	case rowScores:
		m.openScoreboard = true
	case rowQuit:
		m.quitting = true
		return m, tea.Quit
	}
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	t := currentTheme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.MenuTitle.Render(centerText("Z X   R E S C U E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(t.MenuDescription.Render(centerText("Winch the supply crates off the islands and bring them home", m.width)))
	b.WriteString("\n\n")

	rows := []string{
		"Seed:       " + m.seed.View(),
		fmt.Sprintf("Difficulty: < %s >", menuPresets[m.preset]),
		"Start",
		"Random seed",
		"Rescue log",
		"Quit",
	}
	for i, row := range rows {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}
		b.WriteString(style.Render(centerText(fmt.Sprintf("%s%-44s", cursor, row), m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Ctrl+C: Quit"
	b.WriteString(t.MenuDescription.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Seed returns the seed text, falling back to the placeholder.
func (m MenuModel) Seed() string {
	if v := strings.TrimSpace(m.seed.Value()); v != "" {
		return v
	}
	return m.seed.Placeholder
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// Started returns true once the player chose to fly.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	cfg.SeedText = m.Seed()
	return cfg
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Seed            string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, defaultSeed string, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, defaultSeed, preset)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Seed:   m.Seed(),
		Preset: m.Preset(),
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), !m.Started():
		result.Quit = true
	}
	return result, nil
}
