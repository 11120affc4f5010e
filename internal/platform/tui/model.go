package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/sim"
)

// flashSeconds is how long an event message stays under the map.
const flashSeconds = 2.5

// Model is the Bubble Tea model that plays one session.
type Model struct {
	session  *sim.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    *core.Clock
	input    *heldInput
	keys     *KeyMapper
	help     help.Model
	lastTick time.Time

	flash    string
	flashTTL float64

	standalone bool // Quit the program on Back instead of reporting it
	quitting   bool
	back       bool
}

// NewModel creates a model driving session.
func NewModel(session *sim.Session, cfg core.RuntimeConfig) Model {
	sc := session.Config().Session
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:  cfg,
		clock:   core.NewClock(sc.FixedDt, sc.MaxFrameDt, sc.MaxStepsPerFrame),
		input:   newHeldInput(defaultHoldWindow),
		keys:    NewKeyMapper(),
		help:    h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.input.Scroll(-1)
		case tea.MouseButtonWheelDown:
			m.input.Scroll(1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err == nil {
			m.setFlash("SAVED " + filepath.Base(path))
		}
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving is only offered on the pause and game over overlays.
	if action == core.ActionBack {
		if m.session.Ended() || m.session.State().Paused {
			m.back = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.input.Press(action, time.Now())
	return m, nil
}

// handleResize keeps the map filling the terminal, one row left for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick converts wall time into fixed session steps.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.back {
		return m, nil
	}

	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	steps := m.clock.Advance(dt)
	for range steps {
		m.session.Step(m.input.Frame(now))
	}
	for _, ev := range m.session.DrainEvents() {
		if text := flashText(ev); text != "" {
			m.setFlash(text)
		}
	}

	if m.flashTTL > 0 {
		m.flashTTL -= dt
		if m.flashTTL <= 0 {
			m.flash = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashTTL = flashSeconds
}

// flashText picks the message shown for an event. Crash and game over
// already have the overlay banner.
func flashText(ev sim.Event) string {
	switch ev.Kind {
	case sim.EventDrop:
		return "SUPPLY DROP: " + strings.ToUpper(ev.Text)
	case sim.EventPickup:
		return "WINCHED ABOARD: " + strings.ToUpper(ev.Text)
	case sim.EventRefuel:
		return "REFUELLING"
	case sim.EventRound:
		return fmt.Sprintf("ROUND %s COMPLETE", ev.Text)
	case sim.EventRespawn:
		return "GOOD LUCK"
	}
	return ""
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	DrawSession(m.screen, m.session, ViewOptions{Flash: m.flash, Alpha: m.clock.Alpha()})

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".zxrescue", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", sanitizeSeed(m.session.Seed()), timestamp)
	path := filepath.Join(dir, filename)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// sanitizeSeed keeps a seed usable as a file name.
func sanitizeSeed(seed string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, seed)
	if out == "" {
		return "seed"
	}
	return out
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSession(m.screen, m.session, ViewOptions{Flash: m.flash, Alpha: m.clock.Alpha()})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Session returns the session being played.
func (m Model) Session() *sim.Session {
	return m.session
}

// WantsBack reports whether the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run plays session in the terminal until the player quits or backs out.
// back is true when the player chose the menu.
func Run(session *sim.Session, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(session, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Wheel tilts the camera
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.WantsBack(), nil
	}
	return false, nil
}
