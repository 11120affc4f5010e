package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/sim"
)

const frameGap = 20 * time.Millisecond

// tickN delivers n host frames frameGap apart, starting at from.
func tickN(t *testing.T, m tea.Model, from time.Time, n int) (tea.Model, time.Time) {
	t.Helper()
	now := from
	for range n {
		m, _ = m.Update(TickMsg(now))
		now = now.Add(frameGap)
	}
	return m, now
}

func press(m tea.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m.Update(msg)
}

func TestModelTicksAdvanceSession(t *testing.T) {
	s := newTestSession(t)
	var m tea.Model = NewModel(s, core.DefaultConfig())

	m, _ = tickN(t, m, t0, 31)

	// 30 gaps of 20ms at 60 steps per second
	if got := s.Result().SimTime; got < 0.45 || got > 0.65 {
		t.Errorf("SimTime after 0.6s of frames = %.3f", got)
	}
}

func TestModelPauseAndBack(t *testing.T) {
	s := newTestSession(t)
	var m tea.Model = NewModel(s, core.DefaultConfig())

	// Back is ignored while flying
	m, _ = press(m, runeKey("b"))
	if m.(Model).WantsBack() {
		t.Fatal("Back accepted while flying")
	}

	m, _ = press(m, runeKey("p"))
	m, now := tickN(t, m, t0, 2)
	if !s.State().Paused {
		t.Fatal("P did not pause the session")
	}

	m, cmd := press(m, runeKey("b"))
	if !m.(Model).WantsBack() {
		t.Error("Back refused while paused")
	}
	if cmd != nil {
		t.Error("embedded model must not quit the program on Back")
	}

	// The tick loop stops once the player has left
	if _, cmd := m.Update(TickMsg(now)); cmd != nil {
		t.Error("tick loop kept running after Back")
	}
}

func TestModelQuit(t *testing.T) {
	s := newTestSession(t)
	var m tea.Model = NewModel(s, core.DefaultConfig())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelResizeAndView(t *testing.T) {
	s := newTestSession(t)
	var m tea.Model = NewModel(s, core.DefaultConfig())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	mm := m.(Model)
	if mm.screen.Width() != 120 || mm.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", mm.screen.Width(), mm.screen.Height())
	}
	if v := m.View(); !strings.Contains(v, "ROUND") || !strings.Contains(v, "quit") {
		t.Error("view lacks HUD or help line")
	}
}

func TestFlashText(t *testing.T) {
	tests := []struct {
		ev   sim.Event
		want string
	}{
		{sim.Event{Kind: sim.EventDrop, Text: "Kalora"}, "SUPPLY DROP: KALORA"},
		{sim.Event{Kind: sim.EventPickup, Text: "crate-2"}, "WINCHED ABOARD: CRATE-2"},
		{sim.Event{Kind: sim.EventRound, Text: "3"}, "ROUND 3 COMPLETE"},
		{sim.Event{Kind: sim.EventTick}, ""},
		{sim.Event{Kind: sim.EventCrash, Text: "Sea impact"}, ""},
	}
	for _, tt := range tests {
		if got := flashText(tt.ev); got != tt.want {
			t.Errorf("flashText(%v) = %q, want %q", tt.ev.Kind, got, tt.want)
		}
	}
}

func TestSanitizeSeed(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ZXRESCUE", "ZXRESCUE"},
		{"SEED-3F9A1C", "SEED-3F9A1C"},
		{"../etc/passwd", "___etc_passwd"},
		{"two words", "two_words"},
		{"", "seed"},
	}
	for _, tt := range tests {
		if got := sanitizeSeed(tt.in); got != tt.want {
			t.Errorf("sanitizeSeed(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func newTestApp() AppModel {
	return NewAppModel(nil, config.DefaultConfig(), "", core.DefaultConfig(), nil, "tester")
}

func down(m tea.Model, n int) tea.Model {
	for range n {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	return m
}

func TestAppStartsGameFromMenu(t *testing.T) {
	var m tea.Model = newTestApp()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app := m.(AppModel)
	if app.screen != screenGame || app.game == nil {
		t.Fatalf("Enter on the seed field did not start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}
	if got := app.game.Session().Seed(); got != "ZXRESCUE" {
		t.Errorf("empty seed field flew %q, want the default seed", got)
	}

	// Pause, then back to the menu
	m, _ = m.Update(runeKey("p"))
	m, _ = tickN(t, m, t0, 2)
	m, _ = m.Update(runeKey("b"))
	app = m.(AppModel)
	if app.screen != screenMenu || app.game != nil {
		t.Error("Back while paused did not return to the menu")
	}
}

func TestAppTypedSeedAndPreset(t *testing.T) {
	var m tea.Model = newTestApp()

	m, _ = m.Update(runeKey("ABC"))
	m = down(m, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // normal -> hard
	m = down(m, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	app := m.(AppModel)
	if app.screen != screenGame {
		t.Fatal("Start did not launch a game")
	}
	if got := app.game.Session().Seed(); got != "ABC" {
		t.Errorf("Seed = %q, want ABC", got)
	}
	if app.preset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", app.preset)
	}
	if lives := app.game.Session().State().Lives; lives != 2 {
		t.Errorf("hard preset gave %d lives, want 2", lives)
	}
}

func TestAppRandomSeed(t *testing.T) {
	var m tea.Model = newTestApp()
	m = down(m, rowRandom)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	seed := m.(AppModel).menu.Seed()
	if !strings.HasPrefix(seed, "SEED-") || len(seed) != len("SEED-XXXXXX") {
		t.Errorf("random seed = %q", seed)
	}
	if m.(AppModel).screen != screenMenu {
		t.Error("rolling a seed should stay on the menu")
	}
}

func TestAppScoreboardWithoutStore(t *testing.T) {
	var m tea.Model = newTestApp()
	m = down(m, rowScores)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(AppModel).screen != screenScores {
		t.Fatal("Rescue log row did not open the scoreboard")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(AppModel).screen != screenMenu {
		t.Error("Esc did not leave the scoreboard")
	}
}

func TestAppQuitFromMenu(t *testing.T) {
	var m tea.Model = newTestApp()
	m = down(m, rowQuit)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.(AppModel).quitting {
		t.Error("Quit row did not quit")
	}
}

func TestRandomSeedFormat(t *testing.T) {
	a, b := RandomSeed(), RandomSeed()
	if a == b {
		t.Errorf("two random seeds collided: %q", a)
	}
	if strings.ToUpper(a) != a {
		t.Errorf("random seed %q is not upper case", a)
	}
}
