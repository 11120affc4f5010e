package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/sim"
)

func newTestSession(t *testing.T) *sim.Session {
	t.Helper()
	s, err := sim.NewSession(config.DefaultConfig(), "ZXRESCUE")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestDrawSession(t *testing.T) {
	s := newTestSession(t)
	scr := core.NewScreen(100, 40)
	DrawSession(scr, s, ViewOptions{Flash: "HELLO"})

	if top := scr.Row(0); !strings.Contains(top, "ROUND 1") || !strings.Contains(top, "SCORE 000000") {
		t.Errorf("HUD top line = %q", top)
	}
	if !strings.Contains(scr.Row(1), "FUEL") {
		t.Errorf("HUD second line = %q", scr.Row(1))
	}
	if !strings.Contains(scr.Row(scr.Height()-1), "HELLO") {
		t.Error("flash message not on the last row")
	}
	if !strings.Contains(scr.String(), "MAP") {
		t.Error("minimap missing")
	}

	area := core.NewRect(0, hudRows, scr.Width(), scr.Height()-hudRows-1)
	got := scr.Get(area.X+area.W/2, area.Y+area.H/2)
	if !slices.Contains(heliGlyphs, got) {
		t.Errorf("center cell = %q, want a heli glyph", got)
	}
}

func TestDrawSessionTinyScreen(t *testing.T) {
	s := newTestSession(t)
	for _, size := range [][2]int{{0, 0}, {10, 2}, {20, 4}} {
		scr := core.NewScreen(size[0], size[1])
		DrawSession(scr, s, ViewOptions{}) // must not panic
	}
}

func TestDrawSessionPausedOverlay(t *testing.T) {
	s := newTestSession(t)
	f := core.NewInputFrame()
	f.Set(core.ActionPause)
	s.Step(f)

	scr := core.NewScreen(100, 40)
	DrawSession(scr, s, ViewOptions{})
	out := scr.String()
	if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "B menu") {
		t.Error("pause overlay missing")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		norm  float64
		width int
		want  string
	}{
		{0, 4, "[▯▯▯▯]"},
		{0.5, 4, "[▮▮▯▯]"},
		{1, 4, "[▮▮▮▮]"},
		{2, 3, "[▮▮▮]"},
		{-1, 3, "[▯▯▯]"},
	}
	for _, tt := range tests {
		if got := bar(tt.norm, tt.width); got != tt.want {
			t.Errorf("bar(%v, %d) = %q, want %q", tt.norm, tt.width, got, tt.want)
		}
	}
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"", true},
		{"default", true},
		{"spectrum", true},
		{"zx", true},
		{"mono", true},
		{"neon", false},
	}
	for _, tt := range tests {
		theme, ok := ThemeByName(tt.name)
		if ok != tt.ok {
			t.Errorf("ThemeByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
		if ok {
			if _, has := theme.Palette[core.ColorHeli]; !has {
				t.Errorf("theme %q has no heli color", tt.name)
			}
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawTextColor(0, 0, "ROUND", core.ColorHUD)
	scr.DrawTextColor(6, 0, "1", core.ColorAlert)
	out := RenderScreen(scr)
	if !strings.Contains(out, "ROUND") || strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen lost text or rows: %q", out)
	}
}
