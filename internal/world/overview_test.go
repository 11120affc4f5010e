package world_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/zxrescue/internal/core"
)

func TestDrawOverview(t *testing.T) {
	w, _ := mustGenerate(t, "ZXRESCUE", 1)
	scr := core.NewScreen(96, 48)
	w.DrawOverview(scr)
	out := scr.String()

	if strings.Count(out, "B") != 1 {
		t.Errorf("overview shows %d base pads, want 1", strings.Count(out, "B"))
	}
	if !strings.Contains(out, "~") {
		t.Error("overview shows no sea")
	}
	if c := strings.Count(out, "C"); c == 0 || c > len(w.Crates) {
		t.Errorf("overview shows %d crates, world has %d", c, len(w.Crates))
	}
	if strings.Count(out, "H") > len(w.Helipads)-1 {
		t.Errorf("overview shows more outer pads than the world has")
	}
}

func TestDrawOverviewEmptyScreen(t *testing.T) {
	w, _ := mustGenerate(t, "ZXRESCUE", 1)
	scr := core.NewScreen(0, 0)
	w.DrawOverview(scr) // must not panic
}
