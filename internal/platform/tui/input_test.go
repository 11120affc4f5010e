package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/zxrescue/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestHeldInputContinuousHold(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)
	h.Press(core.ActionTurnLeft, t0)

	tests := []struct {
		name  string
		after time.Duration
		want  bool
	}{
		{"immediately", 0, true},
		{"within window", 100 * time.Millisecond, true},
		{"just before expiry", defaultHoldWindow - time.Millisecond, true},
		{"expired", defaultHoldWindow, false},
		{"stays released", time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := h.Frame(t0.Add(tt.after))
			if got := f.Has(core.ActionTurnLeft); got != tt.want {
				t.Errorf("TurnLeft held = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeldInputRepeatExtendsHold(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)
	h.Press(core.ActionClimb, t0)
	h.Press(core.ActionClimb, t0.Add(150*time.Millisecond))

	if !h.Frame(t0.Add(300 * time.Millisecond)).Has(core.ActionClimb) {
		t.Error("key repeat should keep Climb held")
	}
}

func TestHeldInputOppositesCancel(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)
	h.Press(core.ActionTurnLeft, t0)
	h.Press(core.ActionTurnRight, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionTurnLeft) {
		t.Error("TurnLeft still held after TurnRight")
	}
	if !f.Has(core.ActionTurnRight) {
		t.Error("TurnRight not held")
	}

	h.Press(core.ActionDescend, t0)
	h.Press(core.ActionClimb, t0)
	f = h.Frame(t0)
	if f.Has(core.ActionDescend) || !f.Has(core.ActionClimb) {
		t.Error("Climb should replace Descend")
	}
}

func TestHeldInputPulseIsOneFrame(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)
	h.Press(core.ActionSpeedUp, t0)

	if !h.Frame(t0).Has(core.ActionSpeedUp) {
		t.Fatal("pulse missing from first frame")
	}
	if h.Frame(t0).Has(core.ActionSpeedUp) {
		t.Error("pulse repeated in second frame")
	}
}

func TestHeldInputQuickRepressIsNewEdge(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)

	h.Press(core.ActionSpeedUp, t0)
	first := h.Frame(t0)
	h.Press(core.ActionSpeedUp, t0)
	gap := h.Frame(t0)
	second := h.Frame(t0)

	if !first.Has(core.ActionSpeedUp) {
		t.Error("first press missing")
	}
	if gap.Has(core.ActionSpeedUp) {
		t.Error("re-press in the next frame must be deferred so it reads as an edge")
	}
	if !second.Has(core.ActionSpeedUp) {
		t.Error("deferred re-press was lost")
	}
}

func TestHeldInputWheelAndReset(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)
	h.Scroll(1)
	h.Scroll(2)

	if got := h.Frame(t0).Wheel; got != 3 {
		t.Errorf("Wheel = %d, want 3", got)
	}
	if got := h.Frame(t0).Wheel; got != 0 {
		t.Errorf("Wheel after consume = %d, want 0", got)
	}

	h.Press(core.ActionLand, t0)
	h.Press(core.ActionPause, t0)
	h.Scroll(-1)
	h.Reset()
	f := h.Frame(t0)
	if f.Has(core.ActionLand) || f.Has(core.ActionPause) || f.Wheel != 0 {
		t.Error("Reset left input behind")
	}
}

func TestHeldInputIgnoresNone(t *testing.T) {
	h := newHeldInput(defaultHoldWindow)
	h.Press(core.ActionNone, t0)
	if len(h.pulses) != 0 || len(h.until) != 0 {
		t.Error("ActionNone was recorded")
	}
}
