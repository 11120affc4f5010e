package tui

import (
	"time"

	"github.com/vovakirdan/zxrescue/internal/core"
)

// Terminals report key presses but never releases. Continuous actions are
// held for a short window after each press, refreshed by key repeat;
// discrete actions are pulsed for one simulation step so every press
// (or repeat) reaches the session as a fresh edge.
const defaultHoldWindow = 180 * time.Millisecond

// heldInput turns key press events into per-step input frames.
type heldInput struct {
	hold   time.Duration
	until  map[core.Action]time.Time
	pulses map[core.Action]bool
	sent   map[core.Action]bool // Pulsed in the previous frame
	wheel  int
}

func newHeldInput(hold time.Duration) *heldInput {
	return &heldInput{
		hold:   hold,
		until:  make(map[core.Action]time.Time),
		pulses: make(map[core.Action]bool),
		sent:   make(map[core.Action]bool),
	}
}

// continuous reports whether an action stays down while its key repeats.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionTurnLeft, core.ActionTurnRight, core.ActionClimb, core.ActionDescend, core.ActionLand:
		return true
	}
	return false
}

// Press records a key press at now.
func (h *heldInput) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if continuous(a) {
		h.until[a] = now.Add(h.hold)
		// Opposite turns cancel instead of summing.
		switch a {
		case core.ActionTurnLeft:
			delete(h.until, core.ActionTurnRight)
		case core.ActionTurnRight:
			delete(h.until, core.ActionTurnLeft)
		case core.ActionClimb:
			delete(h.until, core.ActionDescend)
		case core.ActionDescend:
			delete(h.until, core.ActionClimb)
		}
		return
	}
	h.pulses[a] = true
}

// Scroll accumulates a wheel delta for the next step.
func (h *heldInput) Scroll(delta int) {
	h.wheel += delta
}

// Frame returns the input for one step at now and consumes pulses.
// A pulse that was sent in the previous step is reported released first,
// so two quick presses still read as two edges.
func (h *heldInput) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	sent := make(map[core.Action]bool, len(h.pulses))
	for a := range h.pulses {
		if h.sent[a] {
			continue
		}
		f.Set(a)
		sent[a] = true
		delete(h.pulses, a)
	}
	h.sent = sent
	f.Wheel = h.wheel
	h.wheel = 0
	return f
}

// Reset releases everything.
func (h *heldInput) Reset() {
	clear(h.until)
	clear(h.pulses)
	clear(h.sent)
	h.wheel = 0
}
