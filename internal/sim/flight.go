package sim

import (
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
)

const (
	descentThreshold = -0.1 // Vertical speed below which the heli counts as descending
	fallDecayRate    = 6.0  // Fall distance bled off per second while braking
)

// FlightSystem applies pilot input: heading, discrete speed levels,
// climb and descent, take-off, and the land assist.
type FlightSystem struct {
	cfg config.FlightConfig

	upLatch   bool
	downLatch bool
}

// NewFlightSystem creates a flight system.
func NewFlightSystem(cfg config.FlightConfig) *FlightSystem {
	return &FlightSystem{cfg: cfg}
}

// Reset clears the speed key latches.
func (f *FlightSystem) Reset() {
	f.upLatch = false
	f.downLatch = false
}

// Update advances the heli by one tick of pilot input.
func (f *FlightSystem) Update(s *State, in core.InputFrame, dt float64) {
	h := &s.Heli
	prevAlt := h.Alt

	turn := f.cfg.TurnDegPerSec * math.Pi / 180 * dt
	if in.Has(core.ActionTurnLeft) {
		h.Heading -= turn
	}
	if in.Has(core.ActionTurnRight) {
		h.Heading += turn
	}

	if in.Has(core.ActionLand) && !h.Landed && h.OnLand && h.Clearance() <= f.cfg.LandingAlt {
		h.Landed = true
	}

	if h.Landed {
		h.SpeedLevel = 0
		h.Speed = 0
		h.VerticalSpeed = 0
		h.FallDistance = 0
		h.DescentPause = 0
		h.Boost = false
		// Keys held through touchdown must be released before they count.
		f.upLatch = in.Has(core.ActionSpeedUp)
		f.downLatch = in.Has(core.ActionSpeedDown)
		if !in.Has(core.ActionClimb) {
			return
		}
		h.Landed = false
	}

	f.stepSpeed(h, in)

	dir := core.Heading(h.Heading)
	v := float64(h.SpeedLevel) * f.cfg.SpeedStep
	h.X += dir.X * v * dt
	h.Z += dir.Z * v * dt

	if in.Has(core.ActionClimb) {
		h.Alt += f.cfg.ClimbRate * dt
	}
	if in.Has(core.ActionDescend) {
		h.Alt -= f.cfg.ClimbRate * dt
	}
	h.Alt = core.ClampF(h.Alt, f.cfg.MinAlt, f.cfg.MaxAlt)

	h.Speed = math.Abs(v)
	h.Boost = core.Abs(h.SpeedLevel) == f.cfg.MaxSpeedLevel
	h.VerticalSpeed = (h.Alt - prevAlt) / dt
	trackFall(h, dt, f.cfg.DescentPause)
}

// stepSpeed moves the speed level by one per key press, not per tick.
func (f *FlightSystem) stepSpeed(h *Heli, in core.InputFrame) {
	up := in.Has(core.ActionSpeedUp)
	if up && !f.upLatch {
		h.SpeedLevel = min(f.cfg.MaxSpeedLevel, h.SpeedLevel+1)
	}
	f.upLatch = up

	down := in.Has(core.ActionSpeedDown)
	if down && !f.downLatch {
		h.SpeedLevel = max(-f.cfg.MaxSpeedLevel, h.SpeedLevel-1)
	}
	f.downLatch = down
}

// trackFall accumulates unbroken descent. A pause in descent longer than
// pause clears it; shorter pauses bleed it off.
func trackFall(h *Heli, dt, pause float64) {
	if h.VerticalSpeed < descentThreshold {
		h.FallDistance += -h.VerticalSpeed * dt
		h.DescentPause = 0
		return
	}
	h.DescentPause += dt
	if h.DescentPause >= pause {
		h.FallDistance = 0
		return
	}
	h.FallDistance = math.Max(0, h.FallDistance-fallDecayRate*dt)
}
