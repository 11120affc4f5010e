package sim

import (
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
)

// FuelSystem drains fuel in flight and runs the round clock.
type FuelSystem struct {
	cfg config.FuelConfig
}

// NewFuelSystem creates a fuel system.
func NewFuelSystem(cfg config.FuelConfig) *FuelSystem {
	return &FuelSystem{cfg: cfg}
}

// DrainRate is the fuel burned per second by an airborne heli.
func (f *FuelSystem) DrainRate(h *Heli) float64 {
	rate := f.cfg.BaseDrain + f.cfg.SpeedDrain*float64(core.Abs(h.SpeedLevel))
	if h.Alt > f.cfg.HighAlt {
		rate += f.cfg.HighAltDrain
	}
	return rate
}

// Update burns fuel and counts down the clock. Running dry is a crash
// only while airborne; the clock ends the game either way.
func (f *FuelSystem) Update(s *State, dt float64) {
	if !s.Heli.Landed {
		s.Fuel = math.Max(0, s.Fuel-f.DrainRate(&s.Heli)*dt)
		if s.Fuel <= 0 {
			s.Crash(ReasonOutOfFuel)
		}
	}

	s.TimeLeft = math.Max(0, s.TimeLeft-dt)
	if s.TimeLeft <= 0 {
		s.GameOver = true
	}
}
