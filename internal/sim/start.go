package sim

import (
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
)

// StartSequence is the round intro: crates are announced one by one and
// the tank fills from empty. Flight systems wait until it is Done.
type StartSequence struct {
	CrateIndex int
	CrateTimer float64
	FuelTimer  float64
	Done       bool
}

func newStartSequence(cfg config.Config) StartSequence {
	return StartSequence{
		CrateTimer: cfg.Session.CrateDropDelay,
		FuelTimer:  cfg.Fuel.StartupPeriod,
	}
}

// runStart advances the intro by one tick.
func runStart(s *State, cfg config.Config, dt float64) {
	seq := &s.Start
	if seq.Done {
		return
	}
	crates := len(s.World.Crates)

	seq.CrateTimer -= dt
	if seq.CrateIndex < crates && seq.CrateTimer <= 0 {
		seq.CrateIndex++
		seq.CrateTimer = cfg.Session.CrateDropPeriod
		s.emit(EventDrop, s.World.Crates[seq.CrateIndex-1].IslandName)
	}

	seq.FuelTimer -= dt
	if s.Fuel < cfg.Fuel.Max && seq.FuelTimer <= 0 {
		s.Fuel = math.Min(cfg.Fuel.Max, s.Fuel+cfg.Fuel.StartupStep)
		seq.FuelTimer = cfg.Fuel.StartupPeriod
		s.emit(EventTick, "")
	}

	if seq.CrateIndex >= crates && s.Fuel >= cfg.Fuel.Max {
		seq.Done = true
	}
}
