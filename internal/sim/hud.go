package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
)

// Bar resolutions of the HUD gauges.
const (
	altSteps   = 7
	speedSteps = 5
	fuelSteps  = 5
)

// Radar holds delayed hazard positions for the minimap.
type Radar struct {
	Cyclone core.Vec2
	Planes  []core.Vec2

	cycloneIn float64
	planeIn   float64
}

// update refreshes the snapshots on their own periods.
func (r *Radar) update(s *State, dt float64, cfg config.SessionConfig) {
	r.cycloneIn -= dt
	r.planeIn -= dt
	if r.cycloneIn <= 0 {
		r.Cyclone = core.Vec2{X: s.Cyclone.X, Z: s.Cyclone.Z}
		r.cycloneIn = cfg.CycloneRadar
	}
	if r.planeIn <= 0 {
		r.Planes = r.Planes[:0]
		for _, p := range s.Planes {
			r.Planes = append(r.Planes, core.Vec2{X: p.X, Z: p.Z})
		}
		r.planeIn = cfg.PlaneRadar
	}
}

// HUD is a read-only snapshot of the numbers a status display needs.
type HUD struct {
	Round    int
	Score    int
	Lives    int
	LivesMax int

	CratesShown     int // Crates announced so far by the start sequence
	CratesCollected int
	CratesTotal     int
	RefugeesSaved   int
	RefugeesTotal   int

	Alt        float64
	AltNorm    float64 // Stepped to altSteps
	SpeedLevel int
	SpeedNorm  float64
	Fuel       float64
	FuelNorm   float64
	TimeLeft   float64
	TimeNorm   float64
	Clock      string

	WindForce     float64
	WindAlert     bool
	NearestPlane  float64 // +Inf with no planes in the air
	AircraftAlert bool

	Rotor     float64 // Engine level in [0,1] for sound hosts
	Landed    bool
	Refueling bool
	RopePhase RopePhase
	ViewNorth bool
	MapLarge  bool
	Paused    bool
	Overlay   string
}

// FormatTime renders seconds as m:ss.
func FormatTime(t float64) string {
	t = math.Max(0, t)
	m := int(t / 60)
	sec := int(math.Mod(t, 60))
	return fmt.Sprintf("%d:%02d", m, sec)
}

// stepped quantizes a value in [0,1] to n steps.
func stepped(v float64, n int) float64 {
	return math.Round(core.ClampF(v, 0, 1)*float64(n)) / float64(n)
}

// buildHUD derives the snapshot from state.
func buildHUD(s *State, cfg config.Config, overlay string) HUD {
	h := &s.Heli
	fl := cfg.Flight

	nearest := math.Inf(1)
	for _, p := range s.Planes {
		nearest = math.Min(nearest, core.Dist(p.X, p.Z, h.X, h.Z))
	}
	wind := core.ClampF(s.WindForce, 0, 1)
	speedNorm := float64(core.Abs(h.SpeedLevel)) / float64(fl.MaxSpeedLevel)

	rotor := 0.0
	switch {
	case !h.Landed:
		rotor = 0.5 + 0.5*speedNorm
	case s.Start.Done:
		rotor = 0.25
	}

	return HUD{
		Round:           s.Round,
		Score:           s.Score,
		Lives:           max(0, s.Lives),
		LivesMax:        s.LivesMax,
		CratesShown:     s.Start.CrateIndex,
		CratesCollected: s.CratesCollected,
		CratesTotal:     len(s.World.Crates),
		RefugeesSaved:   s.RefugeesSaved,
		RefugeesTotal:   len(s.World.Refugees),
		Alt:             h.Alt,
		AltNorm:         stepped((h.Alt-fl.MinAlt)/(fl.MaxAlt-fl.MinAlt), altSteps),
		SpeedLevel:      h.SpeedLevel,
		SpeedNorm:       stepped(speedNorm, speedSteps),
		Fuel:            s.Fuel,
		FuelNorm:        stepped(s.Fuel/cfg.Fuel.Max, fuelSteps),
		TimeLeft:        s.TimeLeft,
		TimeNorm:        core.ClampF(s.TimeLeft/cfg.Fuel.TimeLimitSec, 0, 1),
		Clock:           FormatTime(s.TimeLeft),
		WindForce:       wind,
		WindAlert:       wind >= cfg.Session.WindAlert,
		NearestPlane:    nearest,
		AircraftAlert:   nearest < cfg.Session.AircraftAlert,
		Rotor:           rotor,
		Landed:          h.Landed,
		Refueling:       s.Refueling,
		RopePhase:       s.Rope.Phase,
		ViewNorth:       s.ViewNorth,
		MapLarge:        s.MapLarge,
		Paused:          s.Paused,
		Overlay:         overlay,
	}
}
