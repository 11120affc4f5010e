// Package sim runs the fixed-step simulation of a rescue round: flight,
// surface contact, rope pickup, the cyclone, crossing planes, and fuel.
//
// All mutable round data lives in a State passed by pointer to each system.
// Systems keep only their own input latches and random streams. Session
// ties them together and owns crash, respawn and round transitions.
package sim

import (
	"github.com/vovakirdan/zxrescue/internal/world"
)

// Crash reasons. At most one is recorded per tick.
const (
	ReasonHardLanding = "Hard landing"
	ReasonTerrain     = "Terrain collision"
	ReasonBuilding    = "Building collision"
	ReasonTree        = "Tree collision"
	ReasonSeaImpact   = "Sea impact"
	ReasonPlane       = "Plane collision"
	ReasonOutOfFuel   = "Out of fuel"
)

// Heli is the player's helicopter. Alt is world Y, the sea surface is 0.
type Heli struct {
	X, Z          float64
	Heading       float64 // Radians, 0 faces -Z
	Alt           float64
	SpeedLevel    int
	Speed         float64 // Horizontal speed, derived from SpeedLevel
	VerticalSpeed float64
	FallDistance  float64 // Unbroken descent since the last pause
	DescentPause  float64 // Time since descent last stopped
	OnLand        bool
	Landed        bool
	Boost         bool // Flying at the top speed level
	GroundY       float64
	SurfaceY      float64 // Ground or pad deck, whichever is higher
	OverPad       bool
	PadY          float64 // Deck height when OverPad
}

// Clearance is the height above the surface under the heli.
func (h *Heli) Clearance() float64 {
	return h.Alt - h.SurfaceY
}

// RopePhase is the winch state.
type RopePhase int

const (
	RopeIdle RopePhase = iota
	RopeDropping
	RopeAttached
	RopeRetracting
)

// String returns the phase name.
func (p RopePhase) String() string {
	switch p {
	case RopeDropping:
		return "dropping"
	case RopeAttached:
		return "attached"
	case RopeRetracting:
		return "retracting"
	default:
		return "idle"
	}
}

// Point3 is a world-space position.
type Point3 struct {
	X, Y, Z float64
}

// Rope is the winch line under the heli.
type Rope struct {
	Phase  RopePhase
	Anchor Point3
	Tip    Point3
	Length float64
	Target PickupTarget // Nil unless dropping or attached
}

// Active reports whether the rope is out.
func (r *Rope) Active() bool {
	return r.Phase != RopeIdle
}

// Cyclone is the roaming storm.
type Cyclone struct {
	X, Z       float64
	VX, VZ     float64
	T          float64 // Elapsed simulation time
	TargetX    float64
	TargetZ    float64
	RetargetIn float64
}

// Plane is a crossing aircraft.
type Plane struct {
	X, Z   float64
	VX, VZ float64
	R      float64
}

// State is the simulation context of one round. Score, Lives, and the view
// preferences carry over between rounds; everything else is rebuilt.
type State struct {
	SeedText string
	Round    int
	World    *world.World

	Heli       Heli
	Rope       Rope
	Cyclone    Cyclone
	Planes     []Plane
	PlaneTimer float64

	Fuel     float64
	TimeLeft float64

	CratesCollected int
	RefugeesSaved   int
	Score           int
	Lives           int
	LivesMax        int

	PickupTimer float64
	Refueling   bool
	WindForce   float64

	CrashReason string
	GameOver    bool
	WinRound    bool
	Paused      bool

	ViewNorth  bool
	CameraTilt float64
	MapLarge   bool

	Start StartSequence
	Radar Radar

	events []Event
}

// Crash records reason unless another crash was already recorded this tick.
// It reports whether reason was recorded.
func (s *State) Crash(reason string) bool {
	if s.CrashReason != "" {
		return false
	}
	s.CrashReason = reason
	return true
}

func (s *State) emit(kind EventKind, text string) {
	s.events = append(s.events, Event{Kind: kind, Text: text})
}
