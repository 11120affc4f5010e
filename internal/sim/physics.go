package sim

import (
	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/world"
)

const (
	strongDescent   = -1.6 // Below this a fast touchdown is judged as a hard landing, not a scrape
	risingImpactVS  = 1.2  // Climbing faster than this at contact hits the surface from below
	obstacleTopSlop = 0.04
)

// PhysicsSystem resolves the heli against the world: bounds, surface
// height under it, landing, and collisions with terrain, obstacles and sea.
// It only records a crash reason; consequences belong to Session.
type PhysicsSystem struct {
	cfg config.FlightConfig
}

// NewPhysicsSystem creates a physics system.
func NewPhysicsSystem(cfg config.FlightConfig) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg}
}

// Update resolves contact for one tick.
func (p *PhysicsSystem) Update(s *State) {
	h := &s.Heli
	w := s.World

	half := w.Size / 2
	h.X = core.ClampF(h.X, -half, half)
	h.Z = core.ClampF(h.Z, -half, half)

	p.resolveSurface(s)

	if h.Landed {
		if !h.OnLand {
			h.Landed = false
		} else {
			p.settle(h)
		}
	}

	contact := p.cfg.GroundClearance + p.cfg.ContactTolerance
	if !h.Landed && h.OnLand && h.Clearance() <= contact {
		if reason := p.touchdown(h); reason != "" {
			s.Crash(reason)
		} else {
			p.settle(h)
		}
	}

	if s.CrashReason == "" {
		p.checkObstacles(s)
	}

	if s.CrashReason == "" && !h.Landed && h.Alt <= p.cfg.SeaImpactAlt {
		s.Crash(ReasonSeaImpact)
	}
}

// resolveSurface samples ground and finds the highest pad deck under the heli.
func (p *PhysicsSystem) resolveSurface(s *State) {
	h := &s.Heli
	w := s.World

	h.GroundY = w.SampleGroundHeight(h.X, h.Z)
	h.OnLand = w.IsLand(h.X, h.Z)
	h.SurfaceY = h.GroundY
	h.OverPad = false
	h.PadY = 0

	for i := range w.Helipads {
		pad := &w.Helipads[i]
		r := pad.Radius + p.cfg.PadMargin
		if core.Dist2(h.X, h.Z, pad.X, pad.Z) > r*r {
			continue
		}
		top := pad.Y + p.cfg.PadDeckHeight
		if top > h.SurfaceY {
			h.SurfaceY = top
			h.OverPad = true
			h.PadY = top
		}
	}
}

// touchdown judges a contact and returns a crash reason, or "" to land.
func (p *PhysicsSystem) touchdown(h *Heli) string {
	impact := max(0, -h.VerticalSpeed)
	switch {
	case impact > p.cfg.SafeLandingVSpeed && h.FallDistance >= p.cfg.HardLandingMinDrop:
		return ReasonHardLanding
	case h.Speed > p.cfg.SafeLandingHSpeed && h.VerticalSpeed > strongDescent:
		return ReasonTerrain
	case h.VerticalSpeed > risingImpactVS:
		return ReasonTerrain
	}
	return ""
}

// settle puts the heli down on the surface at rest.
func (p *PhysicsSystem) settle(h *Heli) {
	h.Landed = true
	h.Alt = h.SurfaceY + p.cfg.GroundClearance
	h.SpeedLevel = 0
	h.Speed = 0
	h.VerticalSpeed = 0
	h.FallDistance = 0
	h.DescentPause = 0
}

func (p *PhysicsSystem) checkObstacles(s *State) {
	h := &s.Heli
	bottom := h.Alt - p.cfg.GroundClearance
	for _, o := range s.World.Obstacles {
		if !core.CircleHit(h.X, h.Z, p.cfg.HeliRadius, o.X, o.Z, o.R) {
			continue
		}
		if bottom <= o.TopY-obstacleTopSlop {
			if o.Kind == world.ObstacleTree {
				s.Crash(ReasonTree)
			} else {
				s.Crash(ReasonBuilding)
			}
			return
		}
	}
}
