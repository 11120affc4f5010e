package sim

import (
	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/rng"
)

// PlaneSystem spawns aircraft that cross the world in a straight line.
type PlaneSystem struct {
	cfg   config.PlanesConfig
	scale config.RoundScaling
	r     *rng.RNG
}

// NewPlaneSystem creates a plane system drawing from r.
func NewPlaneSystem(cfg config.PlanesConfig, scale config.RoundScaling, r *rng.RNG) *PlaneSystem {
	return &PlaneSystem{cfg: cfg, scale: scale, r: r}
}

// Update spawns, moves, culls, and collides planes.
func (p *PlaneSystem) Update(s *State, dt float64) {
	edge := s.World.Size * p.cfg.EdgeFactor

	s.PlaneTimer -= dt
	if s.PlaneTimer <= 0 {
		s.PlaneTimer = p.r.Range(p.cfg.SpawnMin, p.cfg.SpawnMax) / p.scale.PlaneInterval
		s.Planes = append(s.Planes, p.spawn(s.World.Size, edge))
	}

	h := &s.Heli
	kept := s.Planes[:0]
	for _, pl := range s.Planes {
		pl.X += pl.VX * dt
		pl.Z += pl.VZ * dt
		if !h.Landed && h.Alt < p.cfg.CeilingAlt &&
			core.CircleHit(h.X, h.Z, p.cfg.HeliRadius, pl.X, pl.Z, pl.R) {
			s.Crash(ReasonPlane)
		}
		if !exited(pl, edge) {
			kept = append(kept, pl)
		}
	}
	s.Planes = kept
}

// spawn creates a plane on a random world edge heading for the opposite one.
func (p *PlaneSystem) spawn(size, edge float64) Plane {
	lateral := size * p.cfg.LateralFactor
	offset := p.r.Range(-lateral, lateral)
	speed := p.r.Range(p.cfg.SpeedMin, p.cfg.SpeedMax)
	pl := Plane{R: p.cfg.Radius}

	switch p.r.Int(0, 3) {
	case 0: // West to east
		pl.X, pl.Z, pl.VX = -edge, offset, speed
	case 1:
		pl.X, pl.Z, pl.VX = edge, offset, -speed
	case 2: // North to south
		pl.X, pl.Z, pl.VZ = offset, -edge, speed
	default:
		pl.X, pl.Z, pl.VZ = offset, edge, -speed
	}
	return pl
}

// exited reports whether a plane has passed the far edge of its crossing.
func exited(pl Plane, edge float64) bool {
	return (pl.VX > 0 && pl.X >= edge) || (pl.VX < 0 && pl.X <= -edge) ||
		(pl.VZ > 0 && pl.Z >= edge) || (pl.VZ < 0 && pl.Z <= -edge)
}
