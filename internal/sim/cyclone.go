package sim

import (
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/rng"
)

const (
	swirlFreq       = 0.7
	yawJitterFreq   = 24
	nearDescentGain = 12
	nearJitterBase  = 0.6
)

// CycloneSystem steers the storm between waypoints inside its roaming
// ellipse and applies wind effects to the heli.
type CycloneSystem struct {
	cfg    config.CycloneConfig
	flight config.FlightConfig
	scale  config.RoundScaling
	r      *rng.RNG
}

// NewCycloneSystem creates a cyclone system drawing from r.
func NewCycloneSystem(cfg config.CycloneConfig, flight config.FlightConfig, scale config.RoundScaling, r *rng.RNG) *CycloneSystem {
	return &CycloneSystem{cfg: cfg, flight: flight, scale: scale, r: r}
}

// ellipse returns the roaming ellipse grown for the current round.
func (c *CycloneSystem) ellipse(s *State) (cx, cz, rx, rz float64) {
	p := s.World.CyclonePath
	return p.CenterX, p.CenterZ, p.RadX + c.scale.EllipseX, p.RadZ + c.scale.EllipseZ
}

// Spawn places the cyclone on its ellipse at the path phase and picks a
// first waypoint.
func (c *CycloneSystem) Spawn(s *State) {
	cx, cz, rx, rz := c.ellipse(s)
	phase := s.World.CyclonePath.Phase
	s.Cyclone = Cyclone{
		X: cx + math.Cos(phase)*rx,
		Z: cz + math.Sin(phase)*rz,
	}
	c.retarget(s)
}

// retarget samples candidate points inside the ellipse and keeps the one
// farthest from the storm, then draws the next retarget interval.
func (c *CycloneSystem) retarget(s *State) {
	cx, cz, rx, rz := c.ellipse(s)
	cy := &s.Cyclone

	best := -1.0
	for i := 0; i < max(1, c.cfg.TargetSamples); i++ {
		ang := c.r.Range(0, 2*math.Pi)
		rad := math.Sqrt(c.r.Next())
		x := cx + math.Cos(ang)*rad*rx
		z := cz + math.Sin(ang)*rad*rz
		if d := core.Dist2(x, z, cy.X, cy.Z); d > best {
			best = d
			cy.TargetX, cy.TargetZ = x, z
		}
	}
	// sqrt biases the interval toward the long end.
	span := c.cfg.RetargetMax - c.cfg.RetargetMin
	cy.RetargetIn = c.cfg.RetargetMin + span*math.Sqrt(c.r.Next())
}

// Update moves the cyclone and applies its wind to the heli.
func (c *CycloneSystem) Update(s *State, dt float64) {
	c.move(s, dt)
	c.affect(s, dt)
}

func (c *CycloneSystem) move(s *State, dt float64) {
	cy := &s.Cyclone
	cy.T += dt
	cy.RetargetIn -= dt
	if cy.RetargetIn <= 0 || core.Dist(cy.X, cy.Z, cy.TargetX, cy.TargetZ) < c.cfg.ArriveDistance {
		c.retarget(s)
	}

	var ax, az float64
	to := core.Vec2{X: cy.TargetX - cy.X, Z: cy.TargetZ - cy.Z}
	if l := to.Len(); l > 0 {
		ax = to.X / l * c.scale.SeekAccel
		az = to.Z / l * c.scale.SeekAccel
		swirl := math.Sin(cy.T*swirlFreq+s.World.CyclonePath.Phase) * c.cfg.SwirlAccel
		ax += -to.Z / l * swirl
		az += to.X / l * swirl
	}

	cx, cz, rx, rz := c.ellipse(s)
	ex, ez := (cy.X-cx)/rx, (cy.Z-cz)/rz
	if e := math.Hypot(ex, ez); e > 1+c.cfg.BoundSlack {
		pull := c.cfg.BoundAccel * (e - 1)
		ax -= ex / e * pull
		az -= ez / e * pull
	}

	cy.VX += ax * dt
	cy.VZ += az * dt
	damp := math.Exp(-c.cfg.Damping * dt)
	cy.VX *= damp
	cy.VZ *= damp
	if sp := math.Hypot(cy.VX, cy.VZ); sp > c.scale.CycloneSpeed {
		k := c.scale.CycloneSpeed / sp
		cy.VX *= k
		cy.VZ *= k
	}
	cy.X += cy.VX * dt
	cy.Z += cy.VZ * dt
}

// affect computes the wind force and buffets an airborne heli. The
// cyclone never records a crash itself.
func (c *CycloneSystem) affect(s *State, dt float64) {
	h := &s.Heli
	d := core.Dist(h.X, h.Z, s.Cyclone.X, s.Cyclone.Z)
	s.WindForce = max(0, 1-d/c.cfg.FarRadius)
	if h.Landed {
		return
	}

	if d < c.cfg.MidRadius {
		h.X += (c.r.Next() - 0.5) * s.WindForce * c.cfg.MidJitter
		h.Z += (c.r.Next() - 0.5) * s.WindForce * c.cfg.MidJitter
	}
	if d >= c.cfg.NearRadius {
		return
	}

	near := max(0, 1-d/c.cfg.NearRadius)
	h.Heading += math.Sin(s.Cyclone.T*yawJitterFreq) * near * c.cfg.YawJitter
	jitter := nearJitterBase + near*c.cfg.NearJitter
	h.X += (c.r.Next() - 0.5) * jitter
	h.Z += (c.r.Next() - 0.5) * jitter
	h.Alt = math.Max(c.flight.MinAlt, h.Alt-(c.cfg.DescentRate+near*nearDescentGain)*dt)

	if near > c.cfg.SpeedKickForce && c.r.Next() < dt*c.cfg.SpeedKickRate {
		h.SpeedLevel = core.Clamp(h.SpeedLevel+int(c.r.Sign()), -c.flight.MaxSpeedLevel, c.flight.MaxSpeedLevel)
	}
}
