package sim

import (
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
)

// Rope geometry tolerances.
const (
	reachSlack       = 0.8  // Extra 3D reach beyond max length when acquiring
	dropZoneSlack    = 1.45 // Drop zone radius as a multiple of the acquire radius
	attachHorizontal = 1.25 // Multiples of the attach radius
	attachVertical   = 1.4
	attachTouch      = 0.7
	verticalPenalty  = 0.2 // Cost weight of the vertical gap when choosing a target
	haulBelowAnchor  = 0.3
	deliverTolerance = 0.42
	haulOverreach    = 0.9
	retractDone      = 0.08
	maxLengthSnap    = 0.02
)

// PickupSystem drives the rope winch, pad refuelling and round completion.
type PickupSystem struct {
	rope       config.RopeConfig
	fuel       config.FuelConfig
	crateCount int
}

// NewPickupSystem creates a pickup system. crateCount is the number of
// crates that must be collected before landing on the base wins the round.
func NewPickupSystem(rope config.RopeConfig, fuel config.FuelConfig, crateCount int) *PickupSystem {
	return &PickupSystem{rope: rope, fuel: fuel, crateCount: crateCount}
}

// Update advances refuelling and the rope by one tick.
func (p *PickupSystem) Update(s *State, dt float64) {
	if s.PickupTimer > 0 {
		s.PickupTimer -= dt
	}
	p.refuel(s, dt)

	h := &s.Heli
	rope := &s.Rope

	fwd := core.Heading(h.Heading)
	rope.Anchor = Point3{
		X: h.X + fwd.X*p.rope.AnchorForward,
		Y: h.Alt - p.rope.AnchorDrop,
		Z: h.Z + fwd.Z*p.rope.AnchorForward,
	}

	if h.Landed && rope.Phase != RopeIdle {
		beginRetract(rope)
	}

	switch rope.Phase {
	case RopeIdle:
		p.idle(s)
		return
	case RopeDropping:
		p.drop(rope, dt)
	}
	if rope.Phase == RopeAttached {
		p.haul(s, dt)
	}
	if rope.Phase == RopeRetracting {
		p.retract(rope, dt)
	}
}

// refuel tops up fuel while landed on a pad and flags the win when the
// base is reached with every crate aboard.
func (p *PickupSystem) refuel(s *State, dt float64) {
	was := s.Refueling
	s.Refueling = false

	h := &s.Heli
	if !h.Landed || !h.OnLand {
		return
	}
	for i := range s.World.Helipads {
		pad := &s.World.Helipads[i]
		if !core.CircleHit(h.X, h.Z, p.fuel.RefuelRadius, pad.X, pad.Z, p.fuel.PadHitRadius) {
			continue
		}
		s.Refueling = s.Fuel < p.fuel.Max
		s.Fuel = math.Min(p.fuel.Max, s.Fuel+dt*p.fuel.RefuelPerSec)
		if s.Refueling && !was {
			s.emit(EventRefuel, pad.ID)
		}
		if pad.IsBase() && s.CratesCollected >= p.crateCount {
			s.WinRound = true
		}
		return
	}
}

func beginRetract(rope *Rope) {
	rope.Phase = RopeRetracting
	rope.Target = nil
}

func (p *PickupSystem) idle(s *State) {
	rope := &s.Rope
	rope.Length = 0
	rope.Tip = rope.Anchor
	rope.Target = nil

	if s.Heli.Landed || s.PickupTimer > 0 {
		return
	}
	if t := p.findTarget(s, rope.Anchor); t != nil {
		rope.Target = t
		rope.Phase = RopeDropping
	}
}

// findTarget picks the cheapest available object within reach of anchor.
func (p *PickupSystem) findTarget(s *State, anchor Point3) PickupTarget {
	maxR2 := p.rope.AcquireRadius * p.rope.AcquireRadius
	var best PickupTarget
	bestCost := math.Inf(1)

	consider := func(t PickupTarget) {
		if !t.Available() {
			return
		}
		pos := t.Position()
		d2 := core.Dist2(pos.X, pos.Z, anchor.X, anchor.Z)
		if d2 > maxR2 {
			return
		}
		dy := hookPoint(t).Y - anchor.Y
		if math.Sqrt(d2+dy*dy) > p.rope.MaxLength+reachSlack {
			return
		}
		if cost := d2 + math.Abs(dy)*verticalPenalty; cost < bestCost {
			bestCost = cost
			best = t
		}
	}

	for i := range s.World.Crates {
		consider(CrateTarget{Crate: &s.World.Crates[i]})
	}
	for i := range s.World.Refugees {
		consider(RefugeeTarget{Refugee: &s.World.Refugees[i]})
	}
	return best
}

// drop lowers the rope toward the target.
func (p *PickupSystem) drop(rope *Rope, dt float64) {
	t := rope.Target
	if t == nil || !t.Available() {
		beginRetract(rope)
		return
	}
	pos := t.Position()
	zone := p.rope.AcquireRadius * dropZoneSlack
	if core.Dist2(pos.X, pos.Z, rope.Anchor.X, rope.Anchor.Z) > zone*zone {
		beginRetract(rope)
		return
	}

	rope.Length = math.Min(p.rope.MaxLength, rope.Length+p.rope.DropSpeed*dt)
	rope.Tip = Point3{X: rope.Anchor.X, Y: rope.Anchor.Y - rope.Length, Z: rope.Anchor.Z}

	hook := hookPoint(t)
	horizontal := core.Dist(hook.X, hook.Z, rope.Tip.X, rope.Tip.Z)
	vertical := math.Abs(hook.Y - rope.Tip.Y)
	touched := rope.Tip.Y <= hook.Y+p.rope.AttachRadius*attachTouch
	if horizontal <= p.rope.AttachRadius*attachHorizontal &&
		vertical <= p.rope.AttachRadius*attachVertical && touched {
		rope.Phase = RopeAttached
		return
	}
	// At full length the rope waits for the target or the heli to move.
	if rope.Length >= p.rope.MaxLength-maxLengthSnap {
		rope.Length = p.rope.MaxLength
		rope.Tip.Y = rope.Anchor.Y - rope.Length
	}
}

// haul winches the attached object up under the anchor.
func (p *PickupSystem) haul(s *State, dt float64) {
	rope := &s.Rope
	t := rope.Target
	if t == nil || !t.Available() {
		beginRetract(rope)
		return
	}

	current := t.Position().Y
	desired := rope.Anchor.Y - haulBelowAnchor
	dy := desired - current
	ny := current + core.Sign(dy)*math.Min(math.Abs(dy), p.rope.HaulSpeed*dt)
	t.SetPosition(Point3{X: rope.Anchor.X, Y: ny, Z: rope.Anchor.Z})

	hook := hookPoint(t)
	rope.Tip = Point3{X: rope.Anchor.X, Y: hook.Y, Z: rope.Anchor.Z}
	rope.Length = math.Abs(hook.Y - rope.Anchor.Y)

	switch {
	case rope.Length > p.rope.MaxLength+haulOverreach:
		pos := t.Position()
		pos.Y = t.BaseY()
		t.SetPosition(pos)
		beginRetract(rope)
	case math.Abs(desired-ny) < deliverTolerance:
		p.deliver(s, t)
		beginRetract(rope)
	}
}

// deliver credits a hauled object.
func (p *PickupSystem) deliver(s *State, t PickupTarget) {
	switch v := t.(type) {
	case CrateTarget:
		v.Crate.Collected = true
		s.CratesCollected++
		s.Score += p.rope.CrateScore
		s.PickupTimer = p.rope.CrateCooldown
	case RefugeeTarget:
		v.Refugee.Saved = true
		s.RefugeesSaved++
		s.Score += p.rope.RefugeeScore
		s.PickupTimer = p.rope.RefugeeCooldown
	}
	s.emit(EventPickup, t.ID())
}

// retract winds the tip back to the anchor.
func (p *PickupSystem) retract(rope *Rope, dt float64) {
	rope.Tip.X = rope.Anchor.X
	rope.Tip.Z = rope.Anchor.Z
	dy := rope.Anchor.Y - rope.Tip.Y
	if math.Abs(dy) <= retractDone {
		rope.Phase = RopeIdle
		rope.Length = 0
		rope.Tip = rope.Anchor
		return
	}
	rope.Tip.Y += core.Sign(dy) * math.Min(math.Abs(dy), p.rope.RetractSpeed*dt)
	rope.Length = math.Max(0, rope.Length-p.rope.RetractSpeed*dt)
}
