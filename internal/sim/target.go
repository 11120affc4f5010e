package sim

import "github.com/vovakirdan/zxrescue/internal/world"

// Hook heights above an object's position.
const (
	crateHookOffset   = 1.08
	refugeeHookOffset = 1.0
	refugeeStandY     = 0.62
)

// TargetKind tells crates and refugees apart.
type TargetKind int

const (
	TargetCrate TargetKind = iota
	TargetRefugee
)

// String returns the kind name.
func (k TargetKind) String() string {
	if k == TargetRefugee {
		return "refugee"
	}
	return "crate"
}

// PickupTarget is something the rope can lift. The concrete types are
// CrateTarget and RefugeeTarget.
type PickupTarget interface {
	Kind() TargetKind
	ID() string
	Position() Point3
	// HookOffset is the hook point height above Position.
	HookOffset() float64
	// BaseY is where the object rests on the ground.
	BaseY() float64
	SetPosition(p Point3)
	Available() bool
}

// hookPoint returns where the rope tip attaches.
func hookPoint(t PickupTarget) Point3 {
	p := t.Position()
	p.Y += t.HookOffset()
	return p
}

// CrateTarget wraps a world crate.
type CrateTarget struct {
	Crate *world.Crate
}

func (t CrateTarget) Kind() TargetKind    { return TargetCrate }
func (t CrateTarget) ID() string          { return t.Crate.ID }
func (t CrateTarget) HookOffset() float64 { return crateHookOffset }
func (t CrateTarget) BaseY() float64      { return t.Crate.GroundY }
func (t CrateTarget) Available() bool     { return !t.Crate.Collected }

func (t CrateTarget) Position() Point3 {
	return Point3{X: t.Crate.X, Y: t.Crate.Y, Z: t.Crate.Z}
}

func (t CrateTarget) SetPosition(p Point3) {
	t.Crate.X, t.Crate.Y, t.Crate.Z = p.X, p.Y, p.Z
}

// RefugeeTarget wraps a world refugee.
type RefugeeTarget struct {
	Refugee *world.Refugee
}

func (t RefugeeTarget) Kind() TargetKind    { return TargetRefugee }
func (t RefugeeTarget) ID() string          { return t.Refugee.ID }
func (t RefugeeTarget) HookOffset() float64 { return refugeeHookOffset }
func (t RefugeeTarget) BaseY() float64      { return t.Refugee.GroundY + refugeeStandY }
func (t RefugeeTarget) Available() bool     { return !t.Refugee.Saved }

func (t RefugeeTarget) Position() Point3 {
	return Point3{X: t.Refugee.X, Y: t.Refugee.Y, Z: t.Refugee.Z}
}

func (t RefugeeTarget) SetPosition(p Point3) {
	t.Refugee.X, t.Refugee.Y, t.Refugee.Z = p.X, p.Y, p.Z
}
