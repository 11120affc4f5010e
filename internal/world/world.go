// Package world generates the seeded archipelago a round is played on and
// answers terrain queries against it.
//
// A World is immutable after Generate returns, except for the Collected and
// Saved flags of crates and refugees, the carried position of an object on
// the rope, and the Mesh handles a renderer may attach.
package world

import "github.com/vovakirdan/zxrescue/internal/core"

// BaseHelipadID is the id of the single base helipad of every world.
const BaseHelipadID = "base"

// World is one generated archipelago.
type World struct {
	SeedText string
	Round    int
	Attempt  int // Retry index that produced this world

	N           int     // Grid is N x N
	Size        float64 // World extent, centered on the origin
	SeaLevel    float64
	HeightScale float64

	H        []float64 // Raw height per cell, row-major (z * N + x)
	Mask     []uint8   // 1 for land cells of surviving islands
	IslandOf []int     // Island index per cell, -1 for sea

	Islands    []Island
	BaseIsland int // Index into Islands
	BasePos    core.Vec2

	Helipads  []Helipad
	Crates    []Crate
	Refugees  []Refugee
	Buildings []Building
	Trees     []Tree
	Occluders []Occluder
	Obstacles []Obstacle

	CyclonePath CyclonePath
}

// Island is a 4-connected land region.
type Island struct {
	ID        string
	Index     int
	Name      string
	Cells     []int
	Center    core.Vec2
	Buildings int
}

// Helipad is a landing, refuel and delivery point.
type Helipad struct {
	ID       string
	IslandID string
	X, Z     float64
	Y        float64 // Ground height under the pad
	Radius   float64
	Mesh     any
}

// IsBase reports whether this is the base pad.
func (p *Helipad) IsBase() bool {
	return p.ID == BaseHelipadID
}

// Crate is a supply crate waiting to be winched up.
// Y is the live vertical position while hauled.
type Crate struct {
	ID         string
	IslandID   string
	IslandName string
	X, Y, Z    float64
	GroundY    float64
	Collected  bool
	Mesh       any
}

// RefugeeType only affects how a survivor is drawn.
type RefugeeType int

const (
	RefugeeSurvivor RefugeeType = iota
	RefugeeFamily
	RefugeeMedic
)

// String returns the refugee type name.
func (t RefugeeType) String() string {
	switch t {
	case RefugeeFamily:
		return "family"
	case RefugeeMedic:
		return "medic"
	default:
		return "survivor"
	}
}

// Refugee is a survivor waiting to be rescued.
type Refugee struct {
	ID       string
	IslandID string
	Type     RefugeeType
	X, Y, Z  float64
	GroundY  float64
	Saved    bool
	Mesh     any
}

// Building is a house footprint; every helipad island hosts at least one.
type Building struct {
	ID       string
	IslandID string
	X, Z     float64
	R        float64 // Footprint radius
	Height   float64
	GroundY  float64
}

// Tree is a single tree.
type Tree struct {
	IslandID string
	X, Z     float64
	R        float64
	Height   float64
	GroundY  float64
}

// Occluder is a decorative rock pillar. It never collides.
type Occluder struct {
	X, Z    float64
	R       float64
	H       float64
	GroundY float64
}

// ObstacleKind distinguishes collision cylinders.
type ObstacleKind int

const (
	ObstacleBuilding ObstacleKind = iota
	ObstacleTree
)

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	if k == ObstacleTree {
		return "tree"
	}
	return "building"
}

// Obstacle is a static collision cylinder derived from a building or tree.
type Obstacle struct {
	Kind ObstacleKind
	X, Z float64
	R    float64
	TopY float64
}

// CyclonePath is the ellipse the cyclone roams inside.
type CyclonePath struct {
	CenterX, CenterZ float64
	RadX, RadZ       float64
	Phase            float64
}

// Island returns the island with the given id.
func (w *World) Island(id string) (*Island, bool) {
	for i := range w.Islands {
		if w.Islands[i].ID == id {
			return &w.Islands[i], true
		}
	}
	return nil, false
}

// BaseHelipad returns the base pad.
func (w *World) BaseHelipad() *Helipad {
	for i := range w.Helipads {
		if w.Helipads[i].IsBase() {
			return &w.Helipads[i]
		}
	}
	return nil
}

// CratesRemaining counts crates not yet collected.
func (w *World) CratesRemaining() int {
	n := 0
	for i := range w.Crates {
		if !w.Crates[i].Collected {
			n++
		}
	}
	return n
}

// RefugeesRemaining counts refugees not yet saved.
func (w *World) RefugeesRemaining() int {
	n := 0
	for i := range w.Refugees {
		if !w.Refugees[i].Saved {
			n++
		}
	}
	return n
}

// LandCells counts land cells.
func (w *World) LandCells() int {
	n := 0
	for _, m := range w.Mask {
		n += int(m)
	}
	return n
}
