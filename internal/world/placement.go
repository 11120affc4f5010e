package world

import (
	"fmt"
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/rng"
)

// Clearances between entities that are not tunable policy.
const (
	buildingGap    = 1.5
	padObstacleGap = 3.0 // Pad rim to building or tree footprint
	treeGap        = 1.5
	refugeeLiftY   = 0.62
)

// placer samples entity positions on islands.
type placer struct {
	w         *World
	r         *rng.RNG
	cfg       config.PlacementConfig
	flatCells int
}

func newPlacer(w *World, r *rng.RNG, cfg config.PlacementConfig) *placer {
	return &placer{
		w:         w,
		r:         r,
		cfg:       cfg,
		flatCells: int(math.Ceil(cfg.FlatRadius / w.CellSize())),
	}
}

// flat reports whether every cell within the flatness radius is on the same
// island and within delta world units of the center height.
func (p *placer) flat(cell int, delta float64) bool {
	n := p.w.N
	cx, cy := cell%n, cell/n
	island := p.w.IslandOf[cell]
	h0 := p.w.cellHeight(cell)
	rad := p.flatCells

	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy > rad*rad {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= n || y < 0 || y >= n {
				return false
			}
			c := y*n + x
			if p.w.IslandOf[c] != island {
				return false
			}
			if math.Abs(p.w.cellHeight(c)-h0) > delta {
				return false
			}
		}
	}
	return true
}

// sample draws cells of the island until accept admits one. Flatness is
// loosened twice, strict then loose then none, before giving up. Spacing
// rules inside accept are never loosened.
func (p *placer) sample(island *Island, accept func(core.Vec2) bool) (core.Vec2, bool) {
	deltas := [...]float64{p.cfg.FlatDelta, p.cfg.FlatDeltaLoose, math.Inf(1)}
	for _, delta := range deltas {
		for i := 0; i < p.cfg.PlacementTries; i++ {
			cell := island.Cells[p.r.Int(0, len(island.Cells)-1)]
			if !math.IsInf(delta, 1) && !p.flat(cell, delta) {
				continue
			}
			pos := p.w.CellToWorld(cell)
			if accept == nil || accept(pos) {
				return pos, true
			}
		}
	}
	return core.Vec2{}, false
}

func (p *placer) ground(pos core.Vec2) float64 {
	return p.w.SampleGroundHeight(pos.X, pos.Z)
}

func (p *placer) clearOfPads(pos core.Vec2, gap float64) bool {
	for i := range p.w.Helipads {
		pad := &p.w.Helipads[i]
		if core.Dist(pos.X, pos.Z, pad.X, pad.Z) < gap {
			return false
		}
	}
	return true
}

func (p *placer) clearOfBuildings(pos core.Vec2, r, gap float64) bool {
	for i := range p.w.Buildings {
		b := &p.w.Buildings[i]
		if core.Dist(pos.X, pos.Z, b.X, b.Z) < r+b.R+gap {
			return false
		}
	}
	return true
}

func (p *placer) clearOfItems(pos core.Vec2, gap float64) bool {
	for i := range p.w.Crates {
		if core.Dist(pos.X, pos.Z, p.w.Crates[i].X, p.w.Crates[i].Z) < gap {
			return false
		}
	}
	for i := range p.w.Refugees {
		if core.Dist(pos.X, pos.Z, p.w.Refugees[i].X, p.w.Refugees[i].Z) < gap {
			return false
		}
	}
	return true
}

func (p *placer) clearOfTrees(pos core.Vec2, r float64) bool {
	for i := range p.w.Trees {
		t := &p.w.Trees[i]
		if core.Dist(pos.X, pos.Z, t.X, t.Z) < r+t.R+treeGap {
			return false
		}
	}
	return true
}

// chooseBaseIsland picks the island nearest the world center among the
// largest candidates that are big enough to host the base.
func chooseBaseIsland(islands []Island, candidates, minCells int) int {
	base := 0
	best := math.Inf(1)
	for i := 0; i < len(islands) && i < candidates; i++ {
		if len(islands[i].Cells) < minCells {
			continue
		}
		if d := islands[i].Center.Len2(); d < best {
			best = d
			base = i
		}
	}
	return base
}

// placeBase puts the base pad on a flat spot of the base island.
func (p *placer) placeBase() error {
	base := &p.w.Islands[p.w.BaseIsland]
	pos, ok := p.sample(base, nil)
	if !ok {
		return reject("no base position on %s", base.Name)
	}
	p.w.BasePos = pos
	p.w.Helipads = append(p.w.Helipads, Helipad{
		ID:       BaseHelipadID,
		IslandID: base.ID,
		X:        pos.X,
		Z:        pos.Z,
		Y:        p.ground(pos),
		Radius:   p.cfg.PadRadius,
	})
	return nil
}

// buildingQuota is proportional to island area with a random remainder.
func (p *placer) buildingQuota(island *Island, isBase bool) int {
	cells := len(island.Cells)
	quota := cells / p.cfg.CellsPerBuilding
	if p.r.Bool(float64(cells%p.cfg.CellsPerBuilding) / float64(p.cfg.CellsPerBuilding)) {
		quota++
	}
	quota = min(quota, p.cfg.MaxBuildingsPerIsle)
	if isBase {
		quota = max(quota, p.cfg.BaseMinBuildings)
	}
	return quota
}

func (p *placer) placeBuildings() error {
	for idx := range p.w.Islands {
		island := &p.w.Islands[idx]
		quota := p.buildingQuota(island, idx == p.w.BaseIsland)
		for k := 0; k < quota; k++ {
			radius := p.r.Range(0.9, 1.6)
			height := p.r.Range(2.5, 6)
			pos, ok := p.sample(island, func(pos core.Vec2) bool {
				return p.clearOfPads(pos, p.cfg.PadRadius+radius+padObstacleGap) &&
					p.clearOfBuildings(pos, radius, buildingGap)
			})
			if !ok {
				continue
			}
			p.w.Buildings = append(p.w.Buildings, Building{
				ID:       fmt.Sprintf("bld-%d", len(p.w.Buildings)),
				IslandID: island.ID,
				X:        pos.X,
				Z:        pos.Z,
				R:        radius,
				Height:   height,
				GroundY:  p.ground(pos),
			})
			island.Buildings++
		}
	}

	base := &p.w.Islands[p.w.BaseIsland]
	if base.Buildings < p.cfg.BaseMinBuildings {
		return reject("base island %s has %d buildings, need %d", base.Name, base.Buildings, p.cfg.BaseMinBuildings)
	}
	return nil
}

// placeHelipads adds the outlying pads, only on islands that host a building.
func (p *placer) placeHelipads() error {
	var eligible []*Island
	for idx := range p.w.Islands {
		if idx != p.w.BaseIsland && p.w.Islands[idx].Buildings > 0 {
			eligible = append(eligible, &p.w.Islands[idx])
		}
	}

	want := p.r.Int(p.cfg.HelipadMin, p.cfg.HelipadMax)
	if len(eligible) > 0 {
		for tries := 0; tries < want*4 && len(p.w.Helipads) < want; tries++ {
			island := rng.Pick(p.r, eligible)
			pos, ok := p.sample(island, func(pos core.Vec2) bool {
				return p.clearOfPads(pos, p.cfg.PadSpacing) &&
					p.clearOfBuildings(pos, p.cfg.PadRadius, padObstacleGap)
			})
			if !ok {
				continue
			}
			p.w.Helipads = append(p.w.Helipads, Helipad{
				ID:       fmt.Sprintf("pad-%d", len(p.w.Helipads)),
				IslandID: island.ID,
				X:        pos.X,
				Z:        pos.Z,
				Y:        p.ground(pos),
				Radius:   p.cfg.PadRadius,
			})
		}
	}

	if len(p.w.Helipads) < p.cfg.HelipadMin {
		return reject("placed %d helipads, need %d", len(p.w.Helipads), p.cfg.HelipadMin)
	}
	return nil
}

// nonBaseIslands lists every island except the base, largest first.
func (p *placer) nonBaseIslands() []*Island {
	out := make([]*Island, 0, len(p.w.Islands))
	for idx := range p.w.Islands {
		if idx != p.w.BaseIsland {
			out = append(out, &p.w.Islands[idx])
		}
	}
	return out
}

func (p *placer) itemFree(pos core.Vec2) bool {
	return p.clearOfPads(pos, p.cfg.PadSeparation) &&
		p.clearOfBuildings(pos, 0, buildingGap) &&
		p.clearOfItems(pos, p.cfg.ItemSpacing)
}

// placeCrates puts each crate on a different island drawn from the largest
// non-base islands.
func (p *placer) placeCrates() error {
	others := p.nonBaseIslands()
	if len(others) < p.cfg.CrateCount {
		return reject("%d non-base islands for %d crates", len(others), p.cfg.CrateCount)
	}
	candidates := append([]*Island(nil), others[:min(len(others), p.cfg.CrateCandidates)]...)
	rng.Shuffle(p.r, candidates)

	for _, island := range candidates {
		if len(p.w.Crates) == p.cfg.CrateCount {
			break
		}
		pos, ok := p.sample(island, p.itemFree)
		if !ok {
			continue
		}
		g := p.ground(pos)
		p.w.Crates = append(p.w.Crates, Crate{
			ID:         fmt.Sprintf("crate-%d", len(p.w.Crates)),
			IslandID:   island.ID,
			IslandName: island.Name,
			X:          pos.X,
			Y:          g,
			Z:          pos.Z,
			GroundY:    g,
		})
	}

	if len(p.w.Crates) < p.cfg.CrateCount {
		return reject("placed %d crates, need %d", len(p.w.Crates), p.cfg.CrateCount)
	}
	return nil
}

func (p *placer) placeRefugees() error {
	others := p.nonBaseIslands()
	want := p.r.Int(p.cfg.RefugeeMin, p.cfg.RefugeeMax)

	for tries := 0; tries < want*4 && len(p.w.Refugees) < want; tries++ {
		island := rng.Pick(p.r, others)
		kind := RefugeeSurvivor
		switch roll := p.r.Next(); {
		case roll < 0.2:
			kind = RefugeeFamily
		case roll < 0.3:
			kind = RefugeeMedic
		}
		pos, ok := p.sample(island, p.itemFree)
		if !ok {
			continue
		}
		g := p.ground(pos)
		p.w.Refugees = append(p.w.Refugees, Refugee{
			ID:       fmt.Sprintf("ref-%d", len(p.w.Refugees)),
			IslandID: island.ID,
			Type:     kind,
			X:        pos.X,
			Y:        g + refugeeLiftY,
			Z:        pos.Z,
			GroundY:  g,
		})
	}

	if len(p.w.Refugees) < p.cfg.RefugeeMin {
		return reject("placed %d refugees, need %d", len(p.w.Refugees), p.cfg.RefugeeMin)
	}
	return nil
}

// placeTrees scatters trees on the largest islands. Trees are optional,
// failed samples are skipped.
func (p *placer) placeTrees() {
	limit := min(len(p.w.Islands), p.cfg.TreeIslands)
	for idx := 0; idx < limit; idx++ {
		island := &p.w.Islands[idx]
		count := p.r.Int(1, max(1, p.cfg.TreesPerIsland))
		for k := 0; k < count; k++ {
			radius := p.r.Range(0.5, 0.9)
			height := p.r.Range(1.8, 3.6)
			pos, ok := p.sample(island, func(pos core.Vec2) bool {
				return p.clearOfPads(pos, p.cfg.PadRadius+radius+padObstacleGap) &&
					p.clearOfBuildings(pos, radius, treeGap) &&
					p.clearOfItems(pos, radius+treeGap) &&
					p.clearOfTrees(pos, radius)
			})
			if !ok {
				continue
			}
			p.w.Trees = append(p.w.Trees, Tree{
				IslandID: island.ID,
				X:        pos.X,
				Z:        pos.Z,
				R:        radius,
				Height:   height,
				GroundY:  p.ground(pos),
			})
		}
	}
}

// placeOccluders drops decorative pillars on the largest islands.
func (p *placer) placeOccluders() {
	limit := min(len(p.w.Islands), p.cfg.OccluderIslands)
	if limit == 0 {
		return
	}
	for i := 0; i < p.cfg.OccluderCount; i++ {
		island := &p.w.Islands[p.r.Int(0, limit-1)]
		pos := p.w.CellToWorld(island.Cells[p.r.Int(0, len(island.Cells)-1)])
		p.w.Occluders = append(p.w.Occluders, Occluder{
			X:       pos.X,
			Z:       pos.Z,
			R:       p.r.Range(1, 2.6),
			H:       p.r.Range(2, 8),
			GroundY: p.ground(pos),
		})
	}
}

// deriveObstacles builds the collision cylinders over buildings and trees.
func deriveObstacles(w *World) {
	w.Obstacles = make([]Obstacle, 0, len(w.Buildings)+len(w.Trees))
	for _, b := range w.Buildings {
		w.Obstacles = append(w.Obstacles, Obstacle{Kind: ObstacleBuilding, X: b.X, Z: b.Z, R: b.R, TopY: b.GroundY + b.Height})
	}
	for _, t := range w.Trees {
		w.Obstacles = append(w.Obstacles, Obstacle{Kind: ObstacleTree, X: t.X, Z: t.Z, R: t.R, TopY: t.GroundY + t.Height})
	}
}
