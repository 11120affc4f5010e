package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/rng"
)

// Generate builds the archipelago for (seedText, round).
//
// Each attempt reseeds from "<seed>-r<round>-retry<attempt>" and is checked
// against the acceptance criteria; a rejected attempt moves on to the next
// index. When the budget in cfg.World.MaxAttempts runs out the result is a
// *GenerationError and no partial world is returned.
func Generate(cfg config.Config, seedText string, round int) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if round < 1 {
		round = 1
	}

	reasons := make([]string, 0, cfg.World.MaxAttempts)
	for attempt := 0; attempt < cfg.World.MaxAttempts; attempt++ {
		seed := fmt.Sprintf("%s-r%d-retry%d", seedText, round, attempt)
		w, err := generateAttempt(cfg, seed)
		if err == nil {
			w.SeedText = seedText
			w.Round = round
			w.Attempt = attempt
			return w, nil
		}

		var rej *rejection
		if !errors.As(err, &rej) {
			return nil, err
		}
		reasons = append(reasons, fmt.Sprintf("retry %d: %s", attempt, rej.reason))
	}

	return nil, &GenerationError{
		Seed:     seedText,
		Round:    round,
		Attempts: cfg.World.MaxAttempts,
		Reasons:  reasons,
	}
}

// generateAttempt runs one seeded attempt, returning a *rejection when the
// result does not meet the acceptance criteria.
func generateAttempt(cfg config.Config, seed string) (*World, error) {
	wc := cfg.World
	r := rng.New(seed)
	n := wc.Resolution

	h := synthesizeHeights(r, wc)

	regs := dropSmall(regions(landMask(h, wc.LandThreshold), n), wc.MinIslandCells)
	if len(regs) < wc.MinIslands {
		return nil, reject("%d islands, need %d", len(regs), wc.MinIslands)
	}
	total := float64(n * n)
	largest := float64(len(regs[0]))
	if largest < total*wc.MinLargestShare {
		return nil, reject("largest island %.0f cells below %.3f share", largest, wc.MinLargestShare)
	}
	if largest > total*wc.MaxLargestShare {
		return nil, reject("largest island %.0f cells above %.3f share", largest, wc.MaxLargestShare)
	}

	mask, islandOf := sinkSea(h, regs, wc.SeaLevel)
	w := &World{
		N:           n,
		Size:        wc.Size,
		SeaLevel:    wc.SeaLevel,
		HeightScale: wc.HeightScale,
		H:           h,
		Mask:        mask,
		IslandOf:    islandOf,
		Islands:     make([]Island, len(regs)),
	}

	names := newNamer(r)
	for i, cells := range regs {
		w.Islands[i] = Island{
			ID:     fmt.Sprintf("isle-%d", i),
			Index:  i,
			Name:   names.next(i),
			Cells:  cells,
			Center: regionCenter(cells, n, wc.Size),
		}
	}

	pc := cfg.Placement
	w.BaseIsland = chooseBaseIsland(w.Islands, pc.BaseCandidates, pc.BaseMinCells)

	p := newPlacer(w, r, pc)
	steps := []func() error{
		p.placeBase,
		p.placeBuildings,
		p.placeHelipads,
		p.placeCrates,
		p.placeRefugees,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	p.placeTrees()
	p.placeOccluders()
	deriveObstacles(w)

	w.CyclonePath = CyclonePath{
		CenterX: r.Range(-70, 70),
		CenterZ: r.Range(-70, 70),
		RadX:    r.Range(95, 155),
		RadZ:    r.Range(80, 140),
		Phase:   r.Range(0, 2*math.Pi),
	}
	return w, nil
}
