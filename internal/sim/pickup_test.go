package sim

import (
	"testing"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/world"
)

func newTestPickup() *PickupSystem {
	cfg := config.DefaultConfig()
	return NewPickupSystem(cfg.Rope, cfg.Fuel, cfg.Placement.CrateCount)
}

// hoverOverCrate puts the rope anchor straight above the crate with the
// heli heading north (-Z).
func hoverOverCrate(w *world.World, c *world.Crate, height float64) *State {
	rope := config.DefaultConfig().Rope
	return &State{
		World: w,
		Fuel:  100,
		Heli:  Heli{X: c.X, Z: c.Z + rope.AnchorForward, Alt: c.GroundY + height},
	}
}

func TestRopeCycleCloses(t *testing.T) {
	w := testWorld(t)
	crate := &w.Crates[0]
	s := hoverOverCrate(w, crate, 5)
	p := newTestPickup()

	seen := map[RopePhase]bool{}
	ticks := 0
	for ; ticks < 600; ticks++ {
		p.Update(s, testDt)
		seen[s.Rope.Phase] = true
		if seen[RopeRetracting] && s.Rope.Phase == RopeIdle {
			break
		}
	}

	if ticks == 600 {
		t.Fatalf("rope did not return to idle, stuck in %s", s.Rope.Phase)
	}
	for _, ph := range []RopePhase{RopeDropping, RopeAttached, RopeRetracting} {
		if !seen[ph] {
			t.Errorf("rope never entered %s", ph)
		}
	}
	if s.Rope.Active() || s.Rope.Length != 0 {
		t.Errorf("closed rope: active %v, length %v", s.Rope.Active(), s.Rope.Length)
	}
	if !crate.Collected || s.CratesCollected != 1 {
		t.Errorf("crate collected %v, count %d", crate.Collected, s.CratesCollected)
	}
	if s.Score != config.DefaultConfig().Rope.CrateScore {
		t.Errorf("Score = %d, expected %d", s.Score, config.DefaultConfig().Rope.CrateScore)
	}
	if s.PickupTimer <= 0 {
		t.Error("cooldown not armed after delivery")
	}
}

func TestRopeRetractsWhenTargetTakenElsewhere(t *testing.T) {
	w := testWorld(t)
	crate := &w.Crates[0]
	s := hoverOverCrate(w, crate, 6)
	p := newTestPickup()

	p.Update(s, testDt)
	if s.Rope.Phase != RopeDropping {
		t.Fatalf("rope phase %s, expected dropping", s.Rope.Phase)
	}

	crate.Collected = true
	p.Update(s, testDt)
	if s.Rope.Phase == RopeDropping || s.Rope.Phase == RopeAttached {
		t.Errorf("rope phase %s after its target vanished, expected retracting", s.Rope.Phase)
	}
	if s.Rope.Target != nil {
		t.Error("retracting rope kept its target")
	}
	if s.CratesCollected != 0 {
		t.Errorf("CratesCollected = %d, external collection must not be credited", s.CratesCollected)
	}
}

func TestRopeRetractsOnLanding(t *testing.T) {
	w := testWorld(t)
	crate := &w.Crates[0]
	s := hoverOverCrate(w, crate, 6)
	p := newTestPickup()

	for i := 0; i < 5; i++ {
		p.Update(s, testDt)
	}
	if s.Rope.Phase != RopeDropping {
		t.Fatalf("rope phase %s, expected dropping", s.Rope.Phase)
	}

	s.Heli.Landed = true
	p.Update(s, testDt)
	if s.Rope.Phase != RopeRetracting && s.Rope.Phase != RopeIdle {
		t.Errorf("rope phase %s after landing", s.Rope.Phase)
	}

	for i := 0; i < 120; i++ {
		p.Update(s, testDt)
	}
	if s.Rope.Active() {
		t.Errorf("landed heli acquired a new target: %s", s.Rope.Phase)
	}
}

func TestNoTargetOutOfReach(t *testing.T) {
	w := testWorld(t)
	crate := &w.Crates[0]
	s := hoverOverCrate(w, crate, 20)
	p := newTestPickup()

	p.Update(s, testDt)
	if s.Rope.Active() {
		t.Errorf("rope dropped toward a crate 20 units below")
	}
}

func TestCooldownBlocksAcquire(t *testing.T) {
	w := testWorld(t)
	crate := &w.Crates[0]
	s := hoverOverCrate(w, crate, 5)
	s.PickupTimer = 1
	p := newTestPickup()

	p.Update(s, testDt)
	if s.Rope.Active() {
		t.Error("rope dropped during the cooldown")
	}
}

func TestRefuelOnPad(t *testing.T) {
	cfg := config.DefaultConfig()
	w := testWorld(t)

	var pad *world.Helipad
	for i := range w.Helipads {
		if !w.Helipads[i].IsBase() {
			pad = &w.Helipads[i]
			break
		}
	}
	if pad == nil {
		t.Fatal("world has no outer helipad")
	}

	s := &State{World: w, Fuel: 50, Heli: Heli{X: pad.X, Z: pad.Z, Landed: true, OnLand: true}}
	p := newTestPickup()
	p.Update(s, 1)

	if s.Fuel != 50+cfg.Fuel.RefuelPerSec {
		t.Errorf("Fuel = %v, expected %v", s.Fuel, 50+cfg.Fuel.RefuelPerSec)
	}
	if !s.Refueling {
		t.Error("Refueling not set")
	}
	if s.WinRound {
		t.Error("outer pad completed the round")
	}

	s.Fuel = cfg.Fuel.Max - 1
	p.Update(s, 1)
	if s.Fuel != cfg.Fuel.Max {
		t.Errorf("Fuel = %v, expected capped at %v", s.Fuel, cfg.Fuel.Max)
	}
}

func TestBaseLandingWinsWithAllCrates(t *testing.T) {
	cfg := config.DefaultConfig()
	w := testWorld(t)
	base := w.BaseHelipad()

	tests := []struct {
		crates   int
		expected bool
	}{
		{cfg.Placement.CrateCount - 1, false},
		{cfg.Placement.CrateCount, true},
	}

	for _, tt := range tests {
		s := &State{World: w, Fuel: 100, CratesCollected: tt.crates,
			Heli: Heli{X: base.X, Z: base.Z, Landed: true, OnLand: true}}
		newTestPickup().Update(s, testDt)
		if s.WinRound != tt.expected {
			t.Errorf("%d crates: WinRound = %v, expected %v", tt.crates, s.WinRound, tt.expected)
		}
	}
}
