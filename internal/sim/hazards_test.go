package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/rng"
)

func roundOneScaling() config.RoundScaling {
	cfg := config.DefaultConfig()
	return config.NewDifficultyManager(cfg.Difficulty).ForRound(cfg.Cyclone, 1)
}

func newTestCyclone(seed string) *CycloneSystem {
	cfg := config.DefaultConfig()
	return NewCycloneSystem(cfg.Cyclone, cfg.Flight, roundOneScaling(), rng.New(seed).Fork("cyclone-r1"))
}

func TestCycloneSpawnOnEllipse(t *testing.T) {
	w := testWorld(t)
	c := newTestCyclone("ZXRESCUE")
	s := &State{World: w}
	c.Spawn(s)

	cx, cz, rx, rz := c.ellipse(s)
	e := math.Hypot((s.Cyclone.X-cx)/rx, (s.Cyclone.Z-cz)/rz)
	if math.Abs(e-1) > 1e-9 {
		t.Errorf("spawn at ellipse radius %v, expected 1", e)
	}
	if s.Cyclone.RetargetIn <= 0 {
		t.Error("no retarget interval after spawn")
	}
}

func TestCycloneStaysBounded(t *testing.T) {
	w := testWorld(t)
	c := newTestCyclone("ZXRESCUE")
	s := &State{World: w, Heli: Heli{Landed: true}}
	c.Spawn(s)
	cx, cz, rx, rz := c.ellipse(s)
	limit := roundOneScaling().CycloneSpeed

	for i := 0; i < 60*120; i++ {
		c.Update(s, testDt)
		if sp := math.Hypot(s.Cyclone.VX, s.Cyclone.VZ); sp > limit+1e-9 {
			t.Fatalf("tick %d: speed %v above cap %v", i, sp, limit)
		}
	}
	if e := math.Hypot((s.Cyclone.X-cx)/rx, (s.Cyclone.Z-cz)/rz); e > 1.5 {
		t.Errorf("cyclone wandered to ellipse radius %v", e)
	}
}

func TestCycloneDeterministic(t *testing.T) {
	w := testWorld(t)
	a, b := newTestCyclone("ZXRESCUE"), newTestCyclone("ZXRESCUE")
	sa := &State{World: w, Heli: Heli{Alt: 10}}
	sb := &State{World: w, Heli: Heli{Alt: 10}}
	a.Spawn(sa)
	b.Spawn(sb)

	for i := 0; i < 600; i++ {
		a.Update(sa, testDt)
		b.Update(sb, testDt)
	}
	if sa.Cyclone != sb.Cyclone || sa.Heli != sb.Heli {
		t.Errorf("Determinism failed: %+v vs %+v", sa.Cyclone, sb.Cyclone)
	}
}

func TestWindForce(t *testing.T) {
	cfg := config.DefaultConfig().Cyclone
	w := testWorld(t)

	tests := []struct {
		dist     float64
		expected float64
	}{
		{0, 1},
		{cfg.FarRadius / 2, 0.5},
		{cfg.FarRadius, 0},
		{cfg.FarRadius * 3, 0},
	}

	for _, tt := range tests {
		c := newTestCyclone("ZXRESCUE")
		s := &State{World: w, Heli: Heli{X: tt.dist, Landed: true}}
		c.affect(s, testDt)
		if math.Abs(s.WindForce-tt.expected) > 1e-9 {
			t.Errorf("distance %v: WindForce = %v, expected %v", tt.dist, s.WindForce, tt.expected)
		}
	}
}

func TestCycloneSparesLandedHeli(t *testing.T) {
	w := testWorld(t)
	c := newTestCyclone("ZXRESCUE")
	s := &State{World: w, Heli: Heli{X: 1, Z: 1, Alt: 4, Landed: true}}
	before := s.Heli

	c.affect(s, testDt)
	if s.Heli != before {
		t.Errorf("landed heli moved: %+v -> %+v", before, s.Heli)
	}
}

func TestCyclonePullsHeliDown(t *testing.T) {
	w := testWorld(t)
	c := newTestCyclone("ZXRESCUE")
	s := &State{World: w, Heli: Heli{X: 1, Z: 1, Alt: 15}}

	c.affect(s, testDt)
	if s.Heli.Alt >= 15 {
		t.Errorf("Alt = %v inside the eye, expected descent", s.Heli.Alt)
	}
	if s.CrashReason != "" {
		t.Errorf("cyclone recorded a crash: %q", s.CrashReason)
	}
}

func newTestPlanes(seed string) *PlaneSystem {
	cfg := config.DefaultConfig()
	return NewPlaneSystem(cfg.Planes, roundOneScaling(), rng.New(seed).Fork("planes-r1"))
}

func TestPlaneSpawnAndCull(t *testing.T) {
	cfg := config.DefaultConfig().Planes
	w := testWorld(t)
	p := newTestPlanes("ZXRESCUE")
	s := &State{World: w, Heli: Heli{Alt: 20}}

	p.Update(s, testDt)
	if len(s.Planes) != 1 {
		t.Fatalf("%d planes after spawn, expected 1", len(s.Planes))
	}
	pl := s.Planes[0]
	edge := w.Size * cfg.EdgeFactor
	speed := math.Hypot(pl.VX, pl.VZ)
	if speed < cfg.SpeedMin || speed > cfg.SpeedMax {
		t.Errorf("plane speed %v outside [%v, %v]", speed, cfg.SpeedMin, cfg.SpeedMax)
	}
	if pl.VX != 0 && pl.VZ != 0 {
		t.Errorf("plane flies diagonally: (%v, %v)", pl.VX, pl.VZ)
	}
	start := math.Max(math.Abs(pl.X), math.Abs(pl.Z))
	if math.Abs(start-edge) > speed*testDt+1e-9 {
		t.Errorf("plane spawned %v from center, expected the edge at %v", start, edge)
	}
	if s.PlaneTimer < cfg.SpawnMin/roundOneScaling().PlaneInterval {
		t.Errorf("PlaneTimer = %v, below the minimum interval", s.PlaneTimer)
	}

	s.PlaneTimer = math.Inf(1)
	for i := 0; i < 60*30 && len(s.Planes) > 0; i++ {
		p.Update(s, testDt)
	}
	if len(s.Planes) != 0 {
		t.Errorf("plane never left the world: %+v", s.Planes[0])
	}
}

func TestPlaneCollision(t *testing.T) {
	cfg := config.DefaultConfig().Planes
	w := testWorld(t)

	tests := []struct {
		name     string
		heli     Heli
		expected string
	}{
		{"low", Heli{Alt: 5}, ReasonPlane},
		{"above ceiling", Heli{Alt: cfg.CeilingAlt + 1}, ""},
		{"landed", Heli{Alt: 5, Landed: true}, ""},
	}

	for _, tt := range tests {
		s := &State{World: w, Heli: tt.heli, PlaneTimer: math.Inf(1)}
		s.Planes = []Plane{{X: 0.5, Z: 0, VX: 30, R: cfg.Radius}}
		newTestPlanes("ZXRESCUE").Update(s, testDt)
		if s.CrashReason != tt.expected {
			t.Errorf("%s: CrashReason = %q, expected %q", tt.name, s.CrashReason, tt.expected)
		}
	}
}

func TestPlanesDeterministic(t *testing.T) {
	w := testWorld(t)
	a, b := newTestPlanes("SEED-A"), newTestPlanes("SEED-A")
	sa := &State{World: w, Heli: Heli{Alt: 20}}
	sb := &State{World: w, Heli: Heli{Alt: 20}}

	for i := 0; i < 60*60; i++ {
		a.Update(sa, testDt)
		b.Update(sb, testDt)
	}
	if len(sa.Planes) != len(sb.Planes) {
		t.Fatalf("Determinism failed: %d vs %d planes", len(sa.Planes), len(sb.Planes))
	}
	for i := range sa.Planes {
		if sa.Planes[i] != sb.Planes[i] {
			t.Errorf("Determinism failed: plane %d %+v vs %+v", i, sa.Planes[i], sb.Planes[i])
		}
	}
}
