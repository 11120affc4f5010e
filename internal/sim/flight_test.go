package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
)

func TestSpeedLevelPerPress(t *testing.T) {
	cfg := config.DefaultConfig().Flight

	tests := []struct {
		presses  int
		expected int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{7, 3}, // Clamped to the top level
	}

	for _, tt := range tests {
		f := NewFlightSystem(cfg)
		s := &State{Heli: Heli{Alt: 10}}
		for i := 0; i < tt.presses; i++ {
			f.Update(s, frame(core.ActionSpeedUp), testDt)
			f.Update(s, frame(), testDt)
		}
		if s.Heli.SpeedLevel != tt.expected {
			t.Errorf("%d presses: SpeedLevel = %d, expected %d", tt.presses, s.Heli.SpeedLevel, tt.expected)
		}
	}
}

func TestSpeedLevelHeldCountsOnce(t *testing.T) {
	f := NewFlightSystem(config.DefaultConfig().Flight)
	s := &State{Heli: Heli{Alt: 10}}

	for i := 0; i < 120; i++ {
		f.Update(s, frame(core.ActionSpeedDown), testDt)
	}
	if s.Heli.SpeedLevel != -1 {
		t.Errorf("holding SpeedDown for 120 ticks gave level %d, expected -1", s.Heli.SpeedLevel)
	}

	f.Update(s, frame(), testDt)
	f.Update(s, frame(core.ActionSpeedDown), testDt)
	if s.Heli.SpeedLevel != -2 {
		t.Errorf("re-press gave level %d, expected -2", s.Heli.SpeedLevel)
	}
}

func TestFlightMovesAlongHeading(t *testing.T) {
	cfg := config.DefaultConfig().Flight
	f := NewFlightSystem(cfg)
	s := &State{Heli: Heli{Alt: 10, SpeedLevel: 2}}

	f.Update(s, frame(), 1)
	// Heading 0 faces -Z.
	if math.Abs(s.Heli.X) > 1e-9 || math.Abs(s.Heli.Z+2*cfg.SpeedStep) > 1e-9 {
		t.Errorf("moved to (%v, %v), expected (0, %v)", s.Heli.X, s.Heli.Z, -2*cfg.SpeedStep)
	}
	if s.Heli.Speed != 2*cfg.SpeedStep {
		t.Errorf("Speed = %v, expected %v", s.Heli.Speed, 2*cfg.SpeedStep)
	}
}

func TestTurnIndependentOfSpeed(t *testing.T) {
	cfg := config.DefaultConfig().Flight
	for _, level := range []int{0, 3, -2} {
		f := NewFlightSystem(cfg)
		s := &State{Heli: Heli{Alt: 10, SpeedLevel: level}}
		f.Update(s, frame(core.ActionTurnRight), 0.5)
		want := cfg.TurnDegPerSec * math.Pi / 180 * 0.5
		if math.Abs(s.Heli.Heading-want) > 1e-9 {
			t.Errorf("level %d: heading %v, expected %v", level, s.Heli.Heading, want)
		}
	}
}

func TestAltitudeClamped(t *testing.T) {
	cfg := config.DefaultConfig().Flight
	f := NewFlightSystem(cfg)
	s := &State{Heli: Heli{Alt: cfg.MaxAlt - 0.05}}

	f.Update(s, frame(core.ActionClimb), testDt)
	if s.Heli.Alt != cfg.MaxAlt {
		t.Errorf("Alt = %v, expected clamp at %v", s.Heli.Alt, cfg.MaxAlt)
	}
}

func TestTakeOffWithClimb(t *testing.T) {
	cfg := config.DefaultConfig().Flight
	f := NewFlightSystem(cfg)
	s := &State{Heli: Heli{Alt: 5, Landed: true, OnLand: true}}

	f.Update(s, frame(core.ActionSpeedUp), testDt)
	if !s.Heli.Landed || s.Heli.SpeedLevel != 0 {
		t.Fatal("landed heli must ignore speed input")
	}

	f.Update(s, frame(core.ActionClimb, core.ActionSpeedUp), testDt)
	if s.Heli.Landed {
		t.Fatal("Climb did not take off")
	}
	if s.Heli.Alt <= 5 {
		t.Errorf("Alt = %v after take-off, expected climb", s.Heli.Alt)
	}
	if s.Heli.SpeedLevel != 0 {
		t.Errorf("SpeedUp held since touchdown stepped the level to %d", s.Heli.SpeedLevel)
	}
	if s.Heli.VerticalSpeed <= 0 {
		t.Errorf("VerticalSpeed = %v, expected positive", s.Heli.VerticalSpeed)
	}
}

func TestLandAssist(t *testing.T) {
	cfg := config.DefaultConfig().Flight
	tests := []struct {
		name      string
		clearance float64
		onLand    bool
		expected  bool
	}{
		{"low over land", 2, true, true},
		{"too high", cfg.LandingAlt + 1, true, false},
		{"over sea", 1, false, false},
	}

	for _, tt := range tests {
		f := NewFlightSystem(cfg)
		s := &State{Heli: Heli{Alt: 4 + tt.clearance, SurfaceY: 4, OnLand: tt.onLand, SpeedLevel: 2}}
		f.Update(s, frame(core.ActionLand), testDt)
		if s.Heli.Landed != tt.expected {
			t.Errorf("%s: Landed = %v, expected %v", tt.name, s.Heli.Landed, tt.expected)
		}
		if tt.expected && s.Heli.SpeedLevel != 0 {
			t.Errorf("%s: SpeedLevel = %d after landing", tt.name, s.Heli.SpeedLevel)
		}
	}
}

func TestFallDistanceTracking(t *testing.T) {
	cfg := config.DefaultConfig().Flight
	f := NewFlightSystem(cfg)
	s := &State{Heli: Heli{Alt: 20}}

	for i := 0; i < 30; i++ {
		f.Update(s, frame(core.ActionDescend), testDt)
	}
	want := cfg.ClimbRate * 30 * testDt
	if math.Abs(s.Heli.FallDistance-want) > 1e-6 {
		t.Fatalf("FallDistance = %v, expected %v", s.Heli.FallDistance, want)
	}

	// A brief pause bleeds the fall off without clearing it.
	f.Update(s, frame(), testDt)
	if s.Heli.FallDistance <= 0 || s.Heli.FallDistance >= want {
		t.Errorf("FallDistance = %v after a short pause, expected in (0, %v)", s.Heli.FallDistance, want)
	}

	for i := 0; i < 30; i++ {
		f.Update(s, frame(), testDt)
	}
	if s.Heli.FallDistance != 0 {
		t.Errorf("FallDistance = %v after a long pause, expected 0", s.Heli.FallDistance)
	}
}
