package sim

import (
	"testing"

	"github.com/vovakirdan/zxrescue/internal/config"
)

func TestRunningDryCrashes(t *testing.T) {
	f := NewFuelSystem(config.DefaultConfig().Fuel)
	s := &State{Fuel: 0.01, TimeLeft: 100, Heli: Heli{Alt: 5}}

	f.Update(s, testDt)
	if s.Fuel != 0 {
		t.Errorf("Fuel = %v, expected 0", s.Fuel)
	}
	if s.CrashReason != ReasonOutOfFuel {
		t.Errorf("CrashReason = %q, expected %q", s.CrashReason, ReasonOutOfFuel)
	}
}

func TestFuelDrainsOnlyAirborne(t *testing.T) {
	f := NewFuelSystem(config.DefaultConfig().Fuel)
	s := &State{Fuel: 100, TimeLeft: 360, Heli: Heli{Alt: 5}}

	prev := s.Fuel
	levels := []int{0, 1, 3, -2, 0}
	for i := 0; i < 300; i++ {
		s.Heli.SpeedLevel = levels[i%len(levels)]
		s.Heli.Alt = float64(i % 20)
		f.Update(s, testDt)
		if s.Fuel >= prev {
			t.Fatalf("tick %d: fuel %v did not drop from %v", i, s.Fuel, prev)
		}
		prev = s.Fuel
	}

	s.Heli.Landed = true
	for i := 0; i < 300; i++ {
		f.Update(s, testDt)
	}
	if s.Fuel != prev {
		t.Errorf("landed heli burned fuel: %v -> %v", prev, s.Fuel)
	}
}

func TestDrainRate(t *testing.T) {
	cfg := config.DefaultConfig().Fuel
	f := NewFuelSystem(cfg)

	tests := []struct {
		name     string
		heli     Heli
		expected float64
	}{
		{"hover low", Heli{Alt: 2}, cfg.BaseDrain},
		{"reverse", Heli{Alt: 2, SpeedLevel: -2}, cfg.BaseDrain + 2*cfg.SpeedDrain},
		{"high and fast", Heli{Alt: cfg.HighAlt + 1, SpeedLevel: 3}, cfg.BaseDrain + 3*cfg.SpeedDrain + cfg.HighAltDrain},
	}

	for _, tt := range tests {
		if got := f.DrainRate(&tt.heli); got != tt.expected {
			t.Errorf("%s: DrainRate = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestClockEndsGame(t *testing.T) {
	f := NewFuelSystem(config.DefaultConfig().Fuel)
	s := &State{Fuel: 50, TimeLeft: 0.01, Heli: Heli{Landed: true}}

	f.Update(s, testDt)
	if !s.GameOver || s.TimeLeft != 0 {
		t.Errorf("GameOver %v, TimeLeft %v", s.GameOver, s.TimeLeft)
	}
	if s.CrashReason != "" {
		t.Errorf("time up recorded a crash: %q", s.CrashReason)
	}
}
