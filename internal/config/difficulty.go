package config

// DifficultyManager derives per-round hazard parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetEnabled enables or disables round scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// Level returns the hazard multiplier for the preset level, 1.0 at level 0.
func (d *DifficultyManager) Level() float64 {
	return 1.0 + d.initialLevel*d.cfg.Scaling.LevelBoost
}

// effectiveRound is the round number scaling is computed from.
// With scaling disabled every round plays like the first.
func (d *DifficultyManager) effectiveRound(round int) float64 {
	if !d.cfg.Enabled || round < 1 {
		return 1
	}
	return float64(round)
}

// RoundScaling holds the hazard parameters for one round.
type RoundScaling struct {
	CycloneSpeed  float64 // Hard speed ceiling of the cyclone
	SeekAccel     float64 // Target-seek acceleration
	EllipseX      float64 // Extra X radius of the roaming ellipse
	EllipseZ      float64 // Extra Z radius of the roaming ellipse
	PlaneInterval float64 // Divisor applied to plane spawn intervals
}

// ForRound computes the hazard parameters for a round.
func (d *DifficultyManager) ForRound(c CycloneConfig, round int) RoundScaling {
	r := d.effectiveRound(round)
	s := d.cfg.Scaling
	level := d.Level()
	return RoundScaling{
		CycloneSpeed:  (c.BaseSpeed + r*s.CycloneSpeedPerRound) * level,
		SeekAccel:     c.SeekAccel * (1 + r*s.SeekAccelPerRound) * level,
		EllipseX:      r * s.EllipseGrowX,
		EllipseZ:      r * s.EllipseGrowZ,
		PlaneInterval: (1 + r*s.PlaneSpawnPerRound) * level,
	}
}
