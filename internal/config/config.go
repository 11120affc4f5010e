// Package config provides YAML-based game configuration loading and
// difficulty management for the rescue game.
package config

// Config contains every tunable constant of world generation and simulation.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Placement  PlacementConfig  `yaml:"placement"`
	Flight     FlightConfig     `yaml:"flight"`
	Cyclone    CycloneConfig    `yaml:"cyclone"`
	Planes     PlanesConfig     `yaml:"planes"`
	Rope       RopeConfig       `yaml:"rope"`
	Fuel       FuelConfig       `yaml:"fuel"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines terrain synthesis and acceptance parameters.
type WorldConfig struct {
	Size            float64 `yaml:"size"`              // World extent in world units
	Resolution      int     `yaml:"resolution"`        // Height grid is Resolution x Resolution
	IslandTarget    int     `yaml:"island_target"`     // Main blobs aimed for per attempt
	IslandJitter    int     `yaml:"island_jitter"`     // +/- randomization of IslandTarget
	BlobAttempts    int     `yaml:"blob_attempts"`     // Rejection sampling budget for blob centers
	MinIslands      int     `yaml:"min_islands"`       // Acceptance: minimum surviving islands
	MinIslandCells  int     `yaml:"min_island_cells"`  // Regions below this are sunk
	MinLargestShare float64 `yaml:"min_largest_share"` // Acceptance: largest island share lower bound
	MaxLargestShare float64 `yaml:"max_largest_share"` // Acceptance: largest island share upper bound
	SeaLevel        float64 `yaml:"sea_level"`
	LandThreshold   float64 `yaml:"land_threshold"`
	HeightScale     float64 `yaml:"height_scale"` // Raw height above sea level to world Y
	NoiseScale      float64 `yaml:"noise_scale"`  // Simplex frequency in cells
	NoiseAmplitude  float64 `yaml:"noise_amplitude"`
	MaxAttempts     int     `yaml:"max_attempts"`
}

// PlacementConfig defines entity counts and spatial constraints.
type PlacementConfig struct {
	CrateCount          int     `yaml:"crate_count"`
	RefugeeMin          int     `yaml:"refugee_min"`
	RefugeeMax          int     `yaml:"refugee_max"`
	HelipadMin          int     `yaml:"helipad_min"`
	HelipadMax          int     `yaml:"helipad_max"`
	PadRadius           float64 `yaml:"pad_radius"`
	BaseCandidates      int     `yaml:"base_candidates"`  // Top islands considered for the base
	BaseMinCells        int     `yaml:"base_min_cells"`   // Base island minimum size
	CrateCandidates     int     `yaml:"crate_candidates"` // Top non-base islands eligible for crates
	FlatRadius          float64 `yaml:"flat_radius"`      // Neighborhood radius for the flatness test
	FlatDelta           float64 `yaml:"flat_delta"`       // Strict height delta
	FlatDeltaLoose      float64 `yaml:"flat_delta_loose"` // Fallback height delta
	PlacementTries      int     `yaml:"placement_tries"`  // Samples per entity before loosening
	PadSeparation       float64 `yaml:"pad_separation"`   // Crate/refugee to helipad minimum
	PadSpacing          float64 `yaml:"pad_spacing"`      // Helipad to helipad minimum
	ItemSpacing         float64 `yaml:"item_spacing"`     // Crate/refugee/building mutual minimum
	CellsPerBuilding    int     `yaml:"cells_per_building"`
	MaxBuildingsPerIsle int     `yaml:"max_buildings_per_island"`
	BaseMinBuildings    int     `yaml:"base_min_buildings"`
	TreesPerIsland      int     `yaml:"trees_per_island"`
	TreeIslands         int     `yaml:"tree_islands"`
	OccluderCount       int     `yaml:"occluder_count"`
	OccluderIslands     int     `yaml:"occluder_islands"`
}

// FlightConfig defines helicopter control and contact parameters.
type FlightConfig struct {
	MinAlt             float64 `yaml:"min_alt"`
	MaxAlt             float64 `yaml:"max_alt"`
	LandingAlt         float64 `yaml:"landing_alt"` // Land assist clearance
	TurnDegPerSec      float64 `yaml:"turn_deg_per_sec"`
	SpeedStep          float64 `yaml:"speed_step"`
	MaxSpeedLevel      int     `yaml:"max_speed_level"`
	ClimbRate          float64 `yaml:"climb_rate"`
	GroundClearance    float64 `yaml:"ground_clearance"`
	ContactTolerance   float64 `yaml:"contact_tolerance"`
	SafeLandingVSpeed  float64 `yaml:"safe_landing_vspeed"`
	SafeLandingHSpeed  float64 `yaml:"safe_landing_hspeed"`
	HardLandingMinDrop float64 `yaml:"hard_landing_min_drop"`
	DescentPause       float64 `yaml:"descent_pause"` // Braking grace before fall distance resets
	PadMargin          float64 `yaml:"pad_margin"`
	PadDeckHeight      float64 `yaml:"pad_deck_height"`
	HeliRadius         float64 `yaml:"heli_radius"`
	SeaImpactAlt       float64 `yaml:"sea_impact_alt"`
}

// CycloneConfig defines the roaming hazard.
type CycloneConfig struct {
	FarRadius      float64 `yaml:"far_radius"`
	MidRadius      float64 `yaml:"mid_radius"`
	NearRadius     float64 `yaml:"near_radius"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SeekAccel      float64 `yaml:"seek_accel"`
	SwirlAccel     float64 `yaml:"swirl_accel"`
	Damping        float64 `yaml:"damping"`
	RetargetMin    float64 `yaml:"retarget_min"`
	RetargetMax    float64 `yaml:"retarget_max"`
	ArriveDistance float64 `yaml:"arrive_distance"`
	BoundSlack     float64 `yaml:"bound_slack"` // Fraction outside the ellipse before restoring
	BoundAccel     float64 `yaml:"bound_accel"`
	TargetSamples  int     `yaml:"target_samples"`
	MidJitter      float64 `yaml:"mid_jitter"`
	NearJitter     float64 `yaml:"near_jitter"`
	YawJitter      float64 `yaml:"yaw_jitter"`
	DescentRate    float64 `yaml:"descent_rate"`
	SpeedKickForce float64 `yaml:"speed_kick_force"`
	SpeedKickRate  float64 `yaml:"speed_kick_rate"`
}

// PlanesConfig defines the crossing aircraft.
type PlanesConfig struct {
	FirstSpawn    float64 `yaml:"first_spawn"`
	SpawnMin      float64 `yaml:"spawn_min"`
	SpawnMax      float64 `yaml:"spawn_max"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	Radius        float64 `yaml:"radius"`
	HeliRadius    float64 `yaml:"heli_radius"`
	CeilingAlt    float64 `yaml:"ceiling_alt"`
	EdgeFactor    float64 `yaml:"edge_factor"`
	LateralFactor float64 `yaml:"lateral_factor"`
}

// RopeConfig defines the winch.
type RopeConfig struct {
	MaxLength       float64 `yaml:"max_length"`
	AcquireRadius   float64 `yaml:"acquire_radius"`
	DropSpeed       float64 `yaml:"drop_speed"`
	HaulSpeed       float64 `yaml:"haul_speed"`
	RetractSpeed    float64 `yaml:"retract_speed"`
	AttachRadius    float64 `yaml:"attach_radius"`
	AnchorForward   float64 `yaml:"anchor_forward"`
	AnchorDrop      float64 `yaml:"anchor_drop"`
	CrateScore      int     `yaml:"crate_score"`
	RefugeeScore    int     `yaml:"refugee_score"`
	CrateCooldown   float64 `yaml:"crate_cooldown"`
	RefugeeCooldown float64 `yaml:"refugee_cooldown"`
}

// FuelConfig defines resource drain and refuel.
type FuelConfig struct {
	Max           float64 `yaml:"max"`
	BaseDrain     float64 `yaml:"base_drain"`
	SpeedDrain    float64 `yaml:"speed_drain"` // Per absolute speed level
	HighAlt       float64 `yaml:"high_alt"`
	HighAltDrain  float64 `yaml:"high_alt_drain"`
	RefuelPerSec  float64 `yaml:"refuel_per_sec"`
	RefuelRadius  float64 `yaml:"refuel_radius"`
	PadHitRadius  float64 `yaml:"pad_hit_radius"`
	TimeLimitSec  float64 `yaml:"time_limit_sec"`
	StartupStep   float64 `yaml:"startup_step"`
	StartupPeriod float64 `yaml:"startup_period"`
}

// SessionConfig defines round orchestration.
type SessionConfig struct {
	FixedDt          float64 `yaml:"fixed_dt"`
	MaxFrameDt       float64 `yaml:"max_frame_dt"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
	Lives            int     `yaml:"lives"`
	CrashDelay       float64 `yaml:"crash_delay"`
	RoundDelay       float64 `yaml:"round_delay"`
	CrateDropDelay   float64 `yaml:"crate_drop_delay"`
	CrateDropPeriod  float64 `yaml:"crate_drop_period"`
	CycloneRadar     float64 `yaml:"cyclone_radar"`
	PlaneRadar       float64 `yaml:"plane_radar"`
	WindAlert        float64 `yaml:"wind_alert"`
	AircraftAlert    float64 `yaml:"aircraft_alert"`
	CameraTiltMin    float64 `yaml:"camera_tilt_min"`
	CameraTiltMax    float64 `yaml:"camera_tilt_max"`
	CameraTilt       float64 `yaml:"camera_tilt"`
	HighScoreKey     string  `yaml:"high_score_key"`
	DefaultSeed      string  `yaml:"default_seed"`
}

// DifficultyConfig defines per-round hazard scaling.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of per-round changes.
type ScalingConfig struct {
	CycloneSpeedPerRound float64 `yaml:"cyclone_speed_per_round"`
	SeekAccelPerRound    float64 `yaml:"seek_accel_per_round"`
	EllipseGrowX         float64 `yaml:"ellipse_grow_x"`
	EllipseGrowZ         float64 `yaml:"ellipse_grow_z"`
	PlaneSpawnPerRound   float64 `yaml:"plane_spawn_per_round"` // Spawn interval divided by 1 + round*k
	LevelBoost           float64 `yaml:"level_boost"`           // Extra hazard multiplier at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables round scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value to a preset, reporting whether it is known.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}
