package config

import (
	_ "embed"
)

//go:embed defaults/zxrescue.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration.
// It mirrors defaults/zxrescue.yaml and is the base every loaded file overrides.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Size:            420,
			Resolution:      180,
			IslandTarget:    36,
			IslandJitter:    3,
			BlobAttempts:    1800,
			MinIslands:      16,
			MinIslandCells:  24,
			MinLargestShare: 0.025,
			MaxLargestShare: 0.16,
			SeaLevel:        0.17,
			LandThreshold:   0.18,
			HeightScale:     10,
			NoiseScale:      0.06,
			NoiseAmplitude:  0.05,
			MaxAttempts:     14,
		},
		Placement: PlacementConfig{
			CrateCount:          5,
			RefugeeMin:          8,
			RefugeeMax:          20,
			HelipadMin:          4,
			HelipadMax:          8,
			PadRadius:           2.2,
			BaseCandidates:      12,
			BaseMinCells:        50,
			CrateCandidates:     20,
			FlatRadius:          2.5,
			FlatDelta:           0.35,
			FlatDeltaLoose:      1.2,
			PlacementTries:      40,
			PadSeparation:       8,
			PadSpacing:          14,
			ItemSpacing:         4,
			CellsPerBuilding:    120,
			MaxBuildingsPerIsle: 6,
			BaseMinBuildings:    2,
			TreesPerIsland:      4,
			TreeIslands:         24,
			OccluderCount:       105,
			OccluderIslands:     16,
		},
		Flight: FlightConfig{
			MinAlt:             0,
			MaxAlt:             26,
			LandingAlt:         3,
			TurnDegPerSec:      110,
			SpeedStep:          6,
			MaxSpeedLevel:      3,
			ClimbRate:          12,
			GroundClearance:    0.9,
			ContactTolerance:   0.05,
			SafeLandingVSpeed:  6,
			SafeLandingHSpeed:  7,
			HardLandingMinDrop: 2.5,
			DescentPause:       0.3,
			PadMargin:          0.7,
			PadDeckHeight:      0.26,
			HeliRadius:         1.1,
			SeaImpactAlt:       0.02,
		},
		Cyclone: CycloneConfig{
			FarRadius:      65,
			MidRadius:      38,
			NearRadius:     18,
			BaseSpeed:      5.5,
			SeekAccel:      2.2,
			SwirlAccel:     1.2,
			Damping:        0.35,
			RetargetMin:    6,
			RetargetMax:    14,
			ArriveDistance: 12,
			BoundSlack:     0.12,
			BoundAccel:     3,
			TargetSamples:  4,
			MidJitter:      1.8,
			NearJitter:     2.1,
			YawJitter:      0.095,
			DescentRate:    6,
			SpeedKickForce: 0.55,
			SpeedKickRate:  5.5,
		},
		Planes: PlanesConfig{
			FirstSpawn:    7,
			SpawnMin:      12,
			SpawnMax:      25,
			SpeedMin:      23,
			SpeedMax:      35,
			Radius:        2.5,
			HeliRadius:    2,
			CeilingAlt:    12,
			EdgeFactor:    0.58,
			LateralFactor: 0.45,
		},
		Rope: RopeConfig{
			MaxLength:       7.5,
			AcquireRadius:   3.5,
			DropSpeed:       10,
			HaulSpeed:       5,
			RetractSpeed:    12,
			AttachRadius:    0.8,
			AnchorForward:   0.34,
			AnchorDrop:      0.42,
			CrateScore:      500,
			RefugeeScore:    80,
			CrateCooldown:   1.1,
			RefugeeCooldown: 0.8,
		},
		Fuel: FuelConfig{
			Max:           100,
			BaseDrain:     0.95,
			SpeedDrain:    0.4,
			HighAlt:       10,
			HighAltDrain:  0.3,
			RefuelPerSec:  18,
			RefuelRadius:  2.4,
			PadHitRadius:  3.2,
			TimeLimitSec:  360,
			StartupStep:   4,
			StartupPeriod: 0.3,
		},
		Session: SessionConfig{
			FixedDt:          1.0 / 60.0,
			MaxFrameDt:       0.1,
			MaxStepsPerFrame: 5,
			Lives:            3,
			CrashDelay:       1.2,
			RoundDelay:       1.4,
			CrateDropDelay:   0.45,
			CrateDropPeriod:  0.3,
			CycloneRadar:     3,
			PlaneRadar:       1,
			WindAlert:        0.72,
			AircraftAlert:    30,
			CameraTiltMin:    35,
			CameraTiltMax:    80,
			CameraTilt:       60,
			HighScoreKey:     "zxrescue_hs",
			DefaultSeed:      "ZXRESCUE",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Scaling: ScalingConfig{
				CycloneSpeedPerRound: 0.35,
				SeekAccelPerRound:    0.12,
				EllipseGrowX:         2,
				EllipseGrowZ:         1.5,
				PlaneSpawnPerRound:   0.1,
				LevelBoost:           0.5,
			},
		},
	}
}
