package config

import (
	_ "embed"
)

//go:embed defaults/cannon.yaml
var defaultCannonYAML []byte

// DefaultCannonConfig returns the default cannon configuration.
// It mirrors defaults/cannon.yaml and is used if the embedded file fails to parse.
func DefaultCannonConfig() CannonConfig {
	return CannonConfig{
		Canvas: CanvasConfig{
			SeparatorRatio:    0.85,
			GroundTopRatio:    0.75,
			GroundBottomRatio: 0.9,
		},
		Clouds: CloudConfig{
			Count: 4,
			Speed: Range{Min: 20, Max: 100},
			Scale: Range{Min: 0.5, Max: 1.0},
		},
		Targets: TargetConfig{
			Count:         24,
			BallSize:      60,
			WingSize:      40,
			RowCount:      5,
			RowGap:        40,
			RowHeight:     70,
			Speed:         Range{Min: 60, Max: 180},
			SpawnOffset:   Range{Min: 0, Max: 400},
			RespawnOffset: Range{Min: 100, Max: 800},
		},
		Cannon: RigConfig{
			AngleLimitDeg:   50,
			Scale:           0.5,
			OverlapPx:       30,
			MuzzleGapPx:     10,
			FlashGapPx:      10,
			FlashWidthRatio: 0.85,
			FlashFadeSec:    0.3,
			FlashRisePx:     20,
			FlashScaleEnd:   1.3,
		},
		Projectile: ProjectileConfig{
			Speed:         800,
			SpinDegPerSec: 720,
			Scale:         0.5,
		},
		Reward: RewardConfig{
			RevealMs: 0,
			RisePx:   0,
			Fade:     false,
		},
		Loop: LoopConfig{
			MaxDeltaMs: 250,
		},
		Colors: ColorConfig{
			SkyTop:    "#3291ce",
			SkyBottom: "#ffffff",
			Ground:    "#929aa0",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:     "time",
				MaxAtSec: 180,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCannonYAML
}
