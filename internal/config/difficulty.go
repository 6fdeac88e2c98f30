package config

import "github.com/vovakirdan/cannon-arcade/internal/core"

// DifficultyManager calculates target speed scaling from elapsed play time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after elapsedMs of play.
func (d *DifficultyManager) Level(elapsedMs float64) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAtSec * 1000
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := core.ClampF(elapsedMs/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns baseSpeed scaled for the current level.
// A disabled manager returns baseSpeed unchanged.
func (d *DifficultyManager) Speed(baseSpeed, elapsedMs float64) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	return baseSpeed * (1 + d.Level(elapsedMs)*d.cfg.Scaling.SpeedMultiplier)
}
