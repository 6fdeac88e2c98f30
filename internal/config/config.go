// Package config provides YAML-based game configuration loading and
// difficulty management for the cannon game.
package config

import "math"

// CannonConfig contains all configuration for the cannon game.
type CannonConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Clouds     CloudConfig      `yaml:"clouds"`
	Targets    TargetConfig     `yaml:"targets"`
	Cannon     RigConfig        `yaml:"cannon"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Reward     RewardConfig     `yaml:"reward"`
	Loop       LoopConfig       `yaml:"loop"`
	Colors     ColorConfig      `yaml:"colors"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Range is an inclusive [min, max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CanvasConfig defines the playfield split.
type CanvasConfig struct {
	SeparatorRatio    float64 `yaml:"separator_ratio"`  // Ground line as a fraction of canvas height
	GroundTopRatio    float64 `yaml:"ground_top_ratio"` // Painted ground band, as fractions of canvas height
	GroundBottomRatio float64 `yaml:"ground_bottom_ratio"`
}

// CloudConfig defines the drifting background clouds.
type CloudConfig struct {
	Count int   `yaml:"count"`
	Speed Range `yaml:"speed"` // px/s
	Scale Range `yaml:"scale"` // Fraction of the cloud image size
}

// TargetConfig defines the winged ball targets.
type TargetConfig struct {
	Count         int     `yaml:"count"`
	BallSize      float64 `yaml:"ball_size"`
	WingSize      float64 `yaml:"wing_size"`
	RowCount      int     `yaml:"row_count"`
	RowGap        float64 `yaml:"row_gap"`
	RowHeight     float64 `yaml:"row_height"`
	Speed         Range   `yaml:"speed"`          // px/s
	SpawnOffset   Range   `yaml:"spawn_offset"`   // Off-canvas distance for the first placement
	RespawnOffset Range   `yaml:"respawn_offset"` // Off-canvas distance after a wrap or hit
}

// RigConfig defines the cannon geometry and muzzle flash.
type RigConfig struct {
	AngleLimitDeg   float64 `yaml:"angle_limit_deg"`
	Scale           float64 `yaml:"scale"`             // Fraction of the barrel and wheel image sizes
	OverlapPx       float64 `yaml:"overlap_px"`        // Barrel overlap onto the wheel
	MuzzleGapPx     float64 `yaml:"muzzle_gap_px"`     // Projectile home above the barrel
	FlashGapPx      float64 `yaml:"flash_gap_px"`      // Flash home above the projectile
	FlashWidthRatio float64 `yaml:"flash_width_ratio"` // Flash width as a fraction of the barrel width
	FlashFadeSec    float64 `yaml:"flash_fade_sec"`    // Flash animation length
	FlashRisePx     float64 `yaml:"flash_rise_px"`     // Flash drifts up by this much
	FlashScaleEnd   float64 `yaml:"flash_scale_end"`   // Flash size ratio at the end
}

// AngleLimit returns the aim limit in radians.
func (c RigConfig) AngleLimit() float64 {
	return c.AngleLimitDeg * math.Pi / 180
}

// ProjectileConfig defines the bullet ballistics.
type ProjectileConfig struct {
	Speed         float64 `yaml:"speed"`           // px/s
	SpinDegPerSec float64 `yaml:"spin_deg_per_sec"`
	Scale         float64 `yaml:"scale"` // Fraction of the bullet image size
}

// SpinSpeed returns the spin rate in radians per second.
func (c ProjectileConfig) SpinSpeed() float64 {
	return c.SpinDegPerSec * math.Pi / 180
}

// RewardConfig defines how the reward box is revealed after a hit.
// RevealMs 0 shows it for the single frame after the hit.
type RewardConfig struct {
	RevealMs float64 `yaml:"reveal_ms"`
	RisePx   float64 `yaml:"rise_px"`
	Fade     bool    `yaml:"fade"`
}

// LoopConfig defines frame timing.
type LoopConfig struct {
	MaxDeltaMs float64 `yaml:"max_delta_ms"`
}

// ColorConfig defines scene colors as #rrggbb strings.
type ColorConfig struct {
	SkyTop    string `yaml:"sky_top"`
	SkyBottom string `yaml:"sky_bottom"`
	Ground    string `yaml:"ground"`
}

// DifficultyConfig defines optional target speed-up over play time.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type     string  `yaml:"type"`       // "time" or "none"
	MaxAtSec float64 `yaml:"max_at_sec"` // Seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to target speed at max difficulty
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
