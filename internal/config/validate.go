package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports every problem in cfg at once.
func (cfg CannonConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if r := cfg.Canvas.SeparatorRatio; r <= 0 || r > 1 {
		bad("canvas.separator_ratio %v must be in (0, 1]", r)
	}
	if top, bottom := cfg.Canvas.GroundTopRatio, cfg.Canvas.GroundBottomRatio; top < 0 || bottom > 1 || top > bottom {
		bad("canvas ground band [%v, %v] must satisfy 0 <= top <= bottom <= 1", top, bottom)
	}

	if cfg.Clouds.Count < 0 {
		bad("clouds.count %d must not be negative", cfg.Clouds.Count)
	}
	checkRange(bad, "clouds.speed", cfg.Clouds.Speed)
	checkRange(bad, "clouds.scale", cfg.Clouds.Scale)
	if cfg.Clouds.Scale.Min < 0 {
		bad("clouds.scale.min %v must not be negative", cfg.Clouds.Scale.Min)
	}

	t := cfg.Targets
	if t.Count < 0 {
		bad("targets.count %d must not be negative", t.Count)
	}
	if t.RowCount < 1 {
		bad("targets.row_count %d must be at least 1", t.RowCount)
	}
	if t.BallSize <= 0 {
		bad("targets.ball_size %v must be positive", t.BallSize)
	}
	if t.WingSize < 0 {
		bad("targets.wing_size %v must not be negative", t.WingSize)
	}
	checkRange(bad, "targets.speed", t.Speed)
	checkRange(bad, "targets.spawn_offset", t.SpawnOffset)
	checkRange(bad, "targets.respawn_offset", t.RespawnOffset)
	if t.SpawnOffset.Min < 0 || t.RespawnOffset.Min < 0 {
		bad("targets spawn offsets must not be negative")
	}

	if a := cfg.Cannon.AngleLimitDeg; a <= 0 || a >= 90 {
		bad("cannon.angle_limit_deg %v must be in (0, 90)", a)
	}
	if cfg.Cannon.Scale <= 0 {
		bad("cannon.scale %v must be positive", cfg.Cannon.Scale)
	}
	if cfg.Cannon.FlashWidthRatio <= 0 {
		bad("cannon.flash_width_ratio %v must be positive", cfg.Cannon.FlashWidthRatio)
	}
	if cfg.Cannon.FlashFadeSec < 0 {
		bad("cannon.flash_fade_sec %v must not be negative", cfg.Cannon.FlashFadeSec)
	}

	if cfg.Projectile.Speed <= 0 {
		bad("projectile.speed %v must be positive", cfg.Projectile.Speed)
	}
	if cfg.Projectile.Scale <= 0 {
		bad("projectile.scale %v must be positive", cfg.Projectile.Scale)
	}

	if cfg.Reward.RevealMs < 0 {
		bad("reward.reveal_ms %v must not be negative", cfg.Reward.RevealMs)
	}
	if cfg.Loop.MaxDeltaMs < 0 {
		bad("loop.max_delta_ms %v must not be negative", cfg.Loop.MaxDeltaMs)
	}

	for name, hex := range map[string]string{
		"colors.sky_top":    cfg.Colors.SkyTop,
		"colors.sky_bottom": cfg.Colors.SkyBottom,
		"colors.ground":     cfg.Colors.Ground,
	} {
		if _, err := core.ParseHex(hex); err != nil {
			bad("%s: %v", name, err)
		}
	}

	switch cfg.Difficulty.Progression.Type {
	case "time", "none", "":
	default:
		bad("difficulty.progression.type %q must be time or none", cfg.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}

func checkRange(bad func(string, ...any), name string, r Range) {
	if r.Min > r.Max {
		bad("%s min %v exceeds max %v", name, r.Min, r.Max)
	}
}
