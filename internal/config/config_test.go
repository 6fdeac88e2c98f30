package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded CannonConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultCannonConfig()) {
		t.Errorf("embedded defaults differ from DefaultCannonConfig():\nembedded: %+v\nhardcoded: %+v",
			embedded, DefaultCannonConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultCannonConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCannonCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("targets:\n  count: 8\n  speed:\n    min: 10\n    max: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCannon(path)
	if err != nil {
		t.Fatalf("LoadCannon() error = %v", err)
	}
	if cfg.Targets.Count != 8 {
		t.Errorf("Targets.Count = %d, expected 8", cfg.Targets.Count)
	}
	if cfg.Targets.Speed != (Range{Min: 10, Max: 20}) {
		t.Errorf("Targets.Speed = %+v, expected {10 20}", cfg.Targets.Speed)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Targets.BallSize != 60 || cfg.Cannon.AngleLimitDeg != 50 {
		t.Errorf("partial file lost defaults: ball=%v angle=%v", cfg.Targets.BallSize, cfg.Cannon.AngleLimitDeg)
	}
}

func TestLoadCannonCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("targets: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"bad yaml", broken, "failed to parse config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCannon(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should contain %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoadCannonFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd) //nolint:errcheck // test cleanup

	cfg, err := LoadCannon("")
	if err != nil {
		t.Fatalf("LoadCannon() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCannonConfig()) {
		t.Errorf("fallback config differs from defaults: %+v", cfg)
	}
}

func TestLoadCannonLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "cannon.yaml"), []byte("clouds:\n  count: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd) //nolint:errcheck // test cleanup

	cfg, err := LoadCannon("")
	if err != nil {
		t.Fatalf("LoadCannon() error = %v", err)
	}
	if cfg.Clouds.Count != 9 {
		t.Errorf("Clouds.Count = %d, expected 9 from ./configs", cfg.Clouds.Count)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CannonConfig)
		wantErr string
	}{
		{"separator ratio zero", func(c *CannonConfig) { c.Canvas.SeparatorRatio = 0 }, "separator_ratio"},
		{"inverted speed range", func(c *CannonConfig) { c.Targets.Speed = Range{Min: 200, Max: 100} }, "targets.speed"},
		{"no rows", func(c *CannonConfig) { c.Targets.RowCount = 0 }, "row_count"},
		{"angle limit too wide", func(c *CannonConfig) { c.Cannon.AngleLimitDeg = 95 }, "angle_limit_deg"},
		{"bad color", func(c *CannonConfig) { c.Colors.Ground = "green" }, "colors.ground"},
		{"bad progression", func(c *CannonConfig) { c.Difficulty.Progression.Type = "score" }, "progression"},
		{"zero projectile speed", func(c *CannonConfig) { c.Projectile.Speed = 0 }, "projectile.speed"},
		{"zero cannon scale", func(c *CannonConfig) { c.Cannon.Scale = 0 }, "cannon.scale"},
		{"zero flash width", func(c *CannonConfig) { c.Cannon.FlashWidthRatio = 0 }, "flash_width_ratio"},
		{"inverted ground band", func(c *CannonConfig) { c.Canvas.GroundTopRatio = 0.95 }, "ground band"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCannonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultCannonConfig()
	cfg.Targets.RowCount = 0
	cfg.Projectile.Scale = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "row_count") || !strings.Contains(err.Error(), "projectile.scale") {
		t.Errorf("both problems should be reported: %v", err)
	}
}

func TestApplyCannonPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		speed        Range
	}{
		{DifficultyEasy, true, 0.0, Range{Min: 40, Max: 120}},
		{DifficultyNormal, true, 0.3, Range{Min: 60, Max: 180}},
		{DifficultyHard, true, 0.7, Range{Min: 120, Max: 260}},
		{DifficultyFixed, false, 0.0, Range{Min: 60, Max: 180}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCannonConfig()
			ApplyCannonPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Targets.Speed != tc.speed {
				t.Errorf("Targets.Speed = %+v, expected %+v", cfg.Targets.Speed, tc.speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should stay valid: %v", err)
			}
		})
	}
}

func TestApplyEmptyPresetIsNoop(t *testing.T) {
	cfg := DefaultCannonConfig()
	ApplyCannonPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultCannonConfig()) {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultCannonConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"separator_ratio:", "respawn_offset:", "angle_limit_deg:", "reveal_ms:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshalled YAML missing %q", key)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAtSec: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		name      string
		elapsedMs float64
		level     float64
		speed     float64
	}{
		{"start", 0, 0.5, 150},
		{"halfway", 5000, 0.75, 175},
		{"max", 10000, 1.0, 200},
		{"past max", 60000, 1.0, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.Level(tc.elapsedMs); got != tc.level {
				t.Errorf("Level(%v) = %v, expected %v", tc.elapsedMs, got, tc.level)
			}
			if got := dm.Speed(100, tc.elapsedMs); got != tc.speed {
				t.Errorf("Speed(100, %v) = %v, expected %v", tc.elapsedMs, got, tc.speed)
			}
		})
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DefaultCannonConfig().Difficulty)
	if dm.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := dm.Speed(120, 99999); got != 120 {
		t.Errorf("disabled Speed = %v, expected 120", got)
	}
}

func TestDifficultyManagerNoProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := dm.Level(99999); got != 0.7 {
		t.Errorf("Level = %v, expected initial 0.7", got)
	}
}
