package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "cannon.yaml"

// LoadCannon loads the cannon configuration.
// Search order: customPath -> ~/.cannon/configs/cannon.yaml -> ./configs/cannon.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets. A custom path that cannot be read or parsed is an error;
// the implicit locations fall through silently.
func LoadCannon(customPath string) (CannonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CannonConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCannon(data)
		if err != nil {
			return CannonConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCannon(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseCannon(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// parseCannon decodes data over the embedded defaults.
func parseCannon(data []byte) (CannonConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CannonConfig{}, err
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() CannonConfig {
	var cfg CannonConfig
	if err := yaml.Unmarshal(defaultCannonYAML, &cfg); err != nil {
		return DefaultCannonConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cannon", "configs", filename)
}

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyCannonPreset modifies the config based on a difficulty preset.
func ApplyCannonPreset(cfg *CannonConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the target field based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Targets.Speed = Range{Min: 40, Max: 120}
		cfg.Targets.Count = 30
	case DifficultyHard:
		cfg.Targets.Speed = Range{Min: 120, Max: 260}
		cfg.Targets.Count = 16
	}
}

// Marshal encodes the config as YAML.
func Marshal(cfg CannonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
