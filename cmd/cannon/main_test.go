package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannon-arcade/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadConfigPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cannon.yaml")
	if err := os.WriteFile(path, []byte("targets:\n  count: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		difficulty string
		count      int
	}{
		{"file only", "", 12},
		{"easy overrides count", "easy", 30},
		{"fixed keeps count", "fixed", 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withFlags(t, path, tc.difficulty)
			cfg, err := loadConfig()
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if cfg.Targets.Count != tc.count {
				t.Errorf("targets.count = %d, expected %d", cfg.Targets.Count, tc.count)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("canvas:\n  separator_ratio: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("unknown difficulty", func(t *testing.T) {
		withFlags(t, "", "impossible")
		if _, err := loadConfig(); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		withFlags(t, filepath.Join(dir, "missing.yaml"), "")
		if _, err := loadConfig(); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("invalid values", func(t *testing.T) {
		withFlags(t, invalid, "")
		if _, err := loadConfig(); !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("err = %v, expected ErrInvalidConfig", err)
		}
	})
}

func TestNewLoggerLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "debug"
	if l := newLogger(os.Stderr, "test"); l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", l.GetLevel())
	}
	flagLogLevel = "loud"
	if l := newLogger(os.Stderr, "test"); l.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, expected info fallback", l.GetLevel())
	}
}

func TestOpenLogFile(t *testing.T) {
	old := flagLogFile
	t.Cleanup(func() { flagLogFile = old })

	flagLogFile = filepath.Join(t.TempDir(), "nested", "cannon.log")
	f, err := openLogFile()
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	f.Close()
	if _, err := os.Stat(flagLogFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
