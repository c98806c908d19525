package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Threshold != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[game]
dictionary = "/tmp/dicts"
start-level = 3
threshold = 7
seed = 99
duration = "45s"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	g := cfg.Game
	if g.Dictionary == nil || *g.Dictionary != "/tmp/dicts" {
		t.Fatalf("unexpected dictionary: %v", g.Dictionary)
	}
	if g.StartLevel == nil || *g.StartLevel != 3 || g.Threshold == nil || *g.Threshold != 7 {
		t.Fatalf("unexpected levels: %+v", g)
	}
	if g.Seed == nil || *g.Seed != 99 {
		t.Fatalf("unexpected seed: %v", g.Seed)
	}
	if g.Duration == nil || *g.Duration != "45s" {
		t.Fatalf("unexpected duration: %v", g.Duration)
	}
	if g.MaxLevel != nil {
		t.Fatalf("expected max-level unset")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "game:\n  threshold: 4\n  max-level: 12\n  name: sky\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Game.Threshold == nil || *cfg.Game.Threshold != 4 {
		t.Fatalf("unexpected threshold: %v", cfg.Game.Threshold)
	}
	if cfg.Game.MaxLevel == nil || *cfg.Game.MaxLevel != 12 {
		t.Fatalf("unexpected max level: %v", cfg.Game.MaxLevel)
	}
	if cfg.Game.Name == nil || *cfg.Game.Name != "sky" {
		t.Fatalf("unexpected name: %v", cfg.Game.Name)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\nthreshold = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "typegame", "config.toml") {
		t.Fatalf("DefaultConfigPath()=%q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "typegame", "leaderboard.db") {
		t.Fatalf("DefaultDBPath()=%q", got)
	}
	if got := DefaultDictionaryDir(); got != filepath.Join("/data", "typegame", "dictionaries") {
		t.Fatalf("DefaultDictionaryDir()=%q", got)
	}
}
