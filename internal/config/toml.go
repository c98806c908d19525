// Package config provides configuration helpers and config file parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game" yaml:"game"`
}

// GameConfig maps game-related settings. Nil fields were not set.
type GameConfig struct {
	Dictionary *string `toml:"dictionary" yaml:"dictionary"`
	StartLevel *int    `toml:"start-level" yaml:"start-level"`
	MaxLevel   *int    `toml:"max-level" yaml:"max-level"`
	Threshold  *int    `toml:"threshold" yaml:"threshold"`
	Seed       *int64  `toml:"seed" yaml:"seed"`
	Duration   *string `toml:"duration" yaml:"duration"`
	Multiplier *int    `toml:"multiplier" yaml:"multiplier"`
	Name       *string `toml:"name" yaml:"name"`
}

// LoadConfig reads a TOML or YAML config from the given path, chosen by
// extension. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	return cfg, nil
}
