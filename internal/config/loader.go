package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPillfall loads the game configuration.
// Search order: customPath -> ~/.pillfall/configs/pillfall.yaml ->
// ./configs/pillfall.yaml -> embedded default.
func LoadPillfall(customPath string) (PillfallConfig, error) {
	var cfg PillfallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pillfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pillfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPillfallYAML, &cfg); err != nil {
		return DefaultPillfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pillfall", "configs", filename)
}

// normalize fills zero-valued fields from the hardcoded defaults so a
// partial YAML file still yields a playable configuration.
func normalize(cfg PillfallConfig) PillfallConfig {
	def := DefaultPillfallConfig()
	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Board.VirusCount <= 0 {
		cfg.Board.VirusCount = def.Board.VirusCount
	}
	if cfg.Drop.IntervalTicks <= 0 {
		cfg.Drop.IntervalTicks = def.Drop.IntervalTicks
	}
	if cfg.Drop.SoftDropTicks <= 0 {
		cfg.Drop.SoftDropTicks = def.Drop.SoftDropTicks
	}
	if cfg.Drop.LockResolvePause < 0 {
		cfg.Drop.LockResolvePause = def.Drop.LockResolvePause
	}
	if cfg.Drop.SpawnGraceTicks < 0 {
		cfg.Drop.SpawnGraceTicks = def.Drop.SpawnGraceTicks
	}
	if cfg.Drop.IntervalFloorTick <= 0 {
		cfg.Drop.IntervalFloorTick = def.Drop.IntervalFloorTick
	}
	if cfg.Scoring.PointsPerCell <= 0 {
		cfg.Scoring.PointsPerCell = def.Scoring.PointsPerCell
	}
	return cfg
}
