// Package config provides YAML-based game configuration loading and
// speed preset management for Pillfall.
package config

// PillfallConfig contains all tunable parameters for the game.
type PillfallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Drop    DropConfig    `yaml:"drop"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions and virus seeding.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	VirusCount int `yaml:"virus_count"`
}

// DropConfig defines the descent cadence, in simulation ticks per row.
type DropConfig struct {
	IntervalTicks     int `yaml:"interval_ticks"`      // Ticks between auto-drop rows
	SoftDropTicks     int `yaml:"soft_drop_ticks"`     // Ticks between rows while Down is held
	LockResolvePause  int `yaml:"lock_resolve_pause"`  // Ticks to linger after a clearing lock
	SpawnGraceTicks   int `yaml:"spawn_grace_ticks"`   // Ticks before a fresh pill starts dropping
	IntervalFloorTick int `yaml:"interval_floor_tick"` // Lower bound for preset-adjusted interval
}

// ScoringConfig defines how clears are rewarded.
type ScoringConfig struct {
	PointsPerCell int `yaml:"points_per_cell"`
}

// SpeedPreset represents a named drop-speed level, mirroring the classic
// LOW/MED/HI selector.
type SpeedPreset string

const (
	SpeedLow SpeedPreset = "low"
	SpeedMed SpeedPreset = "med"
	SpeedHi  SpeedPreset = "hi"
)

// SpeedPresets lists the selectable presets in menu order.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedLow, SpeedMed, SpeedHi}
}

// IntervalForPreset scales the configured drop interval for a preset.
// The base interval from the config is the "med" speed.
func IntervalForPreset(cfg DropConfig, preset SpeedPreset) int {
	interval := cfg.IntervalTicks
	switch preset {
	case SpeedLow:
		interval = interval * 3 / 2
	case SpeedHi:
		interval = interval / 2
	}
	if interval < cfg.IntervalFloorTick {
		interval = cfg.IntervalFloorTick
	}
	return interval
}

// ParseSpeedPreset normalizes a user-supplied preset name.
// Unknown names fall back to med.
func ParseSpeedPreset(s string) SpeedPreset {
	switch SpeedPreset(s) {
	case SpeedLow, SpeedMed, SpeedHi:
		return SpeedPreset(s)
	default:
		return SpeedMed
	}
}
