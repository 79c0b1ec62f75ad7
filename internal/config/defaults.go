package config

import (
	_ "embed"
)

//go:embed defaults/pillfall.yaml
var defaultPillfallYAML []byte

// DefaultPillfallConfig returns the default game configuration.
func DefaultPillfallConfig() PillfallConfig {
	return PillfallConfig{
		Board: BoardConfig{
			Width:      8,
			Height:     16,
			VirusCount: 12,
		},
		Drop: DropConfig{
			IntervalTicks:     30, // Half a second at 60 ticks/sec
			SoftDropTicks:     3,
			LockResolvePause:  12,
			SpawnGraceTicks:   10,
			IntervalFloorTick: 5,
		},
		Scoring: ScoringConfig{
			PointsPerCell: 100,
		},
	}
}
