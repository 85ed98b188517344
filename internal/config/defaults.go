package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in configuration.
// It mirrors defaults/crossing.yaml.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			TileWidth:  101,
			TileHeight: 83,
			Columns:    7,
			Rows:       6,
		},
		Enemies: EnemyConfig{
			Count:          4,
			ResetSpanTiles: 3,
		},
		Score: ScoreConfig{
			Initial:          1000,
			WinBonusPerLevel: 200,
			WarningDivisor:   3,
			CriticalDivisor:  6,
		},
		Difficulty: DifficultyEasy,
		Audio: AudioConfig{
			Muted:  false,
			Volume: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
