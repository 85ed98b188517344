// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board      BoardConfig `yaml:"board"`
	Enemies    EnemyConfig `yaml:"enemies"`
	Score      ScoreConfig `yaml:"score"`
	Difficulty Difficulty  `yaml:"difficulty"`
	Audio      AudioConfig `yaml:"audio"`
}

// BoardConfig defines the tile grid and the canvas it is drawn on.
// All lengths are in canvas pixels.
type BoardConfig struct {
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	// CanvasWidth and CanvasHeight default to Columns*TileWidth and
	// Rows*TileHeight when zero.
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
}

// Width returns the canvas width in pixels.
func (b BoardConfig) Width() float64 {
	if b.CanvasWidth > 0 {
		return b.CanvasWidth
	}
	return float64(b.Columns) * b.TileWidth
}

// Height returns the canvas height in pixels.
func (b BoardConfig) Height() float64 {
	if b.CanvasHeight > 0 {
		return b.CanvasHeight
	}
	return float64(b.Rows) * b.TileHeight
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Count int `yaml:"count"`
	// ResetSpanTiles is how far left of the canvas, in tiles, an enemy may
	// re-enter after leaving on the right.
	ResetSpanTiles float64 `yaml:"reset_span_tiles"`
}

// ScoreConfig defines the countdown score and its color thresholds.
type ScoreConfig struct {
	Initial          int     `yaml:"initial"`
	WinBonusPerLevel int     `yaml:"win_bonus_per_level"`
	WarningDivisor   float64 `yaml:"warning_divisor"`
	CriticalDivisor  float64 `yaml:"critical_divisor"`
}

// AudioConfig defines sound effect settings.
type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0.0 - 1.0
}

// WinningScore returns the score the player must reach to win.
func (c CrossingConfig) WinningScore() int {
	return c.Score.Initial + int(c.Difficulty)*c.Score.WinBonusPerLevel
}

// WarningThreshold returns the score at or below which the scoreboard warns.
func (c CrossingConfig) WarningThreshold() float64 {
	return float64(c.Score.Initial) / c.Score.WarningDivisor
}

// CriticalThreshold returns the score at or below which the scoreboard is critical.
func (c CrossingConfig) CriticalThreshold() float64 {
	return float64(c.Score.Initial) / c.Score.CriticalDivisor
}

// Validate checks the invariants the game relies on.
func (c CrossingConfig) Validate() error {
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: difficulty %d out of range %d-%d", ErrInvalid, c.Difficulty, DifficultyEasy, DifficultyHard)
	}
	if c.Board.TileWidth <= 0 || c.Board.TileHeight <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %gx%g", ErrInvalid, c.Board.TileWidth, c.Board.TileHeight)
	}
	if c.Board.Columns < 1 || c.Board.Rows < 3 {
		return fmt.Errorf("%w: board needs at least 1 column and 3 rows, got %dx%d", ErrInvalid, c.Board.Columns, c.Board.Rows)
	}
	// Home tile and lanes come from the grid, so the canvas must cover it.
	gridW := float64(c.Board.Columns) * c.Board.TileWidth
	gridH := float64(c.Board.Rows) * c.Board.TileHeight
	if c.Board.Width() < gridW || c.Board.Height() < gridH {
		return fmt.Errorf("%w: canvas %gx%g smaller than the %gx%g tile grid",
			ErrInvalid, c.Board.Width(), c.Board.Height(), gridW, gridH)
	}
	if c.Enemies.Count < 0 {
		return fmt.Errorf("%w: enemy count must not be negative, got %d", ErrInvalid, c.Enemies.Count)
	}
	if c.Enemies.ResetSpanTiles <= 0 {
		return fmt.Errorf("%w: enemy reset span must be positive, got %g", ErrInvalid, c.Enemies.ResetSpanTiles)
	}
	if c.Score.Initial <= 0 {
		return fmt.Errorf("%w: initial score must be positive, got %d", ErrInvalid, c.Score.Initial)
	}
	if c.Score.WinBonusPerLevel <= 0 {
		return fmt.Errorf("%w: win bonus must be positive, got %d", ErrInvalid, c.Score.WinBonusPerLevel)
	}
	if c.Score.WarningDivisor <= 0 || c.Score.CriticalDivisor <= c.Score.WarningDivisor {
		return fmt.Errorf("%w: need 0 < warning_divisor < critical_divisor, got %g and %g",
			ErrInvalid, c.Score.WarningDivisor, c.Score.CriticalDivisor)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume must be within 0-1, got %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
