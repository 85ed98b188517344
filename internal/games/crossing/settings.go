// Package crossing implements a lane-crossing arcade game: the player hops
// tile by tile from the grass to the water while bugs stream across the
// stone lanes and a countdown score decides the outcome.
//
// Entities live in canvas pixel space. Rendering projects that space onto
// terminal cells, so the simulation does not depend on the terminal size.
package crossing

import "github.com/vovakirdan/tui-crossing/internal/config"

// Settings are the per-game constants derived from the configuration.
type Settings struct {
	TileWidth    float64
	TileHeight   float64
	CanvasWidth  float64
	CanvasHeight float64
	Columns      int
	Rows         int
	Difficulty   config.Difficulty
	ScoreInitial int
	ScoreWinning int
	EnemyCount   int
	ResetSpan    float64 // pixels left of the canvas an enemy may re-enter from
}

// SettingsFrom derives game settings from a validated configuration.
func SettingsFrom(cfg config.CrossingConfig) Settings {
	return Settings{
		TileWidth:    cfg.Board.TileWidth,
		TileHeight:   cfg.Board.TileHeight,
		CanvasWidth:  cfg.Board.Width(),
		CanvasHeight: cfg.Board.Height(),
		Columns:      cfg.Board.Columns,
		Rows:         cfg.Board.Rows,
		Difficulty:   cfg.Difficulty,
		ScoreInitial: cfg.Score.Initial,
		ScoreWinning: cfg.WinningScore(),
		EnemyCount:   cfg.Enemies.Count,
		ResetSpan:    cfg.Enemies.ResetSpanTiles * cfg.Board.TileWidth,
	}
}

// lanes is the number of enemy lanes between the water row and the home row.
func (s Settings) lanes() int {
	return s.Rows - 2
}
