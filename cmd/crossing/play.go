package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var (
	flagConfig       string
	flagDifficulty   string
	flagEnemies      int
	flagCanvasWidth  float64
	flagCanvasHeight float64
	flagMute         bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move one tile
  Space/P           - Pause, or restart after the game is over
  M                 - Toggle sound
  Ctrl+S            - Save a screenshot to ~/.crossing/screenshots
  Q/Ctrl+C          - Quit

Without --difficulty a menu asks for one.

Difficulty options:
  easy   - Bugs up to 2 tiles/s, win at initial score + 200
  normal - Bugs up to 3 tiles/s, win at initial score + 400
  hard   - Bugs up to 4 tiles/s, win at initial score + 600

Examples:
  crossing play
  crossing play --difficulty hard
  crossing play --enemies 8 --mute
  crossing play --config ./my-crossing.yaml --log-file crossing.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that override the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().IntVar(&flagEnemies, "enemies", 4, "Number of enemies")
	cmd.Flags().Float64Var(&flagCanvasWidth, "canvas-width", 0, "Canvas width in pixels (0 = columns x tile width)")
	cmd.Flags().Float64Var(&flagCanvasHeight, "canvas-height", 0, "Canvas height in pixels (0 = rows x tile height)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

// loadGameConfig loads the configuration and applies explicitly set flags
// on top of it.
func loadGameConfig(cmd *cobra.Command) (config.CrossingConfig, error) {
	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("difficulty") {
		if err := config.ApplyCrossingPreset(&cfg, flagDifficulty); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("enemies") {
		cfg.Enemies.Count = flagEnemies
	}
	if flags.Changed("canvas-width") {
		cfg.Board.CanvasWidth = flagCanvasWidth
	}
	if flags.Changed("canvas-height") {
		cfg.Board.CanvasHeight = flagCanvasHeight
	}
	if flags.Changed("mute") {
		cfg.Audio.Muted = flagMute
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagFPS <= 0 {
		fail("--fps must be positive, got %d", flagFPS)
	}

	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Get terminal size early for the difficulty menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if !cmd.Flags().Changed("difficulty") {
		d, ok, selErr := tui.RunDifficultySelector(cfg, rc)
		if selErr != nil {
			fail("%v", selErr)
		}
		// User quit the menu
		if !ok {
			return
		}
		cfg.Difficulty = d
	}

	sound, closeSound := audio.Open(cfg.Audio.Volume, logger)
	defer closeSound()

	logger.Info("starting", "difficulty", cfg.Difficulty, "fps", flagFPS, "seed", flagSeed)
	session := crossing.NewSession(cfg, sound, logger)

	if runErr := tui.Run(session, rc, logger); runErr != nil {
		// Deferred cleanup is skipped by os.Exit.
		closeSound()
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
