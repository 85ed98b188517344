package crossing

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Session owns the current Game and replaces it on restart. It is the
// object the platform driver ticks.
type Session struct {
	cfg    config.CrossingConfig
	sound  audio.Player
	logger *log.Logger
	rng    *rand.Rand
	game   *Game
	ticks  uint64
	games  int
}

// NewSession creates a session. Call Reset before stepping.
func NewSession(cfg config.CrossingConfig, sound audio.Player, logger *log.Logger) *Session {
	if sound == nil {
		sound = audio.Silent{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:    cfg,
		sound:  sound,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (s *Session) ID() string {
	return "crossing"
}

// Title returns the display name for this game.
func (s *Session) Title() string {
	return "Bug Crossing"
}

// Reset seeds the session and starts a fresh game.
func (s *Session) Reset(rc core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(rc.Seed))
	s.ticks = 0
	s.games = 0
	s.restart()
}

func (s *Session) restart() {
	s.game = NewGame(s.cfg, Env{Rand: s.rng, Sound: s.sound, Logger: s.logger})
	s.game.Start()
	s.games++
	s.logger.Info("game started",
		"game", s.games,
		"difficulty", s.cfg.Difficulty,
		"enemies", s.cfg.Enemies.Count,
		"winning_score", s.game.ScoreWinning)
}

// Step applies the frame's input in press order, then advances the game
// by dt.
func (s *Session) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	keys := make([]Key, 0, in.Len())
	for _, a := range in.Actions() {
		if k, ok := KeyForAction(a); ok {
			keys = append(keys, k)
		}
	}
	return s.StepKeys(keys, dt)
}

// StepKeys is Step for logical keys.
func (s *Session) StepKeys(keys []Key, dt time.Duration) core.StepResult {
	restarted := false
	for _, k := range keys {
		if s.Press(k) {
			restarted = true
		}
	}

	before := s.game.Phase()
	s.game.UpdateAll(dt.Seconds())
	s.ticks++

	if after := s.game.Phase(); after != before && (after == PhaseWon || after == PhaseLost) {
		s.logger.Info("game over", "outcome", after, "score", s.game.Player().Score(), "ticks", s.ticks)
	}

	return core.StepResult{State: s.State(), Restarted: restarted}
}

// Press applies a single key immediately. It returns true when the key
// replaced the game with a new one.
func (s *Session) Press(k Key) bool {
	g := s.game
	if g.HandleInput(k) {
		s.logger.Info("restart requested", "previous", g.Phase())
		s.restart()
		return true
	}

	switch k {
	case KeySpacebar:
		s.logger.Debug("pause toggled", "paused", g.Paused())
	case KeyMute:
		s.logger.Debug("mute toggled", "muted", g.Muted())
	}
	return false
}

// Render draws the current game.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.game.Render(dst)
}

// State returns the platform-facing summary.
func (s *Session) State() core.GameState {
	g := s.game
	return core.GameState{
		Score:    g.Player().Score(),
		GameOver: g.Over(),
		Won:      g.Phase() == PhaseWon,
		Paused:   g.Paused(),
		Muted:    g.Muted(),
	}
}

// Game returns the current game. The pointer changes on restart.
func (s *Session) Game() *Game {
	return s.game
}

// Ticks returns the number of steps since Reset.
func (s *Session) Ticks() uint64 {
	return s.ticks
}
