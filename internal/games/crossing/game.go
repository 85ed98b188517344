package crossing

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Phase is the run state of a game.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Env carries the collaborators a game needs. Zero fields get silent
// defaults.
type Env struct {
	Rand   *rand.Rand
	Sound  audio.Player
	Logger *log.Logger
}

// Game is one play session: settings, run flags and the entities.
// A restart builds a new Game; nothing is carried over.
type Game struct {
	Settings

	scores  ScoreTable
	over    bool
	paused  bool
	muted   bool
	player  *Player
	enemies []*Enemy
	gem     *Gem

	rng    *rand.Rand
	sound  audio.Player
	logger *log.Logger
}

// NewGame creates a game from a validated configuration. Call Start
// before the first update.
func NewGame(cfg config.CrossingConfig, env Env) *Game {
	if env.Rand == nil {
		env.Rand = rand.New(rand.NewSource(1))
	}
	if env.Sound == nil {
		env.Sound = audio.Silent{}
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	return &Game{
		Settings: SettingsFrom(cfg),
		scores:   NewScoreTable(cfg.WarningThreshold(), cfg.CriticalThreshold()),
		muted:    cfg.Audio.Muted,
		rng:      env.Rand,
		sound:    env.Sound,
		logger:   env.Logger,
	}
}

// Start creates the player, the gem and the enemies. Enemies wait one tile
// left of the canvas, one per lane, wrapping when there are more enemies
// than lanes.
func (g *Game) Start() {
	g.over = false
	g.paused = false
	g.player = NewPlayer(g)
	g.gem = NewGem(g)

	g.enemies = make([]*Enemy, 0, g.EnemyCount)
	for i := 0; i < g.EnemyCount; i++ {
		lane := i%g.lanes() + 1
		g.enemies = append(g.enemies, NewEnemy(g, -g.TileWidth, g.TileHeight*float64(lane)))
	}
}

// IsRunning reports whether updates and movement input take effect.
func (g *Game) IsRunning() bool {
	return !g.over && !g.paused
}

// PlaySFX triggers a sound effect unless muted. Unknown names are ignored.
func (g *Game) PlaySFX(s audio.Sound) {
	if g.muted || !s.Known() {
		return
	}
	g.sound.Play(s)
}

// UpdateAll advances every entity by dt seconds.
func (g *Game) UpdateAll(dt float64) {
	for _, e := range g.enemies {
		e.Update(g, dt)
	}
	g.player.Update(g)
}

// HandleInput applies one logical key. It returns true when the player
// asked for a brand-new game.
func (g *Game) HandleInput(k Key) (restart bool) {
	return g.player.HandleInput(g, k)
}

// ReplaceGem swaps in a freshly placed gem while the game is running.
func (g *Game) ReplaceGem() {
	g.gem.Reset(g)
}

// Phase returns the current run state.
func (g *Game) Phase() Phase {
	switch {
	case g.over && g.player.outcome == StateWin:
		return PhaseWon
	case g.over:
		return PhaseLost
	case g.paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.over }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Muted reports whether sound effects are off.
func (g *Game) Muted() bool { return g.muted }

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Enemies returns the enemies in lane order.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Gem returns the current gem.
func (g *Game) Gem() *Gem { return g.gem }

// Scores returns the score classification table.
func (g *Game) Scores() ScoreTable { return g.scores }
