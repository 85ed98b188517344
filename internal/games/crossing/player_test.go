package crossing

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/config"
)

func TestPlayerStartsHome(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()

	if p.X() != 3*g.TileWidth || p.Y() != 5*g.TileHeight {
		t.Errorf("player at (%g, %g), expected (%g, %g)", p.X(), p.Y(), 3*g.TileWidth, 5*g.TileHeight)
	}
	if p.Score() != g.ScoreInitial {
		t.Errorf("score = %d, expected %d", p.Score(), g.ScoreInitial)
	}
	if sb := p.Scoreboard(); sb.Text != "SCORE 1000 of 1200." || sb.State != StateNormal {
		t.Errorf("initial scoreboard = %+v", sb)
	}
}

func TestScoreDecrementsOncePerTick(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()

	for i := 1; i <= 100; i++ {
		p.Update(g)
		if p.Score() != g.ScoreInitial-i {
			t.Fatalf("tick %d: score = %d, expected %d", i, p.Score(), g.ScoreInitial-i)
		}
	}
}

func TestLoseIsTerminal(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()
	p.score = 1

	p.Update(g) // 1 -> 0
	if g.Over() {
		t.Fatal("reaching zero ends the game on the next tick, not this one")
	}
	p.Update(g)
	if !g.Over() || g.Phase() != PhaseLost {
		t.Fatalf("expected lost, got %v", g.Phase())
	}
	if sb := p.Scoreboard(); sb.State != StateLose || sb.Text != "You LOSE. Press SPACE to restart" {
		t.Errorf("scoreboard = %+v", sb)
	}

	for i := 0; i < 10; i++ {
		p.Update(g)
	}
	if p.Score() != 0 || g.Phase() != PhaseLost {
		t.Errorf("lost state changed: score %d phase %v", p.Score(), g.Phase())
	}
}

func TestWinIsTerminal(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()
	p.score = g.ScoreWinning

	p.Update(g)
	if g.Phase() != PhaseWon {
		t.Fatalf("expected won, got %v", g.Phase())
	}
	if sb := p.Scoreboard(); sb.Text != "You WIN. Press SPACE to restart" {
		t.Errorf("scoreboard text = %q", sb.Text)
	}
	if sb := p.Scoreboard(); sb.Color != g.Scores().Color(StateWin) {
		t.Errorf("scoreboard color = %v", sb.Color)
	}

	p.Update(g)
	if p.Score() != g.ScoreWinning {
		t.Error("score must not change after winning")
	}
}

func TestScoreboardBuckets(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()

	tests := []struct {
		before int
		want   ScoreState
	}{
		{501, StateNormal},   // -> 500
		{335, StateNormal},   // -> 334
		{334, StateWarning},  // -> 333
		{301, StateWarning},  // -> 300
		{168, StateWarning},  // -> 167
		{167, StateCritical}, // -> 166
		{101, StateCritical}, // -> 100
	}
	for _, tc := range tests {
		p.score = tc.before
		p.Update(g)
		if sb := p.Scoreboard(); sb.State != tc.want {
			t.Errorf("score %d: state = %v, expected %v", p.Score(), sb.State, tc.want)
		}
	}
}

func TestSpacebarTogglesPause(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()

	if p.HandleInput(g, KeySpacebar) {
		t.Fatal("space while running must not restart")
	}
	if !g.Paused() {
		t.Fatal("space should pause")
	}

	score := p.Score()
	p.Update(g)
	if p.Score() != score {
		t.Error("paused update changed the score")
	}

	p.HandleInput(g, KeySpacebar)
	if g.Paused() {
		t.Fatal("second space should resume")
	}
}

func TestSpacebarWhenOverRequestsRestart(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	g.over = true

	if !g.HandleInput(KeySpacebar) {
		t.Error("space after game over should request a restart")
	}
	if g.Paused() {
		t.Error("space after game over must not toggle pause")
	}
}

func TestMuteTogglesInEveryState(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)

	g.HandleInput(KeyMute)
	if !g.Muted() {
		t.Fatal("M should mute while running")
	}
	g.paused = true
	g.HandleInput(KeyMute)
	if g.Muted() {
		t.Fatal("M should unmute while paused")
	}
	g.paused = false
	g.over = true
	g.HandleInput(KeyMute)
	if !g.Muted() {
		t.Fatal("M should mute after game over")
	}
}

func TestMovementWithinBounds(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()

	p.HandleInput(g, KeyUp)
	if p.Y() != 4*g.TileHeight {
		t.Errorf("up: y = %g, expected %g", p.Y(), 4*g.TileHeight)
	}
	p.HandleInput(g, KeyDown)
	if p.Y() != 5*g.TileHeight {
		t.Errorf("down back home: y = %g, expected %g", p.Y(), 5*g.TileHeight)
	}
	p.HandleInput(g, KeyRight)
	if p.X() != 4*g.TileWidth {
		t.Errorf("right: x = %g, expected %g", p.X(), 4*g.TileWidth)
	}
	p.HandleInput(g, KeyLeft)
	if p.X() != 3*g.TileWidth {
		t.Errorf("left: x = %g, expected %g", p.X(), 3*g.TileWidth)
	}
}

func TestMovementBlockedAtBoundaries(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()

	// Left edge
	for i := 0; i < 10; i++ {
		p.HandleInput(g, KeyLeft)
	}
	if p.X() != 0 {
		t.Errorf("x = %g, expected 0 at left edge", p.X())
	}
	p.HandleInput(g, KeyLeft)
	if p.X() != 0 {
		t.Errorf("left at x=0 moved to %g", p.X())
	}

	// Right edge
	for i := 0; i < 10; i++ {
		p.HandleInput(g, KeyRight)
	}
	if want := float64(g.Columns-1) * g.TileWidth; p.X() != want {
		t.Errorf("x = %g, expected %g at right edge", p.X(), want)
	}

	// Bottom edge: home is the last row
	y := p.Y()
	p.HandleInput(g, KeyDown)
	if p.Y() != y {
		t.Errorf("down from home moved to %g", p.Y())
	}
}

func TestUpIntoWaterSplashesHome(t *testing.T) {
	g, rec := newTestGame(t, 1, nil)
	p := g.Player()
	p.HandleInput(g, KeyRight)

	for i := 0; i < 4; i++ {
		p.HandleInput(g, KeyUp)
	}
	if p.Y() != g.TileHeight {
		t.Fatalf("y = %g, expected first lane at %g", p.Y(), g.TileHeight)
	}
	if len(rec.played) != 0 {
		t.Fatalf("no splash expected yet, got %v", rec.played)
	}

	score := p.Score()
	p.HandleInput(g, KeyUp)
	if p.X() != 3*g.TileWidth || p.Y() != 5*g.TileHeight {
		t.Errorf("splash should send the player home, at (%g, %g)", p.X(), p.Y())
	}
	if len(rec.played) != 1 || rec.played[0] != audio.SoundSplash {
		t.Errorf("played = %v, expected splash", rec.played)
	}
	// Reaching the water carries no score credit.
	if p.Score() != score {
		t.Errorf("score changed on splash: %d -> %d", score, p.Score())
	}
}

func TestSplashIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := NewGame(config.DefaultCrossingConfig(), Env{Rand: rand.New(rand.NewSource(1)), Logger: logger})
	g.Start()
	p := g.Player()

	for i := 0; i < 4; i++ {
		p.HandleInput(g, KeyUp)
	}
	if strings.Contains(buf.String(), "splash") {
		t.Fatalf("splash logged before reaching the water: %q", buf.String())
	}

	p.HandleInput(g, KeyUp)
	if strings.Count(buf.String(), "splash") != 1 {
		t.Errorf("expected one splash entry, got %q", buf.String())
	}

	// Walking back onto the home tile is not a splash.
	buf.Reset()
	p.HandleInput(g, KeyUp)
	p.HandleInput(g, KeyDown)
	if strings.Contains(buf.String(), "splash") {
		t.Errorf("plain move logged a splash: %q", buf.String())
	}
}

func TestSplashSilentWhenMuted(t *testing.T) {
	g, rec := newTestGame(t, 1, func(c *config.CrossingConfig) { c.Audio.Muted = true })
	p := g.Player()
	for i := 0; i < 5; i++ {
		p.HandleInput(g, KeyUp)
	}
	if len(rec.played) != 0 {
		t.Errorf("muted splash played %v", rec.played)
	}
	if p.Y() != 5*g.TileHeight {
		t.Error("muted splash should still reset the player")
	}
}

func TestMovementIgnoredWhenNotRunning(t *testing.T) {
	g, _ := newTestGame(t, 1, nil)
	p := g.Player()
	x, y := p.X(), p.Y()

	g.paused = true
	for _, k := range []Key{KeyUp, KeyLeft, KeyRight} {
		p.HandleInput(g, k)
	}
	g.paused = false
	g.over = true
	for _, k := range []Key{KeyUp, KeyLeft, KeyRight} {
		p.HandleInput(g, k)
	}

	if p.X() != x || p.Y() != y {
		t.Errorf("player moved to (%g, %g) while not running", p.X(), p.Y())
	}
}

func TestCustomCanvasBounds(t *testing.T) {
	g, _ := newTestGame(t, 1, func(c *config.CrossingConfig) {
		c.Board.CanvasWidth = 800
	})
	p := g.Player()

	if p.X() < 0 || p.X() >= g.CanvasWidth || p.Y() < 0 || p.Y() >= g.CanvasHeight {
		t.Fatalf("home (%g, %g) outside the %gx%g canvas", p.X(), p.Y(), g.CanvasWidth, g.CanvasHeight)
	}

	for i := 0; i < 10; i++ {
		p.HandleInput(g, KeyRight)
	}
	// 707 + 101 = 808 is past the canvas, so the player stops at 707.
	if p.X() != 7*g.TileWidth {
		t.Errorf("x = %g, expected the wider canvas to allow %g", p.X(), 7*g.TileWidth)
	}
}
