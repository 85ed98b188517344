package crossing

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// recorder is an audio.Player that remembers what it was asked to play.
type recorder struct {
	played []audio.Sound
}

func (r *recorder) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func newTestGame(t *testing.T, seed int64, mutate func(*config.CrossingConfig)) (*Game, *recorder) {
	t.Helper()
	cfg := config.DefaultCrossingConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	rec := &recorder{}
	g := NewGame(cfg, Env{Rand: rand.New(rand.NewSource(seed)), Sound: rec})
	g.Start()
	return g, rec
}
