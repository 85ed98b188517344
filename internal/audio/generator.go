package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// CoinGenerator plays two quick rising square-ish tones.
type CoinGenerator struct {
	sr    beep.SampleRate
	pos   int
	split int
}

// NewCoinGenerator creates a coin sound generator.
func NewCoinGenerator(sr beep.SampleRate) *CoinGenerator {
	return &CoinGenerator{
		sr:    sr,
		split: sr.N(time.Millisecond * 70),
	}
}

func (g *CoinGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 988.0 // B5
		if g.pos >= g.split {
			freq = 1319.0 // E6
		}

		// Fundamental plus odd harmonic for a chiptune edge
		sample := 0.35*math.Sin(2*math.Pi*freq*t) + 0.12*math.Sin(2*math.Pi*freq*3*t)
		sample *= math.Exp(-t * 6)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CoinGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz for collisions.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// SplashGenerator generates filtered noise with a falling rumble.
type SplashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
	last float64
}

// NewSplashGenerator creates a splash sound generator. The seed only
// changes the noise texture.
func NewSplashGenerator(sr beep.SampleRate, seed uint32) *SplashGenerator {
	if seed == 0 {
		seed = 1
	}
	return &SplashGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *SplashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// xorshift noise
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		// One-pole low-pass keeps it watery rather than hissy
		g.last += 0.15 * (noise - g.last)

		rumble := 0.25 * math.Sin(2*math.Pi*(140-80*math.Min(t/0.4, 1))*t)
		sample := math.Exp(-t*5) * (0.6*g.last + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplashGenerator) Err() error {
	return nil
}

// durations of each effect once trimmed with beep.Take
var durations = map[Sound]time.Duration{
	SoundCoin:    220 * time.Millisecond,
	SoundCollide: 150 * time.Millisecond,
	SoundSplash:  450 * time.Millisecond,
}

// NewEffect returns a finite streamer for the effect, or nil for an unknown sound.
func NewEffect(s Sound, sr beep.SampleRate, seed uint32) beep.Streamer {
	var gen beep.Streamer
	switch s {
	case SoundCoin:
		gen = NewCoinGenerator(sr)
	case SoundCollide:
		gen = NewBuzzGenerator(sr, 120)
	case SoundSplash:
		gen = NewSplashGenerator(sr, seed)
	default:
		return nil
	}
	return beep.Take(sr.N(durations[s]), gen)
}
