package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays synthesized effects through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
	played      uint32
}

// NewSoundManager creates a sound manager. volume is linear, 0.0 - 1.0.
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the effect on the mixer and returns immediately.
// Unknown sounds and an uninitialized speaker are ignored.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.played++
	streamer := NewEffect(s, sampleRate, sm.played*2654435761)
	if streamer == nil {
		sm.logger.Debug("unknown sound", "sound", s)
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, sm.volume))
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// withVolume scales a streamer by a linear volume using beep's base-2 gain.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(volume),
	}
}

// Open returns a speaker-backed Player, or Silent when the speaker cannot
// be opened (no audio device, headless session). The returned cleanup is
// always safe to call.
func Open(volume float64, logger *log.Logger) (Player, func()) {
	sm := NewSoundManager(volume, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return Silent{}, func() {}
	}
	logger.Debug("audio ready", "sample_rate", int(sampleRate), "volume", volume)
	return sm, sm.Cleanup
}
