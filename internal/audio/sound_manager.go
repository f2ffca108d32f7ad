// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker. Every operation degrades to a no-op when
// no audio device is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// SoundManager plays game sounds. It implements flappy.Events so it can be
// handed straight to the simulation.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	mixer       *beep.Mixer
	initialized bool
	played      map[SoundType]int
}

// Ensure SoundManager implements Events
var _ flappy.Events = (*SoundManager)(nil)

// NewSoundManager creates a sound manager from the audio config.
// Nothing is played until Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		rate:    beep.SampleRate(rate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		mixer:   &beep.Mixer{},
		played:  make(map[SoundType]int),
	}
}

// Initialize opens the speaker. Disabled audio is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
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

// Toggle flips sound on or off and returns the new state.
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.enabled = !sm.enabled
	return sm.enabled
}

// Enabled reports whether sounds are currently allowed.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Played returns how many times a sound was started.
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

// Play starts a sound without waiting for it to finish.
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled || !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.rate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[st]++
}

// OnFlap implements flappy.Events.
func (sm *SoundManager) OnFlap() { sm.Play(SoundFlap) }

// OnScore implements flappy.Events.
func (sm *SoundManager) OnScore(int) { sm.Play(SoundScore) }

// OnCollision implements flappy.Events.
func (sm *SoundManager) OnCollision(flappy.Outcome) { sm.Play(SoundHit) }

// OnSessionEnd implements flappy.Events.
func (sm *SoundManager) OnSessionEnd(int, int) { sm.Play(SoundGameOver) }
