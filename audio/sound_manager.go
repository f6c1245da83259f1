package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// SoundManager plays gameplay cues through a beep mixer on the system speaker.
// Before Initialize succeeds every Play is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	lastPlayed  [core.SoundCueCount]time.Time
	initialized bool
}

// NewSoundManager creates a sound manager; a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		cache: newSoundCache(beep.SampleRate(cfg.SampleRate)),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Disabled audio stays silent and is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz, volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play mixes in the cue at its configured volume
func (sm *SoundManager) Play(cue core.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allow(cue, time.Now()) {
		return
	}

	buf := sm.cache.get(cue)
	if buf == nil {
		return
	}

	s := newVolume(buf.Streamer(0, buf.Len()), sm.cfg.Volume(cue))
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// allow rate-limits a cue to one trigger per MinSoundGap
func (sm *SoundManager) allow(cue core.SoundCue, now time.Time) bool {
	if cue < 0 || cue >= core.SoundCueCount {
		return false
	}
	if last := sm.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < sm.cfg.MinSoundGap {
		return false
	}
	sm.lastPlayed[cue] = now
	return true
}
