package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/aelyra/core"
)

// soundCache stores pre-rendered unity-gain cue buffers
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundCueCount]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(cue core.SoundCue) *beep.Buffer {
	if cue < 0 || cue >= core.SoundCueCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[cue]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[cue]; buf != nil {
		return buf
	}

	s := GetSoundEffect(cue, c.format.SampleRate)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[cue] = buf
	return buf
}

// preload renders the cues heard within the first seconds of play
func (c *soundCache) preload() {
	c.get(core.CueShoot)
	c.get(core.CueHit)
	c.get(core.CueHurt)
}
