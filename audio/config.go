package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "AELYRA_AUDIO_ENABLED"
	EnvMasterVolume = "AELYRA_MASTER_VOLUME"
	EnvSFXVolumes   = "AELYRA_SFX_VOLUMES"
	EnvSampleRate   = "AELYRA_SAMPLE_RATE"
)

// AudioConfig holds output and per-cue gain settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	MinSoundGap   time.Duration
	EffectVolumes map[core.SoundCue]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		MinSoundGap:  constants.MinSoundGap,
		EffectVolumes: map[core.SoundCue]float64{
			core.CueShoot:    0.4,
			core.CueSpecial:  0.8,
			core.CueHit:      0.5,
			core.CueKill:     0.7,
			core.CueHurt:     0.7,
			core.CueHeal:     0.6,
			core.CueUnlock:   0.9,
			core.CuePurchase: 0.6,
			core.CueDenied:   0.6,
			core.CueVictory:  1.0,
			core.CueGameOver: 0.9,
		},
	}
}

// Volume returns the effective gain of a cue
func (c *AudioConfig) Volume(cue core.SoundCue) float64 {
	v, ok := c.EffectVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

// LoadAudioConfig applies environment overrides on top of base.
// A nil base starts from DefaultAudioConfig. Malformed values are ignored.
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		*cfg = *base
		cfg.EffectVolumes = make(map[core.SoundCue]float64, len(base.EffectVolumes))
		for k, v := range base.EffectVolumes {
			cfg.EffectVolumes[k] = v
		}
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Per-cue volumes as a JSON object keyed by cue name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
				if v, ok := volumes[cue.String()]; ok {
					cfg.EffectVolumes[cue] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
