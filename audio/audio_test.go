package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume != constants.DefaultMasterVolume {
		t.Errorf("Expected master volume %v, got %v", constants.DefaultMasterVolume, cfg.MasterVolume)
	}
	for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
		if _, ok := cfg.EffectVolumes[cue]; !ok {
			t.Errorf("Missing volume for cue %s", cue)
		}
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantEnabled bool
		wantVolume  float64
		wantRate    int
	}{
		{"No overrides", nil, true, constants.DefaultMasterVolume, constants.AudioSampleRate},
		{"Disabled", map[string]string{EnvAudioEnabled: "false"}, false, constants.DefaultMasterVolume, constants.AudioSampleRate},
		{"Volume 75", map[string]string{EnvMasterVolume: "75"}, true, 0.75, constants.AudioSampleRate},
		{"Volume clamps high", map[string]string{EnvMasterVolume: "250"}, true, 1, constants.AudioSampleRate},
		{"Volume clamps low", map[string]string{EnvMasterVolume: "-5"}, true, 0, constants.AudioSampleRate},
		{"Malformed ignored", map[string]string{EnvAudioEnabled: "maybe", EnvMasterVolume: "loud"}, true, constants.DefaultMasterVolume, constants.AudioSampleRate},
		{"Sample rate", map[string]string{EnvSampleRate: "48000"}, true, constants.DefaultMasterVolume, 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := LoadAudioConfig(nil)
			if cfg.Enabled != tt.wantEnabled || cfg.MasterVolume != tt.wantVolume || cfg.SampleRate != tt.wantRate {
				t.Errorf("Got enabled=%v volume=%v rate=%d", cfg.Enabled, cfg.MasterVolume, cfg.SampleRate)
			}
		})
	}
}

func TestLoadAudioConfigKeepsBase(t *testing.T) {
	base := DefaultAudioConfig()
	base.Enabled = false
	base.MasterVolume = 0.2

	t.Setenv(EnvSFXVolumes, `{"shoot": 0.1, "bogus": 1}`)
	cfg := LoadAudioConfig(base)

	if cfg.Enabled || cfg.MasterVolume != 0.2 {
		t.Errorf("Base settings lost: %+v", cfg)
	}
	if cfg.EffectVolumes[core.CueShoot] != 0.1 {
		t.Errorf("Expected shoot volume 0.1, got %v", cfg.EffectVolumes[core.CueShoot])
	}
	if base.EffectVolumes[core.CueShoot] == 0.1 {
		t.Error("Override leaked into the base config")
	}
}

func TestOscillatorAndEnvelopeLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 10 * time.Millisecond

	if got := drain(NewOscillator(440, d, WaveSquare, rate)); got != rate.N(d) {
		t.Errorf("Oscillator produced %d samples, want %d", got, rate.N(d))
	}
	if got := drain(melody(d, WaveSine, rate, 440, 880)); got != 2*rate.N(d) {
		t.Errorf("Melody produced %d samples, want %d", got, 2*rate.N(d))
	}
}

func TestEveryCueHasEffect(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
		s := GetSoundEffect(cue, rate)
		if s == nil {
			t.Errorf("No effect for cue %s", cue)
			continue
		}
		if drain(s) == 0 {
			t.Errorf("Cue %s is empty", cue)
		}
	}
	if GetSoundEffect(core.SoundCueCount, rate) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestSoundCacheReuse(t *testing.T) {
	c := newSoundCache(beep.SampleRate(constants.AudioSampleRate))
	a := c.get(core.CueShoot)
	if a == nil {
		t.Fatal("Expected a rendered buffer")
	}
	if want := c.format.SampleRate.N(constants.ShootSoundDuration); a.Len() != want {
		t.Errorf("Buffer length %d, want %d", a.Len(), want)
	}
	if c.get(core.CueShoot) != a {
		t.Error("Expected cached buffer reuse")
	}
	if c.get(-1) != nil {
		t.Error("Expected nil for invalid cue")
	}
}

func TestSoundManagerSilentWithoutInit(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled audio should not fail: %v", err)
	}
	for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
		sm.Play(cue)
	}
	sm.Cleanup()
}

func TestSoundManagerRateLimit(t *testing.T) {
	sm := NewSoundManager(nil)
	now := time.Now()

	if !sm.allow(core.CueShoot, now) {
		t.Fatal("First trigger refused")
	}
	if sm.allow(core.CueShoot, now.Add(constants.MinSoundGap/2)) {
		t.Error("Retrigger inside the gap should be refused")
	}
	if !sm.allow(core.CueHit, now) {
		t.Error("Other cues are limited independently")
	}
	if !sm.allow(core.CueShoot, now.Add(constants.MinSoundGap)) {
		t.Error("Retrigger after the gap should pass")
	}
}
