package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; larger values add latency
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master gain in [0, 1]
	DefaultMasterVolume = 0.5
)

// Cue durations
const (
	ShootSoundDuration   = 60 * time.Millisecond
	SpecialSoundDuration = 350 * time.Millisecond
	HitSoundDuration     = 70 * time.Millisecond
	KillSoundDuration    = 220 * time.Millisecond
	HurtSoundDuration    = 120 * time.Millisecond
	HealSoundDuration    = 400 * time.Millisecond
	UnlockNoteDuration   = 160 * time.Millisecond
	PurchaseNoteDuration = 90 * time.Millisecond
	DeniedSoundDuration  = 150 * time.Millisecond
	VictoryNoteDuration  = 220 * time.Millisecond
	GameOverNoteDuration = 300 * time.Millisecond
	SoundAttack          = 5 * time.Millisecond
	SoundRelease         = 40 * time.Millisecond
)

// MinSoundGap suppresses a cue retriggered faster than this (held fire)
const MinSoundGap = 40 * time.Millisecond
