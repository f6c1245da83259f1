package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators. Every streamer is built at unity gain; cue volume is applied at play time.

// tone is one enveloped note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, constants.SoundAttack, min(constants.SoundRelease, d/2), rate)
}

// melody plays notes back to back, each lasting d
func melody(d time.Duration, wave WaveType, rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, tone(f, d, wave, rate))
	}
	return beep.Seq(notes...)
}

// CreateShootSound generates a short blip for a basic shot
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(660.0, constants.ShootSoundDuration, WaveSquare, rate), 0.5)
}

// CreateSpecialSound generates a heavy layered blast for a special shot
func CreateSpecialSound(rate beep.SampleRate) beep.Streamer {
	d := constants.SpecialSoundDuration
	return beep.Mix(
		newVolume(tone(110.0, d, WaveSaw, rate), 0.5),
		newVolume(tone(220.0, d, WaveSine, rate), 0.3),
		newVolume(tone(0, d/2, WaveNoise, rate), 0.2),
	)
}

// CreateHitSound generates a noise tick for a non-lethal hit
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(0, constants.HitSoundDuration, WaveNoise, rate), 0.6)
}

// CreateKillSound generates a crunch with a low thump
func CreateKillSound(rate beep.SampleRate) beep.Streamer {
	d := constants.KillSoundDuration
	return beep.Mix(
		newVolume(tone(0, d, WaveNoise, rate), 0.4),
		newVolume(tone(90.0, d, WaveSine, rate), 0.6),
	)
}

// CreateHurtSound generates a harsh low buzz for contact damage
func CreateHurtSound(rate beep.SampleRate) beep.Streamer {
	return tone(100.0, constants.HurtSoundDuration, WaveSaw, rate)
}

// CreateHealSound generates a rising three-note arpeggio (C5 E5 G5)
func CreateHealSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(constants.HealSoundDuration/3, WaveSine, rate, 523.25, 659.25, 783.99), 0.8)
}

// CreateUnlockSound generates a fanfare for a liberated kingdom
func CreateUnlockSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(constants.UnlockNoteDuration, WaveSquare, rate, 523.25, 659.25, 783.99, 1046.50), 0.5)
}

// CreatePurchaseSound generates a two-note chime (B5 E6)
func CreatePurchaseSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(constants.PurchaseNoteDuration, WaveSquare, rate, 987.77, 1318.51), 0.5)
}

// CreateDeniedSound generates the refusal buzz
func CreateDeniedSound(rate beep.SampleRate) beep.Streamer {
	return tone(120.0, constants.DeniedSoundDuration, WaveSaw, rate)
}

// CreateVictorySound generates the closing fanfare
func CreateVictorySound(rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(constants.VictoryNoteDuration, WaveSquare, rate, 523.25, 659.25, 783.99, 1046.50, 783.99, 1046.50), 0.5)
}

// CreateGameOverSound generates a falling minor phrase
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(constants.GameOverNoteDuration, WaveSine, rate, 392.00, 311.13, 261.63, 196.00), 0.8)
}

// GetSoundEffect returns the unity-gain streamer for a cue, nil for an unknown cue
func GetSoundEffect(cue core.SoundCue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueShoot:
		return CreateShootSound(rate)
	case core.CueSpecial:
		return CreateSpecialSound(rate)
	case core.CueHit:
		return CreateHitSound(rate)
	case core.CueKill:
		return CreateKillSound(rate)
	case core.CueHurt:
		return CreateHurtSound(rate)
	case core.CueHeal:
		return CreateHealSound(rate)
	case core.CueUnlock:
		return CreateUnlockSound(rate)
	case core.CuePurchase:
		return CreatePurchaseSound(rate)
	case core.CueDenied:
		return CreateDeniedSound(rate)
	case core.CueVictory:
		return CreateVictorySound(rate)
	case core.CueGameOver:
		return CreateGameOverSound(rate)
	default:
		return nil
	}
}
