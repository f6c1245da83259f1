package engine

import "github.com/lixenwraith/aelyra/core"

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mock_sound_player.go -package=engine . SoundPlayer

// SoundPlayer receives gameplay audio cues. Play must not block the game loop.
type SoundPlayer interface {
	Play(cue core.SoundCue)
}

// NopSound discards every cue; used when audio is disabled or unavailable
type NopSound struct{}

func (NopSound) Play(core.SoundCue) {}
