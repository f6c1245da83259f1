package core

// SoundCue represents the gameplay events that have an audio cue
type SoundCue int

const (
	CueShoot    SoundCue = iota // Basic projectile fired
	CueSpecial                  // Special attack fired
	CueHit                      // Projectile hit, target survived
	CueKill                     // Enemy destroyed
	CueHurt                     // Player took contact damage
	CueHeal                     // Water heal applied
	CueUnlock                   // Kingdom cleared, element unlocked
	CuePurchase                 // Shop upgrade bought
	CueDenied                   // Shop purchase refused
	CueVictory                  // Last kingdom cleared
	CueGameOver                 // Player died
	SoundCueCount
)

var cueNames = [SoundCueCount]string{
	"shoot", "special", "hit", "kill", "hurt", "heal",
	"unlock", "purchase", "denied", "victory", "gameover",
}

func (c SoundCue) String() string {
	if c < 0 || c >= SoundCueCount {
		return "unknown"
	}
	return cueNames[c]
}
