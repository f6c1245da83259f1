package engine

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/input"
)

// GameContext is the session object owned by the main loop.
// Everything the systems and renderers touch hangs off it; there are no package globals.
type GameContext struct {
	// ===== Immutable After Init =====

	Defs  []KingdomDef    // Campaign order
	Keys  *input.KeyTable // Shared with the input machine; settings rebind in place
	Sound SoundPlayer
	Rand  *rand.Rand

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Loop tick counter
	IsMuted     atomic.Bool  // Read by the audio sink

	// ===== Main-Loop Exclusive =====
	// Mutated only from the loop goroutine. No synchronization required.

	Width, Height int // Terminal dimensions

	SessionID uuid.UUID
	State     core.GameState
	Input     input.Frame // Gameplay input sampled for the current tick

	Player       *components.Player
	Kingdoms     []*Kingdom
	Kingdom      *Kingdom // Kingdom being played; lags KingdomIndex during a transition
	KingdomIndex int      // Next kingdom to enter

	Projectiles []*components.Projectile
	Particles   []*components.Particle
	Camera      components.Camera

	Dialogue     Dialogue
	KingdomTimer TickTimer // Armed between a kingdom clear and the next kingdom
	UI           UIState
}

// NewGameContext creates a context sitting on the main menu with a session ready to start.
// A nil sound sink is replaced by NopSound; a nil rng is seeded from the clock.
func NewGameContext(sound SoundPlayer, keys *input.KeyTable, rng *rand.Rand, width, height int) *GameContext {
	if sound == nil {
		sound = NopSound{}
	}
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ctx := &GameContext{
		Defs:   DefaultKingdoms(),
		Keys:   keys,
		Sound:  sound,
		Rand:   rng,
		Width:  width,
		Height: height,
		State:  core.StateMenu,
	}
	ctx.ResetSession()
	return ctx
}

// ResetSession discards all progress: new player, fresh rosters, first kingdom.
// Nothing survives across sessions.
func (ctx *GameContext) ResetSession() {
	ctx.SessionID = uuid.New()
	ctx.Player = components.NewPlayer(constants.PlayerStartX, constants.PlayerStartY)

	ctx.Kingdoms = make([]*Kingdom, len(ctx.Defs))
	for i, def := range ctx.Defs {
		ctx.Kingdoms[i] = NewKingdom(def, i, ctx.Rand)
	}
	ctx.KingdomIndex = 0
	ctx.Kingdom = ctx.Kingdoms[0]

	ctx.Projectiles = nil
	ctx.Particles = nil
	ctx.Camera.Reset()
	ctx.Dialogue.Clear()
	ctx.KingdomTimer.Cancel()
	ctx.Input = input.Frame{}
	ctx.UI.Reset()

	log.Printf("[%s] new session", ctx.shortID())
}

// EnterKingdom makes the kingdom at KingdomIndex current and respawns the player at its entrance
func (ctx *GameContext) EnterKingdom() {
	if ctx.KingdomIndex >= len(ctx.Kingdoms) {
		return
	}
	ctx.Kingdom = ctx.Kingdoms[ctx.KingdomIndex]

	p := ctx.Player
	p.X, p.Y = constants.PlayerRespawnX, constants.PlayerRespawnY
	p.VelocityY = 0
	ctx.Projectiles = nil

	ctx.ShowDialogue(welcomeText(ctx.Kingdom))
	log.Printf("[%s] entered %s", ctx.shortID(), ctx.Kingdom.Name)
}

// IsFinalKingdom reports whether no kingdom remains after the current index
func (ctx *GameContext) IsFinalKingdom() bool {
	return ctx.KingdomIndex >= len(ctx.Kingdoms)
}

// ShowDialogue displays a message for the standard dialogue duration
func (ctx *GameContext) ShowDialogue(text string) {
	ctx.Dialogue.Show(text)
}

// PlaySound forwards a cue to the audio sink unless muted
func (ctx *GameContext) PlaySound(cue core.SoundCue) {
	if ctx.IsMuted.Load() {
		return
	}
	ctx.Sound.Play(cue)
}

// SpawnParticles adds a burst of count particles at (x, y)
func (ctx *GameContext) SpawnParticles(x, y float64, color core.RGB, count int) {
	ctx.Particles = append(ctx.Particles, components.NewParticleBurst(x, y, color, count, ctx.Rand)...)
}

// AddProjectile appends a fired shot to the active list; nil is ignored
func (ctx *GameContext) AddProjectile(p *components.Projectile) {
	if p != nil {
		ctx.Projectiles = append(ctx.Projectiles, p)
	}
}

// Resize records new terminal dimensions
func (ctx *GameContext) Resize(width, height int) {
	ctx.Width, ctx.Height = width, height
}

// GetFrameNumber returns the current loop tick
func (ctx *GameContext) GetFrameNumber() int64 {
	return ctx.FrameNumber.Load()
}

// IncrementFrameNumber advances the tick counter (called by the main loop)
func (ctx *GameContext) IncrementFrameNumber() int64 {
	return ctx.FrameNumber.Add(1)
}

// ToggleMute flips the audio mute flag and returns the new value
func (ctx *GameContext) ToggleMute() bool {
	muted := !ctx.IsMuted.Load()
	ctx.IsMuted.Store(muted)
	return muted
}

func (ctx *GameContext) shortID() string {
	return ctx.SessionID.String()[:8]
}

func welcomeText(k *Kingdom) string {
	return fmt.Sprintf("Welcome to the %s...", k.Name)
}
