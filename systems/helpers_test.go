package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"go.uber.org/mock/gomock"
)

// newPlayingContext returns a context in the Game state with a gomock sound sink.
// Tests declare the cues they expect; any other cue fails the test.
func newPlayingContext(t *testing.T) (*engine.GameContext, *engine.MockSoundPlayer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sound := engine.NewMockSoundPlayer(ctrl)

	ctx := engine.NewGameContext(sound, nil, rand.New(rand.NewSource(11)), 120, 40)
	if err := ctx.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	return ctx, sound
}

// isolate leaves exactly the given enemies in the current kingdom
func isolate(ctx *engine.GameContext, enemies ...*components.Enemy) {
	ctx.Kingdom.Enemies = enemies
}

// groundedEnemy creates an enemy standing on the ground at x, owned by the current kingdom's level
func groundedEnemy(ctx *engine.GameContext, x float64, kind components.EnemyKind) *components.Enemy {
	return components.NewEnemy(x, constants.EnemyGroundLevel, kind, ctx.Kingdom.Element, ctx.Kingdom.Index, ctx.Kingdom.WorldWidth, ctx.Rand)
}

// parkPlayer moves the player onto the ground far from x
func parkPlayer(ctx *engine.GameContext, x float64) {
	p := ctx.Player
	p.X, p.Y = x, constants.PlayerGroundLevel
	p.OnGround = true
	p.VelocityY = 0
	p.Facing = core.DirRight
}
