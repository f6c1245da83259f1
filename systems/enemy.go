package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// EnemySystem runs enemy AI and applies contact damage to the player
type EnemySystem struct {
	ctx *engine.GameContext
}

func NewEnemySystem(ctx *engine.GameContext) *EnemySystem {
	return &EnemySystem{ctx: ctx}
}

func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

func (s *EnemySystem) Update(ctx *engine.GameContext) {
	p := ctx.Player

	for _, e := range ctx.Kingdom.Enemies {
		e.Update(p.X, p.Y)

		if !e.Rect().Intersects(p.Rect()) {
			continue
		}
		// Invincibility frames make repeated contact a no-op
		if p.TakeDamage(e.Attack) > 0 {
			cx, cy := p.Center()
			ctx.SpawnParticles(cx, cy, core.RGBRed, constants.DamageParticleCount)
			ctx.PlaySound(core.CueHurt)
		}
	}
}
