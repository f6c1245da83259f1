package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// AttackSystem spawns player projectiles.
// A special gesture fires the purchased special tier instead of a basic shot when the special is ready.
type AttackSystem struct {
	ctx *engine.GameContext
}

func NewAttackSystem(ctx *engine.GameContext) *AttackSystem {
	return &AttackSystem{ctx: ctx}
}

func (s *AttackSystem) Priority() int {
	return constants.PriorityAttack
}

func (s *AttackSystem) Update(ctx *engine.GameContext) {
	p := ctx.Player

	if ctx.Input.Special {
		if shot := p.ShootSpecial(); shot != nil {
			ctx.AddProjectile(shot)
			ctx.PlaySound(core.CueSpecial)
			return
		}
	}

	if ctx.Input.Fire {
		if shot := p.Shoot(); shot != nil {
			ctx.AddProjectile(shot)
			ctx.PlaySound(core.CueShoot)
		}
	}
}
