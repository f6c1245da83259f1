package systems

import (
	"log"

	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// ProjectileSystem moves shots and resolves their hits against the kingdom roster.
// Each shot hits at most one enemy and is consumed by the hit.
type ProjectileSystem struct {
	ctx *engine.GameContext
}

func NewProjectileSystem(ctx *engine.GameContext) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

func (s *ProjectileSystem) Update(ctx *engine.GameContext) {
	live := ctx.Projectiles[:0]
	for _, shot := range ctx.Projectiles {
		shot.Update()

		if s.resolveHit(ctx, shot) {
			continue
		}
		if shot.IsDead() {
			continue
		}
		live = append(live, shot)
	}
	clear(ctx.Projectiles[len(live):])
	ctx.Projectiles = live
}

// resolveHit damages the first enemy overlapping shot. Returns true if the shot hit.
func (s *ProjectileSystem) resolveHit(ctx *engine.GameContext, shot *components.Projectile) bool {
	box := shot.Rect()
	for _, e := range ctx.Kingdom.Enemies {
		if !box.Intersects(e.Rect()) {
			continue
		}

		cx, cy := e.Center()
		if e.TakeDamage(shot.Damage) {
			ctx.Kingdom.Remove(e.ID)
			ctx.Player.Gold += e.Reward
			ctx.SpawnParticles(cx, cy, core.RGBYellow, constants.KillParticleCount)
			ctx.PlaySound(core.CueKill)
			log.Printf("%s %s defeated in %s, +%d gold", e.Kind, e.ID.String()[:8], ctx.Kingdom.Name, e.Reward)
		} else {
			ctx.SpawnParticles(cx, cy, shot.Color, constants.HitParticleCount)
			ctx.PlaySound(core.CueHit)
		}
		return true
	}
	return false
}
