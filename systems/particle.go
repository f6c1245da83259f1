package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
)

// ParticleSystem advances decorative particles and culls expired ones
type ParticleSystem struct {
	ctx *engine.GameContext
}

func NewParticleSystem(ctx *engine.GameContext) *ParticleSystem {
	return &ParticleSystem{ctx: ctx}
}

func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

func (s *ParticleSystem) Update(ctx *engine.GameContext) {
	advanceParticles(ctx)
}

func advanceParticles(ctx *engine.GameContext) {
	live := ctx.Particles[:0]
	for _, p := range ctx.Particles {
		p.Update()
		if !p.IsDead() {
			live = append(live, p)
		}
	}
	clear(ctx.Particles[len(live):])
	ctx.Particles = live
}
