package renderers

import (
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

// ParticleRenderer draws fading particles in world space
type ParticleRenderer struct {
	gameCtx *engine.GameContext
}

func NewParticleRenderer(gameCtx *engine.GameContext) *ParticleRenderer {
	return &ParticleRenderer{gameCtx: gameCtx}
}

func (r *ParticleRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...)
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, s render.Surface) {
	drawParticles(s, r.gameCtx.Particles, ctx.WorldToCell)
}

// drawParticles fades each particle toward the background it sits on
func drawParticles(s render.Surface, particles []*components.Particle, toCell func(x, y float64) (float64, float64)) {
	for _, p := range particles {
		fx, fy := toCell(p.X, p.Y)
		x, y := cell(fx), cell(fy)
		fade := p.Fade()
		glyph := '•'
		if fade < 0.4 {
			glyph = '·'
		}
		s.SetFg(x, y, glyph, s.Background(x, y).Blend(p.Color, fade))
	}
}
