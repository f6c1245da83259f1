package renderers

import (
	"math"

	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

// ProjectileRenderer draws shots; specials get a pulsing halo
type ProjectileRenderer struct {
	gameCtx *engine.GameContext
}

func NewProjectileRenderer(gameCtx *engine.GameContext) *ProjectileRenderer {
	return &ProjectileRenderer{gameCtx: gameCtx}
}

func (r *ProjectileRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...)
}

func (r *ProjectileRenderer) Render(ctx render.RenderContext, s render.Surface) {
	for _, p := range r.gameCtx.Projectiles {
		cx, cy := ctx.WorldToCell(p.X, p.Y)
		if cx < -1 || cx > float64(ctx.ScreenWidth)+1 {
			continue
		}

		if p.Tier.IsSpecial() {
			pulse := 1 + 0.15*math.Sin(float64(p.Pulse)*0.3)
			gx, gy := ctx.Cells(p.Size * pulse)
			s.FillCircle(cx, cy, gx, gy, p.Glow)
			rx, ry := ctx.Cells(p.Size * 0.6)
			s.FillCircle(cx, cy, rx, ry, p.Color)
			continue
		}

		rx, ry := ctx.Cells(p.Size)
		if rx < 0.5 && ry < 0.5 {
			s.SetFg(cell(cx), cell(cy), '•', p.Color)
			continue
		}
		s.FillCircle(cx, cy, rx, ry, p.Color)
	}
}
