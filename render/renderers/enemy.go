package renderers

import (
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

var (
	enemyOutline = core.RGBBlack
	enemyEye     = core.RGBRed
)

// EnemyRenderer draws every enemy of the current kingdom with an HP bar above it
type EnemyRenderer struct {
	gameCtx *engine.GameContext
	assets  *asset.Library
}

func NewEnemyRenderer(gameCtx *engine.GameContext, assets *asset.Library) *EnemyRenderer {
	return &EnemyRenderer{gameCtx: gameCtx, assets: assets}
}

func (r *EnemyRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...) && r.gameCtx.Kingdom != nil
}

func (r *EnemyRenderer) Render(ctx render.RenderContext, s render.Surface) {
	for _, e := range r.gameCtx.Kingdom.Enemies {
		x, y, w, h := ctx.WorldRect(e.Rect())
		if x+w < 0 || x >= ctx.ScreenWidth {
			continue
		}

		// Sprite faces the last chase direction
		if img := sprite(r.assets, asset.Monster, 0, w, h, e.LastDX < 0); img != nil {
			s.Blit(img, x, y)
		} else {
			r.drawFallback(ctx, s, e)
		}

		barY := y - 1
		if e.Kind == components.KindBoss {
			s.Text(x, barY-1, "BOSS", render.ColorDanger)
		}
		drawBar(s, x, barY, max(w, 3), e.HPRatio(), render.ColorHPFull, render.ColorHPEmpty)
	}
}

// drawFallback is an outlined element-colored disc with two red eyes
func (r *EnemyRenderer) drawFallback(ctx render.RenderContext, s render.Surface, e *components.Enemy) {
	cx, cy := ctx.WorldToCell(e.Center())
	rx, ry := ctx.Cells(e.Size / 2)
	ox, oy := ctx.Cells(1)

	s.FillCircle(cx, cy, rx+ox, ry+oy, enemyOutline)
	s.FillCircle(cx, cy, rx, ry, e.Element.Palette().Enemy)

	eyeDX, _ := ctx.Cells(8)
	_, eyeDY := ctx.Cells(5)
	s.SetFg(cell(cx-eyeDX), cell(cy-eyeDY), '●', enemyEye)
	s.SetFg(cell(cx+eyeDX), cell(cy-eyeDY), '●', enemyEye)
}
