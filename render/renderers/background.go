package renderers

import (
	"math"

	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

// BackgroundRenderer paints the current kingdom: animated background, then still image, then flat color
type BackgroundRenderer struct {
	gameCtx *engine.GameContext
	assets  *asset.Library
}

func NewBackgroundRenderer(gameCtx *engine.GameContext, assets *asset.Library) *BackgroundRenderer {
	return &BackgroundRenderer{gameCtx: gameCtx, assets: assets}
}

func (r *BackgroundRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...) && r.gameCtx.Kingdom != nil
}

func (r *BackgroundRenderer) Render(ctx render.RenderContext, s render.Surface) {
	k := r.gameCtx.Kingdom
	w := ctx.ScreenWidth
	h := ctx.GameHeight

	// Backgrounds are screen-fixed like the original artwork, not scrolled
	if img := load(r.assets, k.AnimKey); img != nil {
		s.Blit(img.Cells(img.FrameAt(ctx.Frame), w, h, false), 0, ctx.GameTop)
		return
	}
	if img := load(r.assets, k.ImageKey); img != nil {
		s.Blit(img.Cells(0, w, h, false), 0, ctx.GameTop)
		return
	}

	s.FillRect(0, ctx.GameTop, w, h, k.Background)

	// Ground strip below the standing player
	_, gy := ctx.WorldToCell(0, constants.PlayerGroundLevel+constants.PlayerHeight)
	ground := int(math.Floor(gy))
	if ground < ctx.GameTop+h {
		s.FillRect(0, ground, w, ctx.GameTop+h-ground, k.Background.Scale(0.6))
	}
}
