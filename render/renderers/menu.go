package renderers

import (
	"fmt"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

// MenuRenderer draws the title screen
type MenuRenderer struct {
	gameCtx *engine.GameContext
}

func NewMenuRenderer(gameCtx *engine.GameContext) *MenuRenderer {
	return &MenuRenderer{gameCtx: gameCtx}
}

func (r *MenuRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State == core.StateMenu
}

func (r *MenuRenderer) Render(ctx render.RenderContext, s render.Surface) {
	top := ctx.ScreenHeight/2 - 6
	render.CenterTextOver(s, top, constants.GameTitle, render.ColorTitle)
	render.CenterTextOver(s, top+2, constants.GameSubtitle, render.ColorText)
	render.CenterTextOver(s, top+4, constants.MenuTagline, render.ColorTextDim)

	render.DrawButtons(s, render.MenuButtons(ctx.ScreenWidth, ctx.ScreenHeight), r.gameCtx.UI.MenuIndex)
	render.CenterTextOver(s, ctx.ScreenHeight-3, "Up/Down + Enter or click", render.ColorTextDim)
}

// GameOverRenderer draws the defeat screen
type GameOverRenderer struct {
	gameCtx *engine.GameContext
}

func NewGameOverRenderer(gameCtx *engine.GameContext) *GameOverRenderer {
	return &GameOverRenderer{gameCtx: gameCtx}
}

func (r *GameOverRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State == core.StateGameOver
}

func (r *GameOverRenderer) Render(ctx render.RenderContext, s render.Surface) {
	s.FillRect(0, 0, ctx.ScreenWidth, ctx.ScreenHeight, render.ColorGameOver.Scale(0.4))
	mid := ctx.ScreenHeight / 2
	render.CenterTextOver(s, mid-4, "GAME OVER", render.ColorDanger)
	if k := r.gameCtx.Kingdom; k != nil {
		render.CenterTextOver(s, mid-2, "Fallen in the "+k.Name, render.ColorText)
	}

	render.DrawButtons(s, render.GameOverButtons(ctx.ScreenWidth, ctx.ScreenHeight), r.gameCtx.UI.EndIndex)
}

// VictoryRenderer draws the closing screen with its fireworks
type VictoryRenderer struct {
	gameCtx *engine.GameContext
}

func NewVictoryRenderer(gameCtx *engine.GameContext) *VictoryRenderer {
	return &VictoryRenderer{gameCtx: gameCtx}
}

func (r *VictoryRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State == core.StateVictory
}

func (r *VictoryRenderer) Render(ctx render.RenderContext, s render.Surface) {
	s.FillRect(0, 0, ctx.ScreenWidth, ctx.ScreenHeight, render.ColorScreenBg)

	// Victory particles live in logical screen space, not the world
	drawParticles(s, r.gameCtx.Particles, ctx.LogicalToCell)

	mid := ctx.ScreenHeight / 2
	render.CenterTextOver(s, mid-4, "VICTORY!", render.ColorVictory)
	render.CenterTextOver(s, mid-2, "Aelyra is free. The four elements are yours.", render.ColorText)
	render.CenterTextOver(s, mid, fmt.Sprintf("Gold collected: %d", r.gameCtx.Player.Gold), render.ColorGold)

	render.DrawButtons(s, render.VictoryButtons(ctx.ScreenWidth, ctx.ScreenHeight), r.gameCtx.UI.EndIndex)
}
