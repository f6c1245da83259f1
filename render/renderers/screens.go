package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/input"
	"github.com/lixenwraith/aelyra/render"
)

// SettingsRenderer draws the keybinding list and the sound toggle
type SettingsRenderer struct {
	gameCtx *engine.GameContext
}

func NewSettingsRenderer(gameCtx *engine.GameContext) *SettingsRenderer {
	return &SettingsRenderer{gameCtx: gameCtx}
}

func (r *SettingsRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State == core.StateSettings
}

func (r *SettingsRenderer) Render(ctx render.RenderContext, s render.Surface) {
	render.CenterTextOver(s, 1, "SETTINGS", render.ColorTitle)

	buttons := render.SettingsButtons(ctx.ScreenWidth)
	for i := range buttons {
		buttons[i].Label = r.rowLabel(i)
	}
	render.DrawButtons(s, buttons, r.gameCtx.UI.SettingsIndex)

	hint := "Enter: rebind / toggle | Esc: back"
	if r.gameCtx.UI.Capture.Active() {
		hint = "Press a key to bind (Esc cancels)"
	}
	if len(buttons) > 0 {
		render.CenterTextOver(s, buttons[len(buttons)-1].Y+2, hint, render.ColorTextDim)
	}
}

func (r *SettingsRenderer) rowLabel(row int) string {
	g := r.gameCtx
	switch row {
	case engine.SettingsSoundRow():
		state := "On"
		if g.IsMuted.Load() {
			state = "Off"
		}
		return "Sound: " + state
	case engine.SettingsBackRow():
		return "Back"
	}

	a := input.Actions()[row]
	keys := strings.Join(g.Keys.KeysFor(a), ", ")
	if g.UI.Capture.Active() && g.UI.Capture.Action() == a {
		keys = "..."
	}
	return fmt.Sprintf("%-16s %s", a.Label(), keys)
}

// ShopRenderer draws the upgrade shop over the paused kingdom
type ShopRenderer struct {
	gameCtx *engine.GameContext
}

func NewShopRenderer(gameCtx *engine.GameContext) *ShopRenderer {
	return &ShopRenderer{gameCtx: gameCtx}
}

func (r *ShopRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State == core.StateShop
}

func (r *ShopRenderer) Render(ctx render.RenderContext, s render.Surface) {
	p := r.gameCtx.Player
	s.BlendRect(0, 0, ctx.ScreenWidth, ctx.ScreenHeight, render.ColorScreenBg, 0.6)

	buttons := render.ShopButtons(ctx.ScreenWidth, ctx.ScreenHeight)
	if len(buttons) == 0 {
		return
	}
	first, last := buttons[0], buttons[len(buttons)-1]
	drawBox(s, first.X-2, first.Y-4, first.Width+4, last.Y-first.Y+6, render.ColorGold, render.ColorPanel)
	render.CenterText(s, first.X, first.Width, first.Y-3, "SHOP", render.ColorTitle, render.ColorPanel)
	render.CenterText(s, first.X, first.Width, first.Y-2, fmt.Sprintf("Gold: %d", p.Gold), render.ColorGold, render.ColorPanel)

	items := engine.ShopItems()
	for i, item := range items {
		status := fmt.Sprintf("%d gold", item.Price)
		if p.SpecialTier >= item.Tier {
			status = "owned"
		}
		buttons[i].Label = fmt.Sprintf("%-14s %-24s %s", item.Name, item.Description, status)
	}
	buttons[len(items)].Label = "Close"
	render.DrawButtons(s, buttons, r.gameCtx.UI.ShopIndex)
}
