package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/input"
	"github.com/lixenwraith/aelyra/render"
)

const (
	hudMargin  = 2
	hpBarWidth = 20
)

var specialTierNames = [...]string{
	constants.SpecialTierBase:  "Special",
	constants.SpecialTierMega:  "Mega",
	constants.SpecialTierUltra: "Ultra",
}

// HUDRenderer draws the top status panel
type HUDRenderer struct {
	gameCtx *engine.GameContext
}

func NewHUDRenderer(gameCtx *engine.GameContext) *HUDRenderer {
	return &HUDRenderer{gameCtx: gameCtx}
}

func (r *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...)
}

func (r *HUDRenderer) Render(ctx render.RenderContext, s render.Surface) {
	g := r.gameCtx
	p := g.Player
	s.FillRect(0, 0, ctx.ScreenWidth, constants.HUDRows, render.ColorPanel)

	// Row 0: HP, kingdom, enemies left
	x := hudMargin
	x += s.Text(x, 0, "HP ", render.ColorText)
	drawBar(s, x, 0, hpBarWidth, float64(p.HP)/float64(max(p.MaxHP, 1)), render.ColorHPFull, render.ColorHPEmpty)
	label := fmt.Sprintf("%d/%d", p.HP, p.MaxHP)
	s.Text(x+(hpBarWidth-len(label))/2, 0, label, render.ColorText)
	x += hpBarWidth + 2

	if k := g.Kingdom; k != nil {
		x += s.Text(x, 0, k.Name, render.ColorHighlight) + 2
		s.Text(x, 0, fmt.Sprintf("Enemies: %d", len(k.Enemies)), render.ColorText)
	}

	// Row 1: element slots, gold, special
	x = hudMargin
	for _, e := range core.Elements {
		c := render.ColorSlotLocked
		if p.HasElement(e) {
			c = e.Palette().HUD
		}
		s.SetFg(x, 1, '●', c)
		x += 2
	}
	x++
	x += s.Text(x, 1, fmt.Sprintf("Gold: %d", p.Gold), render.ColorGold) + 2
	x += s.Text(x, 1, specialStatus(p.SpecialTier, p.SpecialCooldown), render.ColorText) + 2
	if g.IsMuted.Load() {
		s.Text(x, 1, "[muted]", render.ColorTextDim)
	}

	// Row 2: controls from the live key table
	controls := ControlsLine(g.Keys)
	s.Text(max(ctx.ScreenWidth-len([]rune(controls))-hudMargin, 0), 2, controls, render.ColorTextDim)
}

func specialStatus(tier, cooldown int) string {
	name := specialTierNames[min(max(tier, 0), len(specialTierNames)-1)]
	if cooldown > 0 {
		secs := (cooldown + constants.TicksPerSecond - 1) / constants.TicksPerSecond
		return fmt.Sprintf("%s: %ds", name, secs)
	}
	return name + ": READY"
}

// ControlsLine summarizes the current bindings
func ControlsLine(kt *input.KeyTable) string {
	keys := func(a input.Action) string {
		k := kt.KeysFor(a)
		if len(k) == 0 {
			return "-"
		}
		return strings.Join(k, "/")
	}
	return fmt.Sprintf("Move %s %s | Jump %s | Fire %s/LMB | Special %s/2xLMB | Heal %s | Shop %s | Esc Menu",
		keys(input.ActionMoveLeft), keys(input.ActionMoveRight), keys(input.ActionJump),
		keys(input.ActionFire), keys(input.ActionSpecial), keys(input.ActionHeal), keys(input.ActionShop))
}
