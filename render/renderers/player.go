package renderers

import (
	"math"

	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

var (
	playerBody = core.RGB{R: 100, G: 150, B: 255}
	playerHead = core.RGB{R: 255, G: 220, B: 180}
	playerLegs = core.RGBBlue
)

// PlayerRenderer draws the hero, blinking while invincible
type PlayerRenderer struct {
	gameCtx *engine.GameContext
	assets  *asset.Library
}

func NewPlayerRenderer(gameCtx *engine.GameContext, assets *asset.Library) *PlayerRenderer {
	return &PlayerRenderer{gameCtx: gameCtx, assets: assets}
}

func (r *PlayerRenderer) IsVisible(ctx render.RenderContext) bool {
	return inStates(ctx, worldStates...) && PlayerVisible(r.gameCtx.Player)
}

// PlayerVisible implements the invincibility blink: hidden for 5 of every 10 ticks
func PlayerVisible(p *components.Player) bool {
	return p.InvincibleFrames <= 0 || p.InvincibleFrames%10 >= 5
}

func (r *PlayerRenderer) Render(ctx render.RenderContext, s render.Surface) {
	p := r.gameCtx.Player
	x, y, w, h := ctx.WorldRect(p.Rect())
	mirrored := p.Facing == core.DirLeft

	name := asset.PlayerIdle
	if p.Anim == components.AnimWalking {
		name = asset.PlayerWalk(p.AnimFrame)
	}
	if img := sprite(r.assets, name, 0, w, h, mirrored); img != nil {
		s.Blit(img, x, y)
	} else {
		r.drawFallback(s, p, x, y, w, h)
	}

	// Active element indicator once anything beyond the base element is unlocked
	if p.Elements.Len() > 1 {
		s.SetFg(x+w/2, y-1, '◆', p.Elements.Strongest().Palette().Indicator)
	}
}

// drawFallback draws a stick figure scaled to the hit box
func (r *PlayerRenderer) drawFallback(s render.Surface, p *components.Player, x, y, w, h int) {
	walk := 0
	if p.IsMoving {
		walk = int(math.Round(math.Sin(float64(p.AnimFrame) * math.Pi / 2)))
	}
	fw, fh := float64(w), float64(h)
	cx := x + w/2

	// Head
	s.FillCircle(float64(x)+fw/2, float64(y)+fh*0.18, max(fw*0.18, 0.6), max(fh*0.16, 0.6), playerHead)

	// Body
	bodyTop := y + int(fh*0.35)
	bodyH := max(int(fh*0.35), 1)
	bodyW := max(int(fw*0.4), 1)
	s.FillRect(cx-bodyW/2, bodyTop, bodyW, bodyH, playerBody)

	// Arms point the way the player faces
	armY := bodyTop + bodyH/3
	switch p.Facing {
	case core.DirLeft:
		s.Line(cx-bodyW/2-1, armY, x, armY+1, '─', playerHead)
	default:
		s.Line(cx+bodyW/2, armY, x+w-1, armY+1, '─', playerHead)
	}

	// Legs swing with the walk cycle
	legTop := bodyTop + bodyH
	feet := y + h - 1
	s.Line(cx-bodyW/4, legTop, cx-bodyW/4-1+walk, feet, '┃', playerLegs)
	s.Line(cx+bodyW/4, legTop, cx+bodyW/4+1-walk, feet, '┃', playerLegs)
}
