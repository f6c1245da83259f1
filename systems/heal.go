package systems

import (
	"fmt"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// HealSystem handles the heal input, available once Water is unlocked
type HealSystem struct {
	ctx *engine.GameContext
}

func NewHealSystem(ctx *engine.GameContext) *HealSystem {
	return &HealSystem{ctx: ctx}
}

func (s *HealSystem) Priority() int {
	return constants.PriorityHeal
}

func (s *HealSystem) Update(ctx *engine.GameContext) {
	p := ctx.Player
	if !ctx.Input.Heal || !p.HasElement(core.ElementWater) || p.HP >= p.MaxHP {
		return
	}

	healed := p.Heal(constants.HealAmount)
	if healed <= 0 {
		return
	}

	cx, cy := p.Center()
	ctx.SpawnParticles(cx, cy, core.RGBBlue, constants.HealParticleCount)
	ctx.ShowDialogue(fmt.Sprintf("Healed %d HP!", healed))
	ctx.PlaySound(core.CueHeal)
}
