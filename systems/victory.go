package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// Victory screen fireworks, in logical screen coordinates
const (
	victoryBurstsPerTick = 3
	victoryBurstSize     = 5
)

var victoryColors = [...]core.RGB{core.RGBYellow, core.RGBGold, {R: 255, G: 255, B: 150}}

// VictorySystem animates the victory screen; it runs instead of the game pipeline
type VictorySystem struct {
	ctx *engine.GameContext
}

func NewVictorySystem(ctx *engine.GameContext) *VictorySystem {
	return &VictorySystem{ctx: ctx}
}

func (s *VictorySystem) Priority() int {
	return constants.PriorityParticle
}

func (s *VictorySystem) Update(ctx *engine.GameContext) {
	for range victoryBurstsPerTick {
		x := float64(ctx.Rand.Intn(constants.ScreenWidth))
		y := float64(ctx.Rand.Intn(constants.ScreenHeight))
		color := victoryColors[ctx.Rand.Intn(len(victoryColors))]
		ctx.SpawnParticles(x, y, color, victoryBurstSize)
	}
	advanceParticles(ctx)
}
