package systems

import (
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/input"
)

// PlayerSystem applies movement input, physics and cooldowns to the player
type PlayerSystem struct {
	ctx *engine.GameContext
}

func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

func (s *PlayerSystem) Update(ctx *engine.GameContext) {
	ctx.Player.Update(controlsFrom(ctx.Input), ctx.Kingdom.WorldWidth)
}

func controlsFrom(f input.Frame) components.Controls {
	return components.Controls{Left: f.Left, Right: f.Right, Jump: f.Jump}
}
