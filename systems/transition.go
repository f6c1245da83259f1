package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
)

// TransitionSystem fires the pending kingdom change once its delay has elapsed
type TransitionSystem struct {
	ctx *engine.GameContext
}

func NewTransitionSystem(ctx *engine.GameContext) *TransitionSystem {
	return &TransitionSystem{ctx: ctx}
}

func (s *TransitionSystem) Priority() int {
	return constants.PriorityTransition
}

func (s *TransitionSystem) Update(ctx *engine.GameContext) {
	if ctx.KingdomTimer.Tick() {
		ctx.EnterKingdom()
	}
}
