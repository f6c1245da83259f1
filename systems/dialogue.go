package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
)

// DialogueSystem ages the on-screen message
type DialogueSystem struct {
	ctx *engine.GameContext
}

func NewDialogueSystem(ctx *engine.GameContext) *DialogueSystem {
	return &DialogueSystem{ctx: ctx}
}

func (s *DialogueSystem) Priority() int {
	return constants.PriorityDialogue
}

func (s *DialogueSystem) Update(ctx *engine.GameContext) {
	ctx.Dialogue.Tick()
}
