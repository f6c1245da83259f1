package systems

import (
	"log"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// DeathSystem ends the game when the player's HP reaches zero
type DeathSystem struct {
	ctx *engine.GameContext
}

func NewDeathSystem(ctx *engine.GameContext) *DeathSystem {
	return &DeathSystem{ctx: ctx}
}

func (s *DeathSystem) Priority() int {
	return constants.PriorityDeath
}

func (s *DeathSystem) Update(ctx *engine.GameContext) {
	if ctx.State != core.StateGame || ctx.Player.HP > 0 {
		return
	}
	if err := ctx.Transition(core.StateGameOver); err != nil {
		log.Printf("game over: %v", err)
		return
	}
	ctx.KingdomTimer.Cancel()
	ctx.PlaySound(core.CueGameOver)
	log.Printf("player defeated in %s", ctx.Kingdom.Name)
}
