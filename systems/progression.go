package systems

import (
	"fmt"
	"log"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// ProgressionSystem processes a kingdom clear exactly once:
// unlock the element, then either win or arm the delayed move to the next kingdom.
// A player at 0 HP never wins; DeathSystem ends the game on the same tick.
type ProgressionSystem struct {
	ctx *engine.GameContext
}

func NewProgressionSystem(ctx *engine.GameContext) *ProgressionSystem {
	return &ProgressionSystem{ctx: ctx}
}

func (s *ProgressionSystem) Priority() int {
	return constants.PriorityProgression
}

func (s *ProgressionSystem) Update(ctx *engine.GameContext) {
	k := ctx.Kingdom
	if !k.Cleared() || !k.MarkCompleted() {
		return
	}

	ctx.Player.UnlockElement(k.Element)
	ctx.ShowDialogue(fmt.Sprintf("Kingdom liberated! Element %s unlocked!", k.Element))
	log.Printf("%s cleared, %s unlocked", k.Name, k.Element)

	ctx.KingdomIndex++
	if ctx.IsFinalKingdom() {
		// Death checked later this tick takes precedence
		if ctx.Player.HP <= 0 {
			log.Printf("final kingdom cleared by a fallen player")
			return
		}
		if err := ctx.Transition(core.StateVictory); err != nil {
			log.Printf("victory: %v", err)
			return
		}
		ctx.Particles = nil
		ctx.PlaySound(core.CueVictory)
		return
	}

	ctx.KingdomTimer.Arm(constants.Ticks(constants.KingdomTransitionDelay))
	ctx.PlaySound(core.CueUnlock)
}
