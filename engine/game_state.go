package engine

import (
	"fmt"
	"log"
	"slices"

	"github.com/lixenwraith/aelyra/core"
)

// validTransitions lists every screen change the game allows.
// Game → Victory and Game → GameOver are the only ones not triggered by the user.
var validTransitions = map[core.GameState][]core.GameState{
	core.StateMenu:     {core.StateGame, core.StateSettings},
	core.StateSettings: {core.StateMenu},
	core.StateGame:     {core.StateShop, core.StateVictory, core.StateGameOver, core.StateMenu},
	core.StateShop:     {core.StateGame},
	core.StateVictory:  {core.StateMenu},
	core.StateGameOver: {core.StateGame, core.StateMenu},
}

// CanTransition reports whether from → to is in the transition table
func CanTransition(from, to core.GameState) bool {
	return slices.Contains(validTransitions[from], to)
}

// Transition moves to a new screen. Invalid changes leave the state untouched.
func (ctx *GameContext) Transition(to core.GameState) error {
	from := ctx.State
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	ctx.State = to
	log.Printf("[%s] state %s -> %s", ctx.shortID(), from, to)
	return nil
}

// StartGame begins a fresh session in the first kingdom. Valid from Menu (Play) and GameOver (Retry).
func (ctx *GameContext) StartGame() error {
	if !CanTransition(ctx.State, core.StateGame) || ctx.State == core.StateShop {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ctx.State, core.StateGame)
	}
	ctx.ResetSession()
	if err := ctx.Transition(core.StateGame); err != nil {
		return err
	}
	ctx.ShowDialogue(welcomeText(ctx.Kingdom))
	return nil
}

// ReturnToMenu discards the session and shows the main menu
func (ctx *GameContext) ReturnToMenu() error {
	if err := ctx.Transition(core.StateMenu); err != nil {
		return err
	}
	ctx.ResetSession()
	return nil
}

// OpenShop pauses the game on the shop screen
func (ctx *GameContext) OpenShop() error {
	return ctx.Transition(core.StateShop)
}

// CloseShop resumes the game
func (ctx *GameContext) CloseShop() error {
	return ctx.Transition(core.StateGame)
}

// OpenSettings shows the settings screen from the menu
func (ctx *GameContext) OpenSettings() error {
	return ctx.Transition(core.StateSettings)
}

// CloseSettings returns to the menu, dropping any pending key capture
func (ctx *GameContext) CloseSettings() error {
	ctx.UI.Capture.Cancel()
	return ctx.Transition(core.StateMenu)
}
