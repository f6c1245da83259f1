package systems

import "github.com/lixenwraith/aelyra/engine"

// NewGamePipeline registers every gameplay system in tick order
func NewGamePipeline(ctx *engine.GameContext) *engine.Pipeline {
	p := engine.NewPipeline()
	p.AddSystem(NewTransitionSystem(ctx))
	p.AddSystem(NewPlayerSystem(ctx))
	p.AddSystem(NewAttackSystem(ctx))
	p.AddSystem(NewHealSystem(ctx))
	p.AddSystem(NewEnemySystem(ctx))
	p.AddSystem(NewProjectileSystem(ctx))
	p.AddSystem(NewParticleSystem(ctx))
	p.AddSystem(NewProgressionSystem(ctx))
	p.AddSystem(NewDeathSystem(ctx))
	p.AddSystem(NewCameraSystem(ctx))
	p.AddSystem(NewDialogueSystem(ctx))
	return p
}
