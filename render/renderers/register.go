package renderers

import (
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/render"
)

// Register wires every game renderer into the orchestrator at its layer
func Register(o *render.RenderOrchestrator, gameCtx *engine.GameContext, assets *asset.Library) {
	o.Register(NewBackgroundRenderer(gameCtx, assets), render.PriorityBackground)
	o.Register(NewEnemyRenderer(gameCtx, assets), render.PriorityEnemies)
	o.Register(NewProjectileRenderer(gameCtx), render.PriorityProjectiles)
	o.Register(NewParticleRenderer(gameCtx), render.PriorityParticles)
	o.Register(NewPlayerRenderer(gameCtx, assets), render.PriorityPlayer)
	o.Register(NewHUDRenderer(gameCtx), render.PriorityHUD)
	o.Register(NewDialogueRenderer(gameCtx), render.PriorityDialogue)

	o.Register(NewMenuRenderer(gameCtx), render.PriorityScreen)
	o.Register(NewSettingsRenderer(gameCtx), render.PriorityScreen)
	o.Register(NewGameOverRenderer(gameCtx), render.PriorityScreen)
	o.Register(NewVictoryRenderer(gameCtx), render.PriorityScreen)

	// Shop before notices so refusals stay readable over it
	o.Register(NewShopRenderer(gameCtx), render.PriorityOverlay)
	o.Register(NewNoticeRenderer(gameCtx), render.PriorityOverlay)
}
