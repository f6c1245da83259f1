package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
	"github.com/lixenwraith/aelyra/input"
	"github.com/lixenwraith/aelyra/modes"
	"github.com/lixenwraith/aelyra/render"
	"github.com/lixenwraith/aelyra/render/renderers"
	"github.com/lixenwraith/aelyra/systems"
)

// game owns the per-tick sequence: input sample, update, render
type game struct {
	ctx          *engine.GameContext
	machine      *input.Machine
	handler      *modes.InputHandler
	pipeline     *engine.Pipeline
	victory      engine.System
	orchestrator *render.RenderOrchestrator
}

func newGame(ctx *engine.GameContext, screen tcell.Screen, mode render.ColorMode, assets *asset.Library) *game {
	machine := input.NewMachine(ctx.Keys)
	orchestrator := render.NewRenderOrchestrator(screen, mode)
	renderers.Register(orchestrator, ctx, assets)

	return &game{
		ctx:          ctx,
		machine:      machine,
		handler:      modes.NewInputHandler(ctx, machine),
		pipeline:     systems.NewGamePipeline(ctx),
		victory:      systems.NewVictorySystem(ctx),
		orchestrator: orchestrator,
	}
}

// run drives the fixed-rate loop until quit or cancellation
func (g *game) run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	g.orchestrator.RenderFrame(g.ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !g.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

// handleEvent applies one terminal event. Returns false to quit.
func (g *game) handleEvent(ev tcell.Event) bool {
	if !g.handler.HandleEvent(ev) {
		return false
	}
	if _, ok := ev.(*tcell.EventResize); ok {
		g.orchestrator.Resize(g.ctx.Width, g.ctx.Height)
	}
	return true
}

// tick advances the simulation one step for the current screen and draws it
func (g *game) tick() {
	ctx := g.ctx
	switch ctx.State {
	case core.StateGame:
		ctx.Input = g.machine.Frame()
		g.pipeline.Update(ctx)
		if ctx.State == core.StateGame && ctx.Input.Shop {
			if err := ctx.OpenShop(); err == nil {
				g.machine.Reset()
			}
		}
	case core.StateVictory:
		g.victory.Update(ctx)
	}

	ctx.UI.Tick()
	g.orchestrator.RenderFrame(ctx)
	ctx.IncrementFrameNumber()
}
