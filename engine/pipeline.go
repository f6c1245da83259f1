package engine

import "slices"

// System is one stage of the per-tick game update
type System interface {
	Update(ctx *GameContext)
	Priority() int // Lower values run first
}

// Pipeline runs its systems in priority order once per Game tick
type Pipeline struct {
	systems []System
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddSystem registers a system, keeping the list sorted by priority.
// Systems with equal priority run in registration order.
func (p *Pipeline) AddSystem(s System) {
	p.systems = append(p.systems, s)
	slices.SortStableFunc(p.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns the registered systems in run order
func (p *Pipeline) Systems() []System {
	return p.systems
}

// Update runs every system once. A tick that ends the game still completes;
// the next tick is simply not run by the loop.
func (p *Pipeline) Update(ctx *GameContext) {
	for _, s := range p.systems {
		s.Update(ctx)
	}
}
