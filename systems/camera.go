package systems

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/engine"
)

// CameraSystem eases the viewport toward the player
type CameraSystem struct {
	ctx *engine.GameContext
}

func NewCameraSystem(ctx *engine.GameContext) *CameraSystem {
	return &CameraSystem{ctx: ctx}
}

func (s *CameraSystem) Priority() int {
	return constants.PriorityCamera
}

func (s *CameraSystem) Update(ctx *engine.GameContext) {
	ctx.Camera.Follow(ctx.Player, ctx.Kingdom.WorldWidth)
}
