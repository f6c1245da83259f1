package render

import (
	"math"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// RenderContext provides frame state for renderers, passed by value.
// The logical 1366x768 screen is stretched over the game area below the HUD.
type RenderContext struct {
	State core.GameState
	Frame int64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Game area rows
	GameTop    int
	GameHeight int

	// Camera position in world units
	CameraX float64
	CameraY float64

	// Cells per logical unit
	ScaleX float64
	ScaleY float64
}

// NewRenderContext snapshots the game context for one frame
func NewRenderContext(ctx *engine.GameContext) RenderContext {
	gameHeight := max(ctx.Height-constants.HUDRows, 1)
	return RenderContext{
		State:        ctx.State,
		Frame:        ctx.GetFrameNumber(),
		ScreenWidth:  ctx.Width,
		ScreenHeight: ctx.Height,
		GameTop:      constants.HUDRows,
		GameHeight:   gameHeight,
		CameraX:      ctx.Camera.X,
		CameraY:      ctx.Camera.Y,
		ScaleX:       float64(ctx.Width) / constants.ScreenWidth,
		ScaleY:       float64(gameHeight) / constants.ScreenHeight,
	}
}

// TooSmall reports whether the terminal cannot fit a playable frame
func (rc RenderContext) TooSmall() bool {
	return rc.ScreenWidth < constants.MinTerminalWidth || rc.ScreenHeight < constants.MinTerminalHeight
}

// LogicalToCell converts logical screen units to fractional cell coordinates
func (rc RenderContext) LogicalToCell(x, y float64) (float64, float64) {
	return x * rc.ScaleX, float64(rc.GameTop) + y*rc.ScaleY
}

// WorldToCell converts world units to fractional cell coordinates through the camera
func (rc RenderContext) WorldToCell(x, y float64) (float64, float64) {
	return rc.LogicalToCell(x-rc.CameraX, y-rc.CameraY)
}

// WorldRect maps a world rectangle to whole cells, never smaller than 1x1
func (rc RenderContext) WorldRect(r core.Rect) (x, y, w, h int) {
	fx, fy := rc.WorldToCell(r.X, r.Y)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	w = max(1, int(math.Round(r.Width*rc.ScaleX)))
	h = max(1, int(math.Round(r.Height*rc.ScaleY)))
	return x, y, w, h
}

// Cells converts a world length to fractional cells on each axis
func (rc RenderContext) Cells(units float64) (float64, float64) {
	return units * rc.ScaleX, units * rc.ScaleY
}
