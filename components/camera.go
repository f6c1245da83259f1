package components

import "github.com/lixenwraith/aelyra/constants"

// Camera is the viewport offset in world units, recomputed every tick from the player
type Camera struct {
	X, Y float64
}

// Follow eases the camera toward the player.
// Horizontal target is clamped so the view never leaves [0, worldWidth].
func (c *Camera) Follow(p *Player, worldWidth float64) {
	targetX := p.X - constants.ScreenWidth/2 + p.Width/2
	targetX = max(0, min(targetX, worldWidth-constants.ScreenWidth))
	targetY := p.Y - constants.ScreenHeight/2 + p.Height/2 - constants.CameraVerticalOffset

	c.X += (targetX - c.X) * constants.CameraSmoothing
	c.Y += (targetY - c.Y) * constants.CameraSmoothing
}

// Reset snaps the camera back to the origin
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
}
