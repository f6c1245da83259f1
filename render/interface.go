package render

import (
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/core"
)

// Surface is the drawing target handed to renderers. Coordinates are terminal cells.
type Surface interface {
	Size() (width, height int)
	Background(x, y int) core.RGB

	SetCell(x, y int, r rune, fg, bg core.RGB)
	SetFg(x, y int, r rune, fg core.RGB)
	FillRect(x, y, w, h int, c core.RGB)
	BlendRect(x, y, w, h int, c core.RGB, alpha float64)
	// FillCircle fills an ellipse; rx and ry differ because cells are not square
	FillCircle(cx, cy, rx, ry float64, c core.RGB)
	Line(x0, y0, x1, y1 int, r rune, fg core.RGB)
	Text(x, y int, s string, fg core.RGB) int
	TextBg(x, y int, s string, fg, bg core.RGB) int
	Blit(img *asset.Cells, x, y int)
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
