package render

import (
	"image/color"

	"github.com/lixenwraith/aelyra/core"
	"golang.org/x/image/colornames"
)

func named(c color.RGBA) core.RGB {
	return core.RGB{R: c.R, G: c.G, B: c.B}
}

// UI palette
var (
	ColorScreenBg   = core.RGB{R: 20, G: 20, B: 40}
	ColorPanel      = core.RGB{R: 20, G: 20, B: 40}
	ColorText       = named(colornames.White)
	ColorTextDim    = core.RGB{R: 200, G: 200, B: 200}
	ColorTitle      = named(colornames.Gold)
	ColorHighlight  = named(colornames.Yellow)
	ColorButton     = named(colornames.Darkslateblue)
	ColorButtonSel  = named(colornames.Royalblue)
	ColorHPFull     = named(colornames.Limegreen)
	ColorHPEmpty    = named(colornames.Red)
	ColorSlotLocked = named(colornames.Gray)
	ColorDanger     = named(colornames.Crimson)
	ColorVictory    = named(colornames.Gold)
	ColorGameOver   = named(colornames.Darkred)
	ColorGold       = named(colornames.Gold)
	ColorNotice     = named(colornames.Orange)
)
