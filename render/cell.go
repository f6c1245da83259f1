package render

import "github.com/lixenwraith/aelyra/core"

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}
