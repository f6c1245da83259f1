// Package renderers holds one renderer per visual layer of the game.
// Every image-backed renderer falls back to primitives when its asset is missing.
package renderers

import (
	"math"
	"slices"
	"strings"

	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/render"
)

// worldStates are the states that show the kingdom underneath
var worldStates = []core.GameState{core.StateGame, core.StateShop}

func inStates(ctx render.RenderContext, states ...core.GameState) bool {
	return slices.Contains(states, ctx.State)
}

// cell floors a fractional cell coordinate
func cell(f float64) int {
	return int(math.Floor(f))
}

// load returns the named image, or nil when it cannot be used
func load(lib *asset.Library, name string) *asset.Image {
	if lib == nil || name == "" {
		return nil
	}
	img, err := lib.Load(name)
	if err != nil {
		return nil
	}
	return img
}

// sprite returns the named image converted to w x h cells, or nil when unavailable
func sprite(lib *asset.Library, name string, frame, w, h int, mirrored bool) *asset.Cells {
	if w <= 0 || h <= 0 {
		return nil
	}
	img := load(lib, name)
	if img == nil {
		return nil
	}
	return img.Cells(frame, w, h, mirrored)
}

// drawBar draws a horizontal meter filled to ratio
func drawBar(s render.Surface, x, y, w int, ratio float64, full, empty core.RGB) {
	ratio = min(max(ratio, 0), 1)
	filled := int(float64(w)*ratio + 0.5)
	if ratio > 0 && filled == 0 {
		filled = 1
	}
	s.FillRect(x, y, filled, 1, full)
	s.FillRect(x+filled, y, w-filled, 1, empty)
}

// wrapText splits text into lines of at most width runes, breaking on spaces
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// drawBox fills a panel with a single-line border
func drawBox(s render.Surface, x, y, w, h int, border, bg core.RGB) {
	if w < 2 || h < 2 {
		return
	}
	s.FillRect(x, y, w, h, bg)
	for i := x + 1; i < x+w-1; i++ {
		s.SetCell(i, y, '─', border, bg)
		s.SetCell(i, y+h-1, '─', border, bg)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetCell(x, j, '│', border, bg)
		s.SetCell(x+w-1, j, '│', border, bg)
	}
	s.SetCell(x, y, '┌', border, bg)
	s.SetCell(x+w-1, y, '┐', border, bg)
	s.SetCell(x, y+h-1, '└', border, bg)
	s.SetCell(x+w-1, y+h-1, '┘', border, bg)
}
