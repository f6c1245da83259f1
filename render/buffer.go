package render

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/asset"
	"github.com/lixenwraith/aelyra/core"
)

// RenderBuffer is the in-memory Surface renderers composite into before a flush
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

var _ Surface = (*RenderBuffer)(nil)

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(core.RGBBlack)
}

// Clear resets all cells to blanks on bg using exponential copy
func (b *RenderBuffer) Clear(bg core.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: ColorText, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds returns the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *RenderBuffer) Background(x, y int) core.RGB {
	return b.Get(x, y).Bg
}

// SetCell writes an opaque cell
func (b *RenderBuffer) SetCell(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFg writes rune and foreground, keeping the background underneath
func (b *RenderBuffer) SetFg(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// FillRect paints solid blanks, clipped to the buffer
func (b *RenderBuffer) FillRect(x, y, w, h int, c core.RGB) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			b.cells[yy*b.width+xx] = Cell{Rune: ' ', Fg: ColorText, Bg: c}
		}
	}
}

// BlendRect tints the area, keeping runes; alpha 1 equals an opaque background fill
func (b *RenderBuffer) BlendRect(x, y, w, h int, c core.RGB, alpha float64) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			dst := &b.cells[yy*b.width+xx]
			dst.Bg = dst.Bg.Blend(c, alpha)
			dst.Fg = dst.Fg.Blend(c, alpha)
		}
	}
}

// FillCircle fills every cell whose center lies inside the ellipse
func (b *RenderBuffer) FillCircle(cx, cy, rx, ry float64, c core.RGB) {
	if rx <= 0 || ry <= 0 {
		return
	}
	if rx < 0.5 && ry < 0.5 {
		// Sub-cell dot
		b.SetCell(floor(cx), floor(cy), ' ', ColorText, c)
		return
	}
	for y := floor(cy - ry); y <= floor(cy+ry); y++ {
		for x := floor(cx - rx); x <= floor(cx+rx); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				b.SetCell(x, y, ' ', ColorText, c)
			}
		}
	}
}

// Line draws r along a Bresenham line, keeping backgrounds
func (b *RenderBuffer) Line(x0, y0, x1, y1 int, r rune, fg core.RGB) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.SetFg(x0, y0, r, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s over the existing background and returns the cells advanced
func (b *RenderBuffer) Text(x, y int, s string, fg core.RGB) int {
	n := 0
	for _, r := range s {
		b.SetFg(x+n, y, r, fg)
		n++
	}
	return n
}

// TextBg writes s on an explicit background
func (b *RenderBuffer) TextBg(x, y int, s string, fg, bg core.RGB) int {
	n := 0
	for _, r := range s {
		b.SetCell(x+n, y, r, fg, bg)
		n++
	}
	return n
}

// Blit copies converted image cells; transparent quadrants keep the background
func (b *RenderBuffer) Blit(img *asset.Cells, x, y int) {
	if img == nil {
		return
	}
	for cy := 0; cy < img.Height; cy++ {
		for cx := 0; cx < img.Width; cx++ {
			c := img.At(cx, cy)
			switch c.Mask {
			case 0:
			case asset.FullMask:
				b.SetCell(x+cx, y+cy, c.Rune, c.Fg, c.Bg)
			default:
				b.SetFg(x+cx, y+cy, c.Rune, c.Fg)
			}
		}
	}
}

// FlushToScreen writes every cell to the tcell screen without showing it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen, mode ColorMode) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 || !utf8.ValidRune(r) {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg, mode)).Background(toTcell(c.Bg, mode))
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func floor(f float64) int {
	return int(math.Floor(f))
}
