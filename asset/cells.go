package asset

import (
	"image"
	"image/color"

	"github.com/lixenwraith/aelyra/core"
	"golang.org/x/image/draw"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// FullMask marks a cell whose four quadrants are all opaque
const FullMask = 0xF

// Cell is one terminal cell of a converted image.
// Mask holds the opaque quadrants; a partial mask draws Rune in Fg over whatever is underneath.
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Mask uint8
}

// Cells is an image converted to a grid of terminal cells
type Cells struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at (x, y)
func (c *Cells) At(x, y int) Cell {
	return c.Cells[y*c.Width+x]
}

// Convert scales img to w x h cells, two source pixels per cell on each axis
func Convert(img image.Image, w, h int) *Cells {
	if w <= 0 || h <= 0 || img.Bounds().Empty() {
		return &Cells{}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w*2, h*2))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := &Cells{Width: w, Height: h, Cells: make([]Cell, w*h)}
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var pixels [4]core.RGB
			var mask uint8
			for i, off := range offsets {
				c := scaled.RGBAAt(x*2+off[0], y*2+off[1])
				if c.A >= 0x80 {
					mask |= 1 << i
				}
				pixels[i] = colorToRGB(c)
			}
			out.Cells[y*w+x] = quadrantCell(pixels, mask)
		}
	}
	return out
}

// quadrantCell picks the glyph and colors for one cell
func quadrantCell(pixels [4]core.RGB, mask uint8) Cell {
	switch mask {
	case 0:
		return Cell{Rune: ' '}
	case FullMask:
		r, fg, bg := findBestQuadrant(pixels)
		return Cell{Rune: r, Fg: fg, Bg: bg, Mask: FullMask}
	default:
		fg, _, _ := computePatternColors(pixels, int(mask))
		return Cell{Rune: QuadrantChars[mask], Fg: fg, Mask: mask}
	}
}

// findBestQuadrant searches all 16 patterns for the lowest color error
func findBestQuadrant(pixels [4]core.RGB) (rune, core.RGB, core.RGB) {
	bestError := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg core.RGB

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := computePatternColors(pixels, pattern)
		if err < bestError {
			bestError = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	return QuadrantChars[bestPattern], bestFg, bestBg
}

// computePatternColors averages each group and returns the total squared error
func computePatternColors(pixels [4]core.RGB, pattern int) (fg, bg core.RGB, totalError int) {
	var fgR, fgG, fgB, fgCount int
	var bgR, bgG, bgB, bgCount int

	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fgR += int(pixels[i].R)
			fgG += int(pixels[i].G)
			fgB += int(pixels[i].B)
			fgCount++
		} else {
			bgR += int(pixels[i].R)
			bgG += int(pixels[i].G)
			bgB += int(pixels[i].B)
			bgCount++
		}
	}

	if fgCount > 0 {
		fg = core.RGB{R: uint8(fgR / fgCount), G: uint8(fgG / fgCount), B: uint8(fgB / fgCount)}
	}
	if bgCount > 0 {
		bg = core.RGB{R: uint8(bgR / bgCount), G: uint8(bgG / bgCount), B: uint8(bgB / bgCount)}
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalError += colorDistanceSq(pixels[i], target)
	}

	return fg, bg, totalError
}

func colorDistanceSq(a, b core.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// colorToRGB un-premultiplies alpha
func colorToRGB(c color.Color) core.RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return core.RGB{}
	}
	return core.RGB{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}
}
