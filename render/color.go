package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps a flag value to a ColorMode; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "true", "truecolor", "24", "24bit":
		return ColorModeTrueColor, nil
	case "256", "8", "8bit":
		return ColorMode256, nil
	default:
		return 0, fmt.Errorf("unknown color mode %q (use auto, truecolor or 256)", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, env := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube levels for palette indices 16-231
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - cubeValues[0])
		for j := 1; j < 6; j++ {
			if d := abs(i - cubeValues[j]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm-256 palette index
func RGBTo256(c core.RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	// Near-gray colors may sit closer to the grayscale ramp (232-255)
	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := min(232+(gray-8)/10, 255)
		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)

		cubeDist := abs(r-cubeValues[cubeIndex[r]]) + abs(g-cubeValues[cubeIndex[g]]) + abs(b-cubeValues[cubeIndex[b]])
		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// toTcell converts to a tcell color for the given mode
func toTcell(c core.RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
