package render

import (
	"github.com/lixenwraith/aelyra/core"
	"github.com/lixenwraith/aelyra/engine"
)

// Button is a clickable row of a vertical list, in cells
type Button struct {
	X, Y, Width int
	Label       string
}

// Contains reports whether cell (x, y) hits the button
func (b Button) Contains(x, y int) bool {
	return y == b.Y && x >= b.X && x < b.X+b.Width
}

// buttonPadding is the blank space on each side of a label
const buttonPadding = 4

// ListLayout centers labels horizontally, one row each with a gap row between, starting at top.
// Renderers and mouse hit-testing share it so clicks land on what is drawn.
func ListLayout(screenWidth, top int, labels []string) []Button {
	width := 0
	for _, l := range labels {
		width = max(width, len([]rune(l)))
	}
	width += 2 * buttonPadding

	x := max((screenWidth-width)/2, 0)
	buttons := make([]Button, len(labels))
	for i, l := range labels {
		buttons[i] = Button{X: x, Y: top + i*2, Width: width, Label: l}
	}
	return buttons
}

// FixedListLayout is ListLayout for rows whose labels change while shown; step is the row pitch
func FixedListLayout(screenWidth, top, count, width, step int) []Button {
	x := max((screenWidth-width)/2, 0)
	buttons := make([]Button, count)
	for i := range buttons {
		buttons[i] = Button{X: x, Y: top + i*step, Width: width}
	}
	return buttons
}

// HitTest returns the index of the button under (x, y), or -1
func HitTest(buttons []Button, x, y int) int {
	for i, b := range buttons {
		if b.Contains(x, y) {
			return i
		}
	}
	return -1
}

// DrawButtons renders a list with the selected entry highlighted
func DrawButtons(s Surface, buttons []Button, selected int) {
	for i, b := range buttons {
		bg, fg := ColorButton, ColorTextDim
		if i == selected {
			bg, fg = ColorButtonSel, ColorHighlight
		}
		s.FillRect(b.X, b.Y, b.Width, 1, bg)
		CenterText(s, b.X, b.Width, b.Y, b.Label, fg, bg)
	}
}

// CenterText writes s centered within [x, x+width) on an explicit background
func CenterText(s Surface, x, width, y int, text string, fg, bg core.RGB) {
	n := len([]rune(text))
	s.TextBg(x+max((width-n)/2, 0), y, text, fg, bg)
}

// CenterTextOver writes s centered on the row, keeping backgrounds
func CenterTextOver(s Surface, y int, text string, fg core.RGB) {
	w, _ := s.Size()
	s.Text(max((w-len([]rune(text)))/2, 0), y, text, fg)
}

// Screen layouts shared by screen renderers and mouse handling
const (
	settingsTop   = 4
	shopWidth     = 52
	settingsWidth = 44
)

func menuTop(screenHeight int) int { return screenHeight / 2 }

func endScreenTop(screenHeight int) int { return screenHeight/2 + 3 }

func shopTop(screenHeight int) int { return screenHeight/2 - 2 }

// MenuButtons lays out the main menu
func MenuButtons(screenWidth, screenHeight int) []Button {
	return ListLayout(screenWidth, menuTop(screenHeight), engine.MenuItems)
}

// GameOverButtons lays out Retry / Main Menu
func GameOverButtons(screenWidth, screenHeight int) []Button {
	return ListLayout(screenWidth, endScreenTop(screenHeight), engine.GameOverItems)
}

// VictoryButtons lays out the victory screen
func VictoryButtons(screenWidth, screenHeight int) []Button {
	return ListLayout(screenWidth, endScreenTop(screenHeight), engine.VictoryItems)
}

// ShopButtons lays out one row per upgrade plus a final close row
func ShopButtons(screenWidth, screenHeight int) []Button {
	return FixedListLayout(screenWidth, shopTop(screenHeight), len(engine.ShopItems())+1, shopWidth, 2)
}

// SettingsButtons lays out one row per action, then sound, then back
func SettingsButtons(screenWidth int) []Button {
	return FixedListLayout(screenWidth, settingsTop, engine.SettingsRows(), settingsWidth, 1)
}
