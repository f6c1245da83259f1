package engine

import "github.com/lixenwraith/aelyra/input"

// Menu entries shared by the screen renderers and the screen input handlers
var (
	MenuItems     = []string{"Play", "Settings", "Quit"}
	GameOverItems = []string{"Retry", "Main Menu"}
	VictoryItems  = []string{"Main Menu"}
)

// Main menu indices
const (
	MenuPlay = iota
	MenuSettings
	MenuQuit
)

// Game over indices
const (
	GameOverRetry = iota
	GameOverMenu
)

// messageTicks is how long a shop or settings notice stays visible
const messageTicks = 120

// UIState is the cursor and notice state of the non-game screens
type UIState struct {
	MenuIndex     int
	SettingsIndex int
	ShopIndex     int
	EndIndex      int // Game over / victory button

	Capture input.Capture // Settings keybinding capture

	Message      string
	MessageTicks int
}

// Reset returns every cursor to the first entry and clears notices
func (u *UIState) Reset() {
	*u = UIState{}
}

// Notify shows a short notice on the current screen
func (u *UIState) Notify(msg string) {
	u.Message = msg
	u.MessageTicks = messageTicks
}

// Tick ages the notice
func (u *UIState) Tick() {
	if u.MessageTicks > 0 {
		u.MessageTicks--
		if u.MessageTicks == 0 {
			u.Message = ""
		}
	}
}

// SettingsRows returns the number of selectable settings entries: one per action, sound, back
func SettingsRows() int {
	return len(input.Actions()) + 2
}

// Settings row helpers
func SettingsSoundRow() int { return len(input.Actions()) }
func SettingsBackRow() int  { return len(input.Actions()) + 1 }

// WrapIndex moves a menu cursor by delta within [0, n)
func WrapIndex(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
