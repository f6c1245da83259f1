package constants

// HUD Layout (terminal rows)
const (
	// HUDRows is the height of the top panel reserved for the HUD
	HUDRows = 3

	// DialogueRows is the height of the dialogue box drawn over the bottom of the game area
	DialogueRows = 4

	// MinTerminalWidth/Height below which a "terminal too small" notice is drawn instead
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// Input
const (
	// KeyHoldFirstTicks keeps a key "held" after its first press long enough to bridge
	// the terminal's auto-repeat delay
	KeyHoldFirstTicks = 32

	// KeyHoldRepeatTicks extends a held key on each auto-repeat event
	KeyHoldRepeatTicks = 6
)

// Menu text
const (
	GameTitle    = "AELYRA"
	GameSubtitle = "Heir of the Four Worlds"
	MenuTagline  = "The fate of Aelyra rests in your hands..."
)
