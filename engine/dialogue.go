package engine

import "github.com/lixenwraith/aelyra/constants"

// Dialogue is the single message line shown at the bottom of the game screen
type Dialogue struct {
	Text      string
	Remaining int // Ticks left on screen
}

// Show replaces the current message and restarts its display window
func (d *Dialogue) Show(text string) {
	d.Text = text
	d.Remaining = constants.DialogueTicks
}

// Tick burns one tick of display time
func (d *Dialogue) Tick() {
	if d.Remaining > 0 {
		d.Remaining--
	}
}

// Active reports whether a message should be drawn
func (d *Dialogue) Active() bool {
	return d.Remaining > 0 && d.Text != ""
}

// Clear hides the message immediately
func (d *Dialogue) Clear() {
	d.Text = ""
	d.Remaining = 0
}
