package input

import "github.com/gdamore/tcell/v2"

// CaptureResult reports what a key did to a pending keybinding capture
type CaptureResult uint8

const (
	CaptureIdle      CaptureResult = iota // No capture in progress
	CapturePending                        // Key ignored, still waiting
	CaptureBound                          // Key bound to the action
	CaptureCancelled                      // Escape aborted the capture
)

// Capture is the settings-screen wait for the next key to bind to an action
type Capture struct {
	action Action
	active bool
}

// Begin starts waiting for a key for action, replacing any pending capture
func (c *Capture) Begin(a Action) {
	c.action = a
	c.active = true
}

// Active reports whether a key is awaited
func (c *Capture) Active() bool {
	return c.active
}

// Action returns the action being rebound
func (c *Capture) Action() Action {
	return c.action
}

// Cancel discards the pending capture
func (c *Capture) Cancel() {
	c.active = false
}

// Feed offers a key event to the capture. Escape cancels; an unbindable key is ignored.
func (c *Capture) Feed(ev *tcell.EventKey, kt *KeyTable) CaptureResult {
	if !c.active {
		return CaptureIdle
	}
	if ev.Key() == tcell.KeyEscape {
		c.active = false
		return CaptureCancelled
	}

	name := KeyName(ev)
	if name == "" {
		return CapturePending
	}
	kt.Rebind(c.action, name)
	c.active = false
	return CaptureBound
}
