package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/aelyra/constants"
)

// DoubleClickTicks is the max tick gap between two left presses that counts as a double-click
var DoubleClickTicks = constants.Ticks(constants.DoubleClickWindow)

// continuous marks actions that are sampled as held rather than as edges
var continuous = [actionCount]bool{
	ActionMoveLeft:  true,
	ActionMoveRight: true,
	ActionJump:      true,
	ActionFire:      true,
}

// Machine turns terminal key and mouse events into per-tick Frames.
// Terminals report no key releases, so a held key is modeled as a window
// that each auto-repeat event extends.
type Machine struct {
	keyTable *KeyTable
	tick     int64

	hold    [actionCount]int  // Remaining held ticks per continuous action
	pending [actionCount]bool // Edge presses since the last frame

	mouseX, mouseY int
	mouseHeld      bool
	lastClick      int64
	hasLastClick   bool
	doubleClick    bool
}

// NewMachine creates a machine reading bindings from kt.
// kt is shared; rebinding it takes effect immediately.
func NewMachine(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// KeyTable returns the bindings in use
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// HandleKey records a key press. Returns false when the key is not bound.
func (m *Machine) HandleKey(ev *tcell.EventKey) bool {
	a, ok := m.keyTable.Lookup(KeyName(ev))
	if !ok {
		return false
	}

	if !continuous[a] {
		m.pending[a] = true
		return true
	}

	if m.hold[a] == 0 {
		m.hold[a] = constants.KeyHoldFirstTicks
	} else {
		m.hold[a] = max(m.hold[a], constants.KeyHoldRepeatTicks)
	}
	return true
}

// HandleMouse tracks the left button state and detects double-clicks
func (m *Machine) HandleMouse(ev *tcell.EventMouse) {
	m.mouseX, m.mouseY = ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	if held && !m.mouseHeld {
		if m.hasLastClick && m.tick-m.lastClick <= int64(DoubleClickTicks) {
			m.doubleClick = true
			m.hasLastClick = false
		} else {
			m.lastClick = m.tick
			m.hasLastClick = true
		}
	}
	m.mouseHeld = held
}

// MousePosition returns the last reported pointer cell
func (m *Machine) MousePosition() (int, int) {
	return m.mouseX, m.mouseY
}

// Frame samples the input for the current tick and advances the machine by one tick
func (m *Machine) Frame() Frame {
	f := Frame{
		Left:    m.hold[ActionMoveLeft] > 0,
		Right:   m.hold[ActionMoveRight] > 0,
		Jump:    m.hold[ActionJump] > 0,
		Fire:    m.hold[ActionFire] > 0 || m.mouseHeld,
		Heal:    m.pending[ActionHeal],
		Special: m.pending[ActionSpecial] || m.doubleClick,
		Shop:    m.pending[ActionShop],
	}

	for a := range m.hold {
		if m.hold[a] > 0 {
			m.hold[a]--
		}
		m.pending[a] = false
	}
	m.doubleClick = false
	m.tick++
	return f
}

// Reset drops held keys, pending edges and click history; called on screen changes
func (m *Machine) Reset() {
	m.hold = [actionCount]int{}
	m.pending = [actionCount]bool{}
	m.mouseHeld = false
	m.hasLastClick = false
	m.doubleClick = false
}
