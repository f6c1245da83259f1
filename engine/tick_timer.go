package engine

// TickTimer is a single-shot countdown measured in loop ticks.
// At most one countdown is pending; arming an armed timer is refused.
type TickTimer struct {
	remaining int
	armed     bool
}

// Arm starts the countdown. Returns false if a countdown is already pending.
func (t *TickTimer) Arm(ticks int) bool {
	if t.armed {
		return false
	}
	t.remaining = max(ticks, 1)
	t.armed = true
	return true
}

// Tick advances the countdown and reports true exactly once, on the tick it expires
func (t *TickTimer) Tick() bool {
	if !t.armed {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.armed = false
	return true
}

// Armed reports whether a countdown is pending
func (t *TickTimer) Armed() bool {
	return t.armed
}

// Remaining returns ticks left before firing, 0 when idle
func (t *TickTimer) Remaining() int {
	if !t.armed {
		return 0
	}
	return t.remaining
}

// Cancel discards a pending countdown
func (t *TickTimer) Cancel() {
	t.remaining = 0
	t.armed = false
}
