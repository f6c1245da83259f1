package input

// Frame is the gameplay input sampled for one tick.
// Held flags stay true while the key or button is down; edge flags are true for one tick only.
type Frame struct {
	// Held
	Left  bool
	Right bool
	Jump  bool
	Fire  bool // Fire key or left mouse button

	// Edges
	Heal    bool
	Special bool // Special key or left double-click
	Shop    bool
}
