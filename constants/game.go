package constants

import "time"

// Game Loop Timing Constants
const (
	// TicksPerSecond is the fixed simulation rate; one tick = one input poll + update + render
	TicksPerSecond = 60

	// FrameUpdateInterval is the ticker period driving the loop (~60 FPS)
	FrameUpdateInterval = time.Second / TicksPerSecond
)

// Millisecond-specified timers, counted in ticks
const (
	// KingdomTransitionDelay is the pause between clearing a kingdom and entering the next
	KingdomTransitionDelay = 3000 * time.Millisecond

	// DoubleClickWindow is the max gap between two left presses that fires a special attack
	DoubleClickWindow = 300 * time.Millisecond
)

// Ticks converts a duration to a whole number of simulation ticks
// Integer math keeps 3000ms == 180 ticks exact at 60 Hz
func Ticks(d time.Duration) int {
	return int(d * TicksPerSecond / time.Second)
}

// Logical Screen (world units, the reference resolution)
const (
	ScreenWidth  = 1366
	ScreenHeight = 768

	// WorldScreens is the kingdom length expressed in screen widths
	WorldScreens = 2
	WorldWidth   = ScreenWidth * WorldScreens
)

// Camera
const (
	// CameraSmoothing is the fraction of the remaining distance covered per tick
	CameraSmoothing = 0.1

	// CameraVerticalOffset lifts the view above the player so the ground sits low on screen
	CameraVerticalOffset = 250
)

// Dialogue
const (
	// DialogueTicks is how long a dialogue message stays on screen (3s)
	DialogueTicks = 180
)
