package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityEnemies
	PriorityProjectiles
	PriorityParticles
	PriorityPlayer
	PriorityHUD
	PriorityDialogue
	PriorityScreen  // Full-screen menus
	PriorityOverlay // Shop and notices drawn over everything
)
