package constants

// System Priorities (lower runs first). The order is the per-tick game pipeline.
const (
	PriorityTransition  = 0  // Pending kingdom change fires before anything moves
	PriorityPlayer      = 10 // Movement, physics, cooldowns
	PriorityAttack      = 20 // Basic and special shots
	PriorityHeal        = 30
	PriorityEnemy       = 40 // Enemy AI and contact damage
	PriorityProjectile  = 50 // Projectile flight and hits
	PriorityParticle    = 60
	PriorityProgression = 70 // Kingdom clear, unlock, victory
	PriorityDeath       = 80 // Game over
	PriorityCamera      = 90
	PriorityDialogue    = 100
)
