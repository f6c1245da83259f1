package constants

// Player Physics
const (
	PlayerStartX    = 80
	PlayerStartY    = 200
	PlayerWidth     = 170
	PlayerHeight    = 200
	PlayerSpeed     = 10
	PlayerGravity   = 0.5
	PlayerJumpPower = -15

	// PlayerGroundLevel is the y of the player's top edge when standing
	PlayerGroundLevel = 550

	// PlayerRespawnX/Y is where the player lands when entering the next kingdom
	PlayerRespawnX = 100
	PlayerRespawnY = 630
)

// Player Stats
const (
	PlayerMaxHP   = 100
	PlayerAttack  = 15
	PlayerDefense = 5
)

// Player Combat Timers (ticks)
const (
	AttackCooldownTicks  = 30
	InvincibilityTicks   = 60
	SpecialCooldownTicks = 600 // 10s at 60 FPS
)

// Player Animation
const (
	WalkFrameTicks = 8
	WalkFrameCount = 3
)

// Element Bonuses (applied once on unlock)
const (
	WaterMaxHPBonus   = 20
	WaterHealBonus    = 20
	EarthDefenseBonus = 5
	FireAttackBonus   = 10
	AirSpeedBonus     = 1
)

// Healing
const (
	HealAmount        = 30
	HealParticleCount = 20
)

// Enemy Physics
const (
	EnemyWidth       = 35
	EnemyHeight      = 40
	EnemyGravity     = 0.8
	EnemyGroundLevel = 640
	EnemyAggroRange  = 300

	// EnemyPatrolTicks is how often a patrolling enemy re-rolls its direction
	EnemyPatrolTicks = 60
)

// Enemy Difficulty Scaling (per kingdom index)
const (
	EnemyHPScalePerLevel   = 0.15
	EnemyAttackPerLevel    = 1
	EnemySpeedPerLevel     = 0.1
	BossOffsetFromWorldEnd = 200
)

// EnemyCountByKingdom is the number of regular enemies per kingdom index; a boss is added on top
var EnemyCountByKingdom = [...]int{5, 7, 8, 9}

// Particles
const (
	ParticleMinSpeed    = 3.0
	ParticleMaxSpeed    = 8.0
	ParticleMinLifetime = 20
	ParticleMaxLifetime = 40
	ParticleDrag        = 0.95
	ParticleSize        = 4.0

	DamageParticleCount = 15
	HitParticleCount    = 15
	KillParticleCount   = 30
)
