package components

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// EnemyKind is the closed set of enemy archetypes
type EnemyKind uint8

const (
	KindMini EnemyKind = iota
	KindNormal
	KindBoss
	enemyKindCount
)

// EnemyStats are the level-0 values of an enemy kind
type EnemyStats struct {
	HP     int
	Attack int
	Speed  float64
	Size   float64
	Reward int // Gold granted on kill
}

var enemyStats = [enemyKindCount]EnemyStats{
	KindMini:   {HP: 75, Attack: 5, Speed: 2, Size: 30, Reward: constants.GoldRewardMini},
	KindNormal: {HP: 100, Attack: 7, Speed: 1.5, Size: 35, Reward: constants.GoldRewardNormal},
	KindBoss:   {HP: 200, Attack: 7, Speed: 1, Size: 50, Reward: constants.GoldRewardBoss},
}

var enemyKindNames = [enemyKindCount]string{
	KindMini:   "mini",
	KindNormal: "normal",
	KindBoss:   "boss",
}

func (k EnemyKind) String() string {
	if k >= enemyKindCount {
		return "unknown"
	}
	return enemyKindNames[k]
}

// BaseStats returns the kind's level-0 stat row
func (k EnemyKind) BaseStats() EnemyStats {
	if k >= enemyKindCount {
		return enemyStats[KindNormal]
	}
	return enemyStats[k]
}

// ScaledStats applies the kingdom difficulty escalation to the kind's base stats:
// hp x (1 + 0.15*level) truncated, attack + 1*level, speed + 0.1*level
func (k EnemyKind) ScaledStats(level int) EnemyStats {
	s := k.BaseStats()
	s.HP = int(float64(s.HP) * (1.0 + float64(level)*constants.EnemyHPScalePerLevel))
	s.Attack += level * constants.EnemyAttackPerLevel
	s.Speed += float64(level) * constants.EnemySpeedPerLevel
	return s
}

// Patrol directions
const (
	PatrolLeft  = 0
	PatrolRight = 1
)

// Enemy is a hostile NPC owned by a kingdom roster. HP stays within [0, MaxHP].
// Removal on death is the caller's job; an enemy never removes itself.
type Enemy struct {
	ID      uuid.UUID
	Kind    EnemyKind
	Element core.Element

	X, Y      float64
	VelocityY float64
	OnGround  bool
	Width     float64
	Height    float64
	Size      float64 // Visual diameter

	HP     int
	MaxHP  int
	Attack int
	Speed  float64
	Reward int

	// AI
	Direction      int // PatrolLeft or PatrolRight
	MoveTimer      int
	AttackCooldown int
	AggroRange     float64
	LastDX         float64 // Last chase step, used for sprite facing
	WorldWidth     float64

	rng *rand.Rand
}

// NewEnemy creates an enemy of kind at (x, y) scaled to the kingdom level.
// An enemy spawned above the ground falls until it lands.
func NewEnemy(x, y float64, kind EnemyKind, elem core.Element, level int, worldWidth float64, rng *rand.Rand) *Enemy {
	stats := kind.ScaledStats(level)
	e := &Enemy{
		ID:         uuid.New(),
		Kind:       kind,
		Element:    elem,
		X:          x,
		Y:          y,
		Width:      constants.EnemyWidth,
		Height:     constants.EnemyHeight,
		Size:       stats.Size,
		HP:         stats.HP,
		MaxHP:      stats.HP,
		Attack:     stats.Attack,
		Speed:      stats.Speed,
		Reward:     stats.Reward,
		Direction:  rng.Intn(2),
		AggroRange: constants.EnemyAggroRange,
		WorldWidth: worldWidth,
		rng:        rng,
	}
	if e.Y >= constants.EnemyGroundLevel {
		e.Y = constants.EnemyGroundLevel
		e.OnGround = true
	}
	return e
}

// Rect returns the enemy's collision box
func (e *Enemy) Rect() core.Rect {
	return core.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Center returns the midpoint of the collision box
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.Width/2, e.Y + e.Height/2
}

// Update runs one tick of gravity and AI: chase inside aggro range, otherwise patrol
func (e *Enemy) Update(playerX, playerY float64) {
	if !e.OnGround {
		e.VelocityY += constants.EnemyGravity
		e.Y += e.VelocityY
		if e.Y >= constants.EnemyGroundLevel {
			e.Y = constants.EnemyGroundLevel
			e.VelocityY = 0
			e.OnGround = true
		}
	}

	if e.OnGround {
		dx := playerX - e.X
		if abs(dx) < e.AggroRange {
			switch {
			case dx > 0:
				e.X += e.Speed
				e.LastDX = e.Speed
			case dx < 0:
				e.X -= e.Speed
				e.LastDX = -e.Speed
			}
		} else {
			e.MoveTimer++
			if e.MoveTimer >= constants.EnemyPatrolTicks {
				e.Direction = e.rng.Intn(2)
				e.MoveTimer = 0
			}
			if e.Direction == PatrolLeft {
				e.X -= e.Speed
				e.LastDX = -e.Speed
			} else {
				e.X += e.Speed
				e.LastDX = e.Speed
			}
		}

		if e.X < 0 {
			e.X = 0
		} else if e.X > e.WorldWidth-e.Width {
			e.X = e.WorldWidth - e.Width
		}
	}

	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}
}

// TakeDamage subtracts amount from HP (enemies have no defense) and reports death
func (e *Enemy) TakeDamage(amount int) bool {
	e.HP = max(0, e.HP-amount)
	return e.HP <= 0
}

// HPRatio returns remaining health in [0, 1] for health bars
func (e *Enemy) HPRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
