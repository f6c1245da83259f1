package components

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// AnimationState is the player's two-state sprite cycle
type AnimationState uint8

const (
	AnimIdle AnimationState = iota
	AnimWalking
)

// Controls is the per-tick movement input the player reacts to
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// Player is the user-controlled character.
// HP stays within [0, MaxHP]; Elements only grows; SpecialTier only increases.
type Player struct {
	X, Y      float64
	VelocityY float64
	Width     float64
	Height    float64
	Speed     float64
	Facing    core.Direction
	OnGround  bool

	HP       int
	MaxHP    int
	Attack   int
	Defense  int
	Elements core.ElementSet
	Gold     int

	// SpecialTier is the purchased special attack level (0 base, 1 mega, 2 ultra)
	SpecialTier int

	// Cooldowns in ticks, floored at 0
	AttackCooldown   int
	InvincibleFrames int
	SpecialCooldown  int

	// Animation
	Anim        AnimationState
	AnimFrame   int
	animCounter int
	IsMoving    bool
}

// NewPlayer creates a player with the fixed starting stats at (x, y)
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:        x,
		Y:        y,
		Width:    constants.PlayerWidth,
		Height:   constants.PlayerHeight,
		Speed:    constants.PlayerSpeed,
		Facing:   core.DirRight,
		HP:       constants.PlayerMaxHP,
		MaxHP:    constants.PlayerMaxHP,
		Attack:   constants.PlayerAttack,
		Defense:  constants.PlayerDefense,
		Elements: core.NewElementSet(core.ElementNone),
	}
}

// Rect returns the player's collision box
func (p *Player) Rect() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Center returns the midpoint of the collision box
func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// HasElement reports whether e has been unlocked
func (p *Player) HasElement(e core.Element) bool {
	return p.Elements.Has(e)
}

// Update applies one tick of input, physics, animation and cooldowns
func (p *Player) Update(c Controls, worldWidth float64) {
	dx := 0.0
	if c.Left {
		dx = -p.Speed
		p.Facing = core.DirLeft
	} else if c.Right {
		dx = p.Speed
		p.Facing = core.DirRight
	}

	if c.Jump && p.OnGround {
		p.VelocityY = constants.PlayerJumpPower
		p.OnGround = false
	}

	p.move(dx, worldWidth)
	p.applyGravity()
	p.animate()

	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.InvincibleFrames > 0 {
		p.InvincibleFrames--
	}
	if p.SpecialCooldown > 0 {
		p.SpecialCooldown--
	}
}

func (p *Player) move(dx, worldWidth float64) {
	x := p.X + dx
	if x < 0 {
		x = 0
	} else if x+p.Width > worldWidth {
		x = worldWidth - p.Width
	}
	p.X = x
	p.IsMoving = dx != 0
}

func (p *Player) applyGravity() {
	p.VelocityY += constants.PlayerGravity
	p.Y += p.VelocityY

	if p.Y >= constants.PlayerGroundLevel {
		p.Y = constants.PlayerGroundLevel
		p.VelocityY = 0
		p.OnGround = true
	} else {
		p.OnGround = false
	}
}

func (p *Player) animate() {
	if !p.IsMoving {
		p.Anim = AnimIdle
		p.AnimFrame = 0
		p.animCounter = 0
		return
	}

	p.Anim = AnimWalking
	p.animCounter++
	if p.animCounter >= constants.WalkFrameTicks {
		p.AnimFrame = (p.AnimFrame + 1) % constants.WalkFrameCount
		p.animCounter = 0
	}
}

// Shoot fires a basic projectile from the player's center, or returns nil while on cooldown
func (p *Player) Shoot() *Projectile {
	if p.AttackCooldown > 0 {
		return nil
	}
	p.AttackCooldown = constants.AttackCooldownTicks

	cx, cy := p.Center()
	return NewProjectile(cx, cy, p.Facing, p.Elements.Strongest(), p.Attack)
}

// ShootSpecial fires the purchased special tier, or returns nil while the special is recharging
func (p *Player) ShootSpecial() *Projectile {
	if p.SpecialCooldown > 0 {
		return nil
	}
	p.SpecialCooldown = constants.SpecialCooldownTicks

	cx, cy := p.Center()
	return NewSpecialProjectile(cx, cy, p.Facing, p.Elements.Strongest(), SpecialTierFor(p.SpecialTier))
}

// TakeDamage applies max(1, raw-defense) unless invincible and returns the amount applied
func (p *Player) TakeDamage(raw int) int {
	if p.InvincibleFrames > 0 {
		return 0
	}

	applied := max(1, raw-p.Defense)
	p.HP = max(0, p.HP-applied)
	p.InvincibleFrames = constants.InvincibilityTicks
	return applied
}

// Heal restores up to amount HP without exceeding MaxHP and returns the HP actually gained
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	old := p.HP
	p.HP = min(p.MaxHP, p.HP+amount)
	return p.HP - old
}

// UnlockElement adds e and applies its one-time stat bonus.
// Returns false without touching stats when e was already unlocked.
func (p *Player) UnlockElement(e core.Element) bool {
	if p.Elements.Has(e) {
		return false
	}
	p.Elements = p.Elements.With(e)

	switch e {
	case core.ElementWater:
		p.MaxHP += constants.WaterMaxHPBonus
		p.HP = min(p.HP+constants.WaterHealBonus, p.MaxHP)
	case core.ElementEarth:
		p.Defense += constants.EarthDefenseBonus
	case core.ElementFire:
		p.Attack += constants.FireAttackBonus
	case core.ElementAir:
		p.Speed += constants.AirSpeedBonus
	}
	return true
}

// SpecialReady reports whether a special attack can be fired this tick
func (p *Player) SpecialReady() bool {
	return p.SpecialCooldown <= 0
}
