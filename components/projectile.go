package components

import (
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// ProjectileTier selects the fixed parameters of a shot
type ProjectileTier uint8

const (
	TierBasic ProjectileTier = iota
	TierSpecial
	TierMega
	TierUltra
	projectileTierCount
)

// tierStats holds the constants a tier is created with. Damage 0 means "use the shooter's attack"
type tierStats struct {
	Damage   int
	Speed    float64
	Size     float64
	Lifetime int
}

var tierTable = [projectileTierCount]tierStats{
	TierBasic:   {0, constants.BasicShotSpeed, constants.BasicShotSize, constants.BasicShotLifetime},
	TierSpecial: {constants.SpecialShotDamage, constants.SpecialShotSpeed, constants.SpecialShotSize, constants.SpecialShotLifetime},
	TierMega:    {constants.MegaShotDamage, constants.MegaShotSpeed, constants.MegaShotSize, constants.MegaShotLifetime},
	TierUltra:   {constants.UltraShotDamage, constants.UltraShotSpeed, constants.UltraShotSize, constants.UltraShotLifetime},
}

// IsSpecial reports whether the tier is one of the purchasable special attacks
func (t ProjectileTier) IsSpecial() bool {
	return t != TierBasic
}

// SpecialTierFor maps the player's purchased tier (0/1/2) to the shot it fires
func SpecialTierFor(purchased int) ProjectileTier {
	switch purchased {
	case constants.SpecialTierUltra:
		return TierUltra
	case constants.SpecialTierMega:
		return TierMega
	default:
		return TierSpecial
	}
}

// Projectile is a fired attack travelling along one axis until it hits or expires.
// Damage and Size never change after creation.
type Projectile struct {
	X, Y      float64 // Center
	Direction core.Direction
	Element   core.Element
	Tier      ProjectileTier
	Color     core.RGB
	Glow      core.RGB
	Damage    int
	Speed     float64
	Size      float64 // Half-extent of the hit box
	Lifetime  int     // Remaining ticks
	Pulse     int     // Cosmetic animation counter
}

// NewProjectile creates a basic shot carrying the shooter's attack as damage
func NewProjectile(x, y float64, dir core.Direction, elem core.Element, damage int) *Projectile {
	p := newTieredProjectile(x, y, dir, elem, TierBasic)
	p.Damage = damage
	return p
}

// NewSpecialProjectile creates a special-tier shot with the tier's fixed damage
func NewSpecialProjectile(x, y float64, dir core.Direction, elem core.Element, tier ProjectileTier) *Projectile {
	if !tier.IsSpecial() || tier >= projectileTierCount {
		tier = TierSpecial
	}
	return newTieredProjectile(x, y, dir, elem, tier)
}

func newTieredProjectile(x, y float64, dir core.Direction, elem core.Element, tier ProjectileTier) *Projectile {
	stats := tierTable[tier]
	pal := elem.Palette()

	p := &Projectile{
		X:         x,
		Y:         y,
		Direction: dir,
		Element:   elem,
		Tier:      tier,
		Color:     pal.Shot,
		Damage:    stats.Damage,
		Speed:     stats.Speed,
		Size:      stats.Size,
		Lifetime:  stats.Lifetime,
	}
	if tier.IsSpecial() {
		p.Color = pal.Special
		p.Glow = pal.Glow
	}
	return p
}

// Update advances the shot one tick along its axis
func (p *Projectile) Update() {
	dx, dy := p.Direction.Step()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
	p.Lifetime--
	p.Pulse++
}

// IsDead reports whether the shot's lifetime has run out
func (p *Projectile) IsDead() bool {
	return p.Lifetime <= 0
}

// Rect returns the square hit box centered on the shot
func (p *Projectile) Rect() core.Rect {
	return core.Rect{X: p.X - p.Size, Y: p.Y - p.Size, Width: p.Size * 2, Height: p.Size * 2}
}
