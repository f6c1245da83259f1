package constants

// Projectile tiers. Basic damage comes from the player's attack stat
const (
	BasicShotSpeed    = 8
	BasicShotSize     = 12
	BasicShotLifetime = 100

	SpecialShotDamage   = 150
	SpecialShotSpeed    = 6
	SpecialShotSize     = 40
	SpecialShotLifetime = 150

	MegaShotDamage   = 250
	MegaShotSpeed    = 7
	MegaShotSize     = 52
	MegaShotLifetime = 170

	UltraShotDamage   = 500
	UltraShotSpeed    = 8
	UltraShotSize     = 64
	UltraShotLifetime = 200
)

// Special attack tiers as stored on the player
const (
	SpecialTierBase  = 0
	SpecialTierMega  = 1
	SpecialTierUltra = 2
)

// Shop prices in gold, indexed by the tier being bought
var SpecialTierPrice = [...]int{
	SpecialTierBase:  0,
	SpecialTierMega:  100,
	SpecialTierUltra: 250,
}

// Gold rewards per enemy kind
const (
	GoldRewardMini   = 10
	GoldRewardNormal = 20
	GoldRewardBoss   = 50
)
