package components

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// Particle is a short-lived decorative spark with no gameplay effect
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    core.RGB
	Lifetime int
	MaxLife  int
	Size     float64
}

// NewParticleBurst creates count particles flying out of (x, y) at random angles
func NewParticleBurst(x, y float64, color core.RGB, count int, rng *rand.Rand) []*Particle {
	burst := make([]*Particle, 0, count)
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		speed := constants.ParticleMinSpeed + rng.Float64()*(constants.ParticleMaxSpeed-constants.ParticleMinSpeed)
		life := constants.ParticleMinLifetime + rng.Intn(constants.ParticleMaxLifetime-constants.ParticleMinLifetime+1)
		burst = append(burst, &Particle{
			X:        x,
			Y:        y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Color:    color,
			Lifetime: life,
			MaxLife:  life,
			Size:     constants.ParticleSize,
		})
	}
	return burst
}

// Update moves the particle and burns one tick of lifetime
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= constants.ParticleDrag
	p.VY *= constants.ParticleDrag
	p.Lifetime--
}

// IsDead reports whether the particle should be culled
func (p *Particle) IsDead() bool {
	return p.Lifetime <= 0
}

// Fade returns the remaining life fraction in [0, 1]
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(max(p.Lifetime, 0)) / float64(p.MaxLife)
}
