package engine

import (
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/lixenwraith/aelyra/components"
	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// KingdomDef is the static description of one themed world
type KingdomDef struct {
	Name       string
	Element    core.Element
	Background core.RGB // Fallback fill when the background image is unavailable
	ImageKey   string   // Still background, resolved by the asset library
	AnimKey    string   // Optional animated background
}

// DefaultKingdoms returns the fixed campaign order: Water, Earth, Air, Fire
func DefaultKingdoms() []KingdomDef {
	return []KingdomDef{
		{Name: "Kingdom of Water", Element: core.ElementWater, Background: core.RGB{R: 50, G: 100, B: 150}, ImageKey: "water.png", AnimKey: "water.gif"},
		{Name: "Kingdom of Earth", Element: core.ElementEarth, Background: core.RGB{R: 100, G: 70, B: 40}, ImageKey: "earth.png", AnimKey: "earth.gif"},
		{Name: "Kingdom of Air", Element: core.ElementAir, Background: core.RGB{R: 135, G: 206, B: 235}, ImageKey: "air.png", AnimKey: "air.gif"},
		{Name: "Kingdom of Fire", Element: core.ElementFire, Background: core.RGB{R: 139, G: 50, B: 30}, ImageKey: "fire.png", AnimKey: "fire.gif"},
	}
}

// rosterKinds is the weighted pool regular enemies are drawn from
var rosterKinds = [...]components.EnemyKind{components.KindMini, components.KindNormal, components.KindNormal}

// Kingdom is one level of the campaign with its live enemy roster.
// The roster is built once; afterwards only Remove shrinks it.
type Kingdom struct {
	KingdomDef
	Index      int
	WorldWidth float64
	Enemies    []*components.Enemy

	completed bool
}

// NewKingdom builds the kingdom at campaign position index with its full roster
func NewKingdom(def KingdomDef, index int, rng *rand.Rand) *Kingdom {
	k := &Kingdom{
		KingdomDef: def,
		Index:      index,
		WorldWidth: constants.WorldWidth,
	}
	k.populate(rng)
	return k
}

// EnemyCount returns the number of regular enemies for a campaign position
func EnemyCount(index int) int {
	counts := constants.EnemyCountByKingdom
	return counts[min(max(index, 0), len(counts)-1)]
}

func (k *Kingdom) populate(rng *rand.Rand) {
	count := EnemyCount(k.Index)
	k.Enemies = make([]*components.Enemy, 0, count+1)

	// Spread across the part of the world past the first half screen
	spacing := (k.WorldWidth - constants.ScreenWidth) / float64(count)
	for i := range count {
		x := float64(int(constants.ScreenWidth*0.5 + float64(i)*spacing))
		kind := rosterKinds[rng.Intn(len(rosterKinds))]
		k.Enemies = append(k.Enemies, components.NewEnemy(x, constants.EnemyGroundLevel, kind, k.Element, k.Index, k.WorldWidth, rng))
	}

	bossX := k.WorldWidth - constants.BossOffsetFromWorldEnd
	k.Enemies = append(k.Enemies, components.NewEnemy(bossX, constants.EnemyGroundLevel, components.KindBoss, k.Element, k.Index, k.WorldWidth, rng))
}

// Remove drops the enemy with the given ID. Returns false if it was not in the roster.
func (k *Kingdom) Remove(id uuid.UUID) bool {
	i := slices.IndexFunc(k.Enemies, func(e *components.Enemy) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	k.Enemies = slices.Delete(k.Enemies, i, i+1)
	return true
}

// Cleared reports whether every enemy has been defeated
func (k *Kingdom) Cleared() bool {
	return len(k.Enemies) == 0
}

// Completed reports whether the clear has already been processed
func (k *Kingdom) Completed() bool {
	return k.completed
}

// MarkCompleted sets the write-once completion flag.
// Returns true only on the call that flips it.
func (k *Kingdom) MarkCompleted() bool {
	if k.completed {
		return false
	}
	k.completed = true
	return true
}
