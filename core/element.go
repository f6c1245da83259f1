package core

// Element is the thematic power tag carried by kingdoms, enemies and shots.
// It never changes combat math; it only selects stat bonuses and palettes.
type Element uint8

const (
	ElementNone Element = iota
	ElementWater
	ElementEarth
	ElementAir
	ElementFire
	elementCount
)

// Elements lists the unlockable elements in kingdom order
var Elements = [...]Element{ElementWater, ElementEarth, ElementAir, ElementFire}

// elementPriority orders elements from strongest to weakest for shot selection
var elementPriority = [...]Element{ElementFire, ElementAir, ElementEarth, ElementWater}

var elementNames = [elementCount]string{
	ElementNone:  "NONE",
	ElementWater: "WATER",
	ElementEarth: "EARTH",
	ElementAir:   "AIR",
	ElementFire:  "FIRE",
}

func (e Element) String() string {
	if e >= elementCount {
		return "UNKNOWN"
	}
	return elementNames[e]
}

// ElementSet is a small bitset of unlocked elements
type ElementSet uint8

// NewElementSet returns a set containing the given elements
func NewElementSet(elems ...Element) ElementSet {
	var s ElementSet
	for _, e := range elems {
		s = s.With(e)
	}
	return s
}

// Has reports whether e is in the set
func (s ElementSet) Has(e Element) bool {
	return s&(1<<e) != 0
}

// With returns the set with e added
func (s ElementSet) With(e Element) ElementSet {
	return s | (1 << e)
}

// Len returns the number of elements in the set
func (s ElementSet) Len() int {
	n := 0
	for e := ElementNone; e < elementCount; e++ {
		if s.Has(e) {
			n++
		}
	}
	return n
}

// Strongest returns the highest-priority element in the set: Fire > Air > Earth > Water > None
func (s ElementSet) Strongest() Element {
	for _, e := range elementPriority {
		if s.Has(e) {
			return e
		}
	}
	return ElementNone
}

// Palette groups the colors an element paints with
type Palette struct {
	Shot      RGB // basic projectile
	Enemy     RGB // enemy body fallback
	HUD       RGB // unlocked slot in the HUD
	Special   RGB // special attack core
	Glow      RGB // special attack halo
	Indicator RGB // active element dot on the player
}

var palettes = [elementCount]Palette{
	ElementNone: {
		Shot:    RGB{200, 200, 200},
		Enemy:   RGB{80, 50, 100},
		HUD:     RGBGray,
		Special: RGB{255, 215, 0},
		Glow:    RGB{255, 255, 200},
	},
	ElementWater: {
		Shot:      RGB{50, 150, 255},
		Enemy:     RGB{50, 150, 255},
		HUD:       RGB{0, 0, 255},
		Special:   RGB{0, 100, 255},
		Glow:      RGB{100, 200, 255},
		Indicator: RGB{50, 150, 255},
	},
	ElementEarth: {
		Shot:      RGB{139, 90, 43},
		Enemy:     RGB{139, 90, 43},
		HUD:       RGB{139, 69, 19},
		Special:   RGB{139, 69, 19},
		Glow:      RGB{200, 150, 100},
		Indicator: RGB{139, 90, 43},
	},
	ElementAir: {
		Shot:      RGB{200, 230, 255},
		Enemy:     RGB{200, 230, 255},
		HUD:       RGB{173, 216, 230},
		Special:   RGB{200, 240, 255},
		Glow:      RGB{255, 255, 255},
		Indicator: RGB{200, 230, 255},
	},
	ElementFire: {
		Shot:      RGB{255, 100, 30},
		Enemy:     RGB{255, 100, 50},
		HUD:       RGB{255, 0, 0},
		Special:   RGB{255, 50, 0},
		Glow:      RGB{255, 200, 100},
		Indicator: RGB{255, 100, 30},
	},
}

// Palette returns the element's color set
func (e Element) Palette() Palette {
	if e >= elementCount {
		return palettes[ElementNone]
	}
	return palettes[e]
}
