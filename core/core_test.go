package core

import "testing"

func TestElementSetStrongest(t *testing.T) {
	tests := []struct {
		name string
		set  ElementSet
		want Element
	}{
		{"None only", NewElementSet(ElementNone), ElementNone},
		{"Water", NewElementSet(ElementNone, ElementWater), ElementWater},
		{"Earth beats water", NewElementSet(ElementNone, ElementWater, ElementEarth), ElementEarth},
		{"Air beats earth", NewElementSet(ElementEarth, ElementAir), ElementAir},
		{"Fire beats all", NewElementSet(ElementWater, ElementEarth, ElementAir, ElementFire), ElementFire},
		{"Empty set", 0, ElementNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Strongest(); got != tt.want {
				t.Errorf("Strongest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementSetWithIsIdempotent(t *testing.T) {
	s := NewElementSet(ElementNone).With(ElementFire).With(ElementFire)
	if s.Len() != 2 {
		t.Errorf("Expected 2 elements, got %d", s.Len())
	}
	if !s.Has(ElementFire) || !s.Has(ElementNone) {
		t.Errorf("Expected set to contain NONE and FIRE, got %08b", s)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlapping", Rect{5, 5, 10, 10}, true},
		{"Contained", Rect{2, 2, 2, 2}, true},
		{"Touching right edge", Rect{10, 0, 5, 5}, false},
		{"Touching bottom edge", Rect{0, 10, 5, 5}, false},
		{"Disjoint", Rect{20, 20, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestGameStateString(t *testing.T) {
	if StateGameOver.String() != "game_over" {
		t.Errorf("Expected game_over, got %s", StateGameOver)
	}
	if GameState(99).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range state")
	}
}
