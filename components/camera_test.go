package components

import (
	"testing"

	"github.com/lixenwraith/aelyra/constants"
)

func TestCameraFollowClamp(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		minX    float64
		maxX    float64
	}{
		{"Left edge", 0, 0, 0},
		{"Right edge", testWorldWidth - constants.PlayerWidth, 0, testWorldWidth - constants.ScreenWidth},
		{"Middle", 1200, 0, testWorldWidth - constants.ScreenWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cam Camera
			p := NewPlayer(tt.playerX, constants.PlayerGroundLevel)
			for range 500 {
				cam.Follow(p, testWorldWidth)
				if cam.X < tt.minX || cam.X > tt.maxX {
					t.Fatalf("Camera x %v outside [%v, %v]", cam.X, tt.minX, tt.maxX)
				}
			}
		})
	}
}

func TestCameraConvergesOnRightBound(t *testing.T) {
	var cam Camera
	p := NewPlayer(testWorldWidth-constants.PlayerWidth, constants.PlayerGroundLevel)
	for range 500 {
		cam.Follow(p, testWorldWidth)
	}
	want := float64(testWorldWidth - constants.ScreenWidth)
	if diff := want - cam.X; diff > 0.01 || diff < 0 {
		t.Errorf("Expected camera near %v, got %v", want, cam.X)
	}

	cam.Reset()
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("Expected reset to origin, got (%v, %v)", cam.X, cam.Y)
	}
}
