package material

import (
	"math"
	"testing"

	"github.com/ebriussenex/raytracer/pkg/core"
)

func TestGridTexture(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewGridTexture(4, 4, 2, white, black)

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"top left cell", 0, 0, white},
		{"same cell", 1, 1, white},
		{"next cell right", 2, 0, black},
		{"next cell down", 0, 2, black},
		{"diagonal cell", 3, 3, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Pixels[tt.y*texture.Width+tt.x]; !got.Equals(tt.expected) {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
			}
		})
	}

	// A zero cell size is treated as one pixel
	if fine := NewGridTexture(2, 1, 0, white, black); !fine.Pixels[1].Equals(black) {
		t.Errorf("Expected alternating pixels for zero cell size, got %v", fine.Pixels)
	}
}

func TestUVDebugTexture_RoundTripsCoordinates(t *testing.T) {
	texture := NewUVDebugTexture(64, 32)

	for _, uv := range []core.Vec2{core.NewVec2(0.1, 0.9), core.NewVec2(0.5, 0.5), core.NewVec2(0.9, 0.2)} {
		got := texture.Evaluate(uv, core.Vec3{})
		if math.Abs(got.X-uv.X) > 1.0/64 || math.Abs(got.Y-uv.Y) > 1.0/32 || got.Z != 0 {
			t.Errorf("UV %v: expected color close to (%v, %v, 0), got %v", uv, uv.X, uv.Y, got)
		}
	}
}

func TestGradientTexture(t *testing.T) {
	top := core.NewVec3(1, 0, 0)
	bottom := core.NewVec3(0, 0, 1)
	texture := NewGradientTexture(1, 100, top, bottom)

	nearTop := texture.Evaluate(core.NewVec2(0.5, 0.999), core.Vec3{})
	nearBottom := texture.Evaluate(core.NewVec2(0.5, 0.001), core.Vec3{})

	if nearTop.X < 0.99 || nearTop.Z > 0.01 {
		t.Errorf("Expected top color near %v, got %v", top, nearTop)
	}
	if nearBottom.Z < 0.99 || nearBottom.X > 0.01 {
		t.Errorf("Expected bottom color near %v, got %v", bottom, nearBottom)
	}
}
