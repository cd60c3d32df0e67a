package material

import (
	"testing"

	"github.com/ebriussenex/raytracer/pkg/core"
)

// TestImageTextureEvaluate tests basic nearest-neighbor texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	pixels := []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left maps to row 1", core.NewVec2(0.1, 0.1), black},
		{"bottom-right maps to row 1", core.NewVec2(0.9, 0.1), white},
		{"top-left maps to row 0", core.NewVec2(0.1, 0.9), white},
		{"top-right maps to row 0", core.NewVec2(0.9, 0.9), black},
		{"u=1 clamps to last column", core.NewVec2(1.0, 0.9), black},
		{"v=0 clamps to last row", core.NewVec2(0.1, 0.0), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); !got.Equals(tt.expected) {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

// TestImageTextureClamping tests that out-of-range UVs are clamped rather than wrapped
func TestImageTextureClamping(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	// 2x1: red on the left, green on the right
	texture := NewImageTexture(2, 1, []core.Vec3{red, green})

	if got := texture.Evaluate(core.NewVec2(-3, 0.5), core.Vec3{}); !got.Equals(red) {
		t.Errorf("Expected u<0 to clamp to left column, got %v", got)
	}
	if got := texture.Evaluate(core.NewVec2(7, 0.5), core.Vec3{}); !got.Equals(green) {
		t.Errorf("Expected u>1 to clamp to right column, got %v", got)
	}
	if got := texture.Evaluate(core.NewVec2(0.9, -0.5), core.Vec3{}); !got.Equals(green) {
		t.Errorf("Expected negative v to be taken by magnitude, got %v", got)
	}
}

func TestImageTextureEmptyFallsBackToCyan(t *testing.T) {
	texture := NewImageTexture(4, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); !got.Equals(MissingImageColor) {
		t.Errorf("Expected fallback color %v, got %v", MissingImageColor, got)
	}
}

func TestCheckerTexture(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerTextureFromColors(0.5, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one step in x", core.NewVec3(0.6, 0.1, 0.1), odd},
		{"two steps", core.NewVec3(0.6, 0.6, 0.1), even},
		{"negative cell", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative cells", core.NewVec3(-0.1, -0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(core.Vec2{}, tt.point); !got.Equals(tt.expected) {
				t.Errorf("Evaluate(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || !front.Normal.Equals(outward) {
		t.Errorf("Expected front face with outward normal, got %+v", front)
	}

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), outward)
	if back.FrontFace || !back.Normal.Equals(outward.Negate()) {
		t.Errorf("Expected back face with flipped normal, got %+v", back)
	}
}
