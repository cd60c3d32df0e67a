package material

import (
	"math"
	"testing"

	"github.com/ebriussenex/raytracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)
	white := core.NewVec3(1, 1, 1)

	tests := []struct {
		name      string
		rayDir    core.Vec3
		normal    core.Vec3
		frontFace bool
		draw      float64
		reflect   bool
	}{
		{"normal incidence refracts", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), true, 0.99, false},
		{"schlick draw below reflectance reflects", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), true, 0.0, true},
		{"grazing entry totally reflects", core.NewVec3(1, -0.2, 0), core.NewVec3(0, 1, 0), true, 0.99, true},
		{"grazing exit refracts", core.NewVec3(1, -0.2, 0), core.NewVec3(0, 1, 0), false, 0.99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRayAtTime(core.NewVec3(0, 1, 0), tt.rayDir, 0.4)
			hit := &HitRecord{Point: core.Vec3{}, Normal: tt.normal, FrontFace: tt.frontFace}

			scatter, ok := glass.Scatter(rayIn, hit, fixedSampler{value1D: tt.draw})
			if !ok {
				t.Fatal("Dielectric should always scatter")
			}
			if !scatter.Attenuation.Equals(white) {
				t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
			}
			if scatter.Scattered.Time != rayIn.Time {
				t.Errorf("Expected time %v, got %v", rayIn.Time, scatter.Scattered.Time)
			}

			reflected := scatter.Scattered.Direction.Dot(tt.normal) > 0
			if reflected != tt.reflect {
				t.Errorf("Expected reflect=%v, got direction %v", tt.reflect, scatter.Scattered.Direction)
			}
		})
	}
}

func TestDielectricRefractionRatio(t *testing.T) {
	glass := NewDielectric(1.5)
	incident := core.NewVec3(1, -1, 0).Normalize()
	normal := core.NewVec3(0, 1, 0)
	sinIn := math.Sqrt(0.5)

	t.Run("front face at 45 degrees totally reflects", func(t *testing.T) {
		// 1.5 * sin(45) > 1
		hit := &HitRecord{Normal: normal, FrontFace: true}
		scatter, _ := glass.Scatter(core.NewRay(core.Vec3{}, incident), hit, fixedSampler{value1D: 0.999})
		out := scatter.Scattered.Direction.Normalize()
		expected := core.NewVec3(1, 1, 0).Normalize()
		if out.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected mirror direction %v, got %v", expected, out)
		}
	})

	t.Run("back face scales sine by the inverse index", func(t *testing.T) {
		hit := &HitRecord{Normal: normal, FrontFace: false}
		scatter, _ := glass.Scatter(core.NewRay(core.Vec3{}, incident), hit, fixedSampler{value1D: 0.999})
		out := scatter.Scattered.Direction.Normalize()
		if out.Dot(normal) >= 0 {
			t.Fatalf("Expected refraction through the surface, got %v", out)
		}
		if sinOut := math.Abs(out.X); math.Abs(sinOut-sinIn/1.5) > 1e-9 {
			t.Errorf("Expected sin(out) = %v, got %v", sinIn/1.5, sinOut)
		}
	})
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence gives r0
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	if got := Reflectance(1.0, 1.5); math.Abs(got-r0) > 1e-12 {
		t.Errorf("Expected r0 = %v, got %v", r0, got)
	}

	// Grazing incidence reflects everything
	if got := Reflectance(0.0, 1.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected 1 at grazing incidence, got %v", got)
	}
}
