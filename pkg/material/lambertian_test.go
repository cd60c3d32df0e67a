package material

import (
	"math"
	"testing"

	"github.com/ebriussenex/raytracer/pkg/core"
)

func TestLambertian_FullReflectanceReturnsTextureColor(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	lambertian := NewLambertian(white)
	sampler := core.NewSeededSampler(42)

	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRayAtTime(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.6)

	for i := 0; i < 100; i++ {
		scatter, ok := lambertian.Scatter(rayIn, hit, sampler)
		if !ok {
			t.Fatal("Expected lambertian with reflectance 1 to always scatter")
		}
		if !scatter.Attenuation.Equals(white) {
			t.Fatalf("Expected attenuation %v exactly, got %v", white, scatter.Attenuation)
		}
		if scatter.Scattered.Time != rayIn.Time {
			t.Fatalf("Expected time %v, got %v", rayIn.Time, scatter.Scattered.Time)
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Point: core.Vec3{}, Normal: normal}

	// (1, 0) maps to the unit vector (0, 0, -1), cancelling the normal
	opposite := fixedSampler{value1D: 0, value2D: core.NewVec2(1, 0)}

	scatter, ok := lambertian.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), hit, opposite)
	if !ok {
		t.Fatal("Expected scatter")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_PartialReflectance(t *testing.T) {
	albedo := core.NewVec3(0.4, 0.2, 0.8)
	lambertian := NewAbsorbingLambertian(NewSolidColor(albedo), 0.5)
	hit := &HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	t.Run("draw below reflectance scatters with boosted attenuation", func(t *testing.T) {
		scatter, ok := lambertian.Scatter(rayIn, hit, fixedSampler{value1D: 0.25, value2D: core.NewVec2(0.3, 0.3)})
		if !ok {
			t.Fatal("Expected scatter")
		}
		expected := albedo.Multiply(2)
		if scatter.Attenuation.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Expected attenuation %v, got %v", expected, scatter.Attenuation)
		}
	})

	t.Run("draw above reflectance absorbs", func(t *testing.T) {
		if _, ok := lambertian.Scatter(rayIn, hit, fixedSampler{value1D: 0.75}); ok {
			t.Error("Expected absorption")
		}
	})

	t.Run("estimator is unbiased", func(t *testing.T) {
		sampler := core.NewSeededSampler(11)
		var sum core.Vec3
		const n = 20000
		for i := 0; i < n; i++ {
			if scatter, ok := lambertian.Scatter(rayIn, hit, sampler); ok {
				sum = sum.Add(scatter.Attenuation)
			}
		}
		mean := sum.Divide(n)
		if math.Abs(mean.Z-albedo.Z) > 0.03 {
			t.Errorf("Expected mean attenuation near %v, got %v", albedo, mean)
		}
	})
}

func TestLambertian_ReflectanceClamp(t *testing.T) {
	if got := NewAbsorbingLambertian(NewSolidColor(core.Vec3{}), 1.5).Reflectance; got != 1 {
		t.Errorf("Expected reflectance clamped to 1, got %v", got)
	}
	if got := NewAbsorbingLambertian(NewSolidColor(core.Vec3{}), -1).Reflectance; got != 0 {
		t.Errorf("Expected reflectance clamped to 0, got %v", got)
	}
}
