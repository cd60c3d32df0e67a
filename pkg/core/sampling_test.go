package core

import (
	"math"
	"testing"
)

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Sample %v is not unit length", v)
		}
		mean = mean.Add(v)
	}

	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected directions to average near zero, got %v", mean)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)

	inner := 0
	const n = 20000
	for i := 0; i < n; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Expected disk sample in z=0 plane, got %v", p)
		}
		if p.Length() > 1+1e-12 {
			t.Fatalf("Sample %v lies outside the unit disk", p)
		}
		if p.Length() < math.Sqrt(0.5) {
			inner++
		}
	}

	// The inner disk of radius sqrt(1/2) covers half the area
	fraction := float64(inner) / n
	if math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("Expected uniform area density, inner fraction was %v", fraction)
	}
}

func TestUniform(t *testing.T) {
	within := NewInterval(-0.5, 0.5)
	if got := Uniform(0, within); got != -0.5 {
		t.Errorf("Uniform(0) = %v, expected -0.5", got)
	}
	if got := Uniform(0.5, within); got != 0 {
		t.Errorf("Uniform(0.5) = %v, expected 0", got)
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(9)
	b := NewSeededSampler(9)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}
