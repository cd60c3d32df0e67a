package material

import (
	"github.com/ebriussenex/raytracer/pkg/core"
)

// Lambertian represents a diffuse material.
// A ray is scattered with probability Reflectance and absorbed otherwise;
// the attenuation is divided by Reflectance so the estimate stays unbiased.
type Lambertian struct {
	Albedo      Texture // Base color/reflectance (can be solid or textured)
	Reflectance float64 // Probability of scattering, in [0, 1]
}

// NewLambertian creates a new lambertian material with solid color that always scatters
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo), Reflectance: 1.0}
}

// NewTexturedLambertian creates a new lambertian material with texture that always scatters
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture, Reflectance: 1.0}
}

// NewAbsorbingLambertian creates a lambertian material that scatters only with the given probability
func NewAbsorbingLambertian(albedoTexture Texture, reflectance float64) *Lambertian {
	return &Lambertian{Albedo: albedoTexture, Reflectance: core.NewInterval(0, 1).Clamp(reflectance)}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if sampler.Get1D() >= l.Reflectance {
		return ScatterResult{}, false
	}

	scatterDirection := hit.Normal.Add(core.SampleOnUnitSphere(sampler.Get2D()))
	// The random unit vector may cancel the normal exactly
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	albedo := l.Albedo.Evaluate(hit.UV, hit.Point)

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: albedo.Divide(l.Reflectance),
	}, true
}
