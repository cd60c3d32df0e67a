package integrator

import (
	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
)

// NormalIntegrator shades the closest hit by its surface normal mapped into [0,1].
// Misses show the sky background.
type NormalIntegrator struct{}

// NewNormalIntegrator creates a normal visualization integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// RayColor returns 0.5*(normal+1) for the closest hit
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	hit, isHit := world.Hit(ray, sceneInterval())
	if !isHit {
		return BackgroundGradient(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
