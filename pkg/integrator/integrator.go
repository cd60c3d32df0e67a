package integrator

import (
	"math"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
)

// HitEpsilon is the lower bound of every scene query. It keeps a scattered ray from
// re-hitting the surface it leaves (shadow acne).
const HitEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear RGB color carried back along ray.
	// world must be fully built; sampler is owned by the calling goroutine.
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

var (
	white   = core.NewVec3(1, 1, 1)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// BackgroundGradient returns the sky color seen along ray: white at the bottom blending to blue at the top
func BackgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, t)
}

// sceneInterval is the range of ray parameters a scene query accepts
func sceneInterval() core.Interval {
	return core.NewInterval(HitEpsilon, math.Inf(1))
}
