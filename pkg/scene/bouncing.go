package scene

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/material"
	"github.com/ebriussenex/raytracer/pkg/renderer"
)

// bouncingGridSize is the number of cells per side of the small sphere field
const bouncingGridSize = 22

// NewBouncingScene creates a field of small random spheres on a checkered ground, with
// diffuse spheres bouncing upward during the shutter interval. The layout is fixed by seed.
func NewBouncingScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		VFov:            20.0,
		DefocusAngle:    degrees(0.6),
		FocusDistance:   10.0,
		MaxDepth:        50,
	}

	s := NewScene("bouncing", mergeOverrides(defaultCameraConfig, cameraOverrides))
	random := rand.New(rand.NewSource(seed))

	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	// Keep the small spheres clear of the large metal one
	clearing := core.NewVec3(4, 0.2, 0)

	small := lo.FilterMap(lo.Range(bouncingGridSize*bouncingGridSize), func(cell int, _ int) (geometry.Hittable, bool) {
		a := float64(cell/bouncingGridSize - bouncingGridSize/2)
		b := float64(cell%bouncingGridSize - bouncingGridSize/2)
		chooseMat := random.Float64()
		center := core.NewVec3(a+0.9*random.Float64(), 0.2, b+0.9*random.Float64())

		if center.Subtract(clearing).Length() <= 0.9 {
			return nil, false
		}

		switch {
		case chooseMat < 0.8:
			albedo := randomColor(random).MultiplyVec(randomColor(random))
			bounce := core.NewVec3(0, 0.5*random.Float64(), 0)
			return geometry.NewMovingSphere(center, center.Add(bounce), 0.2, material.NewLambertian(albedo)), true
		case chooseMat < 0.95:
			albedo := randomColor(random).Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
			fuzz := 0.5 * random.Float64()
			return geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)), true
		default:
			return geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)), true
		}
	})
	s.Add(small...)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
