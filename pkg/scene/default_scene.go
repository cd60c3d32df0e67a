package scene

import (
	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/material"
	"github.com/ebriussenex/raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with a diffuse, a glass and a fuzzy metal sphere on a ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:        core.NewVec3(-2, 2, 1),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		VFov:            20.0,
		DefocusAngle:    degrees(10.0),
		FocusDistance:   3.4,
		MaxDepth:        50,
	}

	s := NewScene("default", mergeOverrides(defaultCameraConfig, cameraOverrides))

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Air bubble inside the glass sphere makes it read as hollow
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}

// NewNormalsScene creates a single sphere of radius 0.5 at (0,0,-1) above a ground sphere,
// seen by the default pinhole camera. It pairs with the normal integrator.
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		MaxDepth:    10,
	}

	s := NewScene("normals", mergeOverrides(defaultCameraConfig, cameraOverrides))
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return s
}

// NewEmptyScene creates a scene with no shapes; every pixel shows the sky
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
	}
	return NewScene("empty", mergeOverrides(defaultCameraConfig, cameraOverrides))
}

// mergeOverrides applies the first override, if any
func mergeOverrides(base renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(base, overrides[0])
	}
	return base
}
