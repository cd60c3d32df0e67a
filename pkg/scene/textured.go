package scene

import (
	"github.com/pkg/errors"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/loaders"
	"github.com/ebriussenex/raytracer/pkg/material"
	"github.com/ebriussenex/raytracer/pkg/renderer"
)

// NewCheckerScene creates two large spheres sharing a world-space checker texture
func NewCheckerScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		VFov:            20.0,
		MaxDepth:        50,
	}

	s := NewScene("checker", mergeOverrides(defaultCameraConfig, cameraOverrides))

	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return s
}

// NewEarthScene creates a single globe textured with the image at texturePath.
// Without a path the globe shows a latitude/longitude grid instead.
func NewEarthScene(texturePath string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:        core.NewVec3(0, 0, 12),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		VFov:            20.0,
		MaxDepth:        50,
	}

	var texture material.Texture = material.NewGridTexture(360, 180, 15,
		core.NewVec3(0.1, 0.3, 0.7), core.NewVec3(0.9, 0.9, 0.8))

	if texturePath != "" {
		imageTexture, err := loaders.NewImageTextureFromFile(texturePath)
		if err != nil {
			return nil, errors.Wrap(err, "earth scene")
		}
		texture = imageTexture
	}

	s := NewScene("earth", mergeOverrides(defaultCameraConfig, cameraOverrides))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))

	return s, nil
}

// NewTexturesScene lines up spheres showing each rasterized texture, left to right:
// grid, vertical gradient, UV debug and a fine grid
func NewTexturesScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:        core.NewVec3(0, 2, 9),
		LookAt:          core.NewVec3(0, 0.8, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 50,
		VFov:            40.0,
		MaxDepth:        20,
	}

	s := NewScene("textures", mergeOverrides(defaultCameraConfig, cameraOverrides))

	grid := material.NewGridTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	gradient := material.NewGradientTexture(256, 256,
		core.NewVec3(1.0, 0.2, 0.2), // top
		core.NewVec3(0.2, 1.0, 0.2), // bottom
	)
	uvDebug := material.NewUVDebugTexture(256, 256)
	brick := material.NewGridTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1),
		core.NewVec3(0.5, 0.2, 0.05),
	)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(-3.3, 1, 0), 1, material.NewTexturedLambertian(grid)),
		geometry.NewSphere(core.NewVec3(-1.1, 1, 0), 1, material.NewTexturedLambertian(gradient)),
		geometry.NewSphere(core.NewVec3(1.1, 1, 0), 1, material.NewTexturedLambertian(uvDebug)),
		geometry.NewSphere(core.NewVec3(3.3, 1, 0), 1, material.NewTexturedLambertian(brick)),
	)

	return s
}
