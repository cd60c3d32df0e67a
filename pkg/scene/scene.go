package scene

import (
	"math"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/material"
	"github.com/ebriussenex/raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Shapes       []geometry.Hittable   // Objects in the scene
	BVH          *geometry.BVHNode     // Acceleration structure, set by Build
	CameraConfig renderer.CameraConfig // Suggested camera for this scene
}

// NewScene creates an empty scene with the given camera
func NewScene(name string, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Shapes:       make([]geometry.Hittable, 0),
		CameraConfig: cameraConfig,
	}
}

// Add appends shapes to the scene. Shapes added after Build are not visible until the next Build.
func (s *Scene) Add(shapes ...geometry.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Build constructs the BVH over every shape added so far and freezes the scene for rendering
func (s *Scene) Build() geometry.BVHStats {
	s.BVH = geometry.NewBVH(s.Shapes)
	return s.BVH.Stats()
}

// Hit tests the ray against the built scene. An unbuilt scene reports no hits.
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if s.BVH == nil {
		return nil, false
	}
	return s.BVH.Hit(ray, rayT)
}

// BoundingBox returns the bounds of the built scene
func (s *Scene) BoundingBox() core.AABB {
	if s.BVH == nil {
		return core.EmptyAABB
	}
	return s.BVH.BoundingBox()
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Shapes)
}

// degrees converts an angle in degrees to radians
func degrees(deg float64) float64 {
	return deg * math.Pi / 180.0
}
