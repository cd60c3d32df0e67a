package geometry

import (
	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/material"
)

// HittableList tests every shape in order and keeps the closest hit.
// It is the reference the BVH must agree with.
type HittableList struct {
	Shapes []Hittable
	box    core.AABB
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...Hittable) *HittableList {
	list := &HittableList{box: core.EmptyAABB}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the list bounds
func (l *HittableList) Add(shape Hittable) {
	l.Shapes = append(l.Shapes, shape)
	l.box = l.box.Merge(shape.BoundingBox())
}

// Hit returns the closest intersection among all shapes
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := rayT.Max

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, core.NewInterval(rayT.Min, closestT)); ok {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all shape boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.box
}
