package geometry

import (
	"slices"

	"github.com/samber/lo"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/material"
)

// BVHNode is a node in the Bounding Volume Hierarchy. Both children are always set;
// a single primitive is stored as a self-pair. Children are either primitives or further nodes.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is not modified.
// An empty input yields a node that never reports a hit.
func NewBVH(shapes []Hittable) *BVHNode {
	if len(shapes) == 0 {
		return &BVHNode{Box: core.EmptyAABB}
	}

	// Make a copy of the shapes slice to avoid modifying the original
	shapesCopy := make([]Hittable, len(shapes))
	copy(shapesCopy, shapes)

	return buildBVH(shapesCopy)
}

// buildBVH recursively splits shapes at the median along the longest axis of their combined box.
// shapes is sorted in place.
func buildBVH(shapes []Hittable) *BVHNode {
	box := lo.Reduce(shapes, func(acc core.AABB, shape Hittable, _ int) core.AABB {
		return acc.Merge(shape.BoundingBox())
	}, core.EmptyAABB)

	axis := box.LongestAxis()
	node := &BVHNode{Box: box}

	switch len(shapes) {
	case 1:
		node.Left, node.Right = shapes[0], shapes[0]
	case 2:
		node.Left, node.Right = shapes[0], shapes[1]
		if shapes[0].BoundingBox().CompareOverAxis(shapes[1].BoundingBox(), axis) > 0 {
			node.Left, node.Right = shapes[1], shapes[0]
		}
	default:
		sortShapesByAxis(shapes, axis)
		mid := len(shapes) / 2
		node.Left = buildBVH(shapes[:mid])
		node.Right = buildBVH(shapes[mid:])
	}

	return node
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along the specified axis
func sortShapesByAxis(shapes []Hittable, axis int) {
	slices.SortFunc(shapes, func(a, b Hittable) int {
		return a.BoundingBox().CompareOverAxis(b.BoundingBox(), axis)
	})
}

// Hit tests if a ray intersects any shape below this node and returns the closest hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if n.Left == nil || !n.Box.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)

	// Anything on the right farther than the left hit cannot be the closest
	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, rightT)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box enclosing every shape below this node
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// BVHStats describes the shape of a BVH
type BVHStats struct {
	TotalNodes int
	Leaves     int
	MaxDepth   int
}

// Stats walks the tree and collects node counts and depth
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else if child != nil {
			stats.Leaves++
		}
	}
}
