package core

import "sort"

// leafThreshold is the largest shape count stored in a single leaf
const leafThreshold = 8

// BVHNode is either an interior node (Left/Right set) or a leaf (Shapes set)
type BVHNode struct {
	Box    AABB
	Left   *BVHNode
	Right  *BVHNode
	Shapes []Shape
}

// BVH answers nearest-hit queries over a fixed set of shapes.
// It is immutable after construction and safe for concurrent queries.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a hierarchy by median split along the longest axis
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	// Sorting reorders the slice, so work on a private copy
	owned := append([]Shape(nil), shapes...)
	return &BVH{Root: build(owned)}
}

func build(shapes []Shape) *BVHNode {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	if len(shapes) <= leafThreshold {
		return &BVHNode{Box: box, Shapes: shapes}
	}

	a := box.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return axis(shapes[i].BoundingBox().Center(), a) < axis(shapes[j].BoundingBox().Center(), a)
	})
	mid := len(shapes) / 2
	return &BVHNode{
		Box:   box,
		Left:  build(shapes[:mid]),
		Right: build(shapes[mid:]),
	}
}

// Hit returns the nearest intersection with t in [tMin, tMax]
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}

	var closest *HitRecord
	stack := []*BVHNode{bvh.Root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !node.Box.Hit(ray, tMin, tMax) {
			continue
		}
		if node.Shapes != nil {
			for _, s := range node.Shapes {
				if hit, ok := s.Hit(ray, tMin, tMax); ok {
					closest = hit
					tMax = hit.T
				}
			}
			continue
		}
		if node.Right != nil {
			stack = append(stack, node.Right)
		}
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
	}
	return closest, closest != nil
}

// Depth returns the number of levels in the tree (0 when empty)
func (bvh *BVH) Depth() int {
	var depth func(n *BVHNode) int
	depth = func(n *BVHNode) int {
		if n == nil {
			return 0
		}
		return 1 + max(depth(n.Left), depth(n.Right))
	}
	return depth(bvh.Root)
}
