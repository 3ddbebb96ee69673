package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slabShape is a unit-thick wall perpendicular to X at position x
type slabShape struct {
	x float64
}

func (s slabShape) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if ray.Direction.X == 0 {
		return nil, false
	}
	t := (s.x - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}
	return &HitRecord{T: t, Point: ray.At(t)}, true
}

func (s slabShape) BoundingBox() AABB {
	return NewAABB(NewVec3(s.x-0.01, -1, -1), NewVec3(s.x+0.01, 1, 1))
}

func TestBVH_EmptyAndSingleShape(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))

	empty := NewBVH(nil)
	assert.Nil(t, empty.Root)
	hit, ok := empty.Hit(ray, 0.001, 1000)
	assert.False(t, ok)
	assert.Nil(t, hit)
	assert.Equal(t, 0, empty.Depth())

	single := NewBVH([]Shape{slabShape{x: 3}})
	hit, ok = single.Hit(ray, 0.001, 1000)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.T, 1e-12)
	assert.Equal(t, 1, single.Depth())
}

func TestBVH_NearestHitAcrossLeaves(t *testing.T) {
	// Inserted out of order so the nearest wall is not first
	var shapes []Shape
	for _, x := range []float64{17, 4, 12, 9, 20, 2, 15, 6, 11, 19, 8, 14} {
		shapes = append(shapes, slabShape{x: x})
	}
	bvh := NewBVH(shapes)
	assert.Greater(t, bvh.Depth(), 1, "more than leafThreshold shapes must split")

	tests := []struct {
		name     string
		origin   Vec3
		expected float64
	}{
		{"from origin", NewVec3(0, 0, 0), 2},
		{"between walls", NewVec3(10, 0, 0), 1},
		{"past last wall", NewVec3(21, 0, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := bvh.Hit(NewRay(tt.origin, NewVec3(1, 0, 0)), 0.001, 1000)
			if tt.expected < 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.InDelta(t, tt.expected, hit.T, 1e-9)
		})
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	shapes := make([]Shape, 0, 10)
	for i := 10; i > 0; i-- {
		shapes = append(shapes, slabShape{x: float64(i)})
	}
	NewBVH(shapes)
	assert.Equal(t, slabShape{x: 10}, shapes[0])
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	assert.True(t, box.Hit(NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 0, 100))
	assert.False(t, box.Hit(NewRay(NewVec3(-5, 2, 0), NewVec3(1, 0, 0)), 0, 100))
	assert.False(t, box.Hit(NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 0, 3), "box starts beyond tMax")
	assert.Equal(t, 2, NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3)).LongestAxis())
}
