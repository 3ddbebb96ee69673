package geometry

import (
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 2, 0), nil)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
		front     bool
	}{
		{"from above", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)), true, 4, true},
		{"from below", core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)), true, 2, false},
		{"parallel", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), false, 0, false},
		{"pointing away", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(tt.ray, core.RayEpsilon, 1000)
			require.Equal(t, tt.expectHit, isHit)
			if !tt.expectHit {
				return
			}
			assert.InDelta(t, tt.expectedT, hit.T, 1e-9)
			assert.Equal(t, tt.front, hit.FrontFace)
		})
	}
}

func TestPlane_BoundingBoxIsThinForAxisAligned(t *testing.T) {
	box := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), nil).BoundingBox()
	assert.InDelta(t, -1.001, box.Min.Y, 1e-9)
	assert.InDelta(t, -0.999, box.Max.Y, 1e-9)
	assert.Equal(t, -planeExtent, box.Min.X)

	tilted := NewPlane(core.Vec3{}, core.NewVec3(1, 1, 0), nil).BoundingBox()
	assert.Equal(t, -planeExtent, tilted.Min.Y)
}

func TestPlane_IsUnbounded(t *testing.T) {
	assert.True(t, core.IsUnbounded(NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), nil)))
	assert.False(t, core.IsUnbounded(NewSphere(core.Vec3{}, 1, nil)))
}
