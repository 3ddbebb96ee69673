package lights

import (
	"sync/atomic"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

type testMaterial struct {
	kt core.Vec3
}

func (m testMaterial) Transmission() core.Vec3 {
	return m.kt
}

// wall is an infinite plane perpendicular to the X axis
type wall struct {
	x  float64
	kt core.Vec3
}

// wallScene intersects rays with X-aligned walls and counts queries
type wallScene struct {
	walls   []wall
	scale   float64
	queries atomic.Int64
}

func newWallScene(walls ...wall) *wallScene {
	return &wallScene{walls: walls}
}

func (s *wallScene) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	s.queries.Add(1)
	if ray.Direction.X == 0 {
		return nil, false
	}
	var closest *core.HitRecord
	for _, w := range s.walls {
		t := (w.x - ray.Origin.X) / ray.Direction.X
		if t < core.RayEpsilon {
			continue
		}
		if closest == nil || t < closest.T {
			closest = &core.HitRecord{T: t, Point: ray.At(t), Material: testMaterial{kt: w.kt}}
		}
	}
	return closest, closest != nil
}

func (s *wallScene) Scale() float64 {
	return s.scale
}

// stuckScene always reports a hit at the ray origin
type stuckScene struct {
	queries int
}

func (s *stuckScene) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	s.queries++
	return &core.HitRecord{T: 0, Point: ray.Origin, Material: testMaterial{}}, true
}

func (s *stuckScene) Scale() float64 {
	return 0
}

func assertVecNear(t interface {
	Helper()
	Errorf(format string, args ...interface{})
}, expected, actual core.Vec3) {
	t.Helper()
	if expected.Subtract(actual).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
