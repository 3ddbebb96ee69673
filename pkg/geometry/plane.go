package geometry

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// planeExtent sizes the nominal bounding box. Scenes keep planes out of the
// BVH, so hits beyond it are still found.
const planeExtent = 1e6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Material core.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	// Parallel rays never hit
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)
	return hit, true
}

// Unbounded implements core.Unbounded
func (p *Plane) Unbounded() bool {
	return true
}

// BoundingBox returns a thin slab for axis-aligned planes and a large cube otherwise
func (p *Plane) BoundingBox() core.AABB {
	const thickness = 1e-3
	lo := core.NewVec3(-planeExtent, -planeExtent, -planeExtent)
	hi := core.NewVec3(planeExtent, planeExtent, planeExtent)

	n := p.Normal
	switch {
	case math.Abs(n.X) > 0.999:
		lo.X, hi.X = p.Point.X-thickness, p.Point.X+thickness
	case math.Abs(n.Y) > 0.999:
		lo.Y, hi.Y = p.Point.Y-thickness, p.Point.Y+thickness
	case math.Abs(n.Z) > 0.999:
		lo.Z, hi.Z = p.Point.Z-thickness, p.Point.Z+thickness
	}
	return core.NewAABB(lo, hi)
}
