package lights

import (
	"iter"
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// Occluders yields the successive surfaces hit by a ray leaving origin along
// direction, restarting from each hit point. The sequence ends when the scene
// reports no further hit or a hit that does not advance past RayEpsilon, so a
// finite scene yields a finite number of hits.
func Occluders(scene Scene, origin, direction core.Vec3) iter.Seq[*core.HitRecord] {
	return func(yield func(*core.HitRecord) bool) {
		ray := core.NewRay(origin, direction)
		for {
			hit, ok := scene.Intersect(ray)
			if !ok || hit.T < core.RayEpsilon {
				return
			}
			if !yield(hit) {
				return
			}
			ray = core.NewRay(ray.At(hit.T), direction)
		}
	}
}

// transmission returns the clamped transmission of the surface in hit.
// A surface without a material blocks all light.
func transmission(hit *core.HitRecord) core.Vec3 {
	if hit.Material == nil {
		return core.Vec3{}
	}
	return hit.Material.Transmission().Clamp01()
}

// unboundedShadow attenuates color by every occluder along direction
func unboundedShadow(scene Scene, point, direction, color core.Vec3) core.Vec3 {
	col := color
	for hit := range Occluders(scene, point, direction) {
		col = col.MultiplyVec(transmission(hit))
		if col.IsZero() {
			return core.Vec3{}
		}
	}
	return col
}

// boundedShadow attenuates color by the occluders between point and a light at
// position, marching at most cutDistance. A hit that lands at or beyond the
// light (remaining budget under RayEpsilon) ends the march without attenuating.
func boundedShadow(scene Scene, point, position, color core.Vec3, cutDistance float64) core.Vec3 {
	toLight := position.Subtract(point)
	budget := math.Min(toLight.Length(), cutDistance)
	col := color
	if budget < core.RayEpsilon || col.IsZero() {
		return col
	}

	for hit := range Occluders(scene, point, toLight.Normalize()) {
		budget -= hit.T
		if budget < core.RayEpsilon {
			break
		}
		col = col.MultiplyVec(transmission(hit))
		if col.IsZero() {
			break
		}
	}
	return col
}
