// Package lights models the light sources of a Whitted-style ray tracer: how much
// color reaches a shading point, from which direction, how it falls off with
// distance, and how much of it survives the occluders in between.
package lights

import "github.com/df07/go-raytracer-lights/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
	LightTypeAmbient     LightType = "ambient"
)

// Light is implemented by every light variant. All methods are read-only and
// safe to call from many goroutines at once.
type Light interface {
	Type() LightType

	// Color returns the radiance color reaching point, ignoring occlusion
	Color(point core.Vec3) core.Vec3

	// Direction returns the unit vector FROM point TOWARD the light
	Direction(point core.Vec3) core.Vec3

	// DistanceAttenuation returns the falloff factor in [0,1] due to distance alone
	DistanceAttenuation(point core.Vec3) float64

	// ShadowAttenuation returns the per-channel light color that survives the
	// occluders between point and the light
	ShadowAttenuation(point core.Vec3) core.Vec3
}

// Scene is the query capability lights need from the scene they belong to
type Scene interface {
	// Intersect returns the nearest hit along ray strictly past its origin
	Intersect(ray core.Ray) (*core.HitRecord, bool)

	// Scale is the exponent calibrating point light falloff: intensities are
	// multiplied by 10^Scale
	Scale() float64
}
