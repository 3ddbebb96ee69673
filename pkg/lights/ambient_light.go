package lights

import "github.com/df07/go-raytracer-lights/pkg/core"

// AmbientLight is uniform fill light that reaches every point unoccluded.
// It has no position, so Direction and ShadowAttenuation return fixed values.
type AmbientLight struct {
	color core.Vec3
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color core.Vec3) *AmbientLight {
	return &AmbientLight{color: color}
}

// Type implements the Light interface
func (l *AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// Color implements the Light interface
func (l *AmbientLight) Color(point core.Vec3) core.Vec3 {
	return l.color
}

// Direction is meaningless for ambient light
func (l *AmbientLight) Direction(point core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}

// DistanceAttenuation implements the Light interface
func (l *AmbientLight) DistanceAttenuation(point core.Vec3) float64 {
	return 1.0
}

// ShadowAttenuation is never evaluated against the scene
func (l *AmbientLight) ShadowAttenuation(point core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}
