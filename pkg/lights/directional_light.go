package lights

import "github.com/df07/go-raytracer-lights/pkg/core"

// DirectionalLight is a source at infinite distance casting parallel rays
type DirectionalLight struct {
	scene       Scene
	orientation core.Vec3 // Unit direction the light travels
	color       core.Vec3
}

// NewDirectionalLight creates a light travelling along orientation
func NewDirectionalLight(scene Scene, orientation, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		scene:       scene,
		orientation: orientation.Normalize(),
		color:       color,
	}
}

// Type implements the Light interface
func (l *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Color implements the Light interface
func (l *DirectionalLight) Color(point core.Vec3) core.Vec3 {
	return l.color
}

// Direction is the same for every point
func (l *DirectionalLight) Direction(point core.Vec3) core.Vec3 {
	return l.orientation.Negate()
}

// DistanceAttenuation is always 1: the source is infinitely far away
func (l *DirectionalLight) DistanceAttenuation(point core.Vec3) float64 {
	return 1.0
}

// ShadowAttenuation marches toward the light with no distance bound
func (l *DirectionalLight) ShadowAttenuation(point core.Vec3) core.Vec3 {
	return unboundedShadow(l.scene, point, l.Direction(point), l.color)
}

// Orientation returns the direction the light travels
func (l *DirectionalLight) Orientation() core.Vec3 {
	return l.orientation
}
