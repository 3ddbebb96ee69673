package lights

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// pointSource holds the parameters shared by point and spot lights
type pointSource struct {
	position    core.Vec3
	color       core.Vec3
	atten       Attenuation
	cutDistance float64 // Farthest a shadow ray marches toward the light
}

func (p pointSource) direction(point core.Vec3) core.Vec3 {
	return p.position.Subtract(point).Normalize()
}

// distanceAttenuation returns min(1, 10^scale / (c0 + c1*d + c2*d^2)).
// A zero denominator gives +Inf, which clamps to 1.
func (p pointSource) distanceAttenuation(scene Scene, point core.Vec3) float64 {
	d := p.position.Subtract(point).Length()
	return min(1.0, math.Pow(10, scene.Scale())/p.atten.At(d))
}

func (p pointSource) shadow(scene Scene, point core.Vec3) core.Vec3 {
	return boundedShadow(scene, point, p.position, p.color, p.cutDistance)
}

// PointLight is an isotropic point source with inverse-distance falloff
type PointLight struct {
	scene  Scene
	source pointSource
}

// NewPointLight creates a point light at position
func NewPointLight(scene Scene, position, color core.Vec3, atten Attenuation, cutDistance float64) *PointLight {
	return &PointLight{
		scene: scene,
		source: pointSource{
			position:    position,
			color:       color,
			atten:       atten,
			cutDistance: cutDistance,
		},
	}
}

// Type implements the Light interface
func (l *PointLight) Type() LightType {
	return LightTypePoint
}

// Color implements the Light interface
func (l *PointLight) Color(point core.Vec3) core.Vec3 {
	return l.source.color
}

// Direction implements the Light interface
func (l *PointLight) Direction(point core.Vec3) core.Vec3 {
	return l.source.direction(point)
}

// DistanceAttenuation implements the Light interface
func (l *PointLight) DistanceAttenuation(point core.Vec3) float64 {
	return l.source.distanceAttenuation(l.scene, point)
}

// ShadowAttenuation implements the Light interface
func (l *PointLight) ShadowAttenuation(point core.Vec3) core.Vec3 {
	return l.source.shadow(l.scene, point)
}

// Position returns the light position
func (l *PointLight) Position() core.Vec3 {
	return l.source.position
}
