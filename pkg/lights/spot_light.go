package lights

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
)

// SpotLight restricts a point source to a cone around coneDirection.
// The cone only changes shadow attenuation; color, direction and distance
// falloff are those of the underlying point source.
type SpotLight struct {
	scene         Scene
	source        pointSource
	coneDirection core.Vec3 // Unit cone axis, pointing away from the light
	shininess     float64
	config        SpotConfig
	cosCutoff     float64
}

// NewSpotLight creates a spot light at position aimed along coneDirection
func NewSpotLight(scene Scene, position, color core.Vec3, atten Attenuation, cutDistance float64,
	coneDirection core.Vec3, shininess float64, config SpotConfig) *SpotLight {
	return &SpotLight{
		scene: scene,
		source: pointSource{
			position:    position,
			color:       color,
			atten:       atten,
			cutDistance: cutDistance,
		},
		coneDirection: coneDirection.Normalize(),
		shininess:     shininess,
		config:        config,
		cosCutoff:     math.Cos(config.Cutoff),
	}
}

// Type implements the Light interface
func (l *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Color implements the Light interface
func (l *SpotLight) Color(point core.Vec3) core.Vec3 {
	return l.source.color
}

// Direction implements the Light interface
func (l *SpotLight) Direction(point core.Vec3) core.Vec3 {
	return l.source.direction(point)
}

// DistanceAttenuation implements the Light interface
func (l *SpotLight) DistanceAttenuation(point core.Vec3) float64 {
	return l.source.distanceAttenuation(l.scene, point)
}

// ShadowAttenuation returns zero outside the cone; inside it scales the point
// source shadow by alignment^(shininess*spotP)
func (l *SpotLight) ShadowAttenuation(point core.Vec3) core.Vec3 {
	alignment := l.Alignment(point)
	if alignment <= l.cosCutoff-core.RayEpsilon {
		return core.Vec3{}
	}
	return l.source.shadow(l.scene, point).Multiply(math.Pow(alignment, l.shininess*l.config.SpotP))
}

// Alignment is the cosine between the cone axis and the ray from the light to point
func (l *SpotLight) Alignment(point core.Vec3) float64 {
	return l.coneDirection.Dot(l.Direction(point).Negate())
}

// Config returns the cone parameters
func (l *SpotLight) Config() SpotConfig {
	return l.config
}
