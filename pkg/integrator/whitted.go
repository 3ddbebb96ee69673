package integrator

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/lights"
	"github.com/df07/go-raytracer-lights/pkg/material"
	"github.com/df07/go-raytracer-lights/pkg/scene"
)

// blackSurface shades materials that are not Phong surfaces
var blackSurface = &material.Phong{}

// Whitted shades hits with direct lighting from every scene light, then
// follows mirror reflection and straight-through transmission
type Whitted struct {
	config Config
}

// NewWhitted creates a Whitted integrator
func NewWhitted(config Config) *Whitted {
	return &Whitted{config: config}
}

// RayColor implements the Integrator interface
func (w *Whitted) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	return w.trace(ray, s, 0)
}

func (w *Whitted) trace(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	hit, ok := s.Intersect(ray)
	if !ok {
		return s.Background
	}

	surface, ok := hit.Material.(*material.Phong)
	if !ok {
		surface = blackSurface
	}

	view := ray.Direction.Normalize().Negate()
	color := surface.Emissive.Add(Shade(s.Lights, hit, view, surface))

	if depth >= w.config.MaxDepth {
		return color
	}

	if !surface.Reflective.IsZero() {
		reflected := core.NewRay(hit.Point, ray.Direction.Normalize().Reflect(hit.Normal))
		color = color.Add(surface.Reflective.MultiplyVec(w.trace(reflected, s, depth+1)))
	}

	if kt := surface.Transmission().Clamp01(); !kt.IsZero() {
		through := core.NewRay(hit.Point, ray.Direction)
		color = color.Add(kt.MultiplyVec(w.trace(through, s, depth+1)))
	}

	return color
}

// Shade sums the direct contribution of every light at hit as seen from view
// (a unit vector pointing back toward the viewer)
func Shade(sceneLights []lights.Light, hit *core.HitRecord, view core.Vec3, surface *material.Phong) core.Vec3 {
	p := hit.Point
	n := hit.Normal
	var result core.Vec3

	for _, light := range sceneLights {
		if light.Type() == lights.LightTypeAmbient {
			result = result.Add(surface.Ambient.MultiplyVec(light.Color(p)))
			continue
		}

		toLight := light.Direction(p)
		nDotL := n.Dot(toLight)
		if nDotL <= 0 {
			continue
		}

		// Shadow attenuation already carries the light color
		incident := light.ShadowAttenuation(p).Multiply(light.DistanceAttenuation(p))
		if incident.IsZero() {
			continue
		}

		response := surface.Diffuse.Multiply(nDotL)
		if !surface.Specular.IsZero() {
			r := toLight.Negate().Reflect(n)
			if rDotV := r.Dot(view); rDotV > 0 {
				response = response.Add(surface.Specular.Multiply(math.Pow(rDotV, surface.Shininess)))
			}
		}
		result = result.Add(incident.MultiplyVec(response))
	}

	return result
}
