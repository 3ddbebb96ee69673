package scene

import (
	"math"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/lights"
	"github.com/google/uuid"
)

// CameraConfig places the pinhole camera
type CameraConfig struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// DefaultCameraConfig looks down -Z from the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60,
	}
}

// Scene contains all the elements needed for rendering. Once Preprocess has
// run it is read-only and safe to query from many goroutines.
type Scene struct {
	ID         uuid.UUID
	Name       string
	Camera     CameraConfig
	Background core.Vec3
	Shapes     []core.Shape
	Lights     []lights.Light
	BVH        *core.BVH // Nil until Preprocess; holds bounded shapes only

	unbounded []core.Shape // Planes and other shapes tested linearly next to the BVH
	scale     float64
}

// NewScene creates an empty scene. scale is the exponent applied to point
// light intensities (10^scale).
func NewScene(name string, scale float64) *Scene {
	return &Scene{
		ID:     uuid.New(),
		Name:   name,
		Camera: DefaultCameraConfig(),
		scale:  scale,
	}
}

// Scale implements lights.Scene
func (s *Scene) Scale() float64 {
	return s.scale
}

// Intersect returns the nearest hit past RayEpsilon. It uses the BVH when
// Preprocess has built one and a linear scan otherwise. Unbounded shapes
// are always scanned, so both paths agree at any distance.
func (s *Scene) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	if s.BVH == nil {
		return closestHit(s.Shapes, ray, nil, math.Inf(1))
	}

	closest, _ := s.BVH.Hit(ray, core.RayEpsilon, math.Inf(1))
	tMax := math.Inf(1)
	if closest != nil {
		tMax = closest.T
	}
	return closestHit(s.unbounded, ray, closest, tMax)
}

func closestHit(shapes []core.Shape, ray core.Ray, closest *core.HitRecord, tMax float64) (*core.HitRecord, bool) {
	for _, shape := range shapes {
		if hit, ok := shape.Hit(ray, core.RayEpsilon, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}
	return closest, closest != nil
}

// Preprocess builds the BVH over bounded shapes and sets unbounded ones
// aside for linear testing
func (s *Scene) Preprocess() error {
	var bounded []core.Shape
	s.unbounded = nil
	for _, shape := range s.Shapes {
		if core.IsUnbounded(shape) {
			s.unbounded = append(s.unbounded, shape)
			continue
		}
		bounded = append(bounded, shape)
	}
	s.BVH = core.NewBVH(bounded)
	return nil
}

// AddShape adds geometry to the scene
func (s *Scene) AddShape(shape core.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddDirectionalLight adds a light travelling along orientation
func (s *Scene) AddDirectionalLight(orientation, color core.Vec3) *lights.DirectionalLight {
	light := lights.NewDirectionalLight(s, orientation, color)
	s.Lights = append(s.Lights, light)
	return light
}

// AddPointLight adds an isotropic point light
func (s *Scene) AddPointLight(position, color core.Vec3, atten lights.Attenuation, cutDistance float64) *lights.PointLight {
	light := lights.NewPointLight(s, position, color, atten, cutDistance)
	s.Lights = append(s.Lights, light)
	return light
}

// AddSpotLight adds a spot light aimed along coneDirection
func (s *Scene) AddSpotLight(position, color core.Vec3, atten lights.Attenuation, cutDistance float64,
	coneDirection core.Vec3, shininess float64, config lights.SpotConfig) *lights.SpotLight {
	light := lights.NewSpotLight(s, position, color, atten, cutDistance, coneDirection, shininess, config)
	s.Lights = append(s.Lights, light)
	return light
}

// AddAmbientLight adds uniform fill light
func (s *Scene) AddAmbientLight(color core.Vec3) *lights.AmbientLight {
	light := lights.NewAmbientLight(color)
	s.Lights = append(s.Lights, light)
	return light
}
