package scene

import (
	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/geometry"
	"github.com/df07/go-raytracer-lights/pkg/lights"
	"github.com/df07/go-raytracer-lights/pkg/material"
)

// NewDefaultScene creates a ground plane with an opaque, a glossy and a tinted
// glass sphere, lit by one light of each kind
func NewDefaultScene() *Scene {
	s := NewScene("default", 1)
	s.Camera = CameraConfig{
		LookFrom: core.NewVec3(0, 1.5, 4),
		LookAt:   core.NewVec3(0, 0.3, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}
	s.Background = core.NewVec3(0.05, 0.07, 0.12)

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0),
		material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.65))))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1.2, 0, -1), 0.5,
		material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2))))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.5,
		material.NewGlossy(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(0.8, 0.8, 0.8), 64, core.NewVec3(0.3, 0.3, 0.3))))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.2, 0, -1), 0.5,
		material.NewTransmissive(core.NewVec3(0.3, 0.9, 0.4))))

	s.AddAmbientLight(core.NewVec3(0.1, 0.1, 0.1))
	s.AddDirectionalLight(core.NewVec3(-0.3, -1, -0.4), core.NewVec3(0.4, 0.4, 0.35))
	s.AddPointLight(core.NewVec3(2, 3, 1), core.NewVec3(0.8, 0.7, 0.6), lights.NewAttenuation(1, 0.2, 0.1), 50)
	s.AddSpotLight(core.NewVec3(-2, 3, 0), core.NewVec3(0.9, 0.9, 1), lights.NewAttenuation(1, 0.1, 0.05), 50,
		core.NewVec3(0.8, -1.2, -0.4), 1, lights.SpotConfigDegrees(25, 8))

	return s
}
