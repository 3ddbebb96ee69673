package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/geometry"
	"github.com/df07/go-raytracer-lights/pkg/lights"
	"github.com/df07/go-raytracer-lights/pkg/material"
	"github.com/df07/go-raytracer-lights/pkg/scene"
)

// Vec is a JSON triple
type Vec [3]float64

func (v Vec) vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type CameraCfg struct {
	LookFrom Vec     `json:"lookFrom"`
	LookAt   Vec     `json:"lookAt"`
	Up       *Vec    `json:"up,omitempty"`
	VFov     float64 `json:"vfov,omitempty"`
}

type MaterialCfg struct {
	Ambient      Vec     `json:"ambient,omitempty"`
	Diffuse      Vec     `json:"diffuse,omitempty"`
	Specular     Vec     `json:"specular,omitempty"`
	Reflective   Vec     `json:"reflective,omitempty"`
	Transmissive Vec     `json:"transmissive,omitempty"`
	Emissive     Vec     `json:"emissive,omitempty"`
	Shininess    float64 `json:"shininess,omitempty"`
}

type SphereCfg struct {
	Center   Vec     `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

type PlaneCfg struct {
	Point    Vec    `json:"point"`
	Normal   Vec    `json:"normal"`
	Material string `json:"material"`
}

// LightCfg describes any light; Type selects which fields apply
type LightCfg struct {
	Type          lights.LightType `json:"type"`
	Color         Vec              `json:"color"`
	Orientation   Vec              `json:"orientation,omitempty"`   // directional
	Position      Vec              `json:"position,omitempty"`      // point, spot
	Attenuation   *Vec             `json:"attenuation,omitempty"`   // point, spot: constant, linear, quadratic
	CutDistance   float64          `json:"cutDistance,omitempty"`   // point, spot
	ConeDirection Vec              `json:"coneDirection,omitempty"` // spot
	Shininess     float64          `json:"shininess,omitempty"`     // spot
	CutoffDeg     *float64         `json:"cutoffDeg,omitempty"`     // spot, overrides the default cone
	SpotP         *float64         `json:"spotP,omitempty"`         // spot, overrides the default sharpness
}

// SceneCfg is the on-disk scene description
type SceneCfg struct {
	Name       string                 `json:"name"`
	Scale      float64                `json:"scale"`
	Background Vec                    `json:"background,omitempty"`
	Camera     *CameraCfg             `json:"camera,omitempty"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Spheres    []SphereCfg            `json:"spheres,omitempty"`
	Planes     []PlaneCfg             `json:"planes,omitempty"`
	Lights     []LightCfg             `json:"lights"`
}

// DefaultCutDistance bounds shadow rays of point and spot lights that do not set one
const DefaultCutDistance = 1e4

// LoadSceneFile reads and builds a scene from a JSON file
func LoadSceneFile(path string, logger core.Logger) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return LoadScene(f, logger)
}

// LoadScene decodes a JSON scene description, validates every light and
// returns a preprocessed scene. logger may be nil.
func LoadScene(r io.Reader, logger core.Logger) (*scene.Scene, error) {
	var cfg SceneCfg
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := scene.NewScene(cfg.Name, cfg.Scale)
	s.Background = cfg.Background.vec3()
	if cfg.Camera != nil {
		s.Camera.LookFrom = cfg.Camera.LookFrom.vec3()
		s.Camera.LookAt = cfg.Camera.LookAt.vec3()
		if cfg.Camera.Up != nil {
			s.Camera.Up = cfg.Camera.Up.vec3()
		}
		if cfg.Camera.VFov > 0 {
			s.Camera.VFov = cfg.Camera.VFov
		}
	}

	materials := make(map[string]*material.Phong, len(cfg.Materials))
	for name, m := range cfg.Materials {
		materials[name] = &material.Phong{
			Ambient:      m.Ambient.vec3(),
			Diffuse:      m.Diffuse.vec3(),
			Specular:     m.Specular.vec3(),
			Reflective:   m.Reflective.vec3(),
			Transmissive: m.Transmissive.vec3(),
			Emissive:     m.Emissive.vec3(),
			Shininess:    m.Shininess,
		}
	}
	lookup := func(kind string, i int, name string) (*material.Phong, error) {
		m, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%s %d: unknown material %q", kind, i, name)
		}
		return m, nil
	}

	for i, sc := range cfg.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %v", i, sc.Radius)
		}
		m, err := lookup("sphere", i, sc.Material)
		if err != nil {
			return nil, err
		}
		s.AddShape(geometry.NewSphere(sc.Center.vec3(), sc.Radius, m))
	}

	for i, pc := range cfg.Planes {
		if err := lights.ValidateDirection(pc.Normal.vec3()); err != nil {
			return nil, fmt.Errorf("plane %d normal: %w", i, err)
		}
		m, err := lookup("plane", i, pc.Material)
		if err != nil {
			return nil, err
		}
		s.AddShape(geometry.NewPlane(pc.Point.vec3(), pc.Normal.vec3(), m))
	}

	for i, lc := range cfg.Lights {
		if err := addLight(s, lc); err != nil {
			return nil, fmt.Errorf("light %d (%s): %w", i, lc.Type, err)
		}
	}

	if err := s.Preprocess(); err != nil {
		return nil, fmt.Errorf("preprocess scene: %w", err)
	}

	if logger != nil {
		logger.Printf("loaded scene %q (%s): %d shapes, %d lights, BVH depth %d",
			s.Name, s.ID, len(s.Shapes), len(s.Lights), s.BVH.Depth())
	}
	return s, nil
}

func addLight(s *scene.Scene, lc LightCfg) error {
	color := lc.Color.vec3()

	switch lc.Type {
	case lights.LightTypeAmbient:
		s.AddAmbientLight(color)
		return nil

	case lights.LightTypeDirectional:
		if err := lights.ValidateDirection(lc.Orientation.vec3()); err != nil {
			return fmt.Errorf("orientation: %w", err)
		}
		s.AddDirectionalLight(lc.Orientation.vec3(), color)
		return nil

	case lights.LightTypePoint, lights.LightTypeSpot:
		atten := lights.NewAttenuation(1, 0, 0)
		if lc.Attenuation != nil {
			atten = lights.NewAttenuation(lc.Attenuation[0], lc.Attenuation[1], lc.Attenuation[2])
		}
		if err := atten.Validate(); err != nil {
			return err
		}
		cut := lc.CutDistance
		if cut == 0 {
			cut = DefaultCutDistance
		}
		if err := lights.ValidateCutDistance(cut); err != nil {
			return err
		}

		if lc.Type == lights.LightTypePoint {
			s.AddPointLight(lc.Position.vec3(), color, atten, cut)
			return nil
		}

		if err := lights.ValidateDirection(lc.ConeDirection.vec3()); err != nil {
			return fmt.Errorf("cone direction: %w", err)
		}
		spot := lights.DefaultSpotConfig()
		if lc.CutoffDeg != nil {
			spot = lights.SpotConfigDegrees(*lc.CutoffDeg, spot.SpotP)
		}
		if lc.SpotP != nil {
			spot.SpotP = *lc.SpotP
		}
		if err := spot.Validate(); err != nil {
			return err
		}
		s.AddSpotLight(lc.Position.vec3(), color, atten, cut, lc.ConeDirection.vec3(), lc.Shininess, spot)
		return nil

	case "":
		return errors.New("missing light type")
	default:
		return fmt.Errorf("unknown light type %q", lc.Type)
	}
}
