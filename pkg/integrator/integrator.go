package integrator

import (
	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray
	RayColor(ray core.Ray, scene *scene.Scene) core.Vec3
}

// Config contains integrator settings
type Config struct {
	MaxDepth int // Maximum number of reflected or transmitted bounces
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
	}
}
