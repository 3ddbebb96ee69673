// Package material describes surfaces for a Whitted-style shading model.
package material

import "github.com/df07/go-raytracer-lights/pkg/core"

// Phong is a surface with ambient, diffuse and specular response, optional
// mirror reflection, emission and per-channel transmission
type Phong struct {
	Ambient      core.Vec3 // ka: response to ambient lights
	Diffuse      core.Vec3 // kd
	Specular     core.Vec3 // ks
	Reflective   core.Vec3 // kr: weight of the mirror-reflected ray
	Transmissive core.Vec3 // kt: fraction of light passing through the surface
	Emissive     core.Vec3 // ke
	Shininess    float64   // Phong exponent
}

// Transmission implements core.Material
func (m *Phong) Transmission() core.Vec3 {
	return m.Transmissive
}

// NewDiffuse creates an opaque matte surface whose ambient response matches its color
func NewDiffuse(color core.Vec3) *Phong {
	return &Phong{
		Ambient: color,
		Diffuse: color,
	}
}

// NewGlossy creates an opaque surface with a specular highlight and mirror reflection
func NewGlossy(color, specular core.Vec3, shininess float64, reflective core.Vec3) *Phong {
	return &Phong{
		Ambient:    color,
		Diffuse:    color,
		Specular:   specular,
		Reflective: reflective,
		Shininess:  shininess,
	}
}

// NewTransmissive creates a thin tinted surface that lets light through.
// Its diffuse response is what the transmission does not pass.
func NewTransmissive(tint core.Vec3) *Phong {
	kt := tint.Clamp01()
	absorbed := core.NewVec3(1, 1, 1).Subtract(kt)
	return &Phong{
		Ambient:      absorbed.Multiply(0.2),
		Diffuse:      absorbed,
		Specular:     core.NewVec3(0.5, 0.5, 0.5),
		Transmissive: kt,
		Shininess:    64,
	}
}

// NewEmissive creates a surface that glows with color and is otherwise black
func NewEmissive(color core.Vec3) *Phong {
	return &Phong{Emissive: color}
}
