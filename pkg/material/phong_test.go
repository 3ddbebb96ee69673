package material

import (
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestPhong_Transmission(t *testing.T) {
	tests := []struct {
		name     string
		material *Phong
		expected core.Vec3
	}{
		{"diffuse is opaque", NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)), core.Vec3{}},
		{"glossy is opaque", NewGlossy(core.NewVec3(0.5, 0, 0), core.NewVec3(1, 1, 1), 32, core.NewVec3(0.2, 0.2, 0.2)), core.Vec3{}},
		{"transmissive passes its tint", NewTransmissive(core.NewVec3(0.9, 0.5, 0.1)), core.NewVec3(0.9, 0.5, 0.1)},
		{"transmissive tint is clamped", NewTransmissive(core.NewVec3(2, -1, 0.5)), core.NewVec3(1, 0, 0.5)},
		{"emissive is opaque", NewEmissive(core.NewVec3(4, 4, 4)), core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.material.Transmission())
		})
	}
}

func TestNewTransmissive_DiffuseIsAbsorbedLight(t *testing.T) {
	m := NewTransmissive(core.NewVec3(0.75, 0.5, 0.25))
	assert.InDelta(t, 0.25, m.Diffuse.X, 1e-12)
	assert.InDelta(t, 0.5, m.Diffuse.Y, 1e-12)
	assert.InDelta(t, 0.75, m.Diffuse.Z, 1e-12)
}
