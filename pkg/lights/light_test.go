package lights

import (
	"sync"
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/stretchr/testify/assert"
)

func testLights(scene Scene) map[string]Light {
	color := core.NewVec3(0.9, 0.8, 0.7)
	return map[string]Light{
		"directional": NewDirectionalLight(scene, core.NewVec3(-1, -0.2, 0), color),
		"point":       NewPointLight(scene, core.NewVec3(10, 1, 0), color, NewAttenuation(0.5, 0.05, 0.01), 50),
		"spot":        NewSpotLight(scene, core.NewVec3(10, 1, 0), color, NewAttenuation(0.5, 0.05, 0.01), 50, core.NewVec3(-1, -0.1, 0), 2, SpotConfigDegrees(30, 4)),
		"ambient":     NewAmbientLight(color),
	}
}

func TestLights_Idempotent(t *testing.T) {
	scene := newWallScene(
		wall{x: 2, kt: core.NewVec3(0.5, 0.7, 0.9)},
		wall{x: 4, kt: core.NewVec3(0.9, 0.9, 0.3)},
	)
	p := core.NewVec3(0, 0.5, 0.5)

	for name, light := range testLights(scene) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, light.Color(p), light.Color(p))
			assert.Equal(t, light.Direction(p), light.Direction(p))
			assert.Equal(t, light.DistanceAttenuation(p), light.DistanceAttenuation(p))
			assert.Equal(t, light.ShadowAttenuation(p), light.ShadowAttenuation(p))
		})
	}
}

func TestLights_UnoccludedShadowIsColor(t *testing.T) {
	scene := newWallScene()
	p := core.NewVec3(0, 0, 0)
	lights := testLights(scene)

	assert.Equal(t, lights["directional"].Color(p), lights["directional"].ShadowAttenuation(p))
	assert.Equal(t, lights["point"].Color(p), lights["point"].ShadowAttenuation(p))
}

func TestLights_DirectionIsUnit(t *testing.T) {
	scene := newWallScene()
	for name, light := range testLights(scene) {
		if light.Type() == LightTypeAmbient {
			continue
		}
		for _, p := range samplePoints {
			assert.InDelta(t, 1.0, light.Direction(p).Length(), 1e-12, name)
		}
	}
}

func TestLights_ConcurrentQueries(t *testing.T) {
	scene := newWallScene(
		wall{x: 3, kt: core.NewVec3(0.5, 0.5, 0.5)},
		wall{x: 5, kt: core.NewVec3(0.8, 0.6, 0.4)},
	)
	p := core.NewVec3(0, 0.2, -0.1)

	for name, light := range testLights(scene) {
		t.Run(name, func(t *testing.T) {
			expected := light.ShadowAttenuation(p)

			var wg sync.WaitGroup
			results := make([]core.Vec3, 64)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i] = light.ShadowAttenuation(p)
				}(i)
			}
			wg.Wait()

			for _, got := range results {
				assert.Equal(t, expected, got)
			}
		})
	}
}
