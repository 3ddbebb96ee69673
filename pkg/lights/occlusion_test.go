package lights

import (
	"testing"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestOccluders_YieldsSuccessiveHits(t *testing.T) {
	scene := newWallScene(
		wall{x: 3, kt: core.NewVec3(1, 1, 1)},
		wall{x: 1, kt: core.NewVec3(1, 1, 1)},
		wall{x: 6, kt: core.NewVec3(1, 1, 1)},
	)

	var steps []float64
	for hit := range Occluders(scene, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)) {
		steps = append(steps, hit.T)
	}

	// Each t is measured from the previous hit point
	assert.InDeltaSlice(t, []float64{1, 2, 3}, steps, 1e-12)
	assert.Equal(t, int64(4), scene.queries.Load(), "three hits plus the final miss")
}

func TestOccluders_StopsWhenConsumerBreaks(t *testing.T) {
	scene := newWallScene(wall{x: 1}, wall{x: 2}, wall{x: 3})

	for range Occluders(scene, core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)) {
		break
	}
	assert.Equal(t, int64(1), scene.queries.Load())
}

func TestOccluders_StopsOnNonAdvancingHit(t *testing.T) {
	scene := &stuckScene{}

	count := 0
	for range Occluders(scene, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)) {
		count++
	}
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, scene.queries)
}

func TestTransmission_ClampsAndTreatsMissingMaterialAsOpaque(t *testing.T) {
	hit := &core.HitRecord{Material: testMaterial{kt: core.NewVec3(1.5, -0.2, 0.4)}}
	assert.Equal(t, core.NewVec3(1, 0, 0.4), transmission(hit))
	assert.Equal(t, core.Vec3{}, transmission(&core.HitRecord{}))
}
