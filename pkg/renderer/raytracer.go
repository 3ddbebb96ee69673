package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/integrator"
	"github.com/df07/go-raytracer-lights/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// RenderConfig contains image and parallelism settings
type RenderConfig struct {
	Width   int
	Height  int
	Workers int     // 0 means one per CPU
	Gamma   float64 // Output gamma; 1 disables correction
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:   400,
		Height:  225,
		Workers: runtime.NumCPU(),
		Gamma:   2.2,
	}
}

// RenderStats summarizes a finished render
type RenderStats struct {
	Rows     int
	Pixels   int
	Duration time.Duration
}

// Raytracer renders a scene one row per task. Lights and geometry are shared
// read-only by every worker.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	config     RenderConfig
	logger     core.Logger
	pool       *WorkerPool
	closed     atomic.Bool
}

// NewRaytracer creates a raytracer and starts its worker pool. logger may be
// nil. Call Close when done rendering to release the workers.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Gamma <= 0 {
		config.Gamma = 1
	}
	return &Raytracer{
		scene:      s,
		integrator: integ,
		camera:     NewCamera(s.Camera, float64(config.Width)/float64(config.Height)),
		config:     config,
		logger:     logger,
		pool:       NewWorkerPool(config.Workers),
	}
}

// Close stops the worker pool. Render fails after Close.
func (rt *Raytracer) Close() {
	rt.closed.Store(true)
	rt.pool.Stop()
}

func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// Render traces every pixel. Cancelling ctx stops rows that have not started
// and returns the context error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if rt.closed.Load() {
		return nil, RenderStats{}, errors.New("render on closed raytracer")
	}
	width, height := rt.config.Width, rt.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var rowsDone atomic.Int64
	var wg sync.WaitGroup

	rt.logf("rendering scene %q (%s) at %dx%d with %d workers", rt.scene.Name, rt.scene.ID, width, height, rt.pool.GetNumWorkers())

	for y := 0; y < height; y++ {
		row := y
		rt.pool.Submit(row, &wg, func() {
			if ctx.Err() != nil {
				return
			}
			rt.renderRow(img, row)
			rowsDone.Add(1)
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled after %d of %d rows: %w", rowsDone.Load(), height, err)
	}

	stats := RenderStats{
		Rows:     height,
		Pixels:   width * height,
		Duration: time.Since(start),
	}
	rt.logf("rendered %d pixels in %v", stats.Pixels, stats.Duration)
	return img, stats, nil
}

// renderRow writes one image row; rows never overlap so no locking is needed
func (rt *Raytracer) renderRow(img *image.RGBA, y int) {
	width, height := rt.config.Width, rt.config.Height
	for x := 0; x < width; x++ {
		s := (float64(x) + 0.5) / float64(width)
		t := 1 - (float64(y)+0.5)/float64(height)
		c := rt.integrator.RayColor(rt.camera.GetRay(s, t), rt.scene)
		img.SetRGBA(x, y, rt.toRGBA(c))
	}
}

func (rt *Raytracer) toRGBA(c core.Vec3) color.RGBA {
	channel := func(v float64) uint8 {
		v = math.Pow(mgl64.Clamp(v, 0, 1), 1/rt.config.Gamma)
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: channel(c.X), G: channel(c.Y), B: channel(c.Z), A: 255}
}
