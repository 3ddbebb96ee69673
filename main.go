package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-raytracer-lights/pkg/core"
	"github.com/df07/go-raytracer-lights/pkg/integrator"
	"github.com/df07/go-raytracer-lights/pkg/loaders"
	"github.com/df07/go-raytracer-lights/pkg/renderer"
	"github.com/df07/go-raytracer-lights/pkg/scene"
)

func main() {
	defaults := renderer.DefaultRenderConfig()

	sceneArg := flag.String("scene", "default", "Scene: 'default' or a path to a JSON scene file")
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	workers := flag.Int("workers", defaults.Workers, "Number of render workers")
	depth := flag.Int("depth", integrator.DefaultConfig().MaxDepth, "Maximum reflection/transmission depth")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := core.NewLogger("raytracer")

	selected, err := createScene(*sceneArg, logger)
	if err != nil {
		logger.Printf("Error loading scene: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := renderer.RenderConfig{
		Width:   *width,
		Height:  *height,
		Workers: *workers,
		Gamma:   defaults.Gamma,
	}
	rt := renderer.NewRaytracer(selected, integrator.NewWhitted(integrator.Config{MaxDepth: *depth}), config, logger)

	img, stats, err := rt.Render(ctx)
	rt.Close()
	if err != nil {
		logger.Printf("Error rendering: %v", err)
		os.Exit(1)
	}
	logger.Printf("Render completed in %v", stats.Duration)

	filename := *out
	if filename == "" {
		filename = filepath.Join("output", selected.Name, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}
	if err := savePNG(filename, img); err != nil {
		logger.Printf("Error saving PNG: %v", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s", filename)
}

// createScene returns the built-in scene or loads a JSON description
func createScene(name string, logger core.Logger) (*scene.Scene, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("scene name is empty")
	case "default":
		s := scene.NewDefaultScene()
		if err := s.Preprocess(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return loaders.LoadSceneFile(name, logger)
	}
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
