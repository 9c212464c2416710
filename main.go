package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// renderOptions holds the command line configuration
type renderOptions struct {
	sceneName  string
	width      int
	samples    int
	depth      int
	workers    int
	seed       int64
	sequential bool
	out        string
}

func main() {
	var opts renderOptions
	flag.StringVar(&opts.sceneName, "scene", "random-spheres", "Scene to render (see -help for the list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed for sampling and scene layout (0 = scene default)")
	flag.BoolVar(&opts.sequential, "sequential", false, "Render on a single goroutine with one sampler")
	flag.StringVar(&opts.out, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Weekend Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-15s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// run renders the configured scene and writes it as a PNG
func run(ctx context.Context, opts renderOptions, logger core.Logger) error {
	fmt.Printf("Starting Weekend Raytracer (scene %s)...\n", opts.sceneName)

	s, err := createScene(opts)
	if err != nil {
		return err
	}

	frame, stats, err := renderScene(ctx, s, opts, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Samples per pixel: %.1f (%d pixels)\n", stats.AverageSamples, stats.TotalPixels)

	filename := opts.out
	if filename == "" {
		filename = outputPath(opts.sceneName, time.Now())
	}
	if err := saveFrame(frame, filename); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the named scene with the command line overrides applied
func createScene(opts renderOptions) (*scene.Scene, error) {
	if opts.sceneName == "" {
		return nil, fmt.Errorf("scene name is required")
	}

	s, err := scene.Create(opts.sceneName, scene.Options{
		Seed:   opts.seed,
		Camera: renderer.CameraConfig{Width: opts.width},
		Sampling: core.SamplingConfig{
			SamplesPerPixel: opts.samples,
			MaxDepth:        opts.depth,
			Seed:            opts.seed,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	return s, nil
}

// renderScene renders either sequentially or with the tile renderer
func renderScene(ctx context.Context, s *scene.Scene, opts renderOptions, logger core.Logger) (*renderer.Frame, renderer.RenderStats, error) {
	if opts.sequential {
		frame, stats := renderer.NewRaytracer(s).RenderPass()
		return frame, stats, nil
	}

	tileRenderer := renderer.NewTileRenderer(s, renderer.TileConfig{
		TileSize:   renderer.DefaultTileConfig().TileSize,
		NumWorkers: opts.workers,
	}, logger)

	frame, stats, err := tileRenderer.Render(ctx)
	if err != nil {
		return nil, stats, fmt.Errorf("render failed: %w", err)
	}
	return frame, stats, nil
}

// outputPath returns the default timestamped output file for a scene
func outputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// saveFrame encodes the frame as PNG, creating parent directories as needed
func saveFrame(frame *renderer.Frame, filename string) error {
	img, err := frame.Image()
	if err != nil {
		return fmt.Errorf("failed to convert frame: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}
