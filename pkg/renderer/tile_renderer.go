package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// TileConfig controls how a parallel render is split up
type TileConfig struct {
	TileSize   int // Edge length of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = auto-detect from CPU count)
}

// DefaultTileConfig returns sensible defaults for parallel rendering
func DefaultTileConfig() TileConfig {
	return TileConfig{
		TileSize:   32,
		NumWorkers: 0,
	}
}

// TileRenderer renders a scene in parallel by distributing tiles over a worker pool.
// Every tile owns a sampler seeded from the render seed and its ID, so the output
// does not depend on the number of workers or on scheduling order.
type TileRenderer struct {
	raytracer *Raytracer
	config    TileConfig
	logger    core.Logger
}

// NewTileRenderer creates a parallel renderer for the scene
func NewTileRenderer(scene Scene, config TileConfig, logger core.Logger) *TileRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &TileRenderer{
		raytracer: NewRaytracer(scene),
		config:    config,
		logger:    logger,
	}
}

// Raytracer exposes the underlying raytracer so callers can adjust sampling
func (tr *TileRenderer) Raytracer() *Raytracer {
	return tr.raytracer
}

// Render renders every tile and returns the assembled frame.
// It stops early and returns ctx.Err() if the context is cancelled.
func (tr *TileRenderer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()
	width, height := tr.raytracer.Width(), tr.raytracer.Height()
	config := tr.raytracer.GetSamplingConfig()

	frame := NewFrame(width, height)
	tiles := NewTileGrid(width, height, tr.config.TileSize, config.Seed)

	pool := NewWorkerPool(tr.raytracer, len(tiles), tr.config.NumWorkers)
	pool.Start(ctx)

	tr.logger.Printf("Rendering %dx%d, %d samples, depth %d: %d tiles on %d workers\n",
		width, height, config.SamplesPerPixel, config.MaxDepth, len(tiles), pool.GetNumWorkers())

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: frame})
	}
	pool.Stop()

	stats := RenderStats{SamplesPerPixel: config.SamplesPerPixel}
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
	}
	stats.Elapsed = time.Since(start)

	if firstErr != nil {
		return nil, stats, fmt.Errorf("render cancelled after %d/%d tiles: %w",
			stats.TilesRendered, len(tiles), firstErr)
	}

	tr.logger.Printf("Render complete: %d pixels, %d samples in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Elapsed)
	return frame, stats, nil
}
