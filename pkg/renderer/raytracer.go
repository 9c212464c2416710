package renderer

import (
	"image"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// Scene is everything a renderer needs: a camera, the world and render settings
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetSamplingConfig() core.SamplingConfig
}

// Raytracer renders a scene one pixel at a time
type Raytracer struct {
	scene      Scene
	camera     *Camera
	world      geometry.Hittable
	config     core.SamplingConfig
	integrator integrator.Integrator
}

// NewRaytracer creates a raytracer using the scene's sampling configuration
func NewRaytracer(scene Scene) *Raytracer {
	rt := &Raytracer{
		scene:  scene,
		camera: scene.GetCamera(),
		world:  scene.GetWorld(),
	}
	rt.SetSamplingConfig(scene.GetSamplingConfig())
	return rt
}

// SetSamplingConfig replaces the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config core.SamplingConfig) {
	rt.config = config
	top, bottom := rt.scene.GetBackgroundColors()
	rt.integrator = integrator.NewPathTracingIntegrator(config, integrator.Background{Top: top, Bottom: bottom})
}

// MergeSamplingConfig overlays the non-zero fields of config onto the current one
func (rt *Raytracer) MergeSamplingConfig(config core.SamplingConfig) {
	rt.SetSamplingConfig(core.MergeSamplingConfig(rt.config, config))
}

// GetSamplingConfig returns the active sampling configuration
func (rt *Raytracer) GetSamplingConfig() core.SamplingConfig {
	return rt.config
}

// Width returns the output image width
func (rt *Raytracer) Width() int { return rt.camera.ImageWidth() }

// Height returns the output image height
func (rt *Raytracer) Height() int { return rt.camera.ImageHeight() }

// SamplePixel traces SamplesPerPixel jittered camera rays through pixel (i, j)
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
	}
	return ps
}

// RenderBounds renders the pixels inside bounds into frame using the given sampler.
// Pixels are visited top row first, left to right.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frame *Frame, sampler core.Sampler) RenderStats {
	stats := RenderStats{SamplesPerPixel: rt.config.SamplesPerPixel}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := rt.SamplePixel(i, j, sampler)
			frame.Set(i, j, ps.RGB())
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.finalize()
	return stats
}

// RenderPass renders the whole image sequentially from a single sampler seeded by the config
func (rt *Raytracer) RenderPass() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(rt.Width(), rt.Height())
	sampler := core.NewSeededSampler(rt.config.Seed)

	stats := rt.RenderBounds(image.Rect(0, 0, frame.Width, frame.Height), frame, sampler)
	stats.Elapsed = time.Since(start)
	return frame, stats
}
