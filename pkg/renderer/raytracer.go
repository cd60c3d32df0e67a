package renderer

import (
	"time"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/integrator"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile n draws from seed+n
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Raytracer renders a whole image by splitting it into tiles and rendering them in parallel
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. world must not change while rendering.
func NewRaytracer(world geometry.Hittable, camera *Camera, integ integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel and returns the finished framebuffer.
// The result depends only on the scene, camera, integrator and seed, never on the worker count.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)

	pool := NewWorkerPool(NewTileRenderer(rt.camera, rt.integrator, rt.world), rt.config.NumWorkers, len(tiles))
	stats := RenderStats{Workers: pool.GetNumWorkers()}

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Framebuffer: fb})
	}

	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.add(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v (%d pixels, %.1f samples/pixel)\n",
		stats.Duration, stats.TotalPixels, stats.AverageSamples())

	return fb, stats
}
