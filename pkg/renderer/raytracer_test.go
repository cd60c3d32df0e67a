package renderer

import (
	"image"
	"testing"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/integrator"
	"github.com/ebriussenex/raytracer/pkg/material"
)

func createTestWorld() geometry.Hittable {
	return geometry.NewBVH([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.5)),
	})
}

func TestRaytracer_EmptySceneIsBackground(t *testing.T) {
	camera := mustCamera(t, CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Width:       24,
		AspectRatio: 2,
		VFov:        60,
	})
	rt := NewRaytracer(geometry.NewBVH(nil), camera, integrator.NewPathTracingIntegrator(10), RenderConfig{TileSize: 5, NumWorkers: 3}, nil)

	fb, _ := rt.Render()

	sampler := core.NewSeededSampler(0)
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			expected := integrator.BackgroundGradient(camera.GetRay(i, j, sampler))
			if got := fb.At(i, j); got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", i, j, expected, got)
			}
		}
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	camera := mustCamera(t, CameraConfig{Width: 40, AspectRatio: 2, SamplesPerPixel: 4})
	world := createTestWorld()
	integ := integrator.NewPathTracingIntegrator(camera.MaxDepth())

	render := func(workers int) *Framebuffer {
		fb, _ := NewRaytracer(world, camera, integ, RenderConfig{TileSize: 8, NumWorkers: workers, Seed: 7}, NopLogger{}).Render()
		return fb
	}

	single := render(1)
	parallel := render(4)

	for idx := range single.Pixels {
		if single.Pixels[idx] != parallel.Pixels[idx] {
			t.Fatalf("Pixel %d differs: %v vs %v", idx, single.Pixels[idx], parallel.Pixels[idx])
		}
	}

	reseeded, _ := NewRaytracer(world, camera, integ, RenderConfig{TileSize: 8, NumWorkers: 1, Seed: 8}, NopLogger{}).Render()
	same := true
	for idx := range single.Pixels {
		same = same && single.Pixels[idx] == reseeded.Pixels[idx]
	}
	if same {
		t.Error("Expected a different seed to change the noise")
	}
}

func TestRaytracer_Stats(t *testing.T) {
	camera := mustCamera(t, CameraConfig{Width: 30, AspectRatio: 1.5, SamplesPerPixel: 3})
	rt := NewRaytracer(createTestWorld(), camera, integrator.NewNormalIntegrator(), RenderConfig{TileSize: 16, NumWorkers: 2}, NopLogger{})

	fb, stats := rt.Render()

	if fb.Width != 30 || fb.Height != 20 {
		t.Fatalf("Expected 30x20 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
	if stats.TotalPixels != 600 {
		t.Errorf("Expected 600 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 1800 || stats.AverageSamples() != 3 {
		t.Errorf("Expected 1800 samples (3 per pixel), got %d", stats.TotalSamples)
	}
	if stats.Tiles != 4 {
		t.Errorf("Expected 4 tiles, got %d", stats.Tiles)
	}
	if stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", stats.Workers)
	}
}

func TestNewTileGrid(t *testing.T) {
	tiles := NewTileGrid(100, 50, 32, 42)

	if len(tiles) != 8 {
		t.Fatalf("Expected 4x2 = 8 tiles, got %d", len(tiles))
	}

	covered := make([]int, 100*50)
	for id, tile := range tiles {
		if tile.ID != id {
			t.Errorf("Expected tile ID %d, got %d", id, tile.ID)
		}
		if !tile.Bounds.In(image.Rect(0, 0, 100, 50)) {
			t.Errorf("Tile %d bounds %v exceed the image", id, tile.Bounds)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[y*100+x]++
			}
		}
	}

	for idx, count := range covered {
		if count != 1 {
			t.Fatalf("Pixel %d covered %d times", idx, count)
		}
	}

	if last := tiles[len(tiles)-1].Bounds; last != image.Rect(96, 32, 100, 50) {
		t.Errorf("Expected clipped corner tile, got %v", last)
	}
}

func TestNewTile_SeededStream(t *testing.T) {
	a := NewTile(3, image.Rect(0, 0, 1, 1), 42)
	b := NewTile(3, image.Rect(0, 0, 1, 1), 42)
	c := NewTile(4, image.Rect(0, 0, 1, 1), 42)

	first := a.Sampler.Get1D()
	if b.Sampler.Get1D() != first {
		t.Error("Expected tiles with the same ID and seed to draw the same stream")
	}
	if c.Sampler.Get1D() == first {
		t.Error("Expected different tiles to draw different streams")
	}
}
