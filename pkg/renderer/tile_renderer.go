package renderer

import (
	"image"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/integrator"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int                 // Unique tile identifier
	Bounds  image.Rectangle     // Pixel bounds (x0,y0,x1,y1)
	Sampler *core.RandomSampler // Tile-specific random stream for deterministic results
}

// NewTile creates a tile whose random stream is seeded with seed + id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image, row by row
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders individual tiles through the camera and an integrator
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
	world      geometry.Hittable
}

// NewTileRenderer creates a new tile renderer. world must be fully built and is only read.
func NewTileRenderer(camera *Camera, integ integrator.Integrator, world geometry.Hittable) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integ,
		world:      world,
	}
}

// RenderTile renders every pixel inside the tile bounds into fb.
// Tiles never overlap, so concurrent calls write disjoint pixels.
func (tr *TileRenderer) RenderTile(tile *Tile, fb *Framebuffer) RenderStats {
	samplesPerPixel := max(1, tr.camera.Config().SamplesPerPixel)

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			fb.Set(i, j, tr.camera.RenderPixel(i, j, tr.integrator, tr.world, tile.Sampler))
		}
	}

	pixels := tile.Bounds.Dx() * tile.Bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * samplesPerPixel,
	}
}
