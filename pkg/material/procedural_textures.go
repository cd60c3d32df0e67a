package material

import (
	"github.com/ebriussenex/raytracer/pkg/core"
)

// NewRasterTexture fills a width x height image texture by calling shade for every pixel.
// Row 0 is the top of the image, which nearest-neighbor lookup maps to v = 1.
func NewRasterTexture(width, height int, shade func(x, y int) core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = shade(x, y)
		}
	}
	return NewImageTexture(width, height, pixels)
}

// NewGridTexture creates a rasterized checkerboard of checkSize pixel cells.
// Unlike CheckerTexture it follows the surface UV mapping instead of world space.
func NewGridTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	checkSize = max(1, checkSize)
	return NewRasterTexture(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture shows texture coordinates as colors: u in red, v in green
func NewUVDebugTexture(width, height int) *ImageTexture {
	return NewRasterTexture(width, height, func(x, y int) core.Vec3 {
		u := (float64(x) + 0.5) / float64(width)
		v := 1.0 - (float64(y)+0.5)/float64(height)
		return core.NewVec3(u, v, 0.0)
	})
}

// NewGradientTexture creates a vertical gradient from top (v = 1) to bottom (v = 0)
func NewGradientTexture(width, height int, top, bottom core.Vec3) *ImageTexture {
	return NewRasterTexture(width, height, func(x, y int) core.Vec3 {
		t := (float64(y) + 0.5) / float64(height)
		return top.Lerp(bottom, t)
	})
}
