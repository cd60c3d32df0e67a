package material

import (
	"math"

	"github.com/ebriussenex/raytracer/pkg/core"
)

// MissingImageColor is returned by image textures that hold no pixels
var MissingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the top of the image
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// U is clamped to [0,1]; V is taken by magnitude and clamped to [0,1].
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Height <= 0 || t.Width <= 0 || len(t.Pixels) < t.Width*t.Height {
		return MissingImageColor
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := unit.Clamp(math.Abs(uv.Y))

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int((1.0-v)*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
