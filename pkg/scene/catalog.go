package scene

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ebriussenex/raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names missing from the catalog
var ErrUnknownScene = errors.New("unknown scene")

// Options carries the inputs a built-in scene may use
type Options struct {
	Camera      renderer.CameraConfig // Overrides applied on top of the scene camera
	Seed        int64                 // Layout seed for randomized scenes
	TexturePath string                // Image for textured scenes
}

type builder func(opts Options) (*Scene, error)

var catalog = map[string]builder{
	"default": func(opts Options) (*Scene, error) {
		return NewDefaultScene(opts.Camera), nil
	},
	"normals": func(opts Options) (*Scene, error) {
		return NewNormalsScene(opts.Camera), nil
	},
	"bouncing": func(opts Options) (*Scene, error) {
		return NewBouncingScene(opts.Seed, opts.Camera), nil
	},
	"checker": func(opts Options) (*Scene, error) {
		return NewCheckerScene(opts.Camera), nil
	},
	"earth": func(opts Options) (*Scene, error) {
		return NewEarthScene(opts.TexturePath, opts.Camera)
	},
	"textures": func(opts Options) (*Scene, error) {
		return NewTexturesScene(opts.Camera), nil
	},
	"empty": func(opts Options) (*Scene, error) {
		return NewEmptyScene(opts.Camera), nil
	},
}

// Names lists the built-in scenes in alphabetical order
func Names() []string {
	names := lo.Keys(catalog)
	slices.Sort(names)
	return names
}

// New creates the named built-in scene. The scene still needs Build before rendering.
func New(name string, opts Options) (*Scene, error) {
	build, ok := catalog[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q (available: %v)", name, Names())
	}
	return build(opts)
}
