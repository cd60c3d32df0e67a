package renderer

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/geometry"
	"github.com/ebriussenex/raytracer/pkg/integrator"
)

var (
	// ErrInvalidConfig is matched by every camera configuration error
	ErrInvalidConfig = errors.New("invalid camera configuration")
	// ErrInvalidSamplerRange is matched when the antialiasing jitter range is empty or not finite
	ErrInvalidSamplerRange = errors.New("invalid sampler range")
)

// ConfigError describes a rejected CameraConfig field
type ConfigError struct {
	Field  string
	Reason string
	Err    error // ErrInvalidConfig or ErrInvalidSamplerRange
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("camera config %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is match both the specific sentinel and ErrInvalidConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig || target == e.Err
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CameraConfig contains camera configuration parameters. Zero values select defaults.
type CameraConfig struct {
	LookFrom        core.Vec3      // Camera position, default origin
	LookAt          core.Vec3      // Point the camera looks at, default (0,0,-1) relative to LookFrom
	Up              core.Vec3      // Up direction, default (0,1,0)
	Width           int            // Image width in pixels, default 400
	AspectRatio     float64        // Width / height, default 16:9
	SamplesPerPixel int            // Antialiasing samples; 0 traces one ray through each pixel center
	VFov            float64        // Vertical field of view in degrees, default 90
	FocusDistance   float64        // Distance to the plane of perfect focus, default 1
	DefocusAngle    float64        // Aperture cone angle in radians; <= 0 is a pinhole
	MaxDepth        int            // Maximum bounce depth, default 50
	JitterRange     *core.Interval // Per-axis antialiasing offset range, default [-0.5, 0.5]
}

const (
	defaultWidth         = 400
	defaultAspectRatio   = 16.0 / 9.0
	defaultVFov          = 90.0
	defaultFocusDistance = 1.0
	defaultMaxDepth      = 50
)

// DefaultJitterRange is the antialiasing offset range used when none is configured
var DefaultJitterRange = core.NewInterval(-0.5, 0.5)

// MergeCameraConfig returns base with every non-zero field of override applied on top
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	zero := core.Vec3{}
	if override.LookFrom != zero {
		base.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		base.LookAt = override.LookAt
	}
	if override.Up != zero {
		base.Up = override.Up
	}
	if override.Width != 0 {
		base.Width = override.Width
	}
	if override.AspectRatio != 0 {
		base.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.VFov != 0 {
		base.VFov = override.VFov
	}
	if override.FocusDistance != 0 {
		base.FocusDistance = override.FocusDistance
	}
	if override.DefocusAngle != 0 {
		base.DefocusAngle = override.DefocusAngle
	}
	if override.MaxDepth != 0 {
		base.MaxDepth = override.MaxDepth
	}
	if override.JitterRange != nil {
		base.JitterRange = override.JitterRange
	}
	return base
}

// withDefaults fills unset fields and validates the rest
func (config CameraConfig) withDefaults() (CameraConfig, error) {
	if config.Width == 0 {
		config.Width = defaultWidth
	}
	if config.AspectRatio == 0 {
		config.AspectRatio = defaultAspectRatio
	}
	if config.VFov == 0 {
		config.VFov = defaultVFov
	}
	if config.FocusDistance == 0 {
		config.FocusDistance = defaultFocusDistance
	}
	if config.MaxDepth == 0 {
		config.MaxDepth = defaultMaxDepth
	}
	if config.Up == (core.Vec3{}) {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.LookAt == config.LookFrom {
		config.LookAt = config.LookFrom.Add(core.NewVec3(0, 0, -1))
	}
	if config.JitterRange == nil {
		jitter := DefaultJitterRange
		config.JitterRange = &jitter
	}

	invalid := func(field, reason string) (CameraConfig, error) {
		return config, &ConfigError{Field: field, Reason: reason, Err: ErrInvalidConfig}
	}

	switch {
	case config.Width < 0:
		return invalid("Width", fmt.Sprintf("must be positive, got %d", config.Width))
	case !(config.AspectRatio > 0) || math.IsInf(config.AspectRatio, 0):
		return invalid("AspectRatio", fmt.Sprintf("must be positive and finite, got %v", config.AspectRatio))
	case config.SamplesPerPixel < 0:
		return invalid("SamplesPerPixel", fmt.Sprintf("must not be negative, got %d", config.SamplesPerPixel))
	case !(config.VFov > 0 && config.VFov < 180):
		return invalid("VFov", fmt.Sprintf("must be in (0, 180) degrees, got %v", config.VFov))
	case !(config.FocusDistance > 0) || math.IsInf(config.FocusDistance, 0):
		return invalid("FocusDistance", fmt.Sprintf("must be positive and finite, got %v", config.FocusDistance))
	case config.MaxDepth < 0:
		return invalid("MaxDepth", fmt.Sprintf("must not be negative, got %d", config.MaxDepth))
	case config.Up.Cross(config.LookFrom.Subtract(config.LookAt)).NearZero():
		return invalid("Up", "must not be parallel to the view direction")
	}

	if jitter := *config.JitterRange; jitter.IsEmpty() || !jitter.IsFinite() {
		return config, &ConfigError{
			Field:  "JitterRange",
			Reason: fmt.Sprintf("must be a finite non-empty interval, got [%v, %v]", jitter.Min, jitter.Max),
			Err:    ErrInvalidSamplerRange,
		}
	}

	return config, nil
}

// Camera generates rays for rendering. It is immutable after construction.
type Camera struct {
	config CameraConfig
	height int

	center      core.Vec3 // Camera position
	pixel00     core.Vec3 // Location of the center of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors

	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera, returning a *ConfigError for invalid configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	height := max(1, int(float64(config.Width)/config.AspectRatio))

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges: u runs left to right, v runs top to bottom
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2)

	return &Camera{
		config:       config,
		height:       height,
		center:       config.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// MaxDepth returns the configured bounce limit
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// Config returns the configuration with defaults applied
func (c *Camera) Config() CameraConfig { return c.config }

// Antialiased reports whether pixels are sampled with jittered rays
func (c *Camera) Antialiased() bool { return c.config.SamplesPerPixel > 0 }

// GetRay generates a ray for pixel (i, j), where i is the column and j the row from the top
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetX, offsetY := 0.0, 0.0
	if c.Antialiased() {
		offsetX = core.Uniform(sampler.Get1D(), *c.config.JitterRange)
		offsetY = core.Uniform(sampler.Get1D(), *c.config.JitterRange)
	}

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// RenderPixel computes the color of pixel (i, j): the mean of SamplesPerPixel jittered rays,
// or a single ray through the pixel center when antialiasing is off.
func (c *Camera) RenderPixel(i, j int, integ integrator.Integrator, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	if !c.Antialiased() {
		return integ.RayColor(c.GetRay(i, j, sampler), world, sampler)
	}

	color := core.Vec3{}
	for s := 0; s < c.config.SamplesPerPixel; s++ {
		color = color.Add(integ.RayColor(c.GetRay(i, j, sampler), world, sampler))
	}
	return color.Divide(float64(c.config.SamplesPerPixel))
}
