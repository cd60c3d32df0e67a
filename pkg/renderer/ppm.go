package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ebriussenex/raytracer/pkg/core"
)

var (
	// ErrHeaderWrite is matched when the PPM header could not be written
	ErrHeaderWrite = errors.New("ppm header write failed")
	// ErrPixelWrite is matched when a pixel line could not be written
	ErrPixelWrite = errors.New("ppm pixel write failed")
)

// OutputError reports a failed write to the image sink
type OutputError struct {
	Kind          error // ErrHeaderWrite or ErrPixelWrite
	PixelsWritten int   // Complete pixel lines the underlying writer acknowledged before failing
	Err           error // Underlying write error
}

func (e *OutputError) Error() string {
	if e.Kind == ErrHeaderWrite {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v after %d pixels: %v", e.Kind, e.PixelsWritten, e.Err)
}

// Is matches the failure kind
func (e *OutputError) Is(target error) bool {
	return target == e.Kind
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// QuantizeChannel converts a linear channel value to an 8-bit gamma 2 value, rounding to nearest
func QuantizeChannel(c float64) uint8 {
	gamma := 0.0
	if c > 0 {
		gamma = math.Sqrt(c)
	}
	return uint8(lo.Clamp(math.Round(255.999*gamma), 0, 255))
}

// sinkCounter tracks how many bytes the underlying writer acknowledged
type sinkCounter struct {
	w       io.Writer
	written int
}

func (c *sinkCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.written += n
	return n, err
}

// QuantizeColor converts a linear color to 8-bit gamma corrected channels
func QuantizeColor(c core.Vec3) (r, g, b uint8) {
	return QuantizeChannel(c.X), QuantizeChannel(c.Y), QuantizeChannel(c.Z)
}

// WritePPM writes fb as a plain text P3 image: a "P3", "<width> <height>" and "255" header
// followed by one "R G B" line per pixel in row-major order. The first failed write aborts
// the output and is returned as an *OutputError.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	sink := &sinkCounter{w: w}
	out := bufio.NewWriter(sink)

	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return &OutputError{Kind: ErrHeaderWrite, Err: err}
	}
	if err := out.Flush(); err != nil {
		return &OutputError{Kind: ErrHeaderWrite, Err: err}
	}
	headerSize := sink.written

	// lineEnds[i] is the pixel byte offset just past line i
	lineEnds := make([]int, 0, len(fb.Pixels))
	pixelError := func(err error) error {
		accepted := sink.written - headerSize
		return &OutputError{
			Kind:          ErrPixelWrite,
			PixelsWritten: sort.SearchInts(lineEnds, accepted+1),
			Err:           err,
		}
	}

	line := make([]byte, 0, len("255 255 255\n"))
	offset := 0
	for _, pixel := range fb.Pixels {
		r, g, b := QuantizeColor(pixel)

		line = strconv.AppendUint(line[:0], uint64(r), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(g), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(b), 10)
		line = append(line, '\n')

		offset += len(line)
		lineEnds = append(lineEnds, offset)

		if _, err := out.Write(line); err != nil {
			return pixelError(err)
		}
	}

	if err := out.Flush(); err != nil {
		return pixelError(err)
	}
	return nil
}
