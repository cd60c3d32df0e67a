package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ebriussenex/raytracer/pkg/core"
	"github.com/ebriussenex/raytracer/pkg/integrator"
	"github.com/ebriussenex/raytracer/pkg/renderer"
	"github.com/ebriussenex/raytracer/pkg/scene"
)

// Config holds the parsed command line
type Config struct {
	Scene       string
	Width       int
	Samples     int
	Depth       int
	Workers     int
	Seed        int64
	TileSize    int
	Integrator  string
	TexturePath string
	Output      string
	Help        bool
}

func parseFlags(args []string, output io.Writer) (Config, *flag.FlagSet, error) {
	var config Config
	defaults := renderer.DefaultRenderConfig()

	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&config.Scene, "scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	flags.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&config.Samples, "samples", 0, "Antialiasing samples per pixel (0 = scene default)")
	flags.IntVar(&config.Depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flags.IntVar(&config.Workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = CPU count)")
	flags.Int64Var(&config.Seed, "seed", defaults.Seed, "Random seed for sampling and scene layout")
	flags.IntVar(&config.TileSize, "tile", defaults.TileSize, "Tile size in pixels")
	flags.StringVar(&config.Integrator, "integrator", "path", "Integrator: 'path' or 'normals'")
	flags.StringVar(&config.TexturePath, "texture", "", "Image file for the earth scene")
	flags.StringVar(&config.Output, "o", "", "Output file (.ppm or .png, '-' for PPM on stdout); default output/<scene>/render_<timestamp>.ppm")
	flags.BoolVar(&config.Help, "help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return config, flags, err
	}
	return config, flags, nil
}

// createScene builds the selected scene with command line camera overrides applied
func createScene(config Config) (*scene.Scene, error) {
	return scene.New(config.Scene, scene.Options{
		Camera: renderer.CameraConfig{
			Width:           config.Width,
			SamplesPerPixel: config.Samples,
			MaxDepth:        config.Depth,
		},
		Seed:        config.Seed,
		TexturePath: config.TexturePath,
	})
}

// createIntegrator returns the named integrator
func createIntegrator(name string, maxDepth int) (integrator.Integrator, error) {
	switch name {
	case "path":
		return integrator.NewPathTracingIntegrator(maxDepth), nil
	case "normals":
		return integrator.NewNormalIntegrator(), nil
	default:
		return nil, errors.Errorf("unknown integrator %q (available: path, normals)", name)
	}
}

// outputPath returns the file to write, creating output/<scene> for the default location
func outputPath(config Config) (string, error) {
	if config.Output != "" {
		return config.Output, nil
	}

	outputDir := filepath.Join("output", config.Scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}

	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp)), nil
}

// writeOutput writes fb to path, choosing the encoding by extension. "-" writes PPM to stdout.
func writeOutput(path string, fb *renderer.Framebuffer, stdout io.Writer) error {
	if path == "-" {
		return renderer.WritePPM(stdout, fb)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		out := bufio.NewWriter(file)
		if err := png.Encode(out, fb.ToRGBA()); err != nil {
			return errors.Wrap(err, "encoding PNG")
		}
		if err := out.Flush(); err != nil {
			return errors.Wrap(err, "writing PNG")
		}
	case ".ppm":
		if err := renderer.WritePPM(file, fb); err != nil {
			return err
		}
	default:
		return errors.Errorf("unsupported output extension %q (use .ppm or .png)", filepath.Ext(path))
	}

	return errors.Wrap(file.Close(), "closing output file")
}

// run executes the whole program and returns any error to report
func run(args []string, stdout, stderr io.Writer, logger core.Logger) error {
	config, flags, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if config.Help {
		fmt.Fprintln(stderr, "Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Available scenes:", strings.Join(scene.Names(), ", "))
		return nil
	}

	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}

	camera, err := renderer.NewCamera(selectedScene.CameraConfig)
	if err != nil {
		return errors.Wrapf(err, "scene %s", selectedScene.Name)
	}

	integ, err := createIntegrator(config.Integrator, camera.MaxDepth())
	if err != nil {
		return err
	}

	path, err := outputPath(config)
	if err != nil {
		return err
	}

	bvhStats := selectedScene.Build()
	logger.Printf("Scene %s: %d primitives, BVH %d nodes, depth %d\n",
		selectedScene.Name, selectedScene.PrimitiveCount(), bvhStats.TotalNodes, bvhStats.MaxDepth)

	raytracer := renderer.NewRaytracer(selectedScene, camera, integ, renderer.RenderConfig{
		TileSize:   config.TileSize,
		NumWorkers: config.Workers,
		Seed:       config.Seed,
	}, logger)

	fb, _ := raytracer.Render()

	if err := writeOutput(path, fb, stdout); err != nil {
		return err
	}

	if path != "-" {
		logger.Printf("Render saved as %s\n", path)
	}
	return nil
}

// describeError explains how much output survived a failed write
func describeError(err error) string {
	var outputErr *renderer.OutputError
	switch {
	case errors.Is(err, renderer.ErrHeaderWrite):
		return fmt.Sprintf("Error: %v (no image data was written)", err)
	case errors.As(err, &outputErr):
		return fmt.Sprintf("Error: %v (output is truncated)", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func main() {
	logger := renderer.NewDefaultLogger()

	if err := run(os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}
