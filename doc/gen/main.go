// Command gen renders each demo in a hidden window, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
	"github.com/go-theft-auto/shader/internal/config"
	"github.com/go-theft-auto/shader/internal/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single demo screenshot to capture.
type screenshot struct {
	dir    string        // example directory holding shaders and assets
	cfg    config.Config // demo defaults, paths relative to dir
	build  demo.Builder
	frames int // frames to render before capture
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{dir: "hellotriangle", cfg: config.HelloTriangle(), build: demo.NewTriangle, frames: 2},
		{dir: "spinningcube", cfg: config.SpinningCube(), build: demo.NewCube, frames: 12},
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	// The hidden window stays larger than every screenshot; only the
	// viewport changes per capture.
	window, err := opengl.OpenWindow(config.Window{Width: 800, Height: 800, Title: "screenshot-gen"}, false)
	if err != nil {
		return err
	}
	defer window.Destroy()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := shader.NewLoader(opengl.NewDriver(), shader.WithLogger(logger))

	shots := buildScreenshots()

	for _, s := range shots {
		name, err := capture(loader, logger, s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.dir, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", name, s.cfg.Window.Width, s.cfg.Window.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(loader *shader.Loader, logger *slog.Logger, s screenshot, outDir string) (string, error) {
	cfg := s.cfg
	base := filepath.Join("example", s.dir)
	cfg.Shader.Vertex = filepath.Join(base, cfg.Shader.Vertex)
	cfg.Shader.Fragment = filepath.Join(base, cfg.Shader.Fragment)
	if cfg.Texture.Path != "" {
		cfg.Texture.Path = filepath.Join(base, cfg.Texture.Path)
	}

	scene, err := s.build(loader, cfg, logger)
	if err != nil {
		return "", err
	}
	defer scene.Delete()

	width, height := cfg.Window.Width, cfg.Window.Height
	for i := 0; i < s.frames; i++ {
		gl.Viewport(0, 0, int32(width), int32(height))
		scene.Frame()
	}
	gl.Finish()

	path := filepath.Join(outDir, scene.Name()+".jpg")
	if err := opengl.SaveJPEG(path, opengl.ReadFramebuffer(width, height)); err != nil {
		return "", err
	}
	return scene.Name(), nil
}
