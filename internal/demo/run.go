package demo

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
	"github.com/go-theft-auto/shader/internal/config"
)

// Run opens the demo window, builds the scene and renders until the
// window is closed. It must be called from the main OS thread.
func Run(cfg config.Config, logger *slog.Logger, build Builder) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(cfg.Window, true)
	if err != nil {
		return err
	}
	defer window.Destroy()

	logger.Info("window opened",
		"title", cfg.Window.Title, "width", cfg.Window.Width, "height", cfg.Window.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	loader := shader.NewLoader(opengl.NewDriver(), shader.WithLogger(logger))

	scene, err := build(loader, cfg, logger)
	if err != nil {
		return err
	}
	defer scene.Delete()

	var watcher *shader.Watcher
	if cfg.Shader.HotReload {
		watcher, err = loader.Watch(scene.Program())
		if err != nil {
			return fmt.Errorf("watch shaders: %w", err)
		}
		defer watcher.Close()
		logger.Info("watching shaders", "vertex", cfg.Shader.Vertex, "fragment", cfg.Shader.Fragment)
	}

	input := opengl.NewInputAdapter(window)

	for !window.ShouldClose() {
		glfw.PollEvents()

		screenshot := false
		for _, action := range input.Actions() {
			switch action {
			case opengl.ActionReload:
				forceReload(loader, scene, logger)
			case opengl.ActionPause:
				scene.TogglePause()
			case opengl.ActionScreenshot:
				screenshot = true
			}
		}

		if watcher != nil {
			reloaded, err := watcher.Reload()
			if err != nil {
				logger.Warn("shader reload failed, keeping previous program", "err", err)
			} else if reloaded {
				scene.Reloaded()
			}
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		scene.Frame()

		if screenshot {
			path := filepath.Join(cfg.Screenshot.Dir,
				fmt.Sprintf("%s-%s.jpg", scene.Name(), time.Now().Format("20060102-150405")))
			if err := opengl.SaveJPEG(path, opengl.ReadFramebuffer(w, h)); err != nil {
				logger.Error("screenshot", "path", path, "err", err)
			} else {
				logger.Info("screenshot saved", "path", path)
			}
		}

		window.SwapBuffers()
	}

	return nil
}

// forceReload rebuilds the scene's program from its files, keeping the
// current one if the new sources do not compile or link.
func forceReload(loader *shader.Loader, scene Scene, logger *slog.Logger) {
	program := scene.Program()
	vertexPath, fragmentPath := program.Paths()

	next, err := loader.Load(vertexPath, fragmentPath)
	if err != nil {
		logger.Warn("shader reload failed, keeping previous program", "err", err)
		return
	}
	program.Replace(next)
	scene.Reloaded()
	logger.Info("shader program reloaded", "program", program.ID())
}
