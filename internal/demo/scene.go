// Package demo contains the triangle and cube scenes and the window loop
// that drives them.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/internal/config"
)

// Scene is one demo. All methods run on the render thread.
type Scene interface {
	Name() string

	// Program is the scene's shader program, for hot reload.
	Program() *shader.Program

	// Reloaded is called after Program's handle changed.
	Reloaded()

	// TogglePause freezes or resumes animation, if the scene has any.
	TogglePause()

	// Frame clears the framebuffer and draws one frame.
	Frame()

	Delete()
}

// Builder creates a scene once the GL context is current.
type Builder func(loader *shader.Loader, cfg config.Config, logger *slog.Logger) (Scene, error)

// NewLogger returns a text logger writing to w at the configured level.
func NewLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func loadProgram(loader *shader.Loader, cfg config.Config) (*shader.Program, error) {
	program, err := loader.Load(cfg.Shader.Vertex, cfg.Shader.Fragment)
	if err != nil {
		return nil, fmt.Errorf("load shaders: %w", err)
	}
	return program, nil
}
