// Package config holds the demo settings and loads overrides from TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full set of demo settings.
type Config struct {
	Window     Window     `toml:"window"`
	Shader     Shader     `toml:"shader"`
	Texture    Texture    `toml:"texture"`
	Log        Log        `toml:"log"`
	Screenshot Screenshot `toml:"screenshot"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Shader struct {
	Vertex    string `toml:"vertex"`
	Fragment  string `toml:"fragment"`
	HotReload bool   `toml:"hot_reload"`
}

type Texture struct {
	Path string `toml:"path"`
}

type Log struct {
	Level string `toml:"level"`
}

type Screenshot struct {
	Dir string `toml:"dir"`
}

// HelloTriangle returns the defaults of the triangle demo.
func HelloTriangle() Config {
	return Config{
		Window:     Window{Width: 640, Height: 480, Title: "Hello Triangle", VSync: true},
		Shader:     Shader{Vertex: "vs.shd", Fragment: "fs.shd"},
		Log:        Log{Level: "info"},
		Screenshot: Screenshot{Dir: "."},
	}
}

// SpinningCube returns the defaults of the cube demo.
func SpinningCube() Config {
	return Config{
		Window:     Window{Width: 640, Height: 640, Title: "Spinning Cube", VSync: true},
		Shader:     Shader{Vertex: "vs.shd", Fragment: "fs.shd"},
		Texture:    Texture{Path: "wooden-crate.png"},
		Log:        Log{Level: "info"},
		Screenshot: Screenshot{Dir: "."},
	}
}

// Load applies the TOML file at path on top of base. Keys missing from the
// file keep their base value; unknown keys are an error. An empty path
// returns base unchanged.
func Load(path string, base Config) (Config, error) {
	cfg := base
	if path == "" {
		return cfg, cfg.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return base, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return base, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports settings the demos cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Shader.Vertex == "" {
		errs = append(errs, errors.New("shader.vertex is empty"))
	}
	if c.Shader.Fragment == "" {
		errs = append(errs, errors.New("shader.fragment is empty"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Aspect returns the window aspect ratio.
func (w Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}
