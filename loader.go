package shader

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// Loader compiles and links shader programs through a Driver.
type Loader struct {
	driver Driver
	fsys   fs.FS
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS reads shader sources from fsys instead of the OS file system.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) { l.fsys = fsys }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a loader bound to driver.
func NewLoader(driver Driver, opts ...LoaderOption) *Loader {
	l := &Loader{
		driver: driver,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadProgram is shorthand for NewLoader(driver).Load(vertexPath, fragmentPath).
func LoadProgram(driver Driver, vertexPath, fragmentPath string) (*Program, error) {
	return NewLoader(driver).Load(vertexPath, fragmentPath)
}

// Load reads, compiles and links the shader pair at the given paths.
// The vertex stage is always processed before the fragment stage, so the
// returned error names the first step that failed. On failure every
// driver object created along the way has been released.
func (l *Loader) Load(vertexPath, fragmentPath string) (*Program, error) {
	vert, err := l.compileFile(Vertex, vertexPath)
	if err != nil {
		return nil, err
	}
	defer l.driver.DeleteShader(vert)

	frag, err := l.compileFile(Fragment, fragmentPath)
	if err != nil {
		return nil, err
	}
	defer l.driver.DeleteShader(frag)

	id, err := l.link(vert, frag)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("shader program linked",
		"program", id, "vertex", vertexPath, "fragment", fragmentPath)

	return &Program{
		id:           id,
		driver:       l.driver,
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
	}, nil
}

// LoadSources compiles and links in-memory sources, for example shaders
// embedded with go:embed.
func (l *Loader) LoadSources(vertexSource, fragmentSource string) (*Program, error) {
	vert, err := l.compile(Vertex, "", vertexSource)
	if err != nil {
		return nil, err
	}
	defer l.driver.DeleteShader(vert)

	frag, err := l.compile(Fragment, "", fragmentSource)
	if err != nil {
		return nil, err
	}
	defer l.driver.DeleteShader(frag)

	id, err := l.link(vert, frag)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("shader program linked", "program", id)

	return &Program{id: id, driver: l.driver}, nil
}

func (l *Loader) compileFile(stage Stage, path string) (uint32, error) {
	src, err := l.readFile(path)
	if err != nil {
		return 0, &Error{Kind: SourceUnreadable, Stage: stage, Path: path, Err: err}
	}
	return l.compile(stage, path, string(src))
}

func (l *Loader) compile(stage Stage, path, source string) (uint32, error) {
	handle, ok, log := l.driver.Compile(stage, source)
	if !ok {
		if handle != 0 {
			l.driver.DeleteShader(handle)
		}
		return 0, &Error{Kind: CompileFailed, Stage: stage, Path: path, Log: log}
	}
	return handle, nil
}

func (l *Loader) link(vert, frag uint32) (uint32, error) {
	id, ok, log := l.driver.Link(vert, frag)
	if !ok {
		if id != 0 {
			l.driver.DeleteProgram(id)
		}
		return 0, &Error{Kind: LinkFailed, Log: log}
	}
	return id, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, path)
	}
	return os.ReadFile(path)
}
