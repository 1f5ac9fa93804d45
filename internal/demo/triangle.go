package demo

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
	"github.com/go-theft-auto/shader/internal/config"
	"github.com/go-theft-auto/shader/internal/geom"
)

// Triangle draws a single triangle with red, green and blue corners.
type Triangle struct {
	program *shader.Program
	mesh    *opengl.Mesh
}

// NewTriangle loads the shaders and uploads the triangle. Attribute 0 is
// the position (xyz), attribute 1 the color (rgb).
func NewTriangle(loader *shader.Loader, cfg config.Config, _ *slog.Logger) (Scene, error) {
	program, err := loadProgram(loader, cfg)
	if err != nil {
		return nil, err
	}

	mesh := opengl.NewMesh(nil,
		opengl.Attribute{Location: 0, Size: 3, Data: geom.TrianglePositions},
		opengl.Attribute{Location: 1, Size: 3, Data: geom.TriangleColors},
	)

	return &Triangle{program: program, mesh: mesh}, nil
}

func (t *Triangle) Name() string { return "hellotriangle" }

func (t *Triangle) Program() *shader.Program { return t.program }

func (t *Triangle) Reloaded() {}

func (t *Triangle) TogglePause() {}

func (t *Triangle) Frame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	t.program.Use()
	t.mesh.Draw()
}

func (t *Triangle) Delete() {
	t.mesh.Delete()
	t.program.Delete()
}
