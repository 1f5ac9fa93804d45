package demo

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
	"github.com/go-theft-auto/shader/internal/config"
	"github.com/go-theft-auto/shader/internal/geom"
	"github.com/go-theft-auto/shader/internal/texture"
)

// Uniform names used by the cube shaders.
const (
	uniformPVMatrix = "PVMatrix"
	uniformSampler  = "tex"
)

// Cube draws a textured cube seen from a camera orbiting around it.
type Cube struct {
	program *shader.Program
	mesh    *opengl.Mesh
	tex     *opengl.Texture
	camera  *geom.OrbitCamera
	paused  bool

	pvLoc      int32
	samplerLoc int32
}

// NewCube loads the shaders and the crate texture and uploads the cube.
// Attribute 0 is the position (xyz), attribute 1 the texture coordinate.
// If the texture cannot be read a checkerboard is used instead.
func NewCube(loader *shader.Loader, cfg config.Config, logger *slog.Logger) (Scene, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	program, err := loadProgram(loader, cfg)
	if err != nil {
		return nil, err
	}

	img, err := texture.Load(cfg.Texture.Path)
	if err != nil {
		logger.Warn("texture unavailable, using checkerboard", "path", cfg.Texture.Path, "err", err)
		img = fallbackTexture()
	}

	c := &Cube{
		program: program,
		mesh: opengl.NewMesh(geom.CubeIndices,
			opengl.Attribute{Location: 0, Size: 3, Data: geom.CubePositions},
			opengl.Attribute{Location: 1, Size: 2, Data: geom.CubeUVs},
		),
		tex:    opengl.NewTexture(img),
		camera: geom.NewOrbitCamera(cfg.Window.Aspect()),
	}
	c.Reloaded()

	return c, nil
}

func fallbackTexture() *image.RGBA {
	return texture.Checker(64, 8,
		color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
		color.RGBA{R: 0x5c, G: 0x3a, B: 0x1a, A: 0xff},
	)
}

func (c *Cube) Name() string { return "spinningcube" }

func (c *Cube) Program() *shader.Program { return c.program }

// Reloaded looks the uniforms up again; locations may move between links.
func (c *Cube) Reloaded() {
	c.pvLoc = opengl.UniformLocation(c.program, uniformPVMatrix)
	c.samplerLoc = opengl.UniformLocation(c.program, uniformSampler)
}

func (c *Cube) TogglePause() {
	c.paused = !c.paused
}

func (c *Cube) Frame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if !c.paused {
		c.camera.Advance()
	}

	c.program.Use()

	pv := c.camera.ProjectionView()
	gl.UniformMatrix4fv(c.pvLoc, 1, false, &pv[0])

	c.tex.Bind(0)
	gl.Uniform1i(c.samplerLoc, 0)

	c.mesh.Draw()
}

func (c *Cube) Delete() {
	c.tex.Delete()
	c.mesh.Delete()
	c.program.Delete()
}
