// Package opengl implements shader.Driver and the small set of GL helpers
// the demos draw with, on OpenGL 4.1 core.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

// Driver implements shader.Driver with OpenGL calls. It needs a current
// context on the calling thread and gl.Init to have run.
type Driver struct{}

// NewDriver creates an OpenGL driver.
func NewDriver() *Driver {
	return &Driver{}
}

var _ shader.Driver = (*Driver)(nil)

// Compile compiles a single shader stage.
func (d *Driver) Compile(stage shader.Stage, source string) (uint32, bool, string) {
	var kind uint32
	switch stage {
	case shader.Vertex:
		kind = gl.VERTEX_SHADER
	case shader.Fragment:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, false, "unsupported shader stage " + stage.String()
	}

	handle := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return handle, false, shaderInfoLog(handle)
	}
	return handle, true, ""
}

// Link links a vertex and a fragment shader into a program. Both shaders
// are detached again so deleting them frees them right away.
func (d *Driver) Link(vertex, fragment uint32) (uint32, bool, string) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return program, false, programInfoLog(program)
	}
	return program, true, ""
}

func (d *Driver) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformLocation looks up a uniform of p. It returns -1 for names the
// linker removed or never saw.
func UniformLocation(p *shader.Program, name string) int32 {
	return gl.GetUniformLocation(p.ID(), gl.Str(name+"\x00"))
}

func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(handle, logLength, nil, &log[0])
	return trimLog(log)
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return trimLog(log)
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\r\n ")
}
