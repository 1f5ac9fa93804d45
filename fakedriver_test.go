package shader_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/shader"
)

// fakeDriver is a scripted Driver. Sources containing "syntax error" fail
// to compile, and a link fails when a fragment input has no vertex output
// of the same name. Like GL, failed objects still get a handle.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]fakeShader
	programs map[uint32]bool
	used     uint32

	compiled []shader.Stage
	links    int
}

type fakeShader struct {
	stage  shader.Stage
	source string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]fakeShader),
		programs: make(map[uint32]bool),
	}
}

func (d *fakeDriver) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) Compile(stage shader.Stage, source string) (uint32, bool, string) {
	d.compiled = append(d.compiled, stage)
	h := d.handle()
	d.shaders[h] = fakeShader{stage: stage, source: source}
	if i := strings.Index(source, "syntax error"); i >= 0 {
		line := strings.Count(source[:i], "\n") + 1
		return h, false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected IDENTIFIER", line)
	}
	return h, true, ""
}

func (d *fakeDriver) Link(vertex, fragment uint32) (uint32, bool, string) {
	d.links++
	p := d.handle()
	d.programs[p] = true

	vs, ok := d.shaders[vertex]
	if !ok || vs.stage != shader.Vertex {
		return p, false, "error: no valid vertex shader attached"
	}
	fs, ok := d.shaders[fragment]
	if !ok || fs.stage != shader.Fragment {
		return p, false, "error: no valid fragment shader attached"
	}

	outputs := declared(vs.source, "out")
	for in := range declared(fs.source, "in") {
		if _, ok := outputs[in]; !ok {
			return p, false, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", in)
		}
	}
	return p, true, ""
}

func (d *fakeDriver) DeleteShader(handle uint32) {
	delete(d.shaders, handle)
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	delete(d.programs, program)
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.used = program
}

// declared returns the names of the variables declared with qualifier at
// the start of a line, e.g. "out vec3 color;".
func declared(source, qualifier string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, line := range strings.Split(source, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 3 || fields[0] != qualifier {
			continue
		}
		names[strings.TrimSuffix(fields[len(fields)-1], ";")] = struct{}{}
	}
	return names
}

const (
	passThroughVertex = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

out vec3 vertexColor;

void main() {
    gl_Position = vec4(position, 1.0);
    vertexColor = color;
}
`

	solidFragment = `#version 410 core
in vec3 vertexColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(vertexColor, 1.0);
}
`

	brokenVertex = `#version 410 core
layout (location = 0) in vec3 position;

void main() {
    syntax error
}
`

	mismatchedFragment = `#version 410 core
in vec3 fragmentColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(fragmentColor, 1.0);
}
`
)
