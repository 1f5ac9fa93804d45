package shader_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shader"
)

func testFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoadProgram(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": passThroughVertex,
		"fs.shd": solidFragment,
	})))

	p, err := loader.Load("vs.shd", "fs.shd")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotZero(t, p.ID())
	assert.True(t, d.programs[p.ID()])
	assert.Equal(t, []shader.Stage{shader.Vertex, shader.Fragment}, d.compiled)
	assert.Empty(t, d.shaders, "stage handles should be released after linking")

	vertex, fragment := p.Paths()
	assert.Equal(t, "vs.shd", vertex)
	assert.Equal(t, "fs.shd", fragment)
}

func TestLoadProgramFromDisk(t *testing.T) {
	dir := t.TempDir()
	vertexPath := filepath.Join(dir, "vs.shd")
	fragmentPath := filepath.Join(dir, "fs.shd")
	require.NoError(t, os.WriteFile(vertexPath, []byte(passThroughVertex), 0o644))
	require.NoError(t, os.WriteFile(fragmentPath, []byte(solidFragment), 0o644))

	d := newFakeDriver()
	p, err := shader.LoadProgram(d, vertexPath, fragmentPath)
	require.NoError(t, err)
	assert.NotZero(t, p.ID())
	assert.Empty(t, d.shaders)
}

func TestLoadProgramMissingVertex(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"fs.shd": solidFragment,
	})))

	p, err := loader.Load("vs.shd", "fs.shd")
	assert.Nil(t, p)
	require.ErrorIs(t, err, shader.ErrSourceUnreadable)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var serr *shader.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, shader.Vertex, serr.Stage)
	assert.Equal(t, "vs.shd", serr.Path)

	assert.Empty(t, d.compiled, "nothing should be compiled")
	assert.Zero(t, d.links)
}

func TestLoadProgramBothMissingReportsVertexFirst(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(fstest.MapFS{}))

	_, err := loader.Load("vs.shd", "fs.shd")

	var serr *shader.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, shader.SourceUnreadable, serr.Kind)
	assert.Equal(t, shader.Vertex, serr.Stage)
	assert.Equal(t, "vs.shd", serr.Path)
}

func TestLoadProgramMissingFragment(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": passThroughVertex,
	})))

	_, err := loader.Load("vs.shd", "fs.shd")
	require.ErrorIs(t, err, shader.ErrSourceUnreadable)

	var serr *shader.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, shader.Fragment, serr.Stage)
	assert.Equal(t, "fs.shd", serr.Path)

	assert.Equal(t, []shader.Stage{shader.Vertex}, d.compiled)
	assert.Empty(t, d.shaders, "compiled vertex unit should be released")
	assert.Zero(t, d.links)
}

func TestLoadProgramVertexCompileError(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": brokenVertex,
		"fs.shd": solidFragment,
	})))

	p, err := loader.Load("vs.shd", "fs.shd")
	assert.Nil(t, p)
	require.ErrorIs(t, err, shader.ErrCompileFailed)

	var serr *shader.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, shader.Vertex, serr.Stage)
	assert.Equal(t, "vs.shd", serr.Path)
	assert.NotEmpty(t, serr.Log)
	assert.Contains(t, serr.Log, "0:5(1)")

	assert.Equal(t, []shader.Stage{shader.Vertex}, d.compiled, "fragment stage should not be compiled")
	assert.Empty(t, d.shaders)
	assert.Empty(t, d.programs)
}

func TestLoadProgramFragmentCompileError(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": passThroughVertex,
		"fs.shd": "#version 410 core\nsyntax error\n",
	})))

	_, err := loader.Load("vs.shd", "fs.shd")

	var serr *shader.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, shader.CompileFailed, serr.Kind)
	assert.Equal(t, shader.Fragment, serr.Stage)
	assert.NotEmpty(t, serr.Log)
	assert.Empty(t, d.shaders)
	assert.Zero(t, d.links)
}

func TestLoadProgramLinkError(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": passThroughVertex,
		"fs.shd": mismatchedFragment,
	})))

	p, err := loader.Load("vs.shd", "fs.shd")
	assert.Nil(t, p)
	require.ErrorIs(t, err, shader.ErrLinkFailed)
	assert.NotErrorIs(t, err, shader.ErrCompileFailed)

	var serr *shader.Error
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Log, "fragmentColor")

	assert.Empty(t, d.shaders, "stage handles should be released after a failed link")
	assert.Empty(t, d.programs, "failed program should be released")
}

func TestLoadProgramTwiceGivesIndependentPrograms(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": passThroughVertex,
		"fs.shd": solidFragment,
	})))

	first, err := loader.Load("vs.shd", "fs.shd")
	require.NoError(t, err)
	second, err := loader.Load("vs.shd", "fs.shd")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Len(t, d.programs, 2)

	first.Delete()
	assert.True(t, d.programs[second.ID()], "deleting one program must not affect the other")

	second.Use()
	assert.Equal(t, second.ID(), d.used)
}

func TestLoadSources(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d)

	p, err := loader.LoadSources(passThroughVertex, solidFragment)
	require.NoError(t, err)
	assert.NotZero(t, p.ID())

	vertex, fragment := p.Paths()
	assert.Empty(t, vertex)
	assert.Empty(t, fragment)

	_, err = loader.LoadSources(brokenVertex, solidFragment)
	require.ErrorIs(t, err, shader.ErrCompileFailed)
	assert.Equal(t, "vertex shader compilation failed: 0:5(1): error: syntax error, unexpected IDENTIFIER", err.Error())
}

func TestProgramDelete(t *testing.T) {
	d := newFakeDriver()
	p, err := shader.NewLoader(d).LoadSources(passThroughVertex, solidFragment)
	require.NoError(t, err)

	p.Delete()
	assert.Zero(t, p.ID())
	assert.Empty(t, d.programs)

	// Second delete must not reach the driver with a stale handle.
	p.Delete()
	assert.Empty(t, d.programs)
}

func TestErrorKinds(t *testing.T) {
	err := &shader.Error{Kind: shader.LinkFailed, Log: "error: mismatch"}

	assert.True(t, errors.Is(err, shader.ErrLinkFailed))
	assert.False(t, errors.Is(err, shader.ErrSourceUnreadable))
	assert.False(t, errors.Is(err, shader.ErrCompileFailed))
	assert.Equal(t, "shader program linking failed: error: mismatch", err.Error())

	wrapped := &shader.Error{Kind: shader.SourceUnreadable, Stage: shader.Fragment, Path: "fs.shd", Err: fs.ErrPermission}
	assert.ErrorIs(t, wrapped, fs.ErrPermission)
	assert.Equal(t, `fragment shader "fs.shd": permission denied`, wrapped.Error())

	assert.Equal(t, "vertex", shader.Vertex.String())
	assert.Equal(t, "fragment", shader.Fragment.String())
	assert.Equal(t, "link failed", shader.LinkFailed.String())
}

func TestProgramReplace(t *testing.T) {
	d := newFakeDriver()
	loader := shader.NewLoader(d, shader.WithFS(testFS(map[string]string{
		"vs.shd": passThroughVertex,
		"fs.shd": solidFragment,
	})))

	p, err := loader.Load("vs.shd", "fs.shd")
	require.NoError(t, err)
	next, err := loader.Load("vs.shd", "fs.shd")
	require.NoError(t, err)

	old, nextID := p.ID(), next.ID()
	p.Replace(next)

	assert.Equal(t, nextID, p.ID())
	assert.Zero(t, next.ID())
	assert.False(t, d.programs[old])
	assert.Len(t, d.programs, 1)

	// next no longer owns the handle.
	next.Delete()
	assert.True(t, d.programs[p.ID()])
}
