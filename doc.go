/*
Package shader compiles and links GLSL shader programs from a vertex and a
fragment source file.

# Overview

The loader never talks to a graphics API directly. It drives a [Driver],
a small capability interface with compile, link and delete primitives.
The OpenGL implementation lives in the backend/opengl package; tests use
a scripted fake that never touches a GPU.

Loading is strictly linear:

 1. read the vertex source and compile it as a vertex unit
 2. read the fragment source and compile it as a fragment unit
 3. link both units into a program
 4. release both units

Any failure aborts the load and releases whatever was created up to that
point, so a [Program] is only ever returned fully linked.

# Quick Start

	runtime.LockOSThread()
	// ... create a window and make its context current ...

	program, err := shader.LoadProgram(opengl.NewDriver(), "vs.shd", "fs.shd")
	if err != nil {
	    fmt.Fprintln(os.Stderr, err)
	    os.Exit(1)
	}
	defer program.Delete()

	for !window.ShouldClose() {
	    program.Use()
	    // ... draw ...
	}

# Errors

Every failure is an [*Error]. Its Kind tells which step failed:

	var serr *shader.Error
	if errors.As(err, &serr) && serr.Kind == shader.CompileFailed {
	    fmt.Println(serr.Stage, serr.Log)
	}

The sentinels [ErrSourceUnreadable], [ErrCompileFailed] and [ErrLinkFailed]
match any error of their kind with errors.Is.

# Hot Reload

[Loader.Watch] watches the source files of a program. Call
[Watcher.Reload] once per frame on the render thread; when a file has
changed the program is rebuilt and its handle swapped in place. A broken
edit leaves the previous program active:

	w, err := loader.Watch(program)
	...
	if reloaded, err := w.Reload(); err != nil {
	    log.Warn("shader reload", "err", err)
	} else if reloaded {
	    // uniform locations must be looked up again
	}

# Threading

All Driver calls must happen on the goroutine that owns the rendering
context, which for GLFW is the main OS thread. Nothing in this package is
safe for concurrent use, except that the Watcher collects file events on
its own goroutine.
*/
package shader
