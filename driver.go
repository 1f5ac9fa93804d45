package shader

// Driver is the graphics API capability the loader is built on.
//
// Handles are opaque to the loader. Every method must be called on the
// goroutine that owns the current rendering context.
type Driver interface {
	// Compile compiles source as a shader unit of the given stage. The
	// returned log carries the compiler diagnostic when ok is false. A
	// non-zero handle returned with ok == false is still owned by the
	// caller and must be deleted.
	Compile(stage Stage, source string) (handle uint32, ok bool, log string)

	// Link creates a program from a vertex and a fragment unit. The stage
	// handles stay valid after Link and are deleted by the caller.
	Link(vertex, fragment uint32) (program uint32, ok bool, log string)

	DeleteShader(handle uint32)
	DeleteProgram(program uint32)

	// UseProgram activates program for subsequent draw calls.
	UseProgram(program uint32)
}
