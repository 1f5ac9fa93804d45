package shader

// Program is a linked shader program owned by the caller.
type Program struct {
	id           uint32
	driver       Driver
	vertexPath   string
	fragmentPath string
}

// ID returns the driver handle of the program, or 0 after Delete.
func (p *Program) ID() uint32 {
	return p.id
}

// Paths returns the source files the program was loaded from. Both are
// empty for programs built with LoadSources.
func (p *Program) Paths() (vertex, fragment string) {
	return p.vertexPath, p.fragmentPath
}

// Use activates the program for subsequent draw calls.
func (p *Program) Use() {
	p.driver.UseProgram(p.id)
}

// Delete releases the program. Calling it more than once is a no-op.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.driver.DeleteProgram(p.id)
	p.id = 0
}

// Replace moves next's handle into p and deletes p's previous handle.
// next is left empty. Callers holding p keep a valid program across
// reloads.
func (p *Program) Replace(next *Program) {
	old := p.id
	p.id = next.id
	p.vertexPath, p.fragmentPath = next.vertexPath, next.fragmentPath
	next.id = 0
	if old != 0 && old != p.id {
		p.driver.DeleteProgram(old)
	}
}
