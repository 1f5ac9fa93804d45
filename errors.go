package shader

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a load failure.
type ErrorKind int

const (
	// SourceUnreadable means a shader file could not be opened or read.
	SourceUnreadable ErrorKind = iota + 1
	// CompileFailed means the driver rejected one stage's source.
	CompileFailed
	// LinkFailed means the driver rejected the combined program.
	LinkFailed
)

func (k ErrorKind) String() string {
	switch k {
	case SourceUnreadable:
		return "source unreadable"
	case CompileFailed:
		return "compile failed"
	case LinkFailed:
		return "link failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is.
var (
	ErrSourceUnreadable = &Error{Kind: SourceUnreadable}
	ErrCompileFailed    = &Error{Kind: CompileFailed}
	ErrLinkFailed       = &Error{Kind: LinkFailed}
)

// Error describes why a program could not be loaded.
//
// Stage is meaningless for LinkFailed. Path is empty for sources that did
// not come from a file.
type Error struct {
	Kind  ErrorKind
	Stage Stage
	Path  string
	Log   string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case SourceUnreadable:
		if e.Err != nil {
			return fmt.Sprintf("%s shader %q: %v", e.Stage, e.Path, e.Err)
		}
		return fmt.Sprintf("%s shader %q: %s", e.Stage, e.Path, e.Kind)
	case CompileFailed:
		if e.Path != "" {
			return fmt.Sprintf("%s shader %q compilation failed: %s", e.Stage, e.Path, e.Log)
		}
		return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
	case LinkFailed:
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. This lets the
// sentinel values match any error of their kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}
