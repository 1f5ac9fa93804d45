package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader/internal/config"
)

// OpenWindow creates a window with an OpenGL 4.1 core context, makes the
// context current and loads the GL function pointers. glfw.Init must have
// been called on the main thread.
func OpenWindow(cfg config.Window, visible bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return window, nil
}

// Action is a demo command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionReload
	ActionPause
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionReload:
		return "reload"
	case ActionPause:
		return "pause"
	case ActionScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// InputAdapter turns GLFW key presses into demo actions.
type InputAdapter struct {
	window  *glfw.Window
	actions []Action
}

// NewInputAdapter installs a key callback on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	adapter := &InputAdapter{window: window}
	window.SetKeyCallback(adapter.keyCallback)
	return adapter
}

// Actions returns the actions triggered since the previous call.
// Call it once per frame after glfw.PollEvents.
func (a *InputAdapter) Actions() []Action {
	actions := a.actions
	a.actions = nil
	return actions
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	act := glfwKeyToAction(key)
	if act == ActionNone {
		return
	}
	if act == ActionClose {
		w.SetShouldClose(true)
	}
	a.actions = append(a.actions, act)
}

// glfwKeyToAction maps GLFW keys to demo actions.
func glfwKeyToAction(key glfw.Key) Action {
	switch key {
	case glfw.KeyEscape:
		return ActionClose
	case glfw.KeyR:
		return ActionReload
	case glfw.KeySpace:
		return ActionPause
	case glfw.KeyF12:
		return ActionScreenshot
	default:
		return ActionNone
	}
}
