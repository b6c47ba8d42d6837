package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Faultbox/skr/internal/engine/errstate"
)

// glfwBackend drives a window through GLFW.
type glfwBackend struct {
	win       *glfw.Window
	resize    func(width, height int)
	mouseMove func(xpos, ypos float64)
}

func newGLFWBackend() *glfwBackend {
	return &glfwBackend{}
}

func (b *glfwBackend) Name() string { return "glfw" }

func (b *glfwBackend) Create(cfg Config) error {
	if err := glfw.Init(); err != nil {
		return errstate.Wrap(errstate.KindResource, err, "failed to initialize GLFW")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return errstate.Wrap(errstate.KindResource, err, "failed to create GLFW window")
	}
	b.win = win

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if b.resize != nil {
			b.resize(width, height)
		}
	})
	win.MakeContextCurrent()

	if b.mouseMove != nil {
		b.installCursorCallback()
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return nil
}

func (b *glfwBackend) installCursorCallback() {
	b.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		b.mouseMove(xpos, ypos)
	})
}

func (b *glfwBackend) ShouldClose() bool {
	return b.win.ShouldClose()
}

func (b *glfwBackend) PollEvents() {
	glfw.PollEvents()
}

func (b *glfwBackend) SwapBuffers() {
	b.win.SwapBuffers()
}

func (b *glfwBackend) FramebufferSize() (int, int) {
	return b.win.GetFramebufferSize()
}

func (b *glfwBackend) SetResizeHandler(fn func(width, height int)) {
	b.resize = fn
}

func (b *glfwBackend) SetMouseMoveHandler(fn func(xpos, ypos float64)) {
	b.mouseMove = fn
	if b.win != nil && fn != nil {
		b.installCursorCallback()
	}
}

func (b *glfwBackend) CaptureCursor(captured bool) {
	if captured {
		b.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		b.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (b *glfwBackend) Terminate() {
	if b.win != nil {
		b.win.Destroy()
		b.win = nil
	}
	glfw.Terminate()
}
