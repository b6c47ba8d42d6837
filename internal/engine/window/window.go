// Package window handles window and OpenGL context creation over a
// selectable backend (GLFW or SDL2).
package window

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/logger"
)

func init() {
	// GL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// Backend names the windowing backend: "glfw" (default) or "sdl".
	Backend string
}

// State tracks the window lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateCreated
	StateClosing
	StateTerminated
)

// Backend is the contract a windowing library fulfills. Only one
// window per backend is supported; handlers must be registered before
// or after Create and survive it either way.
type Backend interface {
	Name() string
	// Create initializes the backend library, creates the window plus
	// rendering context and makes the context current. On failure the
	// backend library is torn down again.
	Create(cfg Config) error
	ShouldClose() bool
	// PollEvents processes queued input and may invoke the resize and
	// mouse-move handlers synchronously.
	PollEvents()
	SwapBuffers()
	FramebufferSize() (int, int)
	SetResizeHandler(fn func(width, height int))
	SetMouseMoveHandler(fn func(xpos, ypos float64))
	CaptureCursor(captured bool)
	Terminate()
}

// InputHandler is invoked once per frame with the window.
type InputHandler func(*Window)

// Window is a portable window over one of the supported backends.
type Window struct {
	Title  string
	Width  int
	Height int

	// InputHandler, when set, runs at the start of every frame.
	InputHandler InputHandler

	config  Config
	backend Backend
	state   State
}

// New selects the backend named in cfg and wraps it. The native window
// does not exist until Init.
func New(cfg Config) (*Window, error) {
	var backend Backend
	switch cfg.Backend {
	case "", "glfw":
		backend = newGLFWBackend()
	case "sdl":
		backend = newSDLBackend()
	default:
		return nil, errstate.New(errstate.KindResource, "unknown window backend %q", cfg.Backend)
	}

	return &Window{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		config:  cfg,
		backend: backend,
	}, nil
}

// NewWithBackend wraps a caller-supplied backend, letting embedders
// plug in their own windowing layer.
func NewWithBackend(cfg Config, backend Backend) *Window {
	return &Window{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		config:  cfg,
		backend: backend,
	}
}

// Init creates the native window and rendering context. Valid once,
// from the uninitialized state only.
func (w *Window) Init() error {
	if w.state != StateUninitialized {
		return errstate.New(errstate.KindResource, "window already initialized")
	}

	if err := w.backend.Create(w.config); err != nil {
		return err
	}
	w.state = StateCreated

	logger.Info("window created",
		zap.String("backend", w.backend.Name()),
		zap.String("title", w.Title),
		zap.Int("width", w.Width),
		zap.Int("height", w.Height),
		zap.Bool("fullscreen", w.config.Fullscreen),
		zap.Bool("vsync", w.config.VSync),
	)
	return nil
}

// State returns the lifecycle state.
func (w *Window) State() State { return w.state }

// ShouldClose queries the backend close flag. Must not be called after
// Terminate.
func (w *Window) ShouldClose() bool {
	if w.backend.ShouldClose() {
		if w.state == StateCreated {
			w.state = StateClosing
		}
		return true
	}
	return false
}

// PollEvents processes queued backend events.
func (w *Window) PollEvents() {
	w.backend.PollEvents()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.backend.SwapBuffers()
}

// UpdateSize re-queries the framebuffer size and stores it, catching
// resize and DPI drift between frames.
func (w *Window) UpdateSize() (int, int) {
	width, height := w.backend.FramebufferSize()
	w.Width, w.Height = width, height
	return width, height
}

// SetResizeHandler registers the framebuffer-resize callback.
func (w *Window) SetResizeHandler(fn func(width, height int)) {
	w.backend.SetResizeHandler(fn)
}

// SetMouseMoveHandler registers the cursor-position callback, used to
// drive a camera. The backend only installs its native callback once a
// handler exists.
func (w *Window) SetMouseMoveHandler(fn func(xpos, ypos float64)) {
	w.backend.SetMouseMoveHandler(fn)
}

// CaptureCursor hides the cursor and locks it to the window.
func (w *Window) CaptureCursor(captured bool) {
	w.backend.CaptureCursor(captured)
}

// Terminate destroys the window and shuts the backend library down.
// Idempotent; ShouldClose must not be called afterwards.
func (w *Window) Terminate() {
	if w.state == StateTerminated {
		return
	}
	w.backend.Terminate()
	w.state = StateTerminated
	logger.Info("window terminated", zap.String("backend", w.backend.Name()))
}
