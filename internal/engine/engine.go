// Package engine ties window, renderer, camera and resources into a
// frame loop.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skr/internal/config"
	"github.com/Faultbox/skr/internal/engine/camera"
	"github.com/Faultbox/skr/internal/engine/errstate"
	"github.com/Faultbox/skr/internal/engine/gfx"
	"github.com/Faultbox/skr/internal/engine/model"
	"github.com/Faultbox/skr/internal/engine/renderer"
	"github.com/Faultbox/skr/internal/engine/shader"
	"github.com/Faultbox/skr/internal/engine/texture"
	"github.com/Faultbox/skr/internal/engine/window"
	"github.com/Faultbox/skr/internal/logger"
)

// Engine is the top-level instance. It owns the window, the rendering
// backend and the registered resources, and drives them once per frame.
type Engine struct {
	Window *window.Window
	Camera *camera.FPSCamera

	// Models holds every registered model; RenderAll draws them in
	// registration order.
	Models []*model.Model

	renderer *renderer.Renderer
	programs []*shader.Program
	recorder errstate.Recorder

	fpsLimit int
	width    int
	height   int
	closed   bool
}

// New creates the window, rendering context and backend from config.
// The rendering backend is initialized after the window has made its
// context current.
func New(cfg *config.Config) (*Engine, error) {
	api, err := gfx.New(cfg.Graphics.Backend)
	if err != nil {
		return nil, err
	}

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Backend:    cfg.Window.Backend,
	})
	if err != nil {
		return nil, err
	}

	return newWithParts(cfg, win, api)
}

// newWithParts finishes construction around pre-built window and
// backend, so tests can substitute both.
func newWithParts(cfg *config.Config, win *window.Window, api gfx.API) (*Engine, error) {
	if err := win.Init(); err != nil {
		return nil, err
	}

	width, height := win.UpdateSize()
	r, err := renderer.New(api, renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		win.Terminate()
		return nil, err
	}

	cam := camera.NewFPSCamera()
	if cfg.Camera.FOV > 0 {
		cam.FOV = cfg.Camera.FOV
	}
	if cfg.Camera.Sensitivity > 0 {
		cam.Sensitivity = cfg.Camera.Sensitivity
	}

	e := &Engine{
		Window:   win,
		Camera:   cam,
		renderer: r,
		fpsLimit: cfg.Graphics.FPSLimit,
		width:    width,
		height:   height,
	}

	win.SetResizeHandler(func(w, h int) {
		e.width, e.height = w, h
		r.Resize(w, h)
	})
	win.SetMouseMoveHandler(cam.OnMouseMove)
	if cfg.Camera.CaptureCursor {
		win.CaptureCursor(true)
	}

	return e, nil
}

// Renderer exposes the renderer for resource management.
func (e *Engine) Renderer() *renderer.Renderer { return e.renderer }

// API exposes the rendering backend.
func (e *Engine) API() gfx.API { return e.renderer.API() }

// Recorder exposes the last-error recorder. Fallible engine calls
// record their outcome here in addition to returning it.
func (e *Engine) Recorder() *errstate.Recorder { return &e.recorder }

// AddModel uploads a model's meshes and registers it for drawing.
// On failure nothing is registered and nothing stays on the GPU.
func (e *Engine) AddModel(mod *model.Model) error {
	if err := e.renderer.UploadModel(mod); err != nil {
		e.recorder.Record(err)
		return err
	}
	e.Models = append(e.Models, mod)
	e.recorder.Clear()
	return nil
}

// BuildProgram compiles and links a shader program and registers it
// for teardown on Close.
func (e *Engine) BuildProgram(descriptors []shader.Descriptor) (*shader.Program, error) {
	p, err := shader.BuildProgram(e.renderer.API(), descriptors)
	if err != nil {
		e.recorder.Record(err)
		return nil, err
	}
	e.programs = append(e.programs, p)
	e.recorder.Clear()
	return p, nil
}

// LoadTextures uploads a batch of textures through the given loader,
// all-or-nothing.
func (e *Engine) LoadTextures(loader texture.ImageLoader, paths []string) ([]uint32, error) {
	ids, err := e.renderer.CreateTextures2D(loader, paths)
	e.recorder.Record(err)
	return ids, err
}

// Frame runs one iteration of the loop: input handler, event poll,
// size refresh, clear, draw, present. Order is fixed; the input
// handler sees the previous frame's state before new events arrive.
func (e *Engine) Frame() {
	if e.Window.InputHandler != nil {
		e.Window.InputHandler(e.Window)
	}
	e.Window.PollEvents()

	// catch size drift the resize callback missed
	if w, h := e.Window.UpdateSize(); w != e.width || h != e.height {
		e.width, e.height = w, h
		e.renderer.Resize(w, h)
	}

	e.renderer.Clear()
	e.renderer.RenderAll(e.Models)
	e.Window.SwapBuffers()
}

// Run drives Frame until the window reports close.
func (e *Engine) Run() {
	logger.Info("starting frame loop")

	var frameBudget time.Duration
	if e.fpsLimit > 0 {
		frameBudget = time.Second / time.Duration(e.fpsLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for !e.Window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		e.Frame()

		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Aspect returns the current framebuffer aspect ratio for projection.
func (e *Engine) Aspect() float32 {
	if e.height == 0 {
		return 1
	}
	return float32(e.width) / float32(e.height)
}

// Close releases every GPU resource and tears the window down.
// Idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true

	e.renderer.FinalizeAll(e.Models)
	for _, p := range e.programs {
		p.Destroy()
	}
	e.programs = nil

	e.Window.Terminate()
	logger.Info("engine closed")
}
