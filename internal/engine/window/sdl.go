package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skr/internal/engine/errstate"
)

// sdlBackend drives a window through SDL2.
type sdlBackend struct {
	win       *sdl.Window
	glContext sdl.GLContext
	closing   bool
	resize    func(width, height int)
	mouseMove func(xpos, ypos float64)
}

func newSDLBackend() *sdlBackend {
	return &sdlBackend{}
}

func (b *sdlBackend) Name() string { return "sdl" }

func (b *sdlBackend) Create(cfg Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errstate.Wrap(errstate.KindResource, err, "failed to initialize SDL")
	}

	// context attributes must be set before the window exists
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return errstate.Wrap(errstate.KindResource, err, "failed to create SDL window")
	}
	b.win = win

	b.glContext, err = win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return errstate.Wrap(errstate.KindResource, err, "failed to create GL context")
	}

	if cfg.VSync {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}

	return nil
}

func (b *sdlBackend) ShouldClose() bool {
	return b.closing
}

// PollEvents drains the SDL queue, translating quit, resize and mouse
// motion into the portable handlers.
func (b *sdlBackend) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			b.closing = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED && b.resize != nil {
				width, height := b.win.GLGetDrawableSize()
				b.resize(int(width), int(height))
			}

		case *sdl.MouseMotionEvent:
			if b.mouseMove != nil {
				b.mouseMove(float64(e.X), float64(e.Y))
			}
		}
	}
}

func (b *sdlBackend) SwapBuffers() {
	b.win.GLSwap()
}

func (b *sdlBackend) FramebufferSize() (int, int) {
	width, height := b.win.GLGetDrawableSize()
	return int(width), int(height)
}

func (b *sdlBackend) SetResizeHandler(fn func(width, height int)) {
	b.resize = fn
}

func (b *sdlBackend) SetMouseMoveHandler(fn func(xpos, ypos float64)) {
	b.mouseMove = fn
}

func (b *sdlBackend) CaptureCursor(captured bool) {
	sdl.SetRelativeMouseMode(captured)
	if b.win != nil {
		b.win.SetGrab(captured)
	}
}

func (b *sdlBackend) Terminate() {
	if b.glContext != nil {
		sdl.GLDeleteContext(b.glContext)
		b.glContext = nil
	}
	if b.win != nil {
		b.win.Destroy()
		b.win = nil
	}
	sdl.Quit()
}
