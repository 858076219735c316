// Package sdlwindow implements the lifecycle window system on top of SDL2.
// Every call must come from the thread that called Init.
package sdlwindow

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vkngwrapper/hellotriangle/internal/lifecycle"
)

type System struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *System {
	return &System{log: log}
}

func (s *System) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl")
	}
	return nil
}

func (s *System) CreateWindow(options lifecycle.WindowOptions) (lifecycle.Window, error) {
	handle, err := sdl.CreateWindow(options.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(options.Width), int32(options.Height), windowFlags(options))
	if err != nil {
		return nil, errors.Wrap(err, "sdl")
	}

	id, err := handle.GetID()
	if err != nil {
		_ = handle.Destroy()
		return nil, errors.Wrap(err, "sdl")
	}

	s.log.WithField("window_id", id).Debug("SDL window created")
	return &Window{handle: handle, id: id}, nil
}

func (s *System) Quit() {
	sdl.Quit()
}

// windowFlags always asks for a Vulkan-capable window, which keeps SDL from
// creating an OpenGL context for it
func windowFlags(options lifecycle.WindowOptions) uint32 {
	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_VULKAN
	if options.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

type Window struct {
	handle      *sdl.Window
	id          uint32
	shouldClose bool
}

func (w *Window) Size() (int, int) {
	width, height := w.handle.GetSize()
	return int(width), int(height)
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.handle.VulkanGetInstanceExtensions()
}

func (w *Window) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if isCloseRequest(event, w.id) {
			w.shouldClose = true
		}
	}
}

func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// ProcAddr is SDL's vkGetInstanceProcAddr. It is only valid once a Vulkan
// window exists, since SDL loads the Vulkan library while creating one.
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *Window) Destroy() error {
	if w.handle == nil {
		return nil
	}

	err := w.handle.Destroy()
	w.handle = nil
	if err != nil {
		return errors.Wrap(err, "sdl")
	}
	return nil
}

func isCloseRequest(event sdl.Event, windowID uint32) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return e.Event == sdl.WINDOWEVENT_CLOSE && e.WindowID == windowID
	}
	return false
}
