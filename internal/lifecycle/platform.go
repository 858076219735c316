package lifecycle

// WindowSystem is the windowing layer: it owns global window-system state
// and hands out windows.
type WindowSystem interface {
	Init() error
	CreateWindow(options WindowOptions) (Window, error)
	Quit()
}

// WindowOptions describes the single window the application opens
type WindowOptions struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

type Window interface {
	Size() (width, height int)
	// RequiredInstanceExtensions lists the instance extensions the window
	// system needs in order to present to this window
	RequiredInstanceExtensions() []string
	// PollEvents drains pending window-system events without blocking
	PollEvents()
	ShouldClose() bool
	Destroy() error
}

// DriverLoader connects to the graphics driver. The window is passed
// because some window systems own the driver loader entry point.
type DriverLoader interface {
	LoadDriver(window Window) (Driver, error)
}

type DriverLoaderFunc func(window Window) (Driver, error)

func (f DriverLoaderFunc) LoadDriver(window Window) (Driver, error) {
	return f(window)
}

type Driver interface {
	AvailableExtensions() ([]string, error)
	AvailableLayers() ([]string, error)
	CreateInstance(request InstanceRequest) (Instance, error)
}

type Instance interface {
	Destroy()
}
