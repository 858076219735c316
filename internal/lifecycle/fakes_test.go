package lifecycle

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/vkngwrapper/hellotriangle/internal/config"
)

// callLog records calls across all fakes so tests can check ordering
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

type fakeWindowSystem struct {
	log       *callLog
	initErr   error
	createErr error
	noWindow  bool

	window  *fakeWindow
	options WindowOptions
	quits   int
}

func (s *fakeWindowSystem) Init() error {
	s.log.add("init")
	return s.initErr
}

func (s *fakeWindowSystem) CreateWindow(options WindowOptions) (Window, error) {
	s.log.add("create window")
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.noWindow {
		return nil, nil
	}

	s.options = options
	s.window.width = options.Width
	s.window.height = options.Height
	s.window.resizable = options.Resizable
	return s.window, nil
}

func (s *fakeWindowSystem) Quit() {
	s.log.add("quit")
	s.quits++
}

type fakeWindow struct {
	log        *callLog
	extensions []string
	destroyErr error

	width, height int
	resizable     bool

	// closeOnPoll sets the close flag during that poll; zero means the
	// flag is already set before the first poll
	closeOnPoll  int
	closed       bool
	polls        int
	closeChecks  int
	destroyCalls int
}

// Resize simulates the user dragging the window border
func (w *fakeWindow) Resize(width, height int) {
	if !w.resizable {
		return
	}
	w.width, w.height = width, height
}

func (w *fakeWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.polls >= w.closeOnPoll {
		w.closed = true
	}
}

func (w *fakeWindow) ShouldClose() bool {
	w.closeChecks++
	return w.closed || w.closeOnPoll == 0
}

func (w *fakeWindow) Destroy() error {
	w.log.add("destroy window")
	w.destroyCalls++
	return w.destroyErr
}

type fakeDriver struct {
	log        *callLog
	extensions []string
	layers     []string
	extErr     error
	layerErr   error
	createErr  error

	layerQueries int
	requests     []InstanceRequest
	instance     *fakeInstance
}

func (d *fakeDriver) AvailableExtensions() ([]string, error) {
	return d.extensions, d.extErr
}

func (d *fakeDriver) AvailableLayers() ([]string, error) {
	d.layerQueries++
	return d.layers, d.layerErr
}

func (d *fakeDriver) CreateInstance(request InstanceRequest) (Instance, error) {
	d.log.add("create instance")
	d.requests = append(d.requests, request)
	if d.createErr != nil {
		return nil, d.createErr
	}
	return d.instance, nil
}

type fakeInstance struct {
	log          *callLog
	destroyCalls int
}

func (i *fakeInstance) Destroy() {
	i.log.add("destroy instance")
	i.destroyCalls++
}

type testRig struct {
	calls    *callLog
	windows  *fakeWindowSystem
	window   *fakeWindow
	driver   *fakeDriver
	instance *fakeInstance
	loadErr  error
	loads    int
	hook     *test.Hook
	cfg      config.Config
}

func newRig() *testRig {
	calls := &callLog{}
	window := &fakeWindow{
		log:         calls,
		extensions:  []string{"VK_KHR_surface", "VK_KHR_xlib_surface"},
		closeOnPoll: 1,
	}
	instance := &fakeInstance{log: calls}

	return &testRig{
		calls:    calls,
		window:   window,
		windows:  &fakeWindowSystem{log: calls, window: window},
		instance: instance,
		driver: &fakeDriver{
			log:        calls,
			extensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface", "VK_EXT_debug_utils"},
			layers:     []string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_MESA_device_select"},
			instance:   instance,
		},
		cfg: config.Default(),
	}
}

func (r *testRig) app(t *testing.T) *App {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r.hook = hook

	loader := DriverLoaderFunc(func(window Window) (Driver, error) {
		r.loads++
		if r.loadErr != nil {
			return nil, r.loadErr
		}
		return r.driver, nil
	})

	return New(r.cfg, r.windows, loader, logger)
}

func (r *testRig) messages() []string {
	var messages []string
	for _, entry := range r.hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	return messages
}
