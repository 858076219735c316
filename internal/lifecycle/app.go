package lifecycle

import (
	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"

	"github.com/vkngwrapper/hellotriangle/internal/config"
)

// App owns the window and the graphics instance for the lifetime of the
// process. Its methods must be called from the thread that owns the window
// system, in the order Initialize, InitializeGraphics, RunLoop, Shutdown.
type App struct {
	cfg     config.Config
	windows WindowSystem
	loader  DriverLoader
	log     logrus.FieldLogger

	state         State
	windowSysLive bool
	window        Window
	driver        Driver
	instance      Instance
}

func New(cfg config.Config, windows WindowSystem, loader DriverLoader, log logrus.FieldLogger) *App {
	return &App{
		cfg:     cfg,
		windows: windows,
		loader:  loader,
		log:     log,
		state:   Uninitialized,
	}
}

func (app *App) State() State {
	return app.state
}

// Run brings the application up, blocks until the window is closed and
// then releases everything that was created, even if setup failed partway.
func (app *App) Run() (err error) {
	defer func() {
		err = errors.CombineErrors(err, app.Shutdown())
	}()

	err = app.Initialize()
	if err != nil {
		return err
	}

	err = app.InitializeGraphics()
	if err != nil {
		return err
	}

	return app.RunLoop()
}

func (app *App) Initialize() error {
	if err := app.expect(Uninitialized, "initialize"); err != nil {
		return err
	}

	app.log.Info("Initializing window")
	start := hrtime.Now()

	err := app.windows.Init()
	if err != nil {
		return categorize(err, ErrWindowInit, "initialize")
	}
	app.windowSysLive = true

	window, err := app.windows.CreateWindow(WindowOptions{
		Title:     app.cfg.Window.Title,
		Width:     app.cfg.Window.Width,
		Height:    app.cfg.Window.Height,
		Resizable: false,
	})
	if err != nil {
		return categorize(err, ErrWindowCreate, "initialize")
	}
	if window == nil {
		return errors.Wrap(ErrWindowCreate, "initialize: no window returned")
	}
	app.window = window

	width, height := window.Size()
	app.log.WithFields(logrus.Fields{
		"width":   width,
		"height":  height,
		"elapsed": hrtime.Since(start),
	}).Info("Window ready")

	app.state = WindowReady
	return nil
}

func (app *App) InitializeGraphics() error {
	if err := app.expect(WindowReady, "initialize graphics"); err != nil {
		return err
	}

	app.log.Info("Initializing Vulkan")
	start := hrtime.Now()

	driver, err := app.loader.LoadDriver(app.window)
	if err != nil {
		return categorize(err, ErrDriverLoad, "initialize graphics")
	}
	app.driver = driver

	required := app.window.RequiredInstanceExtensions()

	app.log.Info("Querying Vulkan extensions")
	available, err := driver.AvailableExtensions()
	if err != nil {
		return categorize(err, ErrDriverLoad, "initialize graphics: enumerate extensions")
	}
	app.logExtensions(available)

	for _, missing := range MissingNames(required, available) {
		app.log.WithField("extension", missing).Warn("Unsupported window system extension")
	}
	err = VerifyExtensions(required, available)
	if err != nil {
		return errors.Wrap(err, "initialize graphics")
	}

	if app.cfg.EnableValidationLayers {
		layers, err := driver.AvailableLayers()
		if err != nil {
			return categorize(err, ErrDriverLoad, "initialize graphics: enumerate layers")
		}

		err = CheckValidationLayerSupport(app.cfg.ValidationLayers, layers)
		if err != nil {
			return errors.Wrap(err, "initialize graphics")
		}
	} else {
		app.log.Debug("Validation layers disabled")
	}

	request := BuildInstanceRequest(app.cfg, required, available)

	app.log.WithFields(logrus.Fields{
		"extensions": request.ExtensionNames,
		"layers":     request.LayerNames,
	}).Info("Creating VkInstance")

	instance, err := driver.CreateInstance(request)
	if err != nil {
		return categorize(err, ErrInstanceCreate, "initialize graphics")
	}
	if instance == nil {
		return errors.Wrap(ErrInstanceCreate, "initialize graphics: no instance returned")
	}
	app.instance = instance

	app.log.WithField("elapsed", hrtime.Since(start)).Info("Vulkan ready")

	app.state = GraphicsReady
	return nil
}

// RunLoop polls window events until the window asks to close. The close
// flag is checked before every poll, so no poll happens once it is set.
func (app *App) RunLoop() error {
	if err := app.expect(GraphicsReady, "run loop"); err != nil {
		return err
	}
	app.state = Running

	app.log.Info("Entering main loop")

	polls := 0
	for !app.window.ShouldClose() {
		app.window.PollEvents()
		polls++
	}

	app.log.WithField("polls", polls).Info("Window closed")
	return nil
}

// Shutdown destroys the instance, then the window, then terminates the
// window system, skipping anything that was never created. Calling it
// again is a no-op.
func (app *App) Shutdown() error {
	if app.state == ShutDown {
		return nil
	}

	app.log.Info("Cleaning up")

	if app.instance != nil {
		app.instance.Destroy()
		app.instance = nil
	}
	app.driver = nil

	var err error
	if app.window != nil {
		if destroyErr := app.window.Destroy(); destroyErr != nil {
			err = errors.Wrap(destroyErr, "shutdown: destroy window")
		}
		app.window = nil
	}

	if app.windowSysLive {
		app.windows.Quit()
		app.windowSysLive = false
	}

	app.state = ShutDown
	return err
}

func (app *App) logExtensions(available []string) {
	level := logrus.DebugLevel
	if app.cfg.LogAvailableExtensions {
		level = logrus.InfoLevel
	}

	for _, ext := range available {
		app.log.WithField("extension", ext).Log(level, "Available Vulkan extension")
	}
}

func (app *App) expect(state State, op string) error {
	if app.state != state {
		return errors.Wrapf(ErrInvalidState, "%s: in state %s, expected %s", op, app.state, state)
	}
	return nil
}

// categorize wraps cause with op and the category's message, and marks it
// so errors.Is matches the category
func categorize(cause, category error, op string) error {
	return errors.Mark(errors.Wrapf(cause, "%s: %v", op, category), category)
}
