package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/vkngwrapper/hellotriangle/internal/config"
	"github.com/vkngwrapper/hellotriangle/internal/lifecycle"
	"github.com/vkngwrapper/hellotriangle/internal/logging"
	"github.com/vkngwrapper/hellotriangle/internal/sdlwindow"
	"github.com/vkngwrapper/hellotriangle/internal/vkdriver"
)

func init() {
	// SDL must be driven from the thread that initialized it
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	log := logger.WithField("session", uuid.New().String())

	app := lifecycle.New(cfg, sdlwindow.New(log), vkdriver.NewLoader(log), log)

	err = app.Run()
	if err != nil {
		log.Errorf("%+v", err)
		return 1
	}

	return 0
}
