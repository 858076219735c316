package config

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Config describes everything the application needs to bring up a window
// and a Vulkan instance. It is built once and never mutated afterwards.
type Config struct {
	Window      WindowConfiguration
	Application ApplicationInfo
	Engine      ApplicationInfo
	APIVersion  Version

	// EnableValidationLayers requests every layer in ValidationLayers and
	// fails instance setup if any of them is not installed
	EnableValidationLayers bool
	ValidationLayers       []string

	// LogAvailableExtensions logs the driver's instance extensions at info
	// level instead of debug
	LogAvailableExtensions bool

	Logging LoggingConfiguration
}

// WindowConfiguration is the fixed size and title of the single window
type WindowConfiguration struct {
	Title  string
	Width  int
	Height int
}

// ApplicationInfo names an application or engine for the driver
type ApplicationInfo struct {
	Name    string
	Version Version
}

type LoggingConfiguration struct {
	Level string
}

// Version is a major.minor.patch triple as packed by the Vulkan version macros
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

const KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"

// Default returns the Hello Triangle configuration
func Default() Config {
	return Config{
		Window: WindowConfiguration{
			Title:  "Vulkan",
			Width:  800,
			Height: 600,
		},
		Application: ApplicationInfo{
			Name:    "Hello Triangle",
			Version: Version{1, 0, 0},
		},
		Engine: ApplicationInfo{
			Name:    "No Engine",
			Version: Version{1, 0, 0},
		},
		APIVersion:             Version{1, 0, 0},
		EnableValidationLayers: true,
		ValidationLayers:       []string{KhronosValidationLayer},
		LogAvailableExtensions: true,
		Logging: LoggingConfiguration{
			Level: "info",
		},
	}
}

// Layers returns the layers to enable on the instance, which is empty when
// validation is turned off
func (c Config) Layers() []string {
	if !c.EnableValidationLayers {
		return nil
	}

	layers := make([]string, len(c.ValidationLayers))
	copy(layers, c.ValidationLayers)
	return layers
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Newf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Application.Name == "" {
		return errors.New("config: application name is empty")
	}

	if c.Engine.Name == "" {
		return errors.New("config: engine name is empty")
	}

	if c.EnableValidationLayers && len(c.ValidationLayers) == 0 {
		return errors.New("config: validation is enabled but no validation layers are listed")
	}

	for _, layer := range c.ValidationLayers {
		if layer == "" {
			return errors.New("config: empty validation layer name")
		}
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "config")
	}

	return nil
}
