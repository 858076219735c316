package lifecycle

import "github.com/vkngwrapper/hellotriangle/internal/config"

const (
	DebugUtilsExtensionName             = "VK_EXT_debug_utils"
	PortabilityEnumerationExtensionName = "VK_KHR_portability_enumeration"
)

// InstanceRequest is everything the driver needs to create an instance
type InstanceRequest struct {
	ApplicationName    string
	ApplicationVersion config.Version
	EngineName         string
	EngineVersion      config.Version
	APIVersion         config.Version

	ExtensionNames []string
	LayerNames     []string

	// EnumeratePortability sets the portability enumeration instance flag.
	// PortabilityEnumerationExtensionName is in ExtensionNames when set.
	EnumeratePortability bool
	// DebugMessenger asks the driver to attach a debug messenger to the
	// instance. DebugUtilsExtensionName is in ExtensionNames when set.
	DebugMessenger bool
}

// BuildInstanceRequest combines the configured names and versions with the
// extensions the window system requires. available is the driver's
// instance extension list and only decides whether portability enumeration
// is turned on.
func BuildInstanceRequest(cfg config.Config, required, available []string) InstanceRequest {
	request := InstanceRequest{
		ApplicationName:    cfg.Application.Name,
		ApplicationVersion: cfg.Application.Version,
		EngineName:         cfg.Engine.Name,
		EngineVersion:      cfg.Engine.Version,
		APIVersion:         cfg.APIVersion,
		LayerNames:         cfg.Layers(),
	}

	request.ExtensionNames = append(request.ExtensionNames, required...)

	if cfg.EnableValidationLayers {
		request.ExtensionNames = appendUnique(request.ExtensionNames, DebugUtilsExtensionName)
		request.DebugMessenger = true
	}

	if contains(available, PortabilityEnumerationExtensionName) {
		request.ExtensionNames = appendUnique(request.ExtensionNames, PortabilityEnumerationExtensionName)
		request.EnumeratePortability = true
	}

	return request
}

func appendUnique(names []string, name string) []string {
	if contains(names, name) {
		return names
	}
	return append(names, name)
}
