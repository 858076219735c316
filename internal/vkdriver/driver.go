// Package vkdriver implements the lifecycle driver on top of vkngwrapper.
package vkdriver

import (
	"sort"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"

	"github.com/vkngwrapper/hellotriangle/internal/config"
	"github.com/vkngwrapper/hellotriangle/internal/lifecycle"
)

// ProcAddrSource is a window that can hand out vkGetInstanceProcAddr
type ProcAddrSource interface {
	ProcAddr() unsafe.Pointer
}

type Loader struct {
	log logrus.FieldLogger
}

func NewLoader(log logrus.FieldLogger) *Loader {
	return &Loader{log: log}
}

func (l *Loader) LoadDriver(window lifecycle.Window) (lifecycle.Driver, error) {
	source, ok := window.(ProcAddrSource)
	if !ok {
		return nil, errors.Newf("vkdriver: window %T does not expose vkGetInstanceProcAddr", window)
	}

	procAddr := source.ProcAddr()
	if procAddr == nil {
		return nil, errors.New("vkdriver: vkGetInstanceProcAddr is nil")
	}

	globalDriver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "vkdriver")
	}

	return &Driver{global: globalDriver, log: l.log}, nil
}

type Driver struct {
	global core1_0.GlobalDriver
	log    logrus.FieldLogger
}

func (d *Driver) AvailableExtensions() ([]string, error) {
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "vkdriver: enumerate instance extensions")
	}
	return sortedNames(extensions), nil
}

func (d *Driver) AvailableLayers() ([]string, error) {
	layers, _, err := d.global.AvailableLayers()
	if err != nil {
		return nil, errors.Wrap(err, "vkdriver: enumerate instance layers")
	}
	return sortedNames(layers), nil
}

func (d *Driver) CreateInstance(request lifecycle.InstanceRequest) (lifecycle.Instance, error) {
	instanceDriver, result, err := d.global.CreateInstance(nil, instanceCreateInfo(request, d.log))
	if err != nil {
		return nil, errors.Wrapf(err, "vkdriver: vkCreateInstance returned %s", result)
	}

	instance := &Instance{driver: instanceDriver}
	if !request.DebugMessenger {
		return instance, nil
	}

	instance.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(instanceDriver)
	instance.messenger, _, err = instance.debugDriver.CreateDebugUtilsMessenger(nil, debugMessengerCreateInfo(d.log))
	if err != nil {
		instance.Destroy()
		return nil, errors.Wrap(err, "vkdriver: create debug messenger")
	}

	return instance, nil
}

func instanceCreateInfo(request lifecycle.InstanceRequest, log logrus.FieldLogger) core1_0.InstanceCreateInfo {
	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:       request.ApplicationName,
		ApplicationVersion:    version(request.ApplicationVersion),
		EngineName:            request.EngineName,
		EngineVersion:         version(request.EngineVersion),
		APIVersion:            common.APIVersion(version(request.APIVersion)),
		EnabledExtensionNames: request.ExtensionNames,
		EnabledLayerNames:     request.LayerNames,
	}

	if request.EnumeratePortability {
		createInfo.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	// Chaining the messenger options catches messages from vkCreateInstance
	// and vkDestroyInstance, which the standalone messenger can't see
	if request.DebugMessenger {
		createInfo.Next = debugMessengerCreateInfo(log)
	}

	return createInfo
}

func version(v config.Version) common.Version {
	return common.CreateVersion(v.Major, v.Minor, v.Patch)
}

func sortedNames[T any](properties map[string]T) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
