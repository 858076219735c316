package vkdriver

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

type Instance struct {
	driver core1_0.CoreInstanceDriver

	debugDriver ext_debug_utils.ExtensionDriver
	messenger   ext_debug_utils.DebugUtilsMessenger
}

// Destroy tears down the debug messenger, if any, and then the instance.
// It is safe to call more than once.
func (i *Instance) Destroy() {
	if i.messenger.Initialized() {
		i.debugDriver.DestroyDebugUtilsMessenger(i.messenger, nil)
		i.messenger = ext_debug_utils.DebugUtilsMessenger{}
	}

	if i.driver != nil {
		i.driver.DestroyInstance(nil)
		i.driver = nil
	}
}

func debugMessengerCreateInfo(log logrus.FieldLogger) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			logDebugMessage(log, msgType, severity, data)
			return false
		},
	}
}

func logDebugMessage(log logrus.FieldLogger, msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) {
	entry := log.WithFields(logrus.Fields{
		"type":     msgType,
		"severity": severity,
	})

	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		entry.Error(data.Message)
	case severity&ext_debug_utils.SeverityWarning != 0:
		entry.Warn(data.Message)
	case severity&ext_debug_utils.SeverityInfo != 0:
		entry.Info(data.Message)
	default:
		entry.Debug(data.Message)
	}
}
