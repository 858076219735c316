package lifecycle

import "github.com/cockroachdb/errors"

// CheckValidationLayerSupport succeeds only if every requested layer name
// appears verbatim in available. The first missing name is reported.
func CheckValidationLayerSupport(requested, available []string) error {
	for _, layer := range requested {
		if !contains(available, layer) {
			return errors.Wrapf(ErrMissingLayer, "layer %s not available- install LunarG Vulkan SDK", layer)
		}
	}

	return nil
}

// VerifyExtensions succeeds only if every extension the window system
// requires appears verbatim in available. The first missing name is
// reported.
func VerifyExtensions(required, available []string) error {
	missing := MissingNames(required, available)
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingExtension, "missing extension %s", missing[0])
	}

	return nil
}

// MissingNames returns the entries of wanted that have no exact match in
// available, in the order they appear in wanted
func MissingNames(wanted, available []string) []string {
	var missing []string
	for _, name := range wanted {
		if !contains(available, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
