package theme

import "errors"

// ErrConflictingDefaults is returned when both default_dark and default_light are selected.
var ErrConflictingDefaults = errors.New("default_dark and default_light cannot be enabled at the same time")

// ResolveDefault turns the two mutually exclusive default options into the
// fallback answer used when no source can report the theme. Selecting neither means light.
func ResolveDefault(defaultDark, defaultLight bool) (bool, error) {
	if defaultDark && defaultLight {
		return false, ErrConflictingDefaults
	}
	return defaultDark, nil
}
