//go:build !linux && !darwin && !windows

package colorscheme

import "github.com/bnema/isitdark/internal/application/port"

// NewSystem returns the native theme capability for this platform.
// There is none here, so reads always fall through to the fallback chain.
func NewSystem() port.ThemeCapability {
	return Unsupported{}
}
