//go:build windows

package colorscheme

import "github.com/bnema/isitdark/internal/application/port"

// NewSystem returns the native theme capability for this platform.
func NewSystem() port.ThemeCapability {
	return NewWindows()
}
