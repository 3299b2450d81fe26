package colorscheme

import (
	"context"

	"github.com/bnema/isitdark/internal/domain/theme"
)

const sourceUnsupported = "unsupported"

// Unsupported is the capability for platforms without a native theme source.
// Every operation fails with theme.KindUnsupported so reads fall through to the
// fallback chain and writes fail loudly.
type Unsupported struct{}

// Name implements port.NamedSource.
func (Unsupported) Name() string {
	return sourceUnsupported
}

// IsDark implements port.ThemeCapability.
func (Unsupported) IsDark(context.Context) (bool, error) {
	return false, theme.Unsupported(sourceUnsupported, "is_dark")
}

// IsLight implements port.ThemeCapability.
func (Unsupported) IsLight(context.Context) (bool, error) {
	return false, theme.Unsupported(sourceUnsupported, "is_light")
}

// SetDark implements port.ThemeCapability.
func (Unsupported) SetDark(context.Context) (bool, error) {
	return false, theme.Unsupported(sourceUnsupported, "set_dark")
}

// SetLight implements port.ThemeCapability.
func (Unsupported) SetLight(context.Context) (bool, error) {
	return false, theme.Unsupported(sourceUnsupported, "set_light")
}
