package colorscheme

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/bnema/isitdark/internal/domain/theme"
)

const sourceMacOS = "macos"

const appearanceScript = `
tell application "System Events"
    tell appearance preferences
        set dark mode to %t
    end tell
end tell
`

// MacOS is the theme capability for macOS.
// It reads AppleInterfaceStyle with defaults(1) and writes through System Events.
type MacOS struct {
	run commandRunner
}

// NewMacOS creates the macOS capability backed by the real binaries.
func NewMacOS() *MacOS {
	return &MacOS{run: execRunner}
}

// Name implements port.NamedSource.
func (*MacOS) Name() string {
	return sourceMacOS
}

// IsDark implements port.ThemeCapability.
func (m *MacOS) IsDark(ctx context.Context) (bool, error) {
	output, err := m.run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// The key does not exist in light mode, which makes defaults exit 1.
		var exitErr *exitStatusError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, theme.IOError(sourceMacOS, "read AppleInterfaceStyle", err)
	}
	return bytes.HasPrefix(bytes.TrimSpace(output), []byte("Dark")), nil
}

// IsLight implements port.ThemeCapability.
func (m *MacOS) IsLight(ctx context.Context) (bool, error) {
	return theme.Invert(m.IsDark(ctx))
}

// SetDark implements port.ThemeCapability.
func (m *MacOS) SetDark(ctx context.Context) (bool, error) {
	return m.set(ctx, true)
}

// SetLight implements port.ThemeCapability.
func (m *MacOS) SetLight(ctx context.Context) (bool, error) {
	return m.set(ctx, false)
}

func (m *MacOS) set(ctx context.Context, dark bool) (bool, error) {
	if _, err := m.run(ctx, "osascript", "-e", fmt.Sprintf(appearanceScript, dark)); err != nil {
		return false, theme.IOError(sourceMacOS, "set dark mode", err)
	}

	now, err := m.IsDark(ctx)
	if err != nil {
		return true, nil
	}
	return now == dark, nil
}
