package colorscheme

import (
	"context"

	"github.com/bnema/isitdark/internal/domain/theme"
)

const (
	sourceWindows = "windows"

	personalizeKey    = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	appsUseLightTheme = "AppsUseLightTheme"
)

// dwordStore reads and writes DWORD values under the Personalize key.
// Failures are already *theme.Error.
type dwordStore interface {
	getDWord(name string) (uint64, error)
	setDWord(name string, value uint32) error
}

// Windows is the theme capability for Windows, backed by the per-user
// AppsUseLightTheme registry value (0 means dark).
type Windows struct {
	store dwordStore
}

func newWindows(store dwordStore) *Windows {
	return &Windows{store: store}
}

// Name implements port.NamedSource.
func (*Windows) Name() string {
	return sourceWindows
}

// IsDark implements port.ThemeCapability.
func (w *Windows) IsDark(context.Context) (bool, error) {
	useLight, err := w.store.getDWord(appsUseLightTheme)
	if err != nil {
		return false, err
	}
	return useLight == 0, nil
}

// IsLight implements port.ThemeCapability.
func (w *Windows) IsLight(ctx context.Context) (bool, error) {
	return theme.Invert(w.IsDark(ctx))
}

// SetDark implements port.ThemeCapability.
func (w *Windows) SetDark(ctx context.Context) (bool, error) {
	return w.set(ctx, true)
}

// SetLight implements port.ThemeCapability.
func (w *Windows) SetLight(ctx context.Context) (bool, error) {
	return w.set(ctx, false)
}

func (w *Windows) set(ctx context.Context, dark bool) (bool, error) {
	var value uint32 = 1
	if dark {
		value = 0
	}
	if err := w.store.setDWord(appsUseLightTheme, value); err != nil {
		return false, err
	}

	// Group policy can pin the value; report what the registry holds now.
	now, err := w.IsDark(ctx)
	if err != nil {
		return true, nil
	}
	return now == dark, nil
}
