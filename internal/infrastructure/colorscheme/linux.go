package colorscheme

import (
	"context"
	"os"

	"github.com/bnema/isitdark/internal/domain/theme"
)

const sourceLinux = "linux"

// Linux is the theme capability for Linux desktops.
//
// Reads consult, in order: the GTK_THEME environment variable, the
// xdg-desktop-portal color-scheme, and gsettings. Writes go through gsettings.
type Linux struct {
	getenv    func(string) string
	portal    colorSchemeReader
	gsettings gsettings
}

// NewLinux creates the Linux capability backed by the real environment,
// session bus and gsettings binary.
func NewLinux() *Linux {
	return &Linux{
		getenv:    os.Getenv,
		portal:    NewPortal(),
		gsettings: gsettings{run: execRunner},
	}
}

// Name implements port.NamedSource.
func (*Linux) Name() string {
	return sourceLinux
}

// IsDark implements port.ThemeCapability.
func (l *Linux) IsDark(ctx context.Context) (bool, error) {
	if prefersDark, ok := detectGTKTheme(l.getenv(envGTKTheme)); ok {
		return prefersDark, nil
	}

	if l.portal != nil {
		// Portal failures are expected without a session bus; gsettings decides then.
		if scheme, err := l.portal.ReadColorScheme(ctx); err == nil {
			switch scheme {
			case portalPreferDark:
				return true, nil
			case portalPreferLight:
				return false, nil
			}
		}
	}

	return l.gsettings.isDark(ctx)
}

// IsLight implements port.ThemeCapability.
func (l *Linux) IsLight(ctx context.Context) (bool, error) {
	return theme.Invert(l.IsDark(ctx))
}

// SetDark implements port.ThemeCapability.
func (l *Linux) SetDark(ctx context.Context) (bool, error) {
	return l.set(ctx, true)
}

// SetLight implements port.ThemeCapability.
func (l *Linux) SetLight(ctx context.Context) (bool, error) {
	return l.set(ctx, false)
}

func (l *Linux) set(ctx context.Context, dark bool) (bool, error) {
	scheme := colorSchemePreferLight
	if dark {
		scheme = colorSchemePreferDark
	}
	if err := l.gsettings.setColorScheme(ctx, scheme); err != nil {
		return false, err
	}

	// Report what the desktop now says; GTK_THEME can still override the write.
	now, err := l.IsDark(ctx)
	if err != nil {
		return true, nil
	}
	return now == dark, nil
}
