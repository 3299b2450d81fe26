package colorscheme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/domain/theme"
)

var _ port.ThemeCapability = (*Linux)(nil)

const (
	cmdGetColorScheme = "gsettings get org.gnome.desktop.interface color-scheme"
	cmdGetGTKTheme    = "gsettings get org.gnome.desktop.interface gtk-theme"
	cmdSetDark        = "gsettings set org.gnome.desktop.interface color-scheme prefer-dark"
	cmdSetLight       = "gsettings set org.gnome.desktop.interface color-scheme prefer-light"
)

type fakePortal struct {
	scheme uint32
	err    error
}

func (p fakePortal) ReadColorScheme(context.Context) (uint32, error) {
	return p.scheme, p.err
}

func newTestLinux(env string, portal colorSchemeReader, runner *fakeRunner) *Linux {
	return &Linux{
		getenv: func(key string) string {
			if key == envGTKTheme {
				return env
			}
			return ""
		},
		portal:    portal,
		gsettings: gsettings{run: runner.run},
	}
}

func TestDetectGTKTheme(t *testing.T) {
	tests := []struct {
		value    string
		wantDark bool
		wantOK   bool
	}{
		{value: "", wantDark: false, wantOK: false},
		{value: "Adwaita:dark", wantDark: true, wantOK: true},
		{value: "Adwaita-Dark", wantDark: true, wantOK: true},
		{value: "Adwaita", wantDark: false, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			dark, ok := detectGTKTheme(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestLinux_IsDark(t *testing.T) {
	noPortal := fakePortal{err: errors.New("no session bus")}

	tests := []struct {
		name   string
		env    string
		portal colorSchemeReader
		runner *fakeRunner
		want   bool
	}{
		{
			name:   "GTK_THEME wins",
			env:    "Adwaita:dark",
			portal: fakePortal{scheme: portalPreferLight},
			runner: newFakeRunner(),
			want:   true,
		},
		{
			name:   "portal prefers dark",
			portal: fakePortal{scheme: portalPreferDark},
			runner: newFakeRunner(),
			want:   true,
		},
		{
			name:   "portal prefers light",
			portal: fakePortal{scheme: portalPreferLight},
			runner: newFakeRunner().on(cmdGetColorScheme, "'prefer-dark'\n", nil),
			want:   false,
		},
		{
			name:   "portal without preference defers to gsettings",
			portal: fakePortal{scheme: portalNoPreference},
			runner: newFakeRunner().on(cmdGetColorScheme, "'prefer-dark'\n", nil),
			want:   true,
		},
		{
			name:   "gsettings prefer-light",
			portal: noPortal,
			runner: newFakeRunner().on(cmdGetColorScheme, "'prefer-light'\n", nil),
			want:   false,
		},
		{
			name:   "gsettings default with dark gtk-theme",
			portal: noPortal,
			runner: newFakeRunner().
				on(cmdGetColorScheme, "'default'\n", nil).
				on(cmdGetGTKTheme, "'Adwaita-dark'\n", nil),
			want: true,
		},
		{
			name:   "gsettings default with light gtk-theme",
			portal: nil,
			runner: newFakeRunner().
				on(cmdGetColorScheme, "'default'\n", nil).
				on(cmdGetGTKTheme, "'Adwaita'\n", nil),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLinux(tt.env, tt.portal, tt.runner)

			got, err := l.IsDark(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			light, err := l.IsLight(context.Background())
			require.NoError(t, err)
			assert.Equal(t, !tt.want, light)
		})
	}
}

func TestLinux_IsDarkErrors(t *testing.T) {
	noPortal := fakePortal{err: errors.New("no session bus")}

	t.Run("gsettings missing", func(t *testing.T) {
		l := newTestLinux("", noPortal, newFakeRunner())
		_, err := l.IsDark(context.Background())
		assert.ErrorIs(t, err, theme.ErrIO)
	})

	t.Run("unknown color-scheme", func(t *testing.T) {
		l := newTestLinux("", noPortal, newFakeRunner().on(cmdGetColorScheme, "'sepia'\n", nil))
		_, err := l.IsDark(context.Background())
		assert.ErrorIs(t, err, theme.ErrDecode)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		l := newTestLinux("", noPortal, newFakeRunner().on(cmdGetColorScheme, "\xff\xfe", nil))
		_, err := l.IsDark(context.Background())
		assert.ErrorIs(t, err, theme.ErrDecode)
	})

	t.Run("IsLight propagates", func(t *testing.T) {
		l := newTestLinux("", noPortal, newFakeRunner())
		_, err := l.IsLight(context.Background())
		assert.ErrorIs(t, err, theme.ErrIO)
	})
}

func TestLinux_Set(t *testing.T) {
	noPortal := fakePortal{err: errors.New("no session bus")}

	t.Run("set dark reports the new state", func(t *testing.T) {
		runner := newFakeRunner().
			on(cmdSetDark, "", nil).
			on(cmdGetColorScheme, "'prefer-dark'\n", nil)
		l := newTestLinux("", noPortal, runner)

		ok, err := l.SetDark(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, runner.called(cmdSetDark))
	})

	t.Run("GTK_THEME overrides the write", func(t *testing.T) {
		runner := newFakeRunner().on(cmdSetLight, "", nil)
		l := newTestLinux("Adwaita:dark", noPortal, runner)

		ok, err := l.SetLight(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unreadable after write echoes success", func(t *testing.T) {
		runner := newFakeRunner().on(cmdSetLight, "", nil)
		l := newTestLinux("", noPortal, runner)

		ok, err := l.SetLight(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("write failure", func(t *testing.T) {
		l := newTestLinux("", noPortal, newFakeRunner())

		ok, err := l.SetDark(context.Background())
		assert.False(t, ok)
		assert.ErrorIs(t, err, theme.ErrIO)
	})
}
