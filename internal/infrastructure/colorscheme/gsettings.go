package colorscheme

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/isitdark/internal/domain/theme"
)

const (
	sourceGsettings = "gsettings"

	gsettingsSchema        = "org.gnome.desktop.interface"
	gsettingsColorScheme   = "color-scheme"
	gsettingsGTKTheme      = "gtk-theme"
	colorSchemePreferDark  = "prefer-dark"
	colorSchemePreferLight = "prefer-light"
	colorSchemeDefault     = "default"
)

// gsettings reads and writes the GNOME interface settings through the gsettings CLI.
type gsettings struct {
	run commandRunner
}

// get returns an unquoted gsettings value.
func (g gsettings) get(ctx context.Context, key string) (string, error) {
	output, err := g.run(ctx, "gsettings", "get", gsettingsSchema, key)
	if err != nil {
		return "", theme.IOError(sourceGsettings, "get "+key, err)
	}
	if !utf8.Valid(output) {
		return "", theme.DecodeError(sourceGsettings, "get "+key, fmt.Errorf("output is not valid UTF-8"))
	}

	// Output is like "'prefer-dark'\n", strip quotes and whitespace
	result := strings.TrimSpace(string(output))
	return strings.Trim(result, "'\""), nil
}

// isDark queries color-scheme and, when it is "default", falls back to the
// "-dark" suffix convention of the gtk-theme name.
func (g gsettings) isDark(ctx context.Context) (bool, error) {
	scheme, err := g.get(ctx, gsettingsColorScheme)
	if err != nil {
		return false, err
	}

	switch scheme {
	case colorSchemePreferDark:
		return true, nil
	case colorSchemePreferLight:
		return false, nil
	case colorSchemeDefault, "":
		// "default" defers to the theme name
	default:
		return false, theme.DecodeError(sourceGsettings, "get "+gsettingsColorScheme,
			fmt.Errorf("unknown color-scheme %q", scheme))
	}

	gtkTheme, err := g.get(ctx, gsettingsGTKTheme)
	if err != nil {
		return false, err
	}
	return strings.HasSuffix(strings.ToLower(gtkTheme), "-dark"), nil
}

func (g gsettings) setColorScheme(ctx context.Context, scheme string) error {
	if _, err := g.run(ctx, "gsettings", "set", gsettingsSchema, gsettingsColorScheme, scheme); err != nil {
		return theme.IOError(sourceGsettings, "set "+gsettingsColorScheme, err)
	}
	return nil
}
