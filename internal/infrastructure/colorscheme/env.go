package colorscheme

import (
	"strings"
)

const envGTKTheme = "GTK_THEME"

// detectGTKTheme interprets a GTK_THEME value such as "Adwaita:dark".
// Returns (_, false) when the variable is unset.
func detectGTKTheme(value string) (prefersDark, ok bool) {
	if value == "" {
		return false, false
	}

	// GTK applies the value verbatim, so a name or variant containing "dark"
	// is what the user actually sees.
	prefersDark = strings.Contains(strings.ToLower(value), "dark")
	return prefersDark, true
}
