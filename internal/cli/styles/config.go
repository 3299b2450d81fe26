package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := ""
	if !exists {
		status = fmt.Sprintf("\n  %s %s",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("File not found, defaults are in effect."),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderGenerated renders the files written by gen-docs, with an optional hint.
func (r *ConfigRenderer) RenderGenerated(dir string, files []string, hint string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s Wrote %d files to %s\n",
		iconStyle.Render(IconCheck),
		len(files),
		r.theme.Subtle.Render(dir),
	)
	for _, f := range files {
		fmt.Fprintf(&b, "    - %s\n", f)
	}
	if hint != "" {
		fmt.Fprintf(&b, "  %s %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo),
			r.theme.Subtle.Render(hint),
		)
	}
	return b.String()
}
