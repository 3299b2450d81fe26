package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ReportRenderer renders theme answers and the fallback schedule.
type ReportRenderer struct {
	theme *Theme
}

// NewReportRenderer creates a new report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme}
}

// ThemeReport is a resolved theme answer.
type ThemeReport struct {
	Dark     bool
	Source   string
	FellBack bool
}

// ScheduleReport describes the time-based fallback.
type ScheduleReport struct {
	Mode     string
	GeoAware bool
	Light    string
	Dark     string

	HasNext    bool
	Next       time.Time
	NextToDark bool
}

// RenderTheme renders a one-line theme answer with its source.
func (r *ReportRenderer) RenderTheme(report ThemeReport) string {
	sideStyle := r.theme.SideStyle(report.Dark)
	keyStyle := r.theme.Subtle

	source := keyStyle.Render("via " + report.Source)
	if report.FellBack {
		source = r.theme.WarningStyle.Render("via " + report.Source + " (fallback)")
	}

	return fmt.Sprintf("%s %s %s",
		sideStyle.Render(SideIcon(report.Dark)),
		sideStyle.Render(SideName(report.Dark)),
		source,
	)
}

// RenderSwitched renders the outcome of a theme switch.
func (r *ReportRenderer) RenderSwitched(dark, applied bool) string {
	if !applied {
		return fmt.Sprintf("%s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.WarningStyle.Render("requested "+SideName(dark)+" but the desktop reports otherwise"),
		)
	}
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("switched to"),
		r.theme.SideStyle(dark).Render(SideName(dark)),
	)
}

// RenderSchedule renders the fallback boundaries and the next switch relative to now.
func (r *ReportRenderer) RenderSchedule(report ScheduleReport, now time.Time) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	kind := "fixed schedule"
	if report.GeoAware {
		kind = "sunrise/sunset"
	}

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGlobe), keyStyle.Render("Boundaries"), valStyle.Render(kind)),
		fmt.Sprintf("%s %s %s", r.theme.SideStyle(false).Render(IconSun), keyStyle.Render("Light from"), valStyle.Render(report.Light)),
		fmt.Sprintf("%s %s %s", r.theme.SideStyle(true).Render(IconMoon), keyStyle.Render("Dark from"), valStyle.Render(report.Dark)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconLock), keyStyle.Render("Mode"), valStyle.Render(report.Mode)),
	}

	if report.HasNext {
		lines = append(lines, fmt.Sprintf("%s %s %s %s %s",
			iconStyle.Render(IconClock),
			keyStyle.Render("Next"),
			r.theme.SideStyle(report.NextToDark).Render(SideName(report.NextToDark)),
			valStyle.Render(report.Next.Format("15:04")),
			keyStyle.Render("("+humanize.RelTime(report.Next, now, "ago", "from now")+")"),
		))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s",
			iconStyle.Render(IconClock),
			keyStyle.Render("No switch scheduled"),
		))
	}

	return r.theme.Box.Render(strings.Join(lines, "\n"))
}
