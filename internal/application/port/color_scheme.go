package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=color_scheme.go -destination=mocks/mock_color_scheme.go -package=mocks

// ColorSchemePreference represents a resolved dark/light answer.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is in effect.
	PrefersDark bool

	// Source identifies which link of the fallback chain answered.
	Source string

	// Fallback holds the primary source's failure when a fallback answered.
	// Nil when the primary source answered.
	Fallback error
}

// ThemeCapability is implemented by every theme source: native platform
// readers/writers and the time-based synthetic source.
// All failures are reported as *theme.Error.
type ThemeCapability interface {
	// IsDark reports whether the theme is currently dark. It has no side effects.
	IsDark(ctx context.Context) (bool, error)

	// IsLight is the negation of IsDark unless the source has a direct check.
	// An IsDark failure is returned unchanged.
	IsLight(ctx context.Context) (bool, error)

	// SetDark switches the theme to dark.
	// Returns whether dark is in effect afterwards, when the source can tell cheaply,
	// otherwise echoes the request.
	SetDark(ctx context.Context) (bool, error)

	// SetLight switches the theme to light, with the same result semantics as SetDark.
	SetLight(ctx context.Context) (bool, error)
}

// NamedSource is optionally implemented by capabilities that can name themselves
// in a ColorSchemePreference.
type NamedSource interface {
	Name() string
}

// SunTimes holds the sunrise and sunset instants for one day.
// When the sun never crosses the horizon that day, Rise and Set are zero,
// NoCrossing is set and DarkAllDay tells polar night from polar day.
type SunTimes struct {
	Rise time.Time
	Set  time.Time

	NoCrossing bool
	DarkAllDay bool
}

// SunCalculator computes sunrise and sunset for a date at a location.
// Elevation is the observer's height above sea level in meters.
type SunCalculator interface {
	Calculate(date time.Time, latitude, longitude, elevation float64) (SunTimes, error)
}
