package port

import (
	"context"
	"time"

	"github.com/bnema/isitdark/internal/domain/theme"
)

//go:generate mockgen -source=theme_query.go -destination=mocks/mock_theme_query.go -package=mocks

// ThemeResolver walks a fallback chain and reports which source answered.
type ThemeResolver interface {
	Resolve(ctx context.Context) (ColorSchemePreference, error)
}

// Transition is a scheduled switch between light and dark.
type Transition struct {
	At     time.Time
	ToDark bool
}

// ThemeSchedule exposes the state of the time-based fallback.
type ThemeSchedule interface {
	// Mode returns the override state.
	Mode() theme.Mode
	// IsGeoAware reports whether boundaries come from sunrise/sunset.
	IsGeoAware() bool
	// Boundaries returns the stored light and dark times of day.
	Boundaries() (light, dark theme.TimeOfDay)
	// NextTransition returns the first boundary after now.
	// ok is false when no switch is scheduled.
	NextTransition() (next Transition, ok bool, err error)
}
