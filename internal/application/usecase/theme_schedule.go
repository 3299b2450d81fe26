package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/domain/theme"
	"github.com/bnema/isitdark/internal/logging"
)

// ErrNoSchedule is returned when the time-based fallback is disabled.
var ErrNoSchedule = errors.New("time fallback is disabled")

// ThemeScheduleUseCase describes the time-based fallback and its next switch.
type ThemeScheduleUseCase struct {
	schedule port.ThemeSchedule
}

// NewThemeScheduleUseCase creates a new use case. schedule may be nil.
func NewThemeScheduleUseCase(schedule port.ThemeSchedule) *ThemeScheduleUseCase {
	return &ThemeScheduleUseCase{schedule: schedule}
}

// ThemeScheduleInput contains options for the schedule report.
type ThemeScheduleInput struct{}

// ThemeScheduleOutput describes the fallback state.
type ThemeScheduleOutput struct {
	Mode     theme.Mode
	GeoAware bool
	Light    theme.TimeOfDay
	Dark     theme.TimeOfDay
	// Next is nil when no switch is scheduled.
	Next *port.Transition
}

// Execute reports the schedule.
func (uc *ThemeScheduleUseCase) Execute(ctx context.Context, _ ThemeScheduleInput) (*ThemeScheduleOutput, error) {
	if uc.schedule == nil {
		return nil, ErrNoSchedule
	}
	ctx = logging.WithComponent(ctx, "theme-schedule")
	log := logging.FromContext(ctx)

	light, dark := uc.schedule.Boundaries()
	out := &ThemeScheduleOutput{
		Mode:     uc.schedule.Mode(),
		GeoAware: uc.schedule.IsGeoAware(),
		Light:    light,
		Dark:     dark,
	}

	next, ok, err := uc.schedule.NextTransition()
	if err != nil {
		return nil, fmt.Errorf("next transition: %w", err)
	}
	if ok {
		out.Next = &next
	}

	log.Debug().
		Stringer("mode", out.Mode).
		Bool("geo_aware", out.GeoAware).
		Bool("scheduled", ok).
		Msg("schedule computed")
	return out, nil
}
