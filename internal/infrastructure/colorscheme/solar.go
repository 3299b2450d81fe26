package colorscheme

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/domain/theme"
	"github.com/bnema/isitdark/internal/infrastructure/suncalc"
)

const sourceSolar = "solar"

// defaultBoundary is used for both boundaries when nothing better is configured.
// Equal boundaries leave no night window, so the source reports light unless pinned.
var defaultBoundary = theme.NewTimeOfDay(8, 0, 0)

// SolarFallback is the time-based theme source. It knows when daytime begins
// (light) and nighttime begins (dark), either as fixed times of day or, when
// geo-aware, as sunrise and sunset recomputed for the current date.
//
// SolarFallback is not safe for concurrent use when SetDark/SetLight may race
// with reads; reads alone never mutate it.
type SolarFallback struct {
	light theme.TimeOfDay
	dark  theme.TimeOfDay

	longitude float64
	latitude  float64
	elevation float64

	mode theme.Mode
	calc port.SunCalculator
	now  func() time.Time
}

// SolarOption configures a SolarFallback.
type SolarOption func(*SolarFallback)

// WithClock replaces time.Now. The returned time's location is the local zone
// the boundaries are interpreted in.
func WithClock(now func() time.Time) SolarOption {
	return func(s *SolarFallback) {
		s.now = now
	}
}

// WithSunCalculator replaces the default solar position calculator.
func WithSunCalculator(calc port.SunCalculator) SolarOption {
	return func(s *SolarFallback) {
		s.calc = calc
	}
}

func newSolarFallback(opts []SolarOption) *SolarFallback {
	s := &SolarFallback{
		light: defaultBoundary,
		dark:  defaultBoundary,
		mode:  theme.ModeAuto,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.calc == nil {
		s.calc = suncalc.New()
	}
	return s
}

// NewSolarFallback creates a geo-aware fallback and computes today's sunrise
// and sunset immediately.
//
// All-zero coordinates mean "not geo-aware": no solar computation happens and
// both boundaries default to 08:00. A real observer at exactly 0°, 0°, 0 m
// cannot be expressed.
func NewSolarFallback(longitude, latitude, elevation float64, opts ...SolarOption) (*SolarFallback, error) {
	s := newSolarFallback(opts)
	s.longitude = longitude
	s.latitude = latitude
	s.elevation = elevation

	if !s.IsGeoAware() {
		return s, nil
	}

	times, err := s.boundariesOn(theme.Midnight(s.now()))
	if err != nil {
		return nil, fmt.Errorf("compute sun times: %w", err)
	}
	s.store(times)
	return s, nil
}

// NewFixedSolarFallback creates a fallback with fixed daily boundaries.
// Coordinates are zero, so no solar computation ever happens.
func NewFixedSolarFallback(light, dark theme.TimeOfDay, opts ...SolarOption) *SolarFallback {
	s := newSolarFallback(opts)
	s.light = light
	s.dark = dark
	return s
}

// DefaultSolarFallback returns the degenerate 08:00/08:00 fallback, which
// reports light unless pinned.
func DefaultSolarFallback(opts ...SolarOption) *SolarFallback {
	return NewFixedSolarFallback(defaultBoundary, defaultBoundary, opts...)
}

// Name implements port.NamedSource.
func (*SolarFallback) Name() string {
	return sourceSolar
}

// IsGeoAware reports whether any coordinate is non-zero.
func (s *SolarFallback) IsGeoAware() bool {
	return s.longitude != 0 || s.latitude != 0 || s.elevation != 0
}

// Mode returns the current override state.
func (s *SolarFallback) Mode() theme.Mode {
	return s.mode
}

// Boundaries returns the stored light and dark times of day.
func (s *SolarFallback) Boundaries() (light, dark theme.TimeOfDay) {
	return s.light, s.dark
}

// Recalc returns a copy whose boundaries are recomputed for today.
// Fixed boundaries are copied unchanged. The override mode is preserved.
func (s *SolarFallback) Recalc() (*SolarFallback, error) {
	next := *s
	if !s.IsGeoAware() {
		return &next, nil
	}

	times, err := s.boundariesOn(theme.Midnight(s.now()))
	if err != nil {
		return nil, fmt.Errorf("compute sun times: %w", err)
	}
	next.store(times)
	return &next, nil
}

// store keeps the time-of-day part of times. A day without a horizon crossing
// stores coinciding boundaries, which never prove daytime on their own.
func (s *SolarFallback) store(times port.SunTimes) {
	if times.NoCrossing {
		s.light, s.dark = 0, 0
		return
	}
	s.light = theme.TimeOfDayOf(times.Rise)
	s.dark = theme.TimeOfDayOf(times.Set)
}

// IsDark implements port.ThemeCapability.
//
// A pinned mode wins outright. Otherwise the stored boundaries may prove
// daytime, but night is only asserted against boundaries recomputed for the
// actual dates around now, since a night spans two calendar days. A date
// without sunrise or sunset is dark or light for the whole day.
func (s *SolarFallback) IsDark(context.Context) (bool, error) {
	if s.mode != theme.ModeAuto {
		return s.mode == theme.ModeDark, nil
	}

	now := s.now()
	tod := theme.TimeOfDayOf(now)
	if s.light < tod && tod < s.dark {
		return false, nil
	}

	today := theme.Midnight(now)
	times, err := s.boundariesOn(today)
	if err != nil {
		return false, err
	}
	if times.NoCrossing {
		return times.DarkAllDay, nil
	}

	for _, day := range []time.Time{today.AddDate(0, 0, -1), today} {
		start, end, err := s.nightFrom(day)
		if err != nil {
			return false, err
		}
		if start.Before(now) && now.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

// IsLight implements port.ThemeCapability.
func (s *SolarFallback) IsLight(ctx context.Context) (bool, error) {
	return theme.Invert(s.IsDark(ctx))
}

// SetDark implements port.ThemeCapability. It pins the source to dark.
func (s *SolarFallback) SetDark(context.Context) (bool, error) {
	s.mode = theme.ModeDark
	return true, nil
}

// SetLight implements port.ThemeCapability. It pins the source to light.
func (s *SolarFallback) SetLight(context.Context) (bool, error) {
	s.mode = theme.ModeLight
	return true, nil
}

// NextTransition implements port.ThemeSchedule. It returns the first boundary
// strictly after now; ok is false when the mode is pinned or the boundaries coincide.
func (s *SolarFallback) NextTransition() (next port.Transition, ok bool, err error) {
	if s.mode != theme.ModeAuto {
		return port.Transition{}, false, nil
	}

	now := s.now()
	today := theme.Midnight(now)
	for _, day := range []time.Time{today, today.AddDate(0, 0, 1)} {
		times, err := s.boundariesOn(day)
		if err != nil {
			return port.Transition{}, false, err
		}
		if times.NoCrossing {
			continue
		}
		if times.Rise.Equal(times.Set) {
			return port.Transition{}, false, nil
		}

		candidates := []port.Transition{{At: times.Rise}, {At: times.Set, ToDark: true}}
		if times.Set.Before(times.Rise) {
			candidates[0], candidates[1] = candidates[1], candidates[0]
		}
		for _, c := range candidates {
			if c.At.After(now) {
				return c, true, nil
			}
		}
	}
	return port.Transition{}, false, nil
}

// nightFrom returns the night window starting at day's dark boundary and
// ending at the first light boundary at or after it. A polar night starts
// at day's midnight; a polar day has an empty window.
func (s *SolarFallback) nightFrom(day time.Time) (start, end time.Time, err error) {
	times, err := s.boundariesOn(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	switch {
	case times.NoCrossing && !times.DarkAllDay:
		return day, day, nil
	case times.NoCrossing:
		start = day
	default:
		start, end = times.Set, times.Rise
		if !end.Before(start) {
			return start, end, nil
		}
	}

	next, err := s.boundariesOn(day.AddDate(0, 0, 1))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	switch {
	case !next.NoCrossing:
		end = next.Rise
	case next.DarkAllDay:
		end = day.AddDate(0, 0, 2)
	default:
		end = day.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// boundariesOn computes fresh boundaries for the calendar day of day, in day's location.
func (s *SolarFallback) boundariesOn(day time.Time) (port.SunTimes, error) {
	if !s.IsGeoAware() {
		return port.SunTimes{Rise: s.light.On(day), Set: s.dark.On(day)}, nil
	}

	times, err := s.calc.Calculate(day, s.latitude, s.longitude, s.elevation)
	if err != nil {
		return port.SunTimes{}, err
	}
	if times.NoCrossing {
		return times, nil
	}
	loc := day.Location()
	return port.SunTimes{Rise: times.Rise.In(loc), Set: times.Set.In(loc)}, nil
}
