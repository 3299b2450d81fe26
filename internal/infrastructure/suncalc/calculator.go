// Package suncalc computes sunrise and sunset instants for the solar theme fallback.
package suncalc

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/bnema/isitdark/internal/application/port"
)

const (
	// horizonAltitude is the sun's center altitude at apparent sunrise/sunset:
	// atmospheric refraction plus the solar disc radius.
	horizonAltitude = -0.833
)

// Calculator implements port.SunCalculator.
type Calculator struct{}

// New creates a new solar position calculator.
func New() *Calculator {
	return &Calculator{}
}

// Calculate implements port.SunCalculator.
// Returned instants are in UTC. Polar day and polar night have no crossing;
// the sun's elevation at solar noon decides which one the date is.
func (*Calculator) Calculate(date time.Time, latitude, longitude, elevation float64) (port.SunTimes, error) {
	altitude := horizonAltitude - horizonDip(elevation)
	y, m, d := date.Date()
	rise, set := sunrise.TimeOfElevation(latitude, longitude, altitude, y, m, d)
	if rise.IsZero() || set.IsZero() {
		noon := sunrise.JulianDayToTime(sunrise.MeanSolarNoon(longitude, y, m, d))
		return port.SunTimes{
			NoCrossing: true,
			DarkAllDay: sunrise.Elevation(latitude, longitude, noon) < altitude,
		}, nil
	}
	return port.SunTimes{Rise: rise, Set: set}, nil
}

// horizonDip returns how far below the astronomical horizon, in degrees, an
// observer at elevation meters sees the horizon.
func horizonDip(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	return 2.076 * math.Sqrt(elevation) / 60
}
