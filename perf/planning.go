// perf/planning.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"fmt"
)

// TimeEnroute returns the flight time in hours to cover the given
// distance in nautical miles at the given ground speed in knots.
func TimeEnroute(distanceNM, groundSpeedKts float64) (float64, error) {
	if groundSpeedKts == 0 {
		return 0, fmt.Errorf("%w: zero ground speed", ErrInvalidInput)
	}
	return distanceNM / groundSpeedKts, nil
}

// FuelRequired returns the fuel burned at the given hourly rate over
// the given time in hours; the fuel unit follows the rate's.
func FuelRequired(burnRate, hours float64) float64 {
	return burnRate * hours
}

// Endurance returns how many hours the usable fuel beyond the reserve
// lasts at the given hourly burn rate. A negative result means the
// reserve exceeds the fuel on board.
func Endurance(usableFuel, reserve, burnRate float64) (float64, error) {
	if burnRate == 0 {
		return 0, fmt.Errorf("%w: zero fuel burn rate", ErrInvalidInput)
	}
	return (usableFuel - reserve) / burnRate, nil
}

// Range returns the distance in nautical miles covered in the given
// time in hours at the given ground speed in knots.
func Range(enduranceHours, groundSpeedKts float64) float64 {
	return enduranceHours * groundSpeedKts
}
