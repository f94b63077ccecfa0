// perf/turn.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"fmt"
	gomath "math"

	"github.com/mmp/aeromath/math"
)

// TurnRadius returns the radius in meters of a coordinated level turn
// at the given true airspeed in m/s and bank angle in degrees. Wings
// level (bank 0 mod 180) gives no turn and is an error.
func TurnRadius(speed, bankDeg float64) (float64, error) {
	// Check in degrees; the tangent of the converted angle comes out
	// near, but not exactly on, zero for level flight.
	if gomath.Mod(bankDeg, 180) == 0 {
		return 0, fmt.Errorf("%w: bank of %g degrees does not turn", ErrInvalidInput, bankDeg)
	}
	return math.Sqr(speed) / (gravity * gomath.Tan(math.Radians(bankDeg))), nil
}

// BankAngle returns the bank angle in degrees for a coordinated level
// turn of the given radius in meters at the given true airspeed in m/s.
func BankAngle(speed, radius float64) (float64, error) {
	if radius == 0 {
		return 0, fmt.Errorf("%w: zero turn radius", ErrInvalidInput)
	}
	return math.Degrees(gomath.Atan(math.Sqr(speed) / (gravity * radius))), nil
}

// TurnRate returns the rate of heading change in degrees per second in
// a coordinated level turn at the given true airspeed in m/s and bank
// angle in degrees.
func TurnRate(speed, bankDeg float64) (float64, error) {
	if speed == 0 {
		return 0, fmt.Errorf("%w: zero speed", ErrInvalidInput)
	}
	return math.Degrees(gravity * gomath.Tan(math.Radians(bankDeg)) / speed), nil
}
