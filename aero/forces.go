// aero/forces.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aero

import (
	"errors"
	"fmt"

	"github.com/mmp/aeromath/math"
)

// ErrInvalidInput is returned when an argument is outside the domain of
// the function being evaluated.
var ErrInvalidInput = errors.New("Invalid input")

// DynamicPressure returns q = 1/2 rho V^2 in Pascals for the given air
// density in kg/m^3 and speed in m/s.
func DynamicPressure(density, speed float64) float64 {
	return 0.5 * density * math.Sqr(speed)
}

// Lift returns the lift force in Newtons for the given air density in
// kg/m^3, speed in m/s, reference area in m^2, and lift coefficient.
func Lift(density, speed, area, cl float64) float64 {
	return DynamicPressure(density, speed) * area * cl
}

// Drag returns the drag force in Newtons for the given air density in
// kg/m^3, speed in m/s, reference area in m^2, and drag coefficient.
func Drag(density, speed, area, cd float64) float64 {
	return DynamicPressure(density, speed) * area * cd
}

// LiftToDragRatio returns lift divided by drag. Zero drag has no finite
// ratio and is reported as an error rather than an infinity.
func LiftToDragRatio(lift, drag float64) (float64, error) {
	if drag == 0 {
		return 0, fmt.Errorf("%w: zero drag", ErrInvalidInput)
	}
	return lift / drag, nil
}
