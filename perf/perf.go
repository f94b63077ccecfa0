// perf/perf.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an argument is outside the domain of
// the function being evaluated.
var ErrInvalidInput = errors.New("Invalid input")

// Standard gravity, m/s^2.
const gravity = 9.80665

// ThrustToWeightRatio returns thrust divided by weight; both are in
// Newtons, so any consistent force unit works.
func ThrustToWeightRatio(thrust, weight float64) (float64, error) {
	if weight == 0 {
		return 0, fmt.Errorf("%w: zero weight", ErrInvalidInput)
	}
	return thrust / weight, nil
}

// RateOfClimb returns the steady climb rate in m/s for the given excess
// power in Watts and aircraft weight in Newtons.
func RateOfClimb(excessPower, weight float64) (float64, error) {
	if weight == 0 {
		return 0, fmt.Errorf("%w: zero weight", ErrInvalidInput)
	}
	return excessPower / weight, nil
}
