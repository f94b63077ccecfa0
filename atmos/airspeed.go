// atmos/airspeed.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"fmt"
	gomath "math"
)

// Ratio of specific heats for dry air.
const heatCapacityRatio = 1.4

// IASToTAS converts an indicated airspeed to true airspeed at the given
// altitude in meters. The speed passes through in whatever unit it was
// given in.
func IASToTAS(ias, alt float64) (float64, error) {
	ratio, err := DensityRatioAtAltitude(alt)
	if err != nil {
		return 0, err
	}
	return ias / gomath.Sqrt(ratio), nil
}

// TASToIAS converts a true airspeed to indicated airspeed at the given
// altitude in meters.
func TASToIAS(tas, alt float64) (float64, error) {
	ratio, err := DensityRatioAtAltitude(alt)
	if err != nil {
		return 0, err
	}
	return tas * gomath.Sqrt(ratio), nil
}

// SpeedOfSound returns the speed of sound in m/s in dry air at the
// given temperature in Kelvin.
func SpeedOfSound(tempK float64) (float64, error) {
	if tempK < 0 {
		return 0, fmt.Errorf("%w: temperature %g K is below absolute zero", ErrInvalidInput, tempK)
	}
	return gomath.Sqrt(heatCapacityRatio * GasConstant * tempK), nil
}

// MachNumber returns the Mach number for the given speed in m/s at the
// given temperature in Kelvin.
func MachNumber(speed, tempK float64) (float64, error) {
	if tempK <= 0 {
		return 0, fmt.Errorf("%w: no speed of sound at %g K", ErrInvalidInput, tempK)
	}
	return speed / gomath.Sqrt(heatCapacityRatio*GasConstant*tempK), nil
}
