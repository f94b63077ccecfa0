// atmos/atmos.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"errors"
	"fmt"
	gomath "math"
)

// International Standard Atmosphere constants. All altitudes in this
// package are geometric meters above mean sea level.
const (
	SeaLevelTemperature = 288.15  // K
	SeaLevelPressure    = 101325  // Pa
	SeaLevelDensity     = 1.225   // kg/m^3
	LapseRate           = 0.0065  // K/m through the troposphere
	GasConstant         = 287.05  // J/(kg K), specific gas constant for dry air
	Gravity             = 9.80665 // m/s^2
	TropopauseAltitude  = 11000   // m
)

// TropopauseTemperature is the constant temperature of the isothermal
// layer above the tropopause (216.65 K).
const TropopauseTemperature = SeaLevelTemperature - LapseRate*TropopauseAltitude

// Exponent g/(R L) of the barometric formula in the troposphere.
const pressureExponent = Gravity / (GasConstant * LapseRate)

// Pressure at the tropopause, evaluated with the troposphere formula at
// exactly TropopauseAltitude so the two model layers agree at their
// boundary.
var tropopausePressure = SeaLevelPressure * gomath.Pow(1-LapseRate*TropopauseAltitude/SeaLevelTemperature, pressureExponent)

// ErrInvalidInput is returned when an argument is outside the domain the
// atmosphere model is defined over.
var ErrInvalidInput = errors.New("Invalid input")

// The unexported evaluators assume alt >= 0; the exported functions
// validate and then delegate to them.

func temperatureAt(alt float64) float64 {
	if alt > TropopauseAltitude {
		return TropopauseTemperature
	}
	return SeaLevelTemperature - LapseRate*alt
}

func pressureAt(alt float64) float64 {
	if alt <= TropopauseAltitude {
		// P = P0 * (1 - L h / T0)^(g / (R L))
		return SeaLevelPressure * gomath.Pow(1-LapseRate*alt/SeaLevelTemperature, pressureExponent)
	}
	// Isothermal above the tropopause: exponential decay from the
	// boundary pressure.
	return tropopausePressure * gomath.Exp(-Gravity*(alt-TropopauseAltitude)/(GasConstant*TropopauseTemperature))
}

func densityAt(alt float64) float64 {
	return pressureAt(alt) / (GasConstant * temperatureAt(alt))
}

func checkAltitude(alt float64) error {
	if alt < 0 {
		return fmt.Errorf("%w: altitude %g m is below sea level", ErrInvalidInput, alt)
	}
	return nil
}

// TemperatureAtAltitude returns the ISA temperature in Kelvin at the
// given altitude in meters. Temperature decreases linearly through the
// troposphere and holds at TropopauseTemperature above it. Altitudes
// below sea level are rejected.
func TemperatureAtAltitude(alt float64) (float64, error) {
	if err := checkAltitude(alt); err != nil {
		return 0, err
	}
	return temperatureAt(alt), nil
}

// PressureAtAltitude returns the ISA static pressure in Pascals at the
// given altitude in meters, using the barometric formula through the
// troposphere and an isothermal layer above the tropopause. Altitudes
// below sea level are rejected.
func PressureAtAltitude(alt float64) (float64, error) {
	if err := checkAltitude(alt); err != nil {
		return 0, err
	}
	return pressureAt(alt), nil
}

// AirDensityAtAltitude returns the ISA air density in kg/m^3 at the
// given altitude in meters, from the ideal gas law applied to the
// modeled pressure and temperature. Altitudes below sea level are
// rejected.
func AirDensityAtAltitude(alt float64) (float64, error) {
	if err := checkAltitude(alt); err != nil {
		return 0, err
	}
	return densityAt(alt), nil
}

// DensityRatioAtAltitude returns the ratio of air density at the given
// altitude in meters to the density at sea level.
func DensityRatioAtAltitude(alt float64) (float64, error) {
	if err := checkAltitude(alt); err != nil {
		return 0, err
	}
	return densityAt(alt) / densityAt(0), nil
}

// Rule of thumb: density altitude rises 120 feet for each degree
// Celsius the outside air temperature sits above the ISA temperature.
const densityAltitudePerDegC = 36.576 // meters

// DensityAltitude returns the density altitude in meters for the given
// pressure altitude in meters and outside air temperature in Celsius.
func DensityAltitude(pressureAlt, oatC float64) (float64, error) {
	if err := checkAltitude(pressureAlt); err != nil {
		return 0, err
	}
	isaC := temperatureAt(pressureAlt) - 273.15 // K -> C
	return pressureAlt + densityAltitudePerDegC*(oatC-isaC), nil
}
