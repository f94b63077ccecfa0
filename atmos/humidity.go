// atmos/humidity.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	gomath "math"

	"github.com/mmp/aeromath/math"
)

// Magnus formula coefficients, over water and over ice.
func magnusCoefficients(tempC float64) (a, b float64) {
	if tempC > 0 {
		return 17.625, 243.04
	}
	return 21.875, 265.5
}

// RelativeHumidity returns the relative humidity percentage, in
// [0,100], for the given temperature and dewpoint in Celsius.
func RelativeHumidity(tempC, dewpointC float64) float64 {
	// Saturation vapor pressure at the dewpoint, neglecting the leading
	// 6.1094 factor which cancels in the division below.
	a, b := magnusCoefficients(dewpointC)
	vpDew := gomath.Exp(a * dewpointC / (b + dewpointC))

	// Saturation vapor pressure at the temperature.
	a, b = magnusCoefficients(tempC)
	vpTemp := gomath.Exp(a * tempC / (b + tempC))

	return math.Clamp(100*vpDew/vpTemp, 0, 100)
}
