// units/units.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package units

// Each conversion multiplies by a single factor and its inverse divides
// by the same factor, so converting a value there and back reproduces it
// to within floating point rounding.
const (
	mpsPerKnot    = 0.514444
	mpsPerMPH     = 0.44704
	metersPerFoot = 0.3048
	metersPerNM   = 1852.0
	smPerNM       = 1.15078
	litersPerGal  = 3.78541
	mphPerKnot    = mpsPerKnot / mpsPerMPH
)

// KnotsToMPS converts a speed in knots to meters per second.
func KnotsToMPS(kts float64) float64 { return kts * mpsPerKnot }

// MPSToKnots converts a speed in meters per second to knots.
func MPSToKnots(mps float64) float64 { return mps / mpsPerKnot }

// MPHToMPS converts a speed in statute miles per hour to meters per second.
func MPHToMPS(mph float64) float64 { return mph * mpsPerMPH }

// MPSToMPH converts a speed in meters per second to statute miles per hour.
func MPSToMPH(mps float64) float64 { return mps / mpsPerMPH }

// KnotsToMPH converts a speed in knots to statute miles per hour. The
// factor is derived from the knots->m/s and mph->m/s factors so that
// converting via m/s gives the same result.
func KnotsToMPH(kts float64) float64 { return kts * mphPerKnot }

// MPHToKnots converts a speed in statute miles per hour to knots.
func MPHToKnots(mph float64) float64 { return mph / mphPerKnot }

// FeetToMeters converts a length in feet to meters.
func FeetToMeters(ft float64) float64 { return ft * metersPerFoot }

// MetersToFeet converts a length in meters to feet.
func MetersToFeet(m float64) float64 { return m / metersPerFoot }

// NMToMeters converts a distance in nautical miles to meters.
func NMToMeters(nm float64) float64 { return nm * metersPerNM }

// MetersToNM converts a distance in meters to nautical miles.
func MetersToNM(m float64) float64 { return m / metersPerNM }

// NMToSM converts a distance in nautical miles to statute miles.
func NMToSM(nm float64) float64 { return nm * smPerNM }

// SMToNM converts a distance in statute miles to nautical miles.
func SMToNM(sm float64) float64 { return sm / smPerNM }

// GallonsToLiters converts a volume in US gallons to liters.
func GallonsToLiters(gal float64) float64 { return gal * litersPerGal }

// LitersToGallons converts a volume in liters to US gallons.
func LitersToGallons(l float64) float64 { return l / litersPerGal }

// CelsiusToKelvin converts a temperature in degrees Celsius to Kelvin.
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }

// KelvinToCelsius converts a temperature in Kelvin to degrees Celsius.
func KelvinToCelsius(k float64) float64 { return k - 273.15 }
