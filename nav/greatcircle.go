// nav/greatcircle.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	gomath "math"

	"github.com/mmp/aeromath/math"
)

// EarthRadiusNM is the mean radius of the earth in nautical miles.
const EarthRadiusNM = 3440.1

// HaversineNM returns the great-circle distance in nautical miles
// between two points given as degrees of latitude and longitude.
func HaversineNM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := math.Radians(lat1), math.Radians(lat2)
	dphi := math.Radians(lat2 - lat1)
	dlambda := math.Radians(lon2 - lon1)

	// Clamp to keep both roots real; rounding pushes the sum a few
	// ulps past 1 for antipodal points.
	a := math.Clamp(math.Sqr(gomath.Sin(dphi/2))+
		gomath.Cos(phi1)*gomath.Cos(phi2)*math.Sqr(gomath.Sin(dlambda/2)), 0, 1)
	return EarthRadiusNM * 2 * gomath.Atan2(gomath.Sqrt(a), gomath.Sqrt(1-a))
}

// GreatCircleCourse returns the initial true course in degrees from the
// first point to the second, both given as degrees of latitude and
// longitude. The course between coincident points is indeterminate and
// reported as 0.
func GreatCircleCourse(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := math.Radians(lat1), math.Radians(lat2)
	dlambda := math.Radians(lon2 - lon1)

	y := gomath.Sin(dlambda) * gomath.Cos(phi2)
	x := gomath.Cos(phi1)*gomath.Sin(phi2) - gomath.Sin(phi1)*gomath.Cos(phi2)*gomath.Cos(dlambda)
	if x == 0 && y == 0 {
		return 0
	}
	return math.NormalizeHeading(math.Degrees(gomath.Atan2(y, x)))
}
