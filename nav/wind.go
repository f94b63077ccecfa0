// nav/wind.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/mmp/aeromath/math"
)

// ErrInvalidInput is returned when an argument is outside the domain of
// the function being evaluated.
var ErrInvalidInput = errors.New("Invalid input")

// WindSolution is a solved wind triangle for a desired course: the crab
// angle that holds it, the resulting true heading, and the speed made
// good over the ground.
type WindSolution struct {
	CorrectionAngle float64 // degrees, positive for a crab to the right
	Heading         float64 // degrees true, in [0,360)
	GroundSpeed     float64 // knots
}

// WindCorrectionAngle returns the crab angle in degrees that holds the
// given course in degrees true at the given true airspeed in knots,
// with wind given by the direction it blows from in degrees true and
// its speed in knots. Positive angles crab to the right. There is no
// solution when the crosswind component exceeds the airspeed.
func WindCorrectionAngle(courseDeg, tasKts, windDirDeg, windSpeedKts float64) (float64, error) {
	if tasKts <= 0 {
		return 0, fmt.Errorf("%w: true airspeed must be positive", ErrInvalidInput)
	}
	x := windSpeedKts * gomath.Sin(math.Radians(windDirDeg-courseDeg)) / tasKts
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("%w: crosswind component exceeds true airspeed", ErrInvalidInput)
	}
	return math.Degrees(gomath.Asin(x)), nil
}

// WindTriangle solves the full wind triangle for the given course.
func WindTriangle(courseDeg, tasKts, windDirDeg, windSpeedKts float64) (WindSolution, error) {
	wca, err := WindCorrectionAngle(courseDeg, tasKts, windDirDeg, windSpeedKts)
	if err != nil {
		return WindSolution{}, err
	}

	// Law of cosines across the angle between the air vector and the
	// wind vector. Floor at zero: the argument rounds slightly negative
	// when a dead-ahead wind sits within an ulp of the airspeed.
	rel := math.Radians(windDirDeg - courseDeg - wca)
	gs := gomath.Sqrt(max(0, math.Sqr(tasKts)+math.Sqr(windSpeedKts)-
		2*tasKts*windSpeedKts*gomath.Cos(rel)))

	return WindSolution{
		CorrectionAngle: wca,
		Heading:         math.NormalizeHeading(courseDeg + wca),
		GroundSpeed:     gs,
	}, nil
}

// GroundSpeed returns the speed over the ground in knots for an
// aircraft crabbing to hold the given course.
func GroundSpeed(courseDeg, tasKts, windDirDeg, windSpeedKts float64) (float64, error) {
	sol, err := WindTriangle(courseDeg, tasKts, windDirDeg, windSpeedKts)
	if err != nil {
		return 0, err
	}
	return sol.GroundSpeed, nil
}

// HeadwindComponent returns the headwind component in knots of the
// given wind for the given heading in degrees. Tailwinds come back
// negative.
func HeadwindComponent(headingDeg, windDirDeg, windSpeedKts float64) float64 {
	return windSpeedKts * gomath.Cos(math.Radians(windDirDeg-headingDeg))
}

// CrosswindComponent returns the crosswind component in knots of the
// given wind for the given heading in degrees, positive for wind from
// the right.
func CrosswindComponent(headingDeg, windDirDeg, windSpeedKts float64) float64 {
	return windSpeedKts * gomath.Sin(math.Radians(windDirDeg-headingDeg))
}
