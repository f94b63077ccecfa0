// math/heading.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// headings and directions

// NormalizeHeading reduces a heading to [0,360).
func NormalizeHeading(h float64) float64 {
	h = gomath.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func OppositeHeading(h float64) float64 {
	return NormalizeHeading(h + 180)
}

// HeadingDifference returns the minimum difference between two
// headings. (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float64, b float64) float64 {
	var d float64
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	d = NormalizeHeading(d)
	if d > 180 {
		d = 360 - d
	}
	return d
}
