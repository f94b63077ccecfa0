// nav/greatcircle_test.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	gomath "math"
	"testing"

	"github.com/mmp/aeromath/math"
	"github.com/mmp/aeromath/rand"
)

func TestHaversineNM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
	}{
		{"one degree of latitude", 0, 0, 1, 0, 60.04},
		{"one degree of longitude at the equator", 0, 0, 0, 1, 60.04},
		{"equator to pole", 0, 0, 90, 0, 5403.70},
		{"antipodes", 0, 0, 0, 180, 10807.39},
		{"antipodes off the equator", 45, 10, -45, 190, 10807.39},
		{"coincident", 37.62, -122.38, 37.62, -122.38, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := HaversineNM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(d-tt.expected) > 0.01 {
				t.Errorf("HaversineNM(%v, %v, %v, %v) = %v, expected %v",
					tt.lat1, tt.lon1, tt.lat2, tt.lon2, d, tt.expected)
			}
		})
	}

	// Antipodal pairs sit half the circumference apart at any latitude.
	half := EarthRadiusNM * gomath.Pi
	for _, lat := range []float64{30, 60, 89.988999} {
		d := HaversineNM(lat, 10, -lat, 190)
		if gomath.IsNaN(d) || math.Abs(d-half) > 0.01 {
			t.Errorf("HaversineNM(%v, 10, %v, 190) = %v, expected %v", lat, -lat, d, half)
		}
	}

	// Distance is symmetric and never negative.
	r := rand.Make()
	for i := 0; i < 100; i++ {
		lat1, lon1 := -90+180*r.Float64(), -180+360*r.Float64()
		lat2, lon2 := -90+180*r.Float64(), -180+360*r.Float64()
		d1 := HaversineNM(lat1, lon1, lat2, lon2)
		d2 := HaversineNM(lat2, lon2, lat1, lon1)
		if gomath.IsNaN(d1) || d1 < 0 {
			t.Errorf("HaversineNM(%v, %v, %v, %v) = %v", lat1, lon1, lat2, lon2, d1)
		}
		if math.Abs(d1-d2) > 1e-9 {
			t.Errorf("asymmetric distance: %v vs %v", d1, d2)
		}
	}
}

func TestGreatCircleCourse(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
	}{
		{"due east along the equator", 0, 0, 0, 10, 90},
		{"due west along the equator", 0, 10, 0, 0, 270},
		{"due north", 0, 0, 10, 0, 0},
		{"due south", 10, 0, 0, 0, 180},
		{"northeast quadrant", 0, 0, 10, 10, 44.56},
		{"southwest quadrant", 10, 10, 0, 0, 225.44},
		{"coincident", 40.64, -73.78, 40.64, -73.78, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GreatCircleCourse(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(c-tt.expected) > 0.1 {
				t.Errorf("GreatCircleCourse(%v, %v, %v, %v) = %v, expected %v",
					tt.lat1, tt.lon1, tt.lat2, tt.lon2, c, tt.expected)
			}
		})
	}

	// Courses always normalize into [0,360).
	r := rand.Make()
	for i := 0; i < 100; i++ {
		lat1, lon1 := -80+160*r.Float64(), -180+360*r.Float64()
		lat2, lon2 := -80+160*r.Float64(), -180+360*r.Float64()
		c := GreatCircleCourse(lat1, lon1, lat2, lon2)
		if c < 0 || c >= 360 {
			t.Errorf("course %v outside [0,360)", c)
		}
	}
}
