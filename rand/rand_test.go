// rand/rand_test.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"testing"
)

func TestIntn(t *testing.T) {
	r := Make()
	var counts [5]int
	for i := 0; i < 10000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) returned %d, out of range", v)
		}
		counts[v]++
	}

	slop := 200
	for i, c := range counts {
		if c < 2000-slop || c > 2000+slop {
			t.Errorf("Didn't find roughly 2000 samples for %d. Counts: %+v", i, counts)
		}
	}
}

func TestFloat64(t *testing.T) {
	r := Make()
	sum := 0.0
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 returned %g, out of [0,1)", v)
		}
		sum += v
	}

	if mean := sum / 10000; mean < 0.48 || mean > 0.52 {
		t.Errorf("Expected mean near 0.5, got %g", mean)
	}
}

func TestSeededSequences(t *testing.T) {
	a, b := New(12345), New(12345)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint32(), b.Uint32(); av != bv {
			t.Fatalf("same-seed generators diverged at draw %d: %d vs %d", i, av, bv)
		}
	}

	c, d := New(1), New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if c.Uint32() == d.Uint32() {
			same++
		}
	}
	if same > 5 {
		t.Errorf("generators with different seeds matched on %d of 100 draws", same)
	}
}
