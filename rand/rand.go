// rand/rand.go
// Copyright(c) 2024-2026 aeromath contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

type Rand struct {
	r *pcg.PCG32
}

// Make returns a generator with the default seed; the sequence it yields
// is the same from one run to the next.
func Make() Rand {
	return Rand{r: pcg.NewPCG32()}
}

// New returns a generator seeded with the given value.
func New(seed uint64) Rand {
	r := Make()
	r.Seed(seed)
	return r
}

func (r *Rand) Seed(s uint64) {
	r.r.Seed(s, 0xda3e39cb94b95bdb)
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// Float64 returns a uniform value in [0,1), composing two draws from the
// underlying 32-bit generator to fill the 53-bit significand.
func (r *Rand) Float64() float64 {
	u := uint64(r.r.Random())<<32 | uint64(r.r.Random())
	return float64(u>>11) / (1 << 53)
}
