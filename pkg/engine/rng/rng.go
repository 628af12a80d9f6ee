// Package rng provides the random source used by feature construction and
// the generators. Everything that draws random numbers takes a Source so a
// seeded or scripted one can be injected.
package rng

import (
	"math/rand"
	"time"
)

// Source draws uniform random numbers
type Source interface {
	// UniformInt returns an integer in [min, max). It returns min if max <= min.
	UniformInt(min, max int) int
	// UniformFloat returns a float in [0, 1)
	UniformFloat() float64
}

// Rand is a seeded Source backed by math/rand
type Rand struct {
	r    *rand.Rand
	seed int64
}

// New creates a Rand. A zero seed picks a time-based one.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed
func (r *Rand) Seed() int64 {
	return r.seed
}

func (r *Rand) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.Intn(max-min)
}

func (r *Rand) UniformFloat() float64 {
	return r.r.Float64()
}

// Intn returns an integer in [0, n); 0 if n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Weighted picks an index with probability proportional to its weight.
// Non-positive weights are never picked; -1 is returned if nothing can be.
func Weighted(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	roll := src.UniformInt(0, total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen index in [0, n), or -1 for an empty range
func Pick(src Source, n int) int {
	if n <= 0 {
		return -1
	}
	return src.UniformInt(0, n)
}
