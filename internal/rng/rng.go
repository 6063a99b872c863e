// Package rng provides the single seeded random source each optimizer run
// draws from: uniform scalars, uniform integers, standard normals, and bulk
// matrix fills for the variation operators that consume millions of draws
// per run.
package rng

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is a reproducible pseudorandom stream. It is not safe for
// concurrent use — each optimizer owns exactly one Source and reads from it
// on its own goroutine; worker-pool evaluations never touch it.
type Source struct {
	r      *rand.Rand
	normal distuv.Normal
}

// New creates a Source seeded deterministically from seed. Identical seeds
// produce identical draw sequences.
func New(seed int64) *Source {
	r := rand.New(rand.NewSource(uint64(seed)))
	return &Source{
		r:      r,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: r},
	}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Intn returns a uniform integer in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// NormFloat64 returns a standard-normal draw (mean 0, stddev 1).
func (s *Source) NormFloat64() float64 {
	return s.normal.Rand()
}

// UniformMatrix fills a rows x cols matrix with independent uniform [0,1)
// draws.
func (s *Source) UniformMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = s.r.Float64()
		}
		m[i] = row
	}
	return m
}

// NormalMatrix fills a rows x cols matrix with independent standard-normal
// draws.
func (s *Source) NormalMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = s.normal.Rand()
		}
		m[i] = row
	}
	return m
}

// DistinctInts draws k pairwise-distinct integers from [0, n), each also
// distinct from every value in avoid. Each pick retries a bounded number of
// times and then accepts its last draw even if it repeats an avoided or
// already chosen value, so callers terminate when n is small relative to k
// plus len(avoid) — see the popsize < 4 degenerate case in internal/mode.
func (s *Source) DistinctInts(k, n int, avoid ...int) []int {
	const maxAttempts = 64

	blocked := func(v int, chosen []int) bool {
		for _, a := range avoid {
			if v == a {
				return true
			}
		}
		for _, c := range chosen {
			if v == c {
				return true
			}
		}
		return false
	}

	out := make([]int, 0, k)
	for len(out) < k {
		attempts := 0
		var v int
		for {
			v = s.Intn(n)
			attempts++
			if !blocked(v, out) || attempts >= maxAttempts {
				break
			}
		}
		out = append(out, v)
	}
	return out
}
