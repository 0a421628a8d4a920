// SPDX-License-Identifier: MIT
// Package rng provides the seeded random stream that drives every generator.
//
// Contract:
//   - A Source is seeded exactly once, at construction; it is never reseeded.
//   - The seed is always recorded, including when it comes from OS entropy,
//     so any run can be reproduced with New(seed).
//   - No package-level Source exists; each generation owns its own.
//
// A Source is not safe for concurrent use. Give each goroutine its own.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
)

// ErrEntropy indicates that the OS entropy source could not supply a seed.
var ErrEntropy = errors.New("rng: entropy source unavailable")

// Source is a deterministic pseudo-random stream plus the seed that made it.
type Source struct {
	seed int64
	r    *mrand.Rand
}

// New returns a Source seeded with seed.
// Complexity: O(1) amortised (the underlying source initialises its state once).
func New(seed int64) *Source {
	return &Source{seed: seed, r: mrand.New(mrand.NewSource(seed))}
}

// NewFromEntropy draws an 8-byte seed from crypto/rand and returns a Source
// seeded with it. The top bit is cleared so the recorded seed is
// non-negative and prints cleanly in file names.
func NewFromEntropy() (*Source, error) {
	seed, err := EntropySeed()
	if err != nil {
		return nil, err
	}

	return New(seed), nil
}

// EntropySeed returns a fresh non-negative seed read from crypto/rand.
func EntropySeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("EntropySeed: read 8 bytes: %v: %w", err, ErrEntropy)
	}

	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1), nil
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns lo + (hi-lo)*U with U uniform in [0, 1).
// When lo == hi the result is lo and one value is still consumed, keeping
// the draw count independent of the range.
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntRange returns a uniform integer in the closed interval [lo, hi].
// It panics if hi < lo; generators only call it with validated bounds.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: IntRange(%d, %d): empty interval", lo, hi))
	}

	return lo + s.r.Intn(hi-lo+1)
}
