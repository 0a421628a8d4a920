// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_positions.go - implementation of the Positions(dims, min, max) constructor.
//
// Canonical model:
//   • Every vertex gets a point in [min, max)^dims; all V*dims coordinates
//     are drawn in one vertex-major pass before any edge is emitted.
//   • Every pair {i,j}, i<j, is emitted in Complete order with weight equal
//     to the Euclidean distance between the two points (full precision,
//     rounded only on emission).
//
// Contract:
//   • The set must cover a complete request: the constructor emits all
//     V*(V-1)/2 pairs and fails on any pair already present.
//   • dims ≥ 0 (else ErrInvalidDimensions); dims == 0 yields zero weights.
//
// Complexity:
//   • Time: O(V*dims + V²*dims). Space: O(V*dims).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstgen/core"
	"github.com/katalvlaran/mstgen/rng"
)

// SamplePositions draws v points of dims coordinates each, uniform in
// [min, max), vertex-major. It is the first thing Positions does, so
// replaying it on a fresh rng.New(seed) recovers a run's coordinates.
func SamplePositions(src *rng.Source, v, dims int, min, max float64) [][]float64 {
	pts := make([][]float64, v)
	for i := range pts {
		pts[i] = make([]float64, dims)
		for d := 0; d < dims; d++ {
			pts[i][d] = src.Uniform(min, max)
		}
	}

	return pts
}

// Positions returns a Constructor that derives complete-graph weights from
// random vertex positions.
func Positions(dims int, min, max float64) Constructor {
	return func(set *core.EdgeSet, cfg builderConfig) error {
		if dims < 0 {
			return fmt.Errorf("%s: dims=%d < 0: %w", MethodPositions, dims, ErrInvalidDimensions)
		}

		n := set.Vertices()
		pts := SamplePositions(cfg.src, n, dims, min, max)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(MethodPositions, set, cfg, i, j, Distance(pts[i], pts[j])); err != nil {
					return err
				}
			}
		}
		cfg.stats.strategy = StrategyComplete

		return nil
	}
}
