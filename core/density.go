// SPDX-License-Identifier: MIT
// Package: mstgen/core
//
// density.go - pure edge-count arithmetic used to describe and steer generation.
//
// Contract:
//   - All functions are pure and never divide by zero.
//   - Density is defined for V ≥ 1; callers validate with GraphSpec first.

package core

// MinEdges is the edge count of a spanning tree over v vertices.
// For v ≤ 1 it is 0.
func MinEdges(v int) int {
	if v < 1 {
		return 0
	}

	return v - 1
}

// CompleteEdges is the edge count of the complete simple graph K_v.
func CompleteEdges(v int) int {
	if v < 2 {
		return 0
	}

	return v * (v - 1) / 2
}

// Density returns the edge to vertex ratio E/V.
// The value is not normalised and may look large for tiny V.
func Density(v, e int) float64 {
	return float64(e) / float64(v)
}

// PercentOfMax places e between a spanning tree (0.0) and a complete
// graph (1.0) over v vertices. When the two coincide (v ≤ 2) the graph is
// both at once and the result is 1.0.
// Complexity: O(1).
func PercentOfMax(v, e int) float64 {
	minEdges := MinEdges(v)
	choices := CompleteEdges(v) - minEdges
	if choices <= 0 {
		return 1.0
	}

	return float64(e-minEdges) / float64(choices)
}
