// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_spanning_tree.go - implementation of the SpanningTree constructor.
//
// Canonical model:
//   • Random recursive tree: vertex i (1..V-1) attaches to a uniformly chosen
//     j in [0, i-1]. After step i, vertices {0..i} form one component, so the
//     finished tree spans all V vertices with exactly V-1 edges.
//
// Contract:
//   • Draw order per vertex: IntRange(0, i-1), then one weight.
//   • Emits From=i, To=j (larger id first).
//   • V == 1 emits nothing. Never fails on an empty set.
//
// Complexity:
//   • Time: O(V). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/mstgen/core"
)

// SpanningTree returns a Constructor that lays down a random spanning tree.
func SpanningTree() Constructor {
	return func(set *core.EdgeSet, cfg builderConfig) error {
		n := set.Vertices()
		for i := 1; i < n; i++ {
			// 1) parent among the vertices already attached
			j := cfg.src.IntRange(0, i-1)
			// 2) weight drawn after the parent; i > j so the pair is new
			if err := emit(MethodSpanningTree, set, cfg, i, j, cfg.weightFn(cfg.src)); err != nil {
				return err
			}
			cfg.stats.treeEdges++
		}

		return nil
	}
}
