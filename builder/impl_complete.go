// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_complete.go - implementation of the Complete constructor.
//
// Contract:
//   • Emits each unordered pair {i,j} with i<j exactly once as From=i, To=j.
//   • One cfg.weightFn draw per pair, in emission order.
//   • No membership testing is needed on an empty set; a non-empty set that
//     already holds a pair yields ErrConstructFailed.
//
// Complexity:
//   • Time: O(V²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j.

package builder

import (
	"github.com/katalvlaran/mstgen/core"
)

// Complete returns a Constructor that emits the complete simple graph K_V
// over the set's vertices.
func Complete() Constructor {
	return func(set *core.EdgeSet, cfg builderConfig) error {
		n := set.Vertices()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(MethodComplete, set, cfg, i, j, cfg.weightFn(cfg.src)); err != nil {
					return err
				}
			}
		}
		cfg.stats.strategy = StrategyComplete

		return nil
	}
}
