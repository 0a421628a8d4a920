// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_remainder.go - implementation of the Remainder(k) constructor.
//
// Canonical model:
//   • Rejection sampling (default, every density): draw r1, r2 in [0, V-1];
//     i = max, j = min; reject i == j and pairs already present; otherwise
//     draw one weight and emit From=i, To=j. Repeat until k edges were added.
//   • Heap strategy (opt-in via WithDenseThreshold): give every pair i<j a
//     random key, push all pairs into a binary heap and pop minimum keys,
//     skipping pairs already present, until k edges were added.
//
// Running times (let Z = V*(V-1)):
//   • heap:      Z*log(Z) + E*log(Z)
//   • rejection: Σ_{m=|set|}^{|set|+k-1} 1 / (1 - 2m/Z) draws
// The rejection sum stays below the heap cost at every density measured,
// hence the default. The heap strategy draws Z/2 keys up front and so
// consumes a different stream than rejection sampling.
//
// Contract:
//   • k ≥ 0; |set| + k ≤ V*(V-1)/2 (else ErrConstructFailed, checked before
//     any draw, which also guarantees termination).
//   • Pairs already in the set (e.g. from SpanningTree) are never re-emitted.
//
// Complexity: see running times above. Space: O(1) rejection, O(Z) heap.

package builder

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/mstgen/core"
)

// keyedPair is a heap entry: a candidate pair i<j ordered by a random key.
type keyedPair struct {
	key  float64
	i, j int
}

// byKey orders keyedPairs by key, breaking ties by (i, j) so the pop order
// is a pure function of the drawn keys.
func byKey(a, b interface{}) int {
	pa, pb := a.(keyedPair), b.(keyedPair)
	switch {
	case pa.key < pb.key:
		return -1
	case pa.key > pb.key:
		return 1
	case pa.i != pb.i:
		return pa.i - pb.i
	default:
		return pa.j - pb.j
	}
}

// Remainder returns a Constructor that adds k further distinct,
// non-loop edges absent from the set.
func Remainder(k int) Constructor {
	return func(set *core.EdgeSet, cfg builderConfig) error {
		n := set.Vertices()
		if k < 0 {
			return fmt.Errorf("%s: k=%d < 0: %w", MethodRemainder, k, ErrConstructFailed)
		}
		if free := core.CompleteEdges(n) - set.Len(); k > free {
			return fmt.Errorf("%s: k=%d exceeds %d free pairs: %w", MethodRemainder, k, free, ErrConstructFailed)
		}
		if k == 0 {
			if cfg.stats.strategy == "" {
				cfg.stats.strategy = StrategyRejection
			}
			return nil
		}

		if core.PercentOfMax(n, set.Len()+k) > cfg.denseThreshold {
			cfg.stats.strategy = StrategyHeap
			return fillByHeap(set, cfg, k)
		}
		cfg.stats.strategy = StrategyRejection

		return fillByRejection(set, cfg, k)
	}
}

// fillByRejection draws random pairs until k new ones were accepted.
func fillByRejection(set *core.EdgeSet, cfg builderConfig, k int) error {
	n := set.Vertices()
	for k > 0 {
		// 1) two endpoints, each uniform over all vertices
		r1 := cfg.src.IntRange(0, n-1)
		r2 := cfg.src.IntRange(0, n-1)
		// 2) canonical orientation: larger id first
		i, j := r1, r2
		if r2 > r1 {
			i, j = r2, r1
		}
		// 3) loops and present pairs cost a retry, never a weight draw
		if i == j || set.Has(i, j) {
			cfg.stats.rejections++
			continue
		}
		if err := emit(MethodRemainder, set, cfg, i, j, cfg.weightFn(cfg.src)); err != nil {
			return err
		}
		cfg.stats.sampledEdges++
		k--
	}

	return nil
}

// fillByHeap takes the k lowest-keyed free pairs of a full random ranking.
func fillByHeap(set *core.EdgeSet, cfg builderConfig, k int) error {
	n := set.Vertices()
	h := binaryheap.NewWith(byKey)
	// 1) one random key per pair, drawn in lexicographic order
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			h.Push(keyedPair{key: cfg.src.Float64(), i: i, j: j})
		}
	}

	// 2) pop the lowest keys; pairs from the tree are skipped
	for k > 0 {
		v, ok := h.Pop()
		if !ok {
			return fmt.Errorf("%s: heap exhausted with %d edges left: %w", MethodRemainder, k, ErrConstructFailed)
		}
		p := v.(keyedPair)
		if set.Has(p.i, p.j) {
			cfg.stats.rejections++
			continue
		}
		if err := emit(MethodRemainder, set, cfg, p.i, p.j, cfg.weightFn(cfg.src)); err != nil {
			return err
		}
		cfg.stats.sampledEdges++
		k--
	}

	return nil
}
