// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • src            = nil        (Generate seeds from OS entropy and records it)
//   • weightFn       = DefaultWeightFn
//   • precision      = DefaultPrecision
//   • denseThreshold = +Inf       (rejection sampling at every density)

package builder

import (
	"github.com/katalvlaran/mstgen/rng"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; stats is the one shared pointer
// so constructors can report what they did.
type builderConfig struct {
	// Random stream; nil until Generate resolves it.
	src *rng.Source
	// Weight generator for range-style edges.
	weightFn WeightFn
	// Decimal digits kept per emitted weight.
	precision int
	// Remainder switches to the heap strategy when PercentOfMax exceeds this.
	denseThreshold float64
	// Counters filled in by constructors.
	stats *buildStats
}

// buildStats collects per-run counters surfaced through Summary.
type buildStats struct {
	treeEdges    int
	sampledEdges int
	rejections   int
	strategy     string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		src:            nil,
		weightFn:       DefaultWeightFn,
		precision:      DefaultPrecision,
		denseThreshold: denseDisabled,
		stats:          &buildStats{},
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
