// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstgen/rng"
)

// BuilderOption customizes generation by mutating a builderConfig before
// any constructor runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed creates a new rng.Source with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.src = rng.New(seed)
	}
}

// WithSource provides an explicit random stream. The stream is consumed,
// not copied: draws made here are visible to later users of src.
// Panics on nil.
func WithSource(src *rng.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithWeightFn overrides the per-edge weight generator used by Complete,
// SpanningTree and Remainder. Generate installs the model's own function,
// so this option matters for BuildEdgeSet callers. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPrecision sets the decimal digits kept per emitted weight for
// BuildEdgeSet callers; Generate takes precision from the WeightModel.
// Panics outside [MinPrecision, MaxPrecision].
func WithPrecision(p int) BuilderOption {
	if p < MinPrecision || p > MaxPrecision {
		panic(fmt.Sprintf("builder: WithPrecision(%d) outside [%d,%d]", p, MinPrecision, MaxPrecision))
	}
	return func(c *builderConfig) {
		c.precision = p
	}
}

// WithDenseThreshold enables the heap strategy in Remainder whenever the
// request's percent of max density is strictly above t. Panics unless
// 0 ≤ t ≤ 1.
//
// The heap strategy consumes the random stream differently, so the same
// seed yields a different (still connected and simple) graph.
func WithDenseThreshold(t float64) BuilderOption {
	if math.IsNaN(t) || t < 0 || t > 1 {
		panic(fmt.Sprintf("builder: WithDenseThreshold(%g) outside [0,1]", t))
	}
	return func(c *builderConfig) {
		c.denseThreshold = t
	}
}
