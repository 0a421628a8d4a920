// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildEdgeSet(spec, bopts, cons...). Creates the set, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go; entry points in generate.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same spec/options/seed and constructor order ⇒ identical edge sets.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstgen/core"
)

// Constructor applies a deterministic mutation to an EdgeSet using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw from cfg.src in a fixed, documented order.
//   - Round weights on emission via emit.
type Constructor func(set *core.EdgeSet, cfg builderConfig) error

// BuildEdgeSet creates an empty EdgeSet for spec, resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildEdgeSet: %w" and no set is
// returned. The final size is not checked here; Generate does that.
//
// When no source option is given a source is seeded from OS entropy.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdgeSet(spec core.GraphSpec, bopts []BuilderOption, cons ...Constructor) (*core.EdgeSet, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildEdgeSet, err)
	}

	cfg := newBuilderConfig(bopts...)
	if err := resolveSource(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildEdgeSet, err)
	}

	return buildWith(spec, cfg, cons)
}

// buildWith runs cons against a fresh set with an already resolved cfg.
func buildWith(spec core.GraphSpec, cfg builderConfig, cons []Constructor) (*core.EdgeSet, error) {
	set := core.NewEdgeSet(spec.Vertices, spec.Edges)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildEdgeSet, i, ErrConstructFailed)
		}
		if err := fn(set, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildEdgeSet, err)
		}
	}

	return set, nil
}

// emit rounds w to cfg.precision and inserts (from, to). A rejected insert
// means a constructor broke its own invariant.
func emit(method string, set *core.EdgeSet, cfg builderConfig, from, to int, w float64) error {
	e := core.Edge{From: from, To: to, Weight: Round(w, cfg.precision)}
	if !set.Add(e) {
		return fmt.Errorf("%s: Add(%d,%d): pair rejected: %w", method, from+1, to+1, ErrConstructFailed)
	}

	return nil
}
