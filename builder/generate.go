// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// generate.go - the entry points collaborators call.
//
// Flow (single call, single goroutine, no retained state):
//   1) Validate GraphSpec, then the WeightModel against it.
//   2) Resolve the random source (option or OS entropy; seed recorded).
//   3) Run the model's pipeline: Complete | Positions | SpanningTree+Remainder.
//   4) Check the final size and connectivity, then fill the Summary.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstgen/core"
	"github.com/katalvlaran/mstgen/rng"
)

// Generate builds a connected simple graph of shape spec whose weights
// follow model. Options may fix the seed (WithSeed, WithSource) or enable
// the dense strategy (WithDenseThreshold).
//
// On any error the returned set is nil and the Summary is zero.
func Generate(spec core.GraphSpec, model WeightModel, opts ...BuilderOption) (*core.EdgeSet, Summary, error) {
	if err := spec.Validate(); err != nil {
		return nil, Summary{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	if model == nil {
		return nil, Summary{}, fmt.Errorf("%s: nil weight model: %w", MethodGenerate, ErrInvalidWeightModel)
	}
	if err := model.validate(spec); err != nil {
		return nil, Summary{}, fmt.Errorf("%s: %s: %w", MethodGenerate, model.Name(), err)
	}

	cfg := newBuilderConfig(opts...)
	cfg.weightFn = model.weightFn()
	cfg.precision = model.digits()
	if err := resolveSource(&cfg); err != nil {
		return nil, Summary{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	set, err := buildWith(spec, cfg, model.pipeline(spec))
	if err != nil {
		return nil, Summary{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	if set.Len() != spec.Edges {
		return nil, Summary{}, fmt.Errorf("%s: built %d edges, want %d: %w",
			MethodGenerate, set.Len(), spec.Edges, ErrConstructFailed)
	}
	if !set.Connected() {
		return nil, Summary{}, fmt.Errorf("%s: result is disconnected: %w", MethodGenerate, ErrConstructFailed)
	}

	return set, newSummary(spec, model, cfg), nil
}

// GenerateByWeightRange generates V vertices and E edges with independent
// uniform weights in [minWeight, maxWeight), precision decimals and a fixed seed.
func GenerateByWeightRange(v, e int, minWeight, maxWeight float64, precision int, seed int64) (*core.EdgeSet, Summary, error) {
	return Generate(
		core.GraphSpec{Vertices: v, Edges: e},
		RangeUniform{Min: minWeight, Max: maxWeight, Precision: precision},
		WithSeed(seed),
	)
}

// GenerateByPositions generates the complete graph on V vertices with
// weights equal to distances between random points in dims dimensions.
// E must equal V*(V-1)/2, else the error wraps ErrUnsupportedTopology.
func GenerateByPositions(v, e, dims int, minCoord, maxCoord float64, precision int, seed int64) (*core.EdgeSet, Summary, error) {
	return Generate(
		core.GraphSpec{Vertices: v, Edges: e},
		PositionDerived{Dimensions: dims, Min: minCoord, Max: maxCoord, Precision: precision},
		WithSeed(seed),
	)
}

// resolveSource seeds cfg.src from OS entropy when no option supplied one.
func resolveSource(cfg *builderConfig) error {
	if cfg.src != nil {
		return nil
	}
	src, err := rng.NewFromEntropy()
	if err != nil {
		return fmt.Errorf("%w: %w", err, ErrNeedRandSource)
	}
	cfg.src = src

	return nil
}
