// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// weight_model.go - the two weight models as a closed set of variants.
//
// A WeightModel is chosen once, up front. Each variant validates itself
// against the GraphSpec in one place and then expands into the constructor
// pipeline that realises it, so "positions need a complete graph" is
// checked exactly once, before any random draw.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstgen/core"
)

// Model names recorded in Summary.Model.
const (
	ModelRange     = "range"
	ModelPositions = "positions"
)

// WeightModel is implemented only by RangeUniform and PositionDerived.
type WeightModel interface {
	// Name returns ModelRange or ModelPositions.
	Name() string

	validate(spec core.GraphSpec) error
	pipeline(spec core.GraphSpec) []Constructor
	weightFn() WeightFn
	digits() int
	describe(s *Summary)
}

// RangeUniform draws each edge weight independently and uniformly in
// [Min, Max) and keeps Precision decimals.
type RangeUniform struct {
	Min       float64
	Max       float64
	Precision int
}

// PositionDerived places each vertex uniformly in [Min, Max)^Dimensions and
// weighs each edge by the Euclidean distance between its endpoints.
// Only complete graphs are supported.
type PositionDerived struct {
	Dimensions int
	Min        float64
	Max        float64
	Precision  int
}

// Name implements WeightModel.
func (RangeUniform) Name() string { return ModelRange }

// Name implements WeightModel.
func (PositionDerived) Name() string { return ModelPositions }

func (m RangeUniform) validate(_ core.GraphSpec) error {
	if err := validatePrecision(m.Precision); err != nil {
		return err
	}
	if err := validateRange(m.Min, m.Max); err != nil {
		return err
	}
	if m.Min < 0 {
		return fmt.Errorf("min=%g < 0 (weights are non-negative): %w", m.Min, ErrInvalidWeightModel)
	}

	return nil
}

func (m PositionDerived) validate(spec core.GraphSpec) error {
	if err := validatePrecision(m.Precision); err != nil {
		return err
	}
	if err := validateRange(m.Min, m.Max); err != nil {
		return err
	}
	if m.Dimensions < 0 {
		return fmt.Errorf("dimensions=%d < 0: %w", m.Dimensions, ErrInvalidDimensions)
	}
	if !spec.IsComplete() {
		return fmt.Errorf("positions need a complete graph (E=%d, V*(V-1)/2=%d), not yet implemented otherwise: %w",
			spec.Edges, core.CompleteEdges(spec.Vertices), ErrUnsupportedTopology)
	}

	return nil
}

// pipeline picks the fast path for complete requests and tree + remainder
// for everything else.
func (m RangeUniform) pipeline(spec core.GraphSpec) []Constructor {
	if spec.IsComplete() {
		return []Constructor{Complete()}
	}

	return []Constructor{SpanningTree(), Remainder(spec.Remainder())}
}

func (m PositionDerived) pipeline(_ core.GraphSpec) []Constructor {
	return []Constructor{Positions(m.Dimensions, m.Min, m.Max)}
}

func (m RangeUniform) weightFn() WeightFn {
	return UniformWeightFn(m.Min, m.Max)
}

// PositionDerived derives weights from geometry; the function is unused.
func (m PositionDerived) weightFn() WeightFn {
	return DefaultWeightFn
}

func (m RangeUniform) digits() int    { return m.Precision }
func (m PositionDerived) digits() int { return m.Precision }

func (m RangeUniform) describe(s *Summary) {
	s.Model = ModelRange
	s.Min, s.Max = m.Min, m.Max
	s.Precision = m.Precision
}

func (m PositionDerived) describe(s *Summary) {
	s.Model = ModelPositions
	s.Dimensions = m.Dimensions
	s.Min, s.Max = m.Min, m.Max
	s.Precision = m.Precision
}

// validatePrecision enforces MinPrecision ≤ p ≤ MaxPrecision.
func validatePrecision(p int) error {
	if p < MinPrecision || p > MaxPrecision {
		return fmt.Errorf("precision=%d not in [%d,%d]: %w", p, MinPrecision, MaxPrecision, ErrInvalidWeightModel)
	}

	return nil
}

// validateRange enforces finite bounds with min ≤ max.
func validateRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("range [%g,%g] is not finite: %w", min, max, ErrInvalidWeightModel)
	}
	if min > max {
		return fmt.Errorf("min=%g > max=%g: %w", min, max, ErrInvalidWeightModel)
	}

	return nil
}
