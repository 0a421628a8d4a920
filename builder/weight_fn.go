// Package builder provides the edge-weight generators and the emission-time
// rounding shared by all constructors.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstgen/rng"
)

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from the run's random stream.
// It must draw the same number of values on every call so draw order stays
// a pure function of the seed.
type WeightFn func(src *rng.Source) float64

// DefaultWeightFn always returns DefaultEdgeWeight and draws nothing.
func DefaultWeightFn(_ *rng.Source) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rng.Source) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Exactly one value is drawn per call, even when min == max.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(src *rng.Source) float64 {
		return src.Uniform(min, max)
	}
}

// Round keeps precision decimal digits of w, rounding half away from zero.
// Values whose scaled form is not finite are returned unchanged.
func Round(w float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	scaled := w * scale
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return w
	}

	return math.Round(scaled) / scale
}

// Distance returns the Euclidean distance between two points of equal
// dimension. Zero-dimensional points are at distance 0.
func Distance(a, b []float64) float64 {
	var sum float64
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}
