package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/core"
	"github.com/katalvlaran/mstgen/rng"
)

// TestGenerateByPositions_Distances replays the coordinate draws from the
// same seed and recomputes every weight.
func TestGenerateByPositions_Distances(t *testing.T) {
	t.Parallel()

	const (
		v         = 4
		dims      = 2
		lo, hi    = -5.0, 5.0
		precision = 6
		seed      = int64(20240601)
	)

	set, sum, err := builder.GenerateByPositions(v, core.CompleteEdges(v), dims, lo, hi, precision, seed)
	require.NoError(t, err)
	require.Equal(t, core.CompleteEdges(v), set.Len())
	assert.True(t, set.Connected())
	assert.Equal(t, builder.StrategyComplete, sum.Strategy)

	pts := builder.SamplePositions(rng.New(seed), v, dims, lo, hi)
	for _, e := range set.Edges() {
		require.Less(t, e.From, e.To)
		dx := pts[e.From][0] - pts[e.To][0]
		dy := pts[e.From][1] - pts[e.To][1]
		assert.InDelta(t, math.Sqrt(dx*dx+dy*dy), e.Weight, 1e-6, "edge %d-%d", e.From, e.To)

		want := builder.Round(builder.Distance(pts[e.From], pts[e.To]), precision)
		assert.Equal(t, want, e.Weight, "edge %d-%d", e.From, e.To)
	}

	again, _, err := builder.GenerateByPositions(v, core.CompleteEdges(v), dims, lo, hi, precision, seed)
	require.NoError(t, err)
	assert.Equal(t, set.Edges(), again.Edges(), "bit-for-bit reproducible")
}

func TestGenerateByPositions_ZeroDimensions(t *testing.T) {
	t.Parallel()

	set, _, err := builder.GenerateByPositions(5, 10, 0, 0, 1, 3, 1)
	require.NoError(t, err)
	for _, e := range set.Edges() {
		assert.Zero(t, e.Weight)
	}
}

func TestGenerateByPositions_TriangleInequality(t *testing.T) {
	t.Parallel()

	const v = 8
	set, _, err := builder.GenerateByPositions(v, core.CompleteEdges(v), 3, 0, 100, 12, 3)
	require.NoError(t, err)

	w := make(map[core.Key]float64)
	for _, e := range set.Edges() {
		w[e.Key()] = e.Weight
	}
	const slack = 1e-9
	for a := 0; a < v; a++ {
		for b := 0; b < v; b++ {
			for c := 0; c < v; c++ {
				if a == b || b == c || a == c {
					continue
				}
				assert.LessOrEqual(t, w[core.KeyOf(a, c)], w[core.KeyOf(a, b)]+w[core.KeyOf(b, c)]+slack)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, builder.Distance([]float64{0, 0}, []float64{3, 4}))
	assert.Equal(t, 0.0, builder.Distance(nil, nil))
	assert.Equal(t, 2.0, builder.Distance([]float64{1, 1, 1, 1}, []float64{2, 2, 2, 2}))
}
