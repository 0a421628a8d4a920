// Package builder_test covers the generation entry points: edge counts,
// simplicity, connectivity, determinism and the error taxonomy.
package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/core"
)

// requireSimpleConnected asserts the three structural guarantees of every run.
func requireSimpleConnected(t *testing.T, set *core.EdgeSet, v, e int) {
	t.Helper()

	require.NotNil(t, set)
	require.Equal(t, e, set.Len(), "edge count")
	require.Equal(t, v, set.Vertices(), "vertex count")

	seen := make(map[core.Key]bool, e)
	for _, ed := range set.Edges() {
		require.NotEqual(t, ed.From, ed.To, "self-loop %v", ed)
		require.False(t, seen[ed.Key()], "duplicate %v", ed)
		seen[ed.Key()] = true
		require.GreaterOrEqual(t, ed.Weight, 0.0)
	}
	require.True(t, set.Connected(), "graph must be connected")
}

// TestGenerateByWeightRange_Sweep walks sparse, middling and dense requests
// over several sizes and seeds.
func TestGenerateByWeightRange_Sweep(t *testing.T) {
	t.Parallel()

	for _, v := range []int{1, 2, 3, 5, 8, 20, 45} {
		maxE := core.CompleteEdges(v)
		minE := core.MinEdges(v)
		counts := []int{minE, (minE + maxE) / 2, maxE - 1, maxE}
		for _, e := range counts {
			if e < minE {
				continue
			}
			for seed := int64(0); seed < 3; seed++ {
				v, e, seed := v, e, seed
				t.Run(fmt.Sprintf("V=%d/E=%d/seed=%d", v, e, seed), func(t *testing.T) {
					t.Parallel()
					set, sum, err := builder.GenerateByWeightRange(v, e, 0.5, 10, 3, seed)
					require.NoError(t, err)
					requireSimpleConnected(t, set, v, e)
					assert.Equal(t, seed, sum.Seed)
					for _, ed := range set.Edges() {
						assert.GreaterOrEqual(t, ed.Weight, 0.5)
						assert.LessOrEqual(t, ed.Weight, 10.0)
					}
				})
			}
		}
	}
}

// TestGenerate_Deterministic checks that a seed fixes pairs, weights and order.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, sa, err := builder.GenerateByWeightRange(30, 100, 0, 1000, 4, 1234)
	require.NoError(t, err)
	b, sb, err := builder.GenerateByWeightRange(30, 100, 0, 1000, 4, 1234)
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, sa, sb)

	c, _, err := builder.GenerateByWeightRange(30, 100, 0, 1000, 4, 4321)
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), c.Edges(), "different seeds should differ")
}

// TestGenerate_CompleteIsAllPairs checks the fast path: every pair once, in
// lexicographic order.
func TestGenerate_CompleteIsAllPairs(t *testing.T) {
	t.Parallel()

	const v = 7
	set, sum, err := builder.GenerateByWeightRange(v, core.CompleteEdges(v), 1, 2, 2, 9)
	require.NoError(t, err)
	requireSimpleConnected(t, set, v, core.CompleteEdges(v))

	edges := set.Edges()
	k := 0
	for i := 0; i < v; i++ {
		for j := i + 1; j < v; j++ {
			assert.Equal(t, i, edges[k].From)
			assert.Equal(t, j, edges[k].To)
			k++
		}
	}
	assert.Equal(t, builder.StrategyComplete, sum.Strategy)
	assert.Zero(t, sum.TreeEdges)
	assert.Zero(t, sum.SampledEdges)
}

// TestGenerate_TreeThenRemainder pins the V=5, E=7, seed=42 scenario:
// four tree edges, then three sampled edges.
func TestGenerate_TreeThenRemainder(t *testing.T) {
	t.Parallel()

	set, sum, err := builder.GenerateByWeightRange(5, 7, 0, 100000, 1, 42)
	require.NoError(t, err)
	requireSimpleConnected(t, set, 5, 7)

	assert.Equal(t, 4, sum.TreeEdges)
	assert.Equal(t, 3, sum.SampledEdges)
	assert.Equal(t, builder.StrategyRejection, sum.Strategy)

	edges := set.Edges()
	for i := 0; i < 4; i++ {
		// Tree edge i attaches vertex i+1 to an earlier vertex.
		assert.Equal(t, i+1, edges[i].From)
		assert.Less(t, edges[i].To, edges[i].From)
	}
	for _, ed := range edges[4:] {
		assert.Greater(t, ed.From, ed.To, "sampled edges are emitted larger id first")
	}

	again, _, err := builder.GenerateByWeightRange(5, 7, 0, 100000, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, edges, again.Edges())
}

func TestGenerate_MinimalIsTree(t *testing.T) {
	t.Parallel()

	set, sum, err := builder.GenerateByWeightRange(50, 49, 0, 1, 2, 5)
	require.NoError(t, err)
	requireSimpleConnected(t, set, 50, 49)
	assert.Equal(t, 49, sum.TreeEdges)
	assert.Zero(t, sum.SampledEdges)
	assert.Zero(t, sum.Rejections)
}

// TestGenerate_HeapStrategy exercises the opt-in dense path.
func TestGenerate_HeapStrategy(t *testing.T) {
	t.Parallel()

	spec := core.GraphSpec{Vertices: 12, Edges: 60}
	model := builder.RangeUniform{Min: 0, Max: 10, Precision: 2}

	set, sum, err := builder.Generate(spec, model, builder.WithSeed(8), builder.WithDenseThreshold(0.5))
	require.NoError(t, err)
	requireSimpleConnected(t, set, 12, 60)
	assert.Equal(t, builder.StrategyHeap, sum.Strategy)
	assert.Equal(t, 11, sum.TreeEdges)
	assert.Equal(t, 49, sum.SampledEdges)

	again, _, err := builder.Generate(spec, model, builder.WithSeed(8), builder.WithDenseThreshold(0.5))
	require.NoError(t, err)
	assert.Equal(t, set.Edges(), again.Edges())

	// Below the threshold the default strategy is kept.
	_, sparse, err := builder.Generate(core.GraphSpec{Vertices: 12, Edges: 15}, model,
		builder.WithSeed(8), builder.WithDenseThreshold(0.5))
	require.NoError(t, err)
	assert.Equal(t, builder.StrategyRejection, sparse.Strategy)
}

func TestGenerate_EntropySeedIsRecorded(t *testing.T) {
	t.Parallel()

	spec := core.GraphSpec{Vertices: 9, Edges: 14}
	model := builder.RangeUniform{Min: 0, Max: 5, Precision: 3}

	set, sum, err := builder.Generate(spec, model)
	require.NoError(t, err)
	requireSimpleConnected(t, set, 9, 14)

	replay, _, err := builder.Generate(spec, model, builder.WithSeed(sum.Seed))
	require.NoError(t, err)
	assert.Equal(t, set.Edges(), replay.Edges())
}

// TestGenerate_Errors is the error taxonomy table; every failure returns a nil set.
func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	rangeModel := builder.RangeUniform{Min: 0, Max: 1, Precision: 1}
	tests := []struct {
		name  string
		spec  core.GraphSpec
		model builder.WeightModel
		want  error
	}{
		{"too many edges", core.GraphSpec{Vertices: 5, Edges: 11}, rangeModel, core.ErrInvalidGraphSpec},
		{"too few edges", core.GraphSpec{Vertices: 5, Edges: 3}, rangeModel, core.ErrInvalidGraphSpec},
		{"no vertices", core.GraphSpec{Vertices: 0, Edges: 0}, rangeModel, core.ErrInvalidGraphSpec},
		{"nil model", core.GraphSpec{Vertices: 3, Edges: 2}, nil, builder.ErrInvalidWeightModel},
		{"precision zero", core.GraphSpec{Vertices: 3, Edges: 2},
			builder.RangeUniform{Min: 0, Max: 1, Precision: 0}, builder.ErrInvalidWeightModel},
		{"precision sixteen", core.GraphSpec{Vertices: 3, Edges: 2},
			builder.RangeUniform{Min: 0, Max: 1, Precision: 16}, builder.ErrInvalidWeightModel},
		{"min above max", core.GraphSpec{Vertices: 3, Edges: 2},
			builder.RangeUniform{Min: 2, Max: 1, Precision: 1}, builder.ErrInvalidWeightModel},
		{"negative min", core.GraphSpec{Vertices: 3, Edges: 2},
			builder.RangeUniform{Min: -1, Max: 1, Precision: 1}, builder.ErrInvalidWeightModel},
		{"negative dimensions", core.GraphSpec{Vertices: 3, Edges: 3},
			builder.PositionDerived{Dimensions: -1, Min: 0, Max: 1, Precision: 1}, builder.ErrInvalidDimensions},
		{"positions not complete", core.GraphSpec{Vertices: 4, Edges: 5},
			builder.PositionDerived{Dimensions: 2, Min: 0, Max: 1, Precision: 1}, builder.ErrUnsupportedTopology},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			set, sum, err := builder.Generate(tc.spec, tc.model, builder.WithSeed(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			assert.Nil(t, set)
			assert.Equal(t, builder.Summary{}, sum)
		})
	}
}

func TestGenerateByPositions_RejectsSparse(t *testing.T) {
	t.Parallel()

	set, _, err := builder.GenerateByPositions(5, 7, 2, 0, 1, 2, 42)
	require.ErrorIs(t, err, builder.ErrUnsupportedTopology)
	assert.Nil(t, set)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	_, sum, err := builder.GenerateByWeightRange(5, 7, 0, 100000, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Vertices)
	assert.Equal(t, 7, sum.Edges)
	assert.Equal(t, builder.ModelRange, sum.Model)
	assert.InDelta(t, 1.4, sum.Density, 1e-12)
	assert.InDelta(t, 0.5, sum.PercentOfMax, 1e-12)
	assert.Equal(t, "m=5 n=7 min=0.0 max=100000.0 prec=1 seed=42", sum.About())

	_, pos, err := builder.GenerateByPositions(4, 6, 3, 0, 10, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, builder.ModelPositions, pos.Model)
	assert.Equal(t, "m=4 n=6 d=3 min=0.0 max=10.0 prec=2 seed=7", pos.About())
}
