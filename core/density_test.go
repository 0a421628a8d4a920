// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mstgen/core"
)

func TestCompleteAndMinEdges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, core.CompleteEdges(0))
	assert.Equal(t, 0, core.CompleteEdges(1))
	assert.Equal(t, 1, core.CompleteEdges(2))
	assert.Equal(t, 10, core.CompleteEdges(5))
	assert.Equal(t, 4950, core.CompleteEdges(100))

	assert.Equal(t, 0, core.MinEdges(0))
	assert.Equal(t, 0, core.MinEdges(1))
	assert.Equal(t, 4, core.MinEdges(5))
}

func TestDensity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.4, core.Density(5, 7), 1e-12)
	assert.InDelta(t, 0.0, core.Density(1, 0), 1e-12)
	assert.InDelta(t, 2.0, core.Density(5, 10), 1e-12)
}

// TestPercentOfMax pins the normalised endpoints and the degenerate V ≤ 2 case.
func TestPercentOfMax(t *testing.T) {
	t.Parallel()

	for _, v := range []int{3, 4, 5, 17, 100} {
		assert.Equal(t, 0.0, core.PercentOfMax(v, core.MinEdges(v)), "tree, V=%d", v)
		assert.Equal(t, 1.0, core.PercentOfMax(v, core.CompleteEdges(v)), "complete, V=%d", v)
	}

	assert.Equal(t, 1.0, core.PercentOfMax(1, 0))
	assert.Equal(t, 1.0, core.PercentOfMax(2, 1))

	// V=5: 4 tree edges, 6 optional pairs; E=7 sits at 3/6.
	assert.InDelta(t, 0.5, core.PercentOfMax(5, 7), 1e-12)
}
