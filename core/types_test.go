// SPDX-License-Identifier: MIT
// Package core_test verifies GraphSpec validation and Edge key canonicalisation.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstgen/core"
)

// TestGraphSpec_Validate covers both bounds of the edge count and the vertex minimum.
func TestGraphSpec_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    core.GraphSpec
		wantErr bool
	}{
		{"single vertex", core.GraphSpec{Vertices: 1, Edges: 0}, false},
		{"two vertices", core.GraphSpec{Vertices: 2, Edges: 1}, false},
		{"tree", core.GraphSpec{Vertices: 5, Edges: 4}, false},
		{"between", core.GraphSpec{Vertices: 5, Edges: 7}, false},
		{"complete", core.GraphSpec{Vertices: 5, Edges: 10}, false},
		{"zero vertices", core.GraphSpec{Vertices: 0, Edges: 0}, true},
		{"negative vertices", core.GraphSpec{Vertices: -3, Edges: 0}, true},
		{"too few edges", core.GraphSpec{Vertices: 5, Edges: 3}, true},
		{"too many edges", core.GraphSpec{Vertices: 5, Edges: 11}, true},
		{"single vertex with edge", core.GraphSpec{Vertices: 1, Edges: 1}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.spec.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidGraphSpec), "got %v", err)
		})
	}
}

func TestGraphSpec_IsCompleteAndRemainder(t *testing.T) {
	t.Parallel()

	assert.True(t, core.GraphSpec{Vertices: 4, Edges: 6}.IsComplete())
	assert.False(t, core.GraphSpec{Vertices: 4, Edges: 5}.IsComplete())
	assert.True(t, core.GraphSpec{Vertices: 1, Edges: 0}.IsComplete())

	assert.Equal(t, 3, core.GraphSpec{Vertices: 5, Edges: 7}.Remainder())
	assert.Equal(t, 0, core.GraphSpec{Vertices: 5, Edges: 4}.Remainder())
}

// TestEdge_Key checks that orientation never changes identity.
func TestEdge_Key(t *testing.T) {
	t.Parallel()

	a := core.Edge{From: 1, To: 4, Weight: 2}
	b := core.Edge{From: 4, To: 1, Weight: 9}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, core.Key{Hi: 4, Lo: 1}, a.Key())
	assert.Equal(t, core.KeyOf(4, 1), core.KeyOf(1, 4))
	assert.False(t, a.IsLoop())
	assert.True(t, core.Edge{From: 2, To: 2}.IsLoop())
}
