// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstgen/core"
)

// TestEdgeSet_Add locks in the rejection rules: loops, out-of-range ids and
// duplicates in either orientation.
func TestEdgeSet_Add(t *testing.T) {
	t.Parallel()

	s := core.NewEdgeSet(4, 3)

	require.True(t, s.Add(core.Edge{From: 1, To: 0, Weight: 1.5}))
	require.True(t, s.Add(core.Edge{From: 2, To: 3, Weight: 2.5}))

	assert.False(t, s.Add(core.Edge{From: 0, To: 1}), "reversed duplicate")
	assert.False(t, s.Add(core.Edge{From: 1, To: 0}), "exact duplicate")
	assert.False(t, s.Add(core.Edge{From: 2, To: 2}), "self-loop")
	assert.False(t, s.Add(core.Edge{From: 4, To: 0}), "out of range")
	assert.False(t, s.Add(core.Edge{From: -1, To: 0}), "negative id")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 4, s.Vertices())
	assert.True(t, s.Has(0, 1))
	assert.True(t, s.Has(3, 2))
	assert.False(t, s.Has(0, 3))
}

func TestEdgeSet_EdgesIsOrderedCopy(t *testing.T) {
	t.Parallel()

	s := core.NewEdgeSet(3, 0)
	s.Add(core.Edge{From: 2, To: 1, Weight: 3})
	s.Add(core.Edge{From: 0, To: 1, Weight: 4})

	got := s.Edges()
	require.Len(t, got, 2)
	assert.Equal(t, core.Edge{From: 2, To: 1, Weight: 3}, got[0])
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 4}, got[1])

	got[0].Weight = 100
	assert.Equal(t, 3.0, s.Edges()[0].Weight, "caller mutation must not leak into the set")
}

func TestEdgeSet_Connected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     int
		pairs [][2]int
		want  bool
	}{
		{"single vertex", 1, nil, true},
		{"two isolated", 2, nil, false},
		{"path", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, true},
		{"star", 4, [][2]int{{1, 0}, {2, 0}, {3, 0}}, true},
		{"two components", 4, [][2]int{{0, 1}, {2, 3}}, false},
		{"cycle missing a vertex", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 0}}, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := core.NewEdgeSet(tc.v, len(tc.pairs))
			for _, p := range tc.pairs {
				require.True(t, s.Add(core.Edge{From: p[0], To: p[1]}))
			}
			assert.Equal(t, tc.want, s.Connected())
		})
	}
}
