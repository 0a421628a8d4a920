// SPDX-License-Identifier: MIT
// Package: mstgen/core
//
// edgeset.go - insertion-ordered set of undirected edges keyed by canonical pair.
//
// Invariants:
//   - No self-loops; no two edges share a Key.
//   - Edges() preserves insertion order, which is the generator's draw order.
//
// EdgeSet is owned by a single generation call and is not safe for
// concurrent mutation.

package core

// EdgeSet accumulates distinct edges over a fixed vertex range [0, V-1].
type EdgeSet struct {
	vertices int
	edges    []Edge
	index    map[Key]struct{}
}

// NewEdgeSet returns an empty set over v vertices with room for capacity edges.
func NewEdgeSet(v, capacity int) *EdgeSet {
	if capacity < 0 {
		capacity = 0
	}

	return &EdgeSet{
		vertices: v,
		edges:    make([]Edge, 0, capacity),
		index:    make(map[Key]struct{}, capacity),
	}
}

// Add inserts e unless it is a self-loop, touches a vertex outside the
// range, or its pair is already present. It reports whether e was added.
// Complexity: O(1) amortised.
func (s *EdgeSet) Add(e Edge) bool {
	if e.IsLoop() || !s.inRange(e.From) || !s.inRange(e.To) {
		return false
	}
	k := e.Key()
	if _, dup := s.index[k]; dup {
		return false
	}
	s.index[k] = struct{}{}
	s.edges = append(s.edges, e)

	return true
}

// Has reports whether the unordered pair {u, v} is present.
func (s *EdgeSet) Has(u, v int) bool {
	_, ok := s.index[KeyOf(u, v)]

	return ok
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int {
	return len(s.edges)
}

// Vertices returns V.
func (s *EdgeSet) Vertices() int {
	return s.vertices
}

// Edges returns a copy of the edges in insertion order.
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Connected reports whether the edges touch all V vertices in a single
// component. It runs a disjoint-set union with path halving and union by
// size over the vertex indices.
// Complexity: O(V + E·α(V)) time, O(V) space.
func (s *EdgeSet) Connected() bool {
	if s.vertices <= 1 {
		return true
	}

	parent := make([]int, s.vertices)
	size := make([]int, s.vertices)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	components := s.vertices
	for _, e := range s.edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		if size[ru] < size[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		size[ru] += size[rv]
		components--
		if components == 1 {
			return true
		}
	}

	return components == 1
}

func (s *EdgeSet) inRange(v int) bool {
	return v >= 0 && v < s.vertices
}
