// SPDX-License-Identifier: MIT
// Package core defines the central Edge, EdgeSet and GraphSpec types shared by
// the generators, the edge-list codec and the catalog.
//
// Vertices carry no payload: a vertex is its 0-based index in [0, V-1]. Any
// externally emitted form (edge-list files, CLI output) is 1-based.
//
// Errors:
//
//	ErrInvalidGraphSpec - vertex/edge counts that cannot describe a connected simple graph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrInvalidGraphSpec indicates V < 1 or an edge count outside [V-1, V*(V-1)/2].
	ErrInvalidGraphSpec = errors.New("core: invalid graph spec")
)

// Edge is an undirected weighted connection between two distinct vertices.
//
// From and To keep the orientation in which the edge was emitted so that
// writers reproduce the generator's output verbatim; identity is decided by
// Key, which ignores orientation.
type Edge struct {
	// From is the first endpoint (0-based).
	From int

	// To is the second endpoint (0-based).
	To int

	// Weight is the non-negative edge cost, already rounded on emission.
	Weight float64
}

// Key is the canonical form of an unordered vertex pair: Hi > Lo.
type Key struct {
	Hi int
	Lo int
}

// KeyOf returns the canonical key of the pair {u, v}.
func KeyOf(u, v int) Key {
	if u > v {
		return Key{Hi: u, Lo: v}
	}

	return Key{Hi: v, Lo: u}
}

// Key returns the canonical key of e.
func (e Edge) Key() Key {
	return KeyOf(e.From, e.To)
}

// IsLoop reports whether e connects a vertex to itself.
func (e Edge) IsLoop() bool {
	return e.From == e.To
}

// GraphSpec is the requested shape of a graph: V vertices and E edges.
// It is immutable once validated.
type GraphSpec struct {
	// Vertices is V; must be ≥ 1.
	Vertices int

	// Edges is E; must lie in [V-1, V*(V-1)/2].
	Edges int
}

// Validate checks that a connected simple graph with this shape exists.
// The lower bound keeps connectivity achievable and the upper bound keeps
// the graph simple.
// Complexity: O(1).
func (s GraphSpec) Validate() error {
	if s.Vertices < 1 {
		return fmt.Errorf("GraphSpec: vertices=%d < 1: %w", s.Vertices, ErrInvalidGraphSpec)
	}
	if s.Edges < MinEdges(s.Vertices) {
		return fmt.Errorf("GraphSpec: edges=%d < V-1=%d (graph must be connected): %w",
			s.Edges, MinEdges(s.Vertices), ErrInvalidGraphSpec)
	}
	if s.Edges > CompleteEdges(s.Vertices) {
		return fmt.Errorf("GraphSpec: edges=%d > V*(V-1)/2=%d (no self-loops or parallel edges): %w",
			s.Edges, CompleteEdges(s.Vertices), ErrInvalidGraphSpec)
	}

	return nil
}

// IsComplete reports whether the spec asks for every possible pair.
func (s GraphSpec) IsComplete() bool {
	return s.Edges == CompleteEdges(s.Vertices)
}

// Remainder is the number of edges left after a spanning tree is laid down.
func (s GraphSpec) Remainder() int {
	return s.Edges - MinEdges(s.Vertices)
}
