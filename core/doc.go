// Package core provides the data model shared by every mstgen package:
// a minimal, allocation-light representation of a simple undirected
// weighted graph as an ordered edge list.
//
// The model G = (V,E):
//
//   - Vertices are implicit: the integers 0..V-1. No vertex payload exists.
//   - Edge{From, To, Weight} keeps emission orientation for writers;
//     identity is the canonical Key{Hi, Lo} with Hi > Lo.
//   - EdgeSet rejects self-loops and duplicate keys in O(1) and remembers
//     insertion order, so a generator's draw order is its output order.
//   - GraphSpec{Vertices, Edges} describes a request; Validate enforces
//     V ≥ 1 and V-1 ≤ E ≤ V*(V-1)/2.
//
// Density helpers:
//
//	- MinEdges(V)         spanning-tree size, V-1
//	- CompleteEdges(V)    complete-graph size, V*(V-1)/2
//	- Density(V,E)        E/V
//	- PercentOfMax(V,E)   0.0 for a tree, 1.0 for a complete graph (and for V ≤ 2)
//
// Connectivity:
//
//	EdgeSet.Connected runs a union-find pass over all V vertices. It is the
//	check every generator test uses to prove the output is one component.
//
// Concurrency:
//
//	EdgeSet has no locks. It belongs to the single generation call that
//	builds it and is read-only once handed off.
package core
