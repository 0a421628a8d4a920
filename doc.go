// Package mstgen generates random test inputs for minimum-spanning-tree
// solvers: connected, simple, undirected weighted graphs with an exact
// number of vertices and edges, reproducible from a single seed.
//
// 🚀 What is mstgen?
//
//	A small, deterministic graph generator that brings together:
//		• Random source: one seeded stream per run, OS entropy when unseeded
//		• Density math: density and percent-of-max for any shape
//		• Generation: spanning tree plus rejection-sampled remainder,
//		  complete graphs, Euclidean weights from random points
//		• Edge-list I/O: the plain-text format MST tools read
//		• Catalog: a SQLite log of every input and the seed that made it
//
// ✨ Guarantees
//
//   - Exactly E edges, no self-loops or parallel edges, always connected
//   - The same seed and parameters yield byte-identical output
//   - Errors, never partial graphs
//
// Packages:
//
//	rng/       - seeded random source and entropy seeds
//	core/      - Edge, GraphSpec, EdgeSet and density helpers
//	builder/   - weight models, constructors and the Generate entry points
//	edgelist/  - edge-list writer, footer and reader
//	catalog/   - persistent log of generated inputs
//	cmd/mstgen - command-line front end
//
// Quick example:
//
//	set, sum, err := builder.GenerateByWeightRange(5, 7, 0, 100000, 1, 42)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = edgelist.Write(os.Stdout, set, sum.Precision)
package mstgen
