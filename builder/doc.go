// Package builder generates random, connected, simple, undirected weighted
// graphs with an exact vertex and edge count, ready for a downstream
// minimum-spanning-tree tool.
//
// The package offers the following key components:
//
//   - Entry points:
//     - Generate(spec, model, opts...)     general form.
//     - GenerateByWeightRange(...)         independent uniform weights.
//     - GenerateByPositions(...)           Euclidean weights, complete graphs only.
//   - Weight models (sealed variants of WeightModel):
//     - RangeUniform{Min, Max, Precision}
//     - PositionDerived{Dimensions, Min, Max, Precision}
//   - Constructors (composable via BuildEdgeSet):
//     - Complete():          every pair i<j once, lexicographic order.
//     - SpanningTree():      vertex i attaches to a random j < i.
//     - Remainder(k):        k more pairs by rejection sampling, or by a
//     random-key heap when WithDenseThreshold is set and exceeded.
//     - Positions(d,lo,hi):  complete graph weighted by point distances.
//   - Configuration primitives:
//     - BuilderOption / builderConfig: source, weight function, precision,
//     dense threshold.
//   - Weight helpers: WeightFn, UniformWeightFn, ConstantWeightFn, Round, Distance.
//
// Guarantees:
//
//   - Exactly E edges, no self-loops, no duplicate pairs, one component.
//   - Determinism: a seed fixes every draw, hence every pair, weight and the
//     output order. Sources are never shared between runs implicitly.
//   - No partial success: errors return a nil set. Errors wrap sentinels
//     (core.ErrInvalidGraphSpec, ErrUnsupportedTopology, ErrInvalidDimensions,
//     ErrInvalidWeightModel, ErrNeedRandSource, ErrConstructFailed).
//   - Weights are rounded to the model's precision on emission only; all
//     internal arithmetic is full precision.
//
// Concurrency: a generation call is synchronous and owns its source and
// set. Independent calls may run in parallel.
package builder
