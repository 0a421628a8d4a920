// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/mstgen/core"
)

// Summary describes one generation run for annotation and cataloguing.
type Summary struct {
	Vertices   int
	Edges      int
	Model      string
	Dimensions int
	Min        float64
	Max        float64
	Precision  int
	Seed       int64

	Density      float64
	PercentOfMax float64

	// TreeEdges, SampledEdges and Rejections count what the tree and
	// remainder phases did; all zero for complete and position runs.
	TreeEdges    int
	SampledEdges int
	Rejections   int
	// Strategy is one of StrategyComplete, StrategyRejection, StrategyHeap.
	Strategy string
}

func newSummary(spec core.GraphSpec, model WeightModel, cfg builderConfig) Summary {
	s := Summary{
		Vertices:     spec.Vertices,
		Edges:        spec.Edges,
		Seed:         cfg.src.Seed(),
		Density:      core.Density(spec.Vertices, spec.Edges),
		PercentOfMax: core.PercentOfMax(spec.Vertices, spec.Edges),
		TreeEdges:    cfg.stats.treeEdges,
		SampledEdges: cfg.stats.sampledEdges,
		Rejections:   cfg.stats.rejections,
		Strategy:     cfg.stats.strategy,
	}
	model.describe(&s)

	return s
}

// About renders the one-line parameter annotation written into edge-list
// footers, e.g. "m=5 n=7 min=0.0 max=100000.0 prec=1 seed=42".
// m is the vertex count and n the edge count.
func (s Summary) About() string {
	if s.Model == ModelPositions {
		return fmt.Sprintf("m=%d n=%d d=%d min=%.1f max=%.1f prec=%d seed=%d",
			s.Vertices, s.Edges, s.Dimensions, s.Min, s.Max, s.Precision, s.Seed)
	}

	return fmt.Sprintf("m=%d n=%d min=%.1f max=%.1f prec=%d seed=%d",
		s.Vertices, s.Edges, s.Min, s.Max, s.Precision, s.Seed)
}
