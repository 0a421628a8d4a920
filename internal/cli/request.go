// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/core"
	"github.com/katalvlaran/mstgen/internal/config"
)

// shapeFlags are the graph and weight flags shared by generate and batch.
type shapeFlags struct {
	numEdges    string
	precision   int
	weightRange string
	posRange    string
	dense       float64
}

func (f *shapeFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.numEdges, "num-edges", "n", "", "number of edges, or 'c'/'complete' [default: complete graph]")
	fs.IntVarP(&f.precision, "precision", "p", builder.DefaultPrecision, "decimal places per edge weight")
	fs.StringVarP(&f.weightRange, "edge-weight-range", "e", "", "uniform edge weight range MIN,MAX [default: 0,100000]")
	fs.StringVar(&f.posRange, "vertex-pos-range", "", "weights are distances between random points: DIM,MIN,MAX (complete graphs only)")
	fs.Float64Var(&f.dense, "dense-threshold", 0, "use the heap strategy above this percent of max density (0 disables)")
}

// request is a validated generation request, seed excluded.
type request struct {
	spec  core.GraphSpec
	model builder.WeightModel
	// custom is set when the user chose the weights, which selects the
	// "other-<seed>" output name.
	custom bool
	opts   []builder.BuilderOption
}

// dimensions reports the position dimensionality, 0 for range weights.
func (r request) dimensions() int {
	if m, ok := r.model.(builder.PositionDerived); ok {
		return m.Dimensions
	}
	return 0
}

func (r request) bounds() (lo, hi float64, precision int) {
	switch m := r.model.(type) {
	case builder.PositionDerived:
		return m.Min, m.Max, m.Precision
	case builder.RangeUniform:
		return m.Min, m.Max, m.Precision
	}
	return 0, 0, 0
}

// parse validates the positional vertex count and the shape flags against
// cfg defaults. Flags not set on the command line fall back to cfg.
func (f shapeFlags) parse(cmd *cobra.Command, vertexArg string, cfg config.Config) (request, error) {
	v, err := strconv.Atoi(vertexArg)
	if err != nil {
		return request{}, fmt.Errorf("%w: NUM_VERTICES must be an integer", ErrUsage)
	}
	if v < 1 {
		return request{}, fmt.Errorf("%w: NUM_VERTICES must be at least 1", ErrUsage)
	}

	e, err := parseNumEdges(f.numEdges, v)
	if err != nil {
		return request{}, err
	}

	precision := cfg.Precision
	if cmd.Flags().Changed("precision") {
		precision = f.precision
	}
	if precision < builder.MinPrecision {
		return request{}, fmt.Errorf("%w: -p must be at least %d", ErrUsage, builder.MinPrecision)
	}
	if precision > builder.MaxPrecision {
		return request{}, fmt.Errorf("%w: -p must be no more than %d (doubles cannot accurately represent more than this)",
			ErrUsage, builder.MaxPrecision)
	}

	if f.weightRange != "" && f.posRange != "" {
		return request{}, fmt.Errorf("%w: options -e and --vertex-pos-range are mutually exclusive", ErrUsage)
	}

	req := request{spec: core.GraphSpec{Vertices: v, Edges: e}}
	switch {
	case f.posRange != "":
		dims, lo, hi, err := parsePosRange(f.posRange)
		if err != nil {
			return request{}, err
		}
		req.model = builder.PositionDerived{Dimensions: dims, Min: lo, Max: hi, Precision: precision}
		req.custom = true
	case f.weightRange != "":
		lo, hi, err := parseWeightRange(f.weightRange)
		if err != nil {
			return request{}, err
		}
		req.model = builder.RangeUniform{Min: lo, Max: hi, Precision: precision}
		req.custom = true
	default:
		req.model = builder.RangeUniform{Min: cfg.MinWeight, Max: cfg.MaxWeight, Precision: precision}
	}

	switch {
	case cmd.Flags().Changed("dense-threshold"):
		if f.dense < 0 || f.dense > 1 {
			return request{}, fmt.Errorf("%w: --dense-threshold must be within [0,1]", ErrUsage)
		}
		if f.dense > 0 {
			req.opts = append(req.opts, builder.WithDenseThreshold(f.dense))
		}
	default:
		req.opts = append(req.opts, cfg.BuilderOptions()...)
	}

	return req, nil
}

// parseNumEdges accepts an integer within [V-1, V*(V-1)/2], or "", "c" and
// "complete" for the complete graph.
func parseNumEdges(s string, v int) (int, error) {
	switch s {
	case "", "c", "complete":
		return core.CompleteEdges(v), nil
	}
	e, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: -n must either be an integer or 'complete'", ErrUsage)
	}
	if e > core.CompleteEdges(v) {
		return 0, fmt.Errorf("%w: -n may not be larger than NUM_VERTICES*(NUM_VERTICES-1)/2 (no self-loops or parallel edges)", ErrUsage)
	}
	if e < core.MinEdges(v) {
		return 0, fmt.Errorf("%w: -n may not be less than NUM_VERTICES-1 (graph must be connected)", ErrUsage)
	}

	return e, nil
}

func parseWeightRange(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: option -e requires its arguments to be in the form float,float", ErrUsage)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("%w: option -e requires its arguments to be in the form float,float", ErrUsage)
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("%w: option -e requires its arguments to be in the form float,float", ErrUsage)
	}
	if lo < 0 {
		return 0, 0, fmt.Errorf("%w: option -e requires minimum edge length to be >= 0.0", ErrUsage)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: option -e requires the minimum edge length <= maximum edge length", ErrUsage)
	}

	return lo, hi, nil
}

func parsePosRange(s string) (dims int, lo, hi float64, err error) {
	const form = "option --vertex-pos-range requires its arguments to be in the form int,float,float"
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUsage, form)
	}
	if dims, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUsage, form)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUsage, form)
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUsage, form)
	}
	if dims < 0 {
		return 0, 0, 0, fmt.Errorf("%w: option --vertex-pos-range requires a non-negative dimensionality", ErrUsage)
	}
	if lo > hi {
		return 0, 0, 0, fmt.Errorf("%w: option --vertex-pos-range requires MIN <= MAX", ErrUsage)
	}

	return dims, lo, hi, nil
}
