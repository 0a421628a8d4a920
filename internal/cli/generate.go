// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/builder"
	"github.com/katalvlaran/mstgen/catalog"
	"github.com/katalvlaran/mstgen/core"
	"github.com/katalvlaran/mstgen/edgelist"
	"github.com/katalvlaran/mstgen/rng"
)

// generateOptions holds flags for the generate command.
type generateOptions struct {
	shape          shapeFlags
	seed           int64
	output         string
	mayUseExisting bool
	dontGenerate   bool
	dontTrack      bool
	listFile       string
	quiet          bool
}

// generateCommand creates the generate command for a single graph.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate NUM_VERTICES",
		Short: "Generate one random connected weighted graph",
		Long: `Generate writes a connected simple graph with NUM_VERTICES vertices and the
requested number of edges. Without -o the graph goes to
<inputs>/<V>-<E>-<SEED>.g, or <inputs>/other-<SEED>.g when -e or
--vertex-pos-range is given. Use -o stdout to print it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.quiet {
				c.SetLogLevel(log.WarnLevel)
			}
			return c.runGenerate(cmd, args[0], opts)
		},
	}

	opts.shape.bind(cmd)
	fs := cmd.Flags()
	fs.Int64VarP(&opts.seed, "random-seed", "r", 0, "random seed [default: drawn from OS entropy]")
	fs.StringVarP(&opts.output, "output-file", "o", "", "output path, or 'stdout'")
	fs.BoolVarP(&opts.mayUseExisting, "may-use-existing", "m", false, "do nothing if the output file already exists")
	fs.BoolVarP(&opts.dontGenerate, "dont-generate", "d", false, "only compute the name and log the input")
	fs.BoolVarP(&opts.dontTrack, "dont-track", "t", false, "do not log this input in the catalog")
	fs.StringVarP(&opts.listFile, "inputs-list-file", "l", "", "catalog database to log to [default: from config]")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "log warnings and errors only")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, vertexArg string, opts generateOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.dontGenerate {
		if opts.dontTrack {
			return fmt.Errorf("%w: -t cannot be specified with --dont-generate", ErrUsage)
		}
		if opts.output != "" {
			return fmt.Errorf("%w: -o cannot be specified with --dont-generate", ErrUsage)
		}
	}

	req, err := opts.shape.parse(cmd, vertexArg, c.cfg)
	if err != nil {
		return err
	}

	seed := opts.seed
	if !cmd.Flags().Changed("random-seed") {
		if seed, err = rng.EntropySeed(); err != nil {
			return err
		}
	}

	path := opts.output
	if path == "" {
		path = edgelist.FileName(c.cfg.InputsDir, req.spec.Vertices, req.spec.Edges, seed, req.custom)
	}

	logger.Info("requested",
		"density", core.Density(req.spec.Vertices, req.spec.Edges),
		"pom", core.PercentOfMax(req.spec.Vertices, req.spec.Edges))

	rec := req.record(seed, path, time.Now())
	if opts.dontGenerate {
		logger.Info("graph not saved (as requested)")
	} else {
		if opts.mayUseExisting && path != stdoutName {
			if _, err := os.Stat(path); err == nil {
				logger.Info("skipping input generation: file already exists", "path", path)
				return nil
			}
		}

		prog := newProgress(logger)
		sum, err := writeGraph(req, seed, path, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger.Debug("generated", "strategy", sum.Strategy, "tree", sum.TreeEdges,
			"sampled", sum.SampledEdges, "rejections", sum.Rejections)
		prog.done("graph saved", "path", path)
		rec = catalog.RecordFromSummary(sum, path, rec.CreatedAt)
	}

	if opts.dontTrack {
		return nil
	}

	return c.track(ctx, opts.listFile, rec)
}

// writeGraph generates req with seed and writes it with its footer to path,
// or to stdout when path is "stdout".
func writeGraph(req request, seed int64, path string, stdout io.Writer) (builder.Summary, error) {
	opts := make([]builder.BuilderOption, 0, len(req.opts)+1)
	opts = append(opts, req.opts...)
	set, sum, err := builder.Generate(req.spec, req.model, append(opts, builder.WithSeed(seed))...)
	if err != nil {
		return builder.Summary{}, err
	}

	if path == stdoutName {
		return sum, writeEdgeList(stdout, set, sum)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return builder.Summary{}, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return builder.Summary{}, fmt.Errorf("create output: %w", err)
	}
	if err := writeEdgeList(f, set, sum); err != nil {
		_ = f.Close()
		return builder.Summary{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return builder.Summary{}, fmt.Errorf("close %s: %w", path, err)
	}

	return sum, nil
}

func writeEdgeList(w io.Writer, set *core.EdgeSet, sum builder.Summary) error {
	if err := edgelist.Write(w, set, sum.Precision); err != nil {
		return err
	}
	return edgelist.WriteFooter(w, sum, time.Now())
}

// record describes req without generating it, for --dont-generate.
func (r request) record(seed int64, path string, now time.Time) catalog.Record {
	lo, hi, precision := r.bounds()
	return catalog.Record{
		CreatedAt:  now,
		Precision:  precision,
		Dimensions: r.dimensions(),
		Min:        lo,
		Max:        hi,
		Vertices:   r.spec.Vertices,
		Edges:      r.spec.Edges,
		Seed:       seed,
		MSTWeight:  catalog.UnknownMSTWeight,
		Path:       path,
	}
}

// track appends recs to the catalog at listFile, or the configured one.
func (c *CLI) track(ctx context.Context, listFile string, recs ...catalog.Record) error {
	cat, path, err := c.openCatalog(ctx, listFile)
	if err != nil {
		return err
	}
	defer cat.Close()

	for _, rec := range recs {
		if _, err := cat.Add(ctx, rec); err != nil {
			return err
		}
	}
	loggerFromContext(ctx).Info("logged", "catalog", path, "records", len(recs))

	return nil
}
