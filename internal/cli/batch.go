// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstgen/catalog"
	"github.com/katalvlaran/mstgen/edgelist"
	"github.com/katalvlaran/mstgen/rng"
)

// batchOptions holds flags for the batch command.
type batchOptions struct {
	shape     shapeFlags
	count     int
	seed      int64
	workers   int
	dontTrack bool
	listFile  string
}

// batchCommand creates the batch command, which writes many graphs of the
// same shape under the inputs directory.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch NUM_VERTICES",
		Short: "Generate several graphs of the same shape concurrently",
		Long: `Batch generates --count graphs that differ only in their seed. With
--random-seed S the seeds are S, S+1, ...; otherwise each is drawn from OS
entropy. Files are named as by generate and logged in one catalog pass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args[0], opts)
		},
	}

	opts.shape.bind(cmd)
	fs := cmd.Flags()
	fs.IntVar(&opts.count, "count", 1, "number of graphs")
	fs.Int64VarP(&opts.seed, "random-seed", "r", 0, "first seed [default: each drawn from OS entropy]")
	fs.IntVar(&opts.workers, "workers", 0, "concurrent generations [default: from config]")
	fs.BoolVarP(&opts.dontTrack, "dont-track", "t", false, "do not log these inputs in the catalog")
	fs.StringVarP(&opts.listFile, "inputs-list-file", "l", "", "catalog database to log to [default: from config]")

	return cmd
}

func (c *CLI) runBatch(cmd *cobra.Command, vertexArg string, opts batchOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("%w: --count must be at least 1", ErrUsage)
	}
	workers := c.cfg.Workers
	if cmd.Flags().Changed("workers") {
		if opts.workers < 1 {
			return fmt.Errorf("%w: --workers must be at least 1", ErrUsage)
		}
		workers = opts.workers
	}

	req, err := opts.shape.parse(cmd, vertexArg, c.cfg)
	if err != nil {
		return err
	}

	seeds, err := batchSeeds(opts.count, opts.seed, cmd.Flags().Changed("random-seed"))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	recs := make([]catalog.Record, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			path := edgelist.FileName(c.cfg.InputsDir, req.spec.Vertices, req.spec.Edges, seed, req.custom)
			sum, err := writeGraph(req, seed, path, nil)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			logger.Debug("graph saved", "path", path)
			recs[i] = catalog.RecordFromSummary(sum, path, time.Now())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	prog.done("batch saved", "graphs", len(recs), "dir", c.cfg.InputsDir)

	if opts.dontTrack {
		return nil
	}

	return c.track(cmd.Context(), opts.listFile, recs...)
}

// batchSeeds returns base, base+1, ... when fixed, else entropy seeds.
func batchSeeds(count int, base int64, fixed bool) ([]int64, error) {
	seeds := make([]int64, count)
	for i := range seeds {
		if fixed {
			seeds[i] = base + int64(i)
			continue
		}
		s, err := rng.EntropySeed()
		if err != nil {
			return nil, err
		}
		seeds[i] = s
	}

	return seeds, nil
}
