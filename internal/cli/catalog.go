// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/catalog"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// catalogCommand creates the catalog inspection command.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the log of generated inputs",
	}

	cmd.AddCommand(c.catalogListCommand())

	return cmd
}

// catalogListCommand creates the "catalog list" subcommand.
func (c *CLI) catalogListCommand() *cobra.Command {
	var (
		listFile string
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated inputs, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, _, err := c.openCatalog(ctx, listFile)
			if err != nil {
				return err
			}
			defer cat.Close()

			var recs []catalog.Record
			if cmd.Flags().Changed("seed") {
				recs, err = cat.FindBySeed(ctx, seed)
			} else {
				recs, err = cat.List(ctx)
			}
			if errors.Is(err, catalog.ErrNotFound) {
				loggerFromContext(ctx).Warn("no inputs with that seed", "seed", seed)
				return nil
			}
			if err != nil {
				return err
			}

			return printRecords(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVarP(&listFile, "inputs-list-file", "l", "", "catalog database [default: from config]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "only inputs generated with this seed")

	return cmd
}

func printRecords(w io.Writer, recs []catalog.Record) error {
	header := fmt.Sprintf("%-19s %5s %8s %4s %4s %12s %12s %6s %20s  %s",
		"created", "V", "E", "dim", "prec", "min", "max", "mst", "seed", "path")
	if _, err := fmt.Fprintln(w, styleHeader.Render(header)); err != nil {
		return err
	}
	for _, r := range recs {
		mst := "-"
		if r.MSTWeight != catalog.UnknownMSTWeight {
			mst = fmt.Sprintf("%g", r.MSTWeight)
		}
		_, err := fmt.Fprintf(w, "%-19s %5d %8d %4d %4d %12g %12g %6s %20d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Vertices, r.Edges,
			r.Dimensions, r.Precision, r.Min, r.Max, mst, r.Seed, r.Path)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d inputs", len(recs))))
	return err
}

// openCatalog opens listFile, or the configured catalog when empty, creating
// its directory if needed. It returns the path actually opened.
func (c *CLI) openCatalog(ctx context.Context, listFile string) (*catalog.Catalog, string, error) {
	path := listFile
	if path == "" {
		path = c.cfg.CatalogPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", fmt.Errorf("create catalog dir: %w", err)
	}
	cat, err := catalog.Open(ctx, path)
	if err != nil {
		return nil, "", err
	}

	return cat, path, nil
}
