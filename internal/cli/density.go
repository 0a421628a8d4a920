// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/core"
)

// densityCommand prints the density figures of a would-be graph.
func (c *CLI) densityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "density NUM_VERTICES NUM_EDGES",
		Short: "Print the density and percent of max density of a graph shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return fmt.Errorf("%w: NUM_VERTICES must be a positive integer", ErrUsage)
			}
			e, err := strconv.Atoi(args[1])
			if err != nil || e < 0 {
				return fmt.Errorf("%w: NUM_EDGES must be a non-negative integer", ErrUsage)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "density=%g pom=%g\n",
				core.Density(v, e), core.PercentOfMax(v, e))
			return err
		},
	}
}
