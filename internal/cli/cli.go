// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstgen/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrUsage marks a command line that cannot be acted on.
var ErrUsage = errors.New("usage")

// stdoutName selects standard output as the destination of -o.
const stdoutName = "stdout"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mstgen",
		Short: "mstgen generates random connected weighted graphs for MST tools",
		Long: `mstgen writes random connected, simple, undirected weighted graphs with an
exact number of vertices and edges, in the edge-list format read by MST
solvers. Every input is reproducible from its seed and is logged in a
catalog unless told otherwise.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.densityCommand())
	root.AddCommand(c.catalogCommand())

	return root
}
