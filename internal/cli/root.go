package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the algokit CLI under ctx and returns an error if any
// command fails.
//
// The root command wires a logger into the command context based on
// the --verbose flag: info level by default, debug with -v.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "algokit",
		Short:        "algokit solves and renders maximum-flow networks",
		Long:         `algokit is a CLI for the push-relabel maximum-flow engine: it reads flow networks from edge-list or TOML files, computes the maximum flow, and renders the result as a table, JSON, DOT, or SVG.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("algokit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
