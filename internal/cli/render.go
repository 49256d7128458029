package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/dot"
	"github.com/katalvlaran/algokit/maxflow"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format     string // output format: "dot" or "svg"
	output     string // output file path; stdout when empty
	solve      bool   // solve before rendering so edges carry flows
	horizontal bool   // lay the diagram out left-to-right
}

// newRenderCmd creates the render command: draw a network file as a
// Graphviz diagram, optionally solving it first so that edge labels
// carry the computed flows and saturated edges stand out.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{solve: true, horizontal: true}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a network file as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "svg" {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}

			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg (default), dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.solve, "solve", opts.solve, "solve the network before rendering")
	cmd.Flags().BoolVar(&opts.horizontal, "horizontal", opts.horizontal, "lay the diagram out left-to-right")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	nw, err := loadNetwork(path)
	if err != nil {
		return err
	}

	if opts.solve {
		p := newProgress(logger)
		res, err := maxflow.Solve(nw.graph, nw.source, nw.sink, maxflow.Options{Ctx: ctx})
		if err != nil {
			return err
		}
		p.done(fmt.Sprintf("max flow %d", res.MaxFlow))
	}

	dotText := dot.ToDOT(nw.graph, nw.source, nw.sink, dot.Options{Horizontal: opts.horizontal})

	var payload []byte
	if opts.format == "svg" {
		if payload, err = dot.RenderSVG(ctx, dotText); err != nil {
			return err
		}
	} else {
		payload = []byte(dotText)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(payload)

		return err
	}
	logger.Debug("writing output", "path", opts.output, "bytes", len(payload))

	return os.WriteFile(opts.output, payload, 0o644)
}
