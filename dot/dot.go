package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/algokit/maxflow"
)

// Options configures flow-network rendering.
type Options struct {
	// Horizontal lays the diagram out left-to-right instead of
	// top-to-bottom, which usually suits source→sink networks better.
	Horizontal bool
}

// ToDOT converts a flow network to Graphviz DOT format. Node ids are
// the numeric ids used at construction; the source is drawn green, the
// sink red, and saturated edges bold. The resulting string can be
// rendered with [RenderSVG].
func ToDOT(g *maxflow.Graph, source, sink int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph flow {\n")
	if opts.Horizontal {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for id := 0; id < g.NodeCount(); id++ {
		switch id {
		case source:
			fmt.Fprintf(&buf, "  %d [fillcolor=palegreen, xlabel=\"source\"];\n", id)
		case sink:
			fmt.Fprintf(&buf, "  %d [fillcolor=lightcoral, xlabel=\"sink\"];\n", id)
		default:
			fmt.Fprintf(&buf, "  %d;\n", id)
		}
	}

	buf.WriteString("\n")
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.Synthetic {
			continue
		}
		attrs := fmt.Sprintf("label=\"%d/%d\"", e.Flow, e.Cap)
		if e.Cap > 0 && e.Flow == e.Cap {
			attrs += ", style=bold"
		}
		fmt.Fprintf(&buf, "  %d -> %d [%s];\n", e.From, e.To, attrs)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders DOT text to SVG using the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dotText string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotText))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
