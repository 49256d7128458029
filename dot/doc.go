// Package dot renders flow networks as Graphviz diagrams.
//
// ToDOT serializes a maxflow.Graph to DOT text with every originally
// supplied edge labelled flow/capacity; synthetic reverse edges are
// never drawn. Source and sink nodes are highlighted, and saturated
// edges (flow equal to capacity) are drawn bold so a min cut is visible
// at a glance on a solved network.
//
// RenderSVG turns the DOT text into an SVG via the embedded Graphviz
// engine, with no external binary required.
package dot
