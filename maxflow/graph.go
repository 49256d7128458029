package maxflow

import "fmt"

// Edge is one arc of the residual network. Every user-supplied edge is
// stored together with a synthetic zero-capacity twin in the opposite
// direction; the pair occupies adjacent slots of the Graph's edge arena
// and each half records the arena index of the other. Flow on the twin
// is the exact negation of the forward flow at all times.
type Edge struct {
	// From and To are the endpoint node ids of this arc.
	From, To int

	// Cap is the capacity of the arc. Synthetic twins always have Cap 0.
	Cap int64

	// Flow is the current flow on the arc. It is negative on a twin
	// whenever its forward partner carries positive flow.
	Flow int64

	// Synthetic marks the reverse twin of a user-supplied edge.
	Synthetic bool

	// twin is the arena index of the paired edge. Pairs sit at indices
	// 2k and 2k+1, so twin(i) == i^1; the field keeps lookup explicit.
	twin int32
}

// Residual returns the remaining capacity of the arc, Cap − Flow.
// A positive residual means more flow can still be routed here.
func (e *Edge) Residual() int64 { return e.Cap - e.Flow }

// node is the per-node algorithmic state. Nodes are addressed by dense
// index; the adjacency list stores edge arena indices, never copies.
type node struct {
	adj    []int32 // indices into Graph.edges, in insertion order
	arc    int     // current-arc cursor; reset only on a failed push scan
	height int     // height label; source is pinned to n, sink to 0
	excess int64   // inflow minus outflow under the current preflow
}

// Graph owns the node collection and the edge arena of one flow network.
// Populate it with AddEdge, then call Solve exactly once. A Graph is not
// safe for concurrent use and cannot be re-solved or grown after Solve.
type Graph struct {
	nodes   []node
	edges   []Edge
	maxFlow int64
	solved  bool
}

// NewGraph creates an empty flow network with n nodes, ids 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}

	return &Graph{nodes: make([]node, n)}, nil
}

// NodeCount returns the number of nodes the graph was created with.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the size of the edge arena. Every AddEdge contributes
// two entries: the forward edge and its synthetic twin.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns a copy of the arena entry at index i.
// Useful for inspection; mutating the copy has no effect on the graph.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// MaxFlow returns the flow value computed by Solve.
// It is zero (undefined) until Solve has completed.
func (g *Graph) MaxFlow() int64 { return g.maxFlow }

// AddEdge creates a directed edge u→v with the given capacity together
// with its zero-capacity reverse twin, links the two symmetrically, and
// appends each to its endpoint's adjacency list. This is the only
// mutation path before solving; edges can never be removed.
//
// Self-loops and parallel edges are permitted and kept as independent
// pairs — callers needing a simple graph must deduplicate upstream.
//
// Returns ErrNodeRange, ErrNegativeCapacity, or ErrSolved.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, cap int64) error {
	if g.solved {
		return ErrSolved
	}
	if u < 0 || u >= len(g.nodes) {
		return fmt.Errorf("%w: from=%d, n=%d", ErrNodeRange, u, len(g.nodes))
	}
	if v < 0 || v >= len(g.nodes) {
		return fmt.Errorf("%w: to=%d, n=%d", ErrNodeRange, v, len(g.nodes))
	}
	if cap < 0 {
		return fmt.Errorf("%w: edge %d→%d cap=%d", ErrNegativeCapacity, u, v, cap)
	}

	// Forward edge and twin occupy adjacent arena slots.
	fwd := int32(len(g.edges))
	g.edges = append(g.edges,
		Edge{From: u, To: v, Cap: cap, twin: fwd + 1},
		Edge{From: v, To: u, Cap: 0, Synthetic: true, twin: fwd},
	)
	g.nodes[u].adj = append(g.nodes[u].adj, fwd)
	g.nodes[v].adj = append(g.nodes[v].adj, fwd+1)

	return nil
}
