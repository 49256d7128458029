package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/maxflow"
)

// mustGraph builds a graph from an edge list, failing the test on any
// construction error.
func mustGraph(t *testing.T, n int, edges [][3]int64) *maxflow.Graph {
	t.Helper()
	g, err := maxflow.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// checkCapacity asserts 0 ≤ flow ≤ cap on every forward edge and the
// mirrored bounds on every synthetic twin.
func checkCapacity(t *testing.T, g *maxflow.Graph) {
	t.Helper()
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.Synthetic {
			require.LessOrEqual(t, e.Flow, int64(0), "twin %d→%d flow must be ≤ 0", e.From, e.To)
			continue
		}
		require.GreaterOrEqual(t, e.Flow, int64(0), "edge %d→%d flow must be ≥ 0", e.From, e.To)
		require.LessOrEqual(t, e.Flow, e.Cap, "edge %d→%d flow exceeds capacity", e.From, e.To)
	}
}

// checkSkewSymmetry asserts flow(e) == −flow(twin(e)) across the arena.
// Pairs occupy adjacent slots, forward first.
func checkSkewSymmetry(t *testing.T, g *maxflow.Graph) {
	t.Helper()
	for i := 0; i+1 < g.EdgeCount(); i += 2 {
		fwd, twin := g.Edge(i), g.Edge(i+1)
		require.Equal(t, fwd.Flow, -twin.Flow,
			"edge %d→%d and its twin violate skew symmetry", fwd.From, fwd.To)
	}
}

// checkConservation asserts that every node other than source and sink
// has equal inflow and outflow over the forward edges.
func checkConservation(t *testing.T, g *maxflow.Graph, res *maxflow.Result, source, sink int) {
	t.Helper()
	net := make([]int64, g.NodeCount())
	for _, f := range res.Flows {
		net[f.From] -= f.Flow
		net[f.To] += f.Flow
	}
	for id, d := range net {
		if id == source || id == sink {
			continue
		}
		require.Zero(t, d, "node %d has inflow ≠ outflow", id)
	}
}

// checkNoAugmentingPath runs a BFS over positive-residual arcs and fails
// if the sink is still reachable from the source — i.e. the flow is not
// maximum.
func checkNoAugmentingPath(t *testing.T, g *maxflow.Graph, source, sink int) {
	t.Helper()
	require.False(t, residualReachable(g, source)[sink],
		"found an augmenting path from source to sink; flow is not maximum")
}

// residualReachable returns the set of nodes reachable from start over
// arcs with positive residual capacity.
func residualReachable(g *maxflow.Graph, start int) []bool {
	seen := make([]bool, g.NodeCount())
	seen[start] = true
	frontier := []int{start}
	for len(frontier) > 0 {
		u := frontier[0]
		frontier = frontier[1:]
		for i := 0; i < g.EdgeCount(); i++ {
			e := g.Edge(i)
			if e.From != u || e.Residual() <= 0 || seen[e.To] {
				continue
			}
			seen[e.To] = true
			frontier = append(frontier, e.To)
		}
	}

	return seen
}

// cutCapacity sums the capacity of forward edges crossing the cut
// (S, V∖S) where S is the residual-reachable side of the source.
// By max-flow/min-cut this must equal the computed flow value.
func cutCapacity(g *maxflow.Graph, source int) int64 {
	inS := residualReachable(g, source)
	var total int64
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if !e.Synthetic && inS[e.From] && !inS[e.To] {
			total += e.Cap
		}
	}

	return total
}

// checkAll bundles the post-solve properties every scenario must satisfy.
func checkAll(t *testing.T, g *maxflow.Graph, res *maxflow.Result, source, sink int) {
	t.Helper()
	checkCapacity(t, g)
	checkSkewSymmetry(t, g)
	checkConservation(t, g, res, source, sink)
	checkNoAugmentingPath(t, g, source, sink)
	require.Equal(t, res.MaxFlow, cutCapacity(g, source),
		"flow value must equal the capacity of the residual min cut")
}
