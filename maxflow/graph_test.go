package maxflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAddEdgeTwinPairing verifies the arena layout: every AddEdge yields
// a forward/twin pair at adjacent indices, linked symmetrically, with the
// twin carrying zero capacity and the Synthetic mark.
func TestAddEdgeTwinPairing(t *testing.T) {
	g, err := NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 3))

	require.Equal(t, 4, g.EdgeCount())
	for i := 0; i < g.EdgeCount(); i += 2 {
		fwd, twin := &g.edges[i], &g.edges[i+1]
		require.False(t, fwd.Synthetic)
		require.True(t, twin.Synthetic)
		require.Equal(t, int32(i+1), fwd.twin)
		require.Equal(t, int32(i), twin.twin)
		require.Equal(t, fwd.From, twin.To)
		require.Equal(t, fwd.To, twin.From)
		require.Zero(t, twin.Cap)
	}
}

// TestAdjacencyReferencesNotCopies verifies that adjacency lists hold
// arena indices: mutating through one endpoint is visible through the
// other (the aliasing-through-duplication hazard the arena design rules
// out).
func TestAdjacencyReferencesNotCopies(t *testing.T) {
	g, err := NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 9))

	ei := g.nodes[0].adj[0]
	g.edges[ei].Flow = 4
	require.Equal(t, int64(4), g.edges[g.nodes[1].adj[0]^1].Flow,
		"both adjacency lists must address the same arena entry")
}

// TestParallelEdgesKeptSeparate verifies parallel and loop edges stay
// independent pairs.
func TestParallelEdgesKeptSeparate(t *testing.T) {
	g, err := NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 1, 2)) // self-loop

	require.Equal(t, 6, g.EdgeCount())
	require.Len(t, g.nodes[0].adj, 2)
	// Node 1: two twins plus both halves of the loop pair.
	require.Len(t, g.nodes[1].adj, 4)
}

// TestEdgeAccessorCopies verifies Edge(i) hands out copies.
func TestEdgeAccessorCopies(t *testing.T) {
	g, err := NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	e := g.Edge(0)
	e.Flow = 99
	require.Zero(t, g.Edge(0).Flow)
}

// TestResidual verifies the residual helper.
func TestResidual(t *testing.T) {
	e := Edge{Cap: 5, Flow: 2}
	require.Equal(t, int64(3), e.Residual())
	tw := Edge{Cap: 0, Flow: -2}
	require.Equal(t, int64(2), tw.Residual())
}
