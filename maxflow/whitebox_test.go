package maxflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stepInvariants asserts the two properties that must hold after every
// individual push and relabel, not only at termination: skew symmetry
// across each twin pair, and height validity — height(u) ≤ height(v)+1
// for every arc with positive residual capacity.
func stepInvariants(t *testing.T, g *Graph) {
	t.Helper()
	for i := 0; i+1 < len(g.edges); i += 2 {
		require.Equal(t, g.edges[i].Flow, -g.edges[i+1].Flow, "skew symmetry broken at pair %d", i)
	}
	for i := range g.edges {
		e := &g.edges[i]
		if e.Cap-e.Flow <= 0 {
			continue
		}
		require.LessOrEqual(t, g.nodes[e.From].height, g.nodes[e.To].height+1,
			"height validity broken on residual arc %d→%d", e.From, e.To)
	}
}

// TestInvariantsEveryStep drives the discharge loop by hand on the CLRS
// network and validates the intermediate-state invariants after the
// preflow and after every push-or-relabel step.
func TestInvariantsEveryStep(t *testing.T) {
	g, err := NewGraph(6)
	require.NoError(t, err)
	for _, e := range [][3]int64{
		{0, 1, 16}, {0, 2, 13}, {1, 3, 12}, {2, 1, 4}, {2, 4, 14},
		{3, 2, 9}, {3, 5, 20}, {4, 3, 7}, {4, 5, 4},
	} {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	r := &runner{
		g:          g,
		source:     0,
		sink:       5,
		queue:      newFIFO(len(g.nodes)),
		opts:       DefaultOptions(),
		deadHeight: 2*len(g.nodes) + 1,
	}

	r.initPreflow()
	stepInvariants(t, g)

	steps := 0
	for !r.queue.empty() {
		uID := int(r.queue.dequeue())
		if !r.push(uID) {
			r.relabel(uID)
		}
		stepInvariants(t, g)

		u := &g.nodes[uID]
		require.GreaterOrEqual(t, u.excess, int64(0), "excess must never go negative")
		if u.excess > 0 && u.height < r.deadHeight {
			r.queue.enqueue(int32(uID))
		}

		steps++
		require.Less(t, steps, 100000, "discharge loop failed to terminate")
	}

	require.Equal(t, int64(23), g.nodes[5].excess)
	// Heights of source and sink stay pinned for the whole run.
	require.Equal(t, len(g.nodes), g.nodes[0].height)
	require.Zero(t, g.nodes[5].height)
}

// TestCursorResumesAfterPush verifies the current-arc cursor: a push must
// leave the cursor on the arc it used, and a failed scan must reset it.
func TestCursorResumesAfterPush(t *testing.T) {
	g, err := NewGraph(4)
	require.NoError(t, err)
	// Node 1 has two outgoing arcs; only the second is admissible after
	// heights are forced below.
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(1, 3, 10))

	r := &runner{g: g, source: 0, sink: 3, queue: newFIFO(4), opts: DefaultOptions(), deadHeight: 9}
	r.initPreflow()

	// Make only 1→3 admissible: height(1)=1, height(3)=0, height(2)=5.
	g.nodes[1].height = 1
	g.nodes[2].height = 5

	require.True(t, r.push(1))
	// adj of node 1: twin of 0→1 (index 0), then 1→2, then 1→3 (index 2).
	require.Equal(t, 2, g.nodes[1].arc, "cursor must stay on the arc that carried the push")

	// Exhaust the node: no excess left, but the scan from the cursor
	// finds 1→3 admissible again with delta 0 impossible — raise heights
	// so nothing is admissible and the scan must fail and reset.
	g.nodes[3].height = 9
	require.False(t, r.push(1))
	require.Zero(t, g.nodes[1].arc, "failed scan must reset the cursor for the post-relabel pass")
}

// TestRelabelDeadEnd covers the no-residual-neighbor policy: the node is
// lifted past every admissible height and never re-enqueued.
func TestRelabelDeadEnd(t *testing.T) {
	g, err := NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0)) // zero capacity: no residual arc 0→1

	r := &runner{g: g, source: 1, sink: 2, queue: newFIFO(3), opts: DefaultOptions(), deadHeight: 7}

	// Node 0's only arcs are the saturated forward edge (residual 0) and
	// nothing else; relabel must park it at the dead height.
	r.relabel(0)
	require.Equal(t, 7, g.nodes[0].height)
}
