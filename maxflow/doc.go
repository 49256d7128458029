// Package maxflow computes the maximum flow between two nodes of a
// capacitated directed graph using the generic push-relabel method with
// FIFO active-node selection.
//
// Unlike the augmenting-path family (Ford–Fulkerson, Edmonds–Karp, Dinic),
// push-relabel works locally: it maintains a preflow in which nodes may
// temporarily hold more inflow than outflow (their "excess"), and moves
// that excess downhill along a system of integer height labels until every
// node between source and sink is balanced again. The excess accumulated
// at the sink is the maximum flow.
//
// The algorithm, step by step:
//
//  1. initPreflow — the source is lifted to height n and every edge
//     leaving it is saturated; each destination that gains excess becomes
//     active and enters a FIFO queue.
//  2. push — an active node sends min(excess, residual) units along an
//     admissible edge: positive residual capacity and height(u) equal to
//     height(v)+1. Each node keeps a current-arc cursor into its adjacency
//     list so repeated pushes never rescan exhausted edges; the cursor is
//     reset only when the scan fails (just before a relabel). This cursor
//     is what gives the amortized bound on total scan work.
//  3. relabel — when no admissible edge exists, the node is lifted to one
//     more than the minimum height among its residual neighbors.
//  4. The discharge loop repeats dequeue → push-or-relabel → re-enqueue
//     while the node still has excess, until the queue drains.
//
// # Graph model
//
// Graph owns a flat arena of edges. AddEdge(u, v, cap) creates the forward
// edge together with a zero-capacity reverse twin at the adjacent arena
// slot; each edge stores its twin's index, so twin lookup is O(1) and no
// pointer aliasing is possible. The twin's flow is the exact negation of
// the forward flow at all times (skew symmetry). Self-loops and parallel
// edges are permitted and kept as independent pairs.
//
// # Invariants
//
//	– 0 ≤ flow(e) ≤ cap(e) for every forward edge (mirrored on the twin).
//	– flow(e) = −flow(twin(e)) after every push.
//	– height(source) = n and height(sink) = 0, fixed for the whole run.
//	– For every residual edge (u,v): height(u) ≤ height(v) + 1.
//
// The last invariant (height validity) is what guarantees both
// correctness and termination.
//
// # Errors
//
//	ErrNilGraph          - nil *Graph passed to Solve.
//	ErrBadNodeCount      - NewGraph called with a non-positive node count.
//	ErrNodeRange         - an edge endpoint or source/sink id is out of range.
//	ErrNegativeCapacity  - AddEdge called with a negative capacity.
//	ErrSameSourceSink    - source and sink refer to the same node.
//	ErrSolved            - Solve called twice, or AddEdge after Solve.
//	context.Canceled / context.DeadlineExceeded - Options.Ctx canceled.
//
// Complexity:
//
//	– Time:  O(V³) with FIFO active-node selection.
//	– Space: O(V + E) for the arena, adjacency lists and queue.
//
// See example_test.go for runnable examples.
package maxflow
