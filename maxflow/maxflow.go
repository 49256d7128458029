package maxflow

import (
	"fmt"
	"math"
)

// EdgeFlow reports the solved flow on one originally-supplied edge.
// Synthetic twins are never reported.
type EdgeFlow struct {
	From, To int
	Cap      int64
	Flow     int64
}

// Result holds the outcome of one Solve run.
type Result struct {
	// MaxFlow is the total flow routed from source to sink,
	// read as the excess accumulated at the sink.
	MaxFlow int64

	// Flows lists every forward edge in insertion order with its
	// resulting flow value.
	Flows []EdgeFlow
}

// Solve computes the maximum flow from source to sink in g using the
// FIFO push-relabel method. It mutates g (heights, excess, edge flows)
// and marks it solved; a Graph is a single-shot instance.
//
// It returns:
//   - res: the flow value and the per-edge flow assignment
//   - err: ErrNilGraph, ErrNodeRange, ErrSameSourceSink, ErrSolved,
//     or the context's error if Options.Ctx is canceled
//
// Steps:
//  1. Validate inputs (O(1)).
//  2. initPreflow: lift the source to height n and saturate every edge
//     leaving it, activating the destinations (O(deg(source))).
//  3. Discharge loop: dequeue an active node, try a push from its saved
//     current-arc cursor, relabel when the scan fails, re-enqueue while
//     excess remains (O(V³) total with FIFO selection).
//  4. Read the flow value as the sink's excess and collect the per-edge
//     assignment (O(E)).
//
// Complexity:
//
//	Time:   O(V³)
//	Memory: O(V) beyond the graph itself (the active queue).
func Solve(g *Graph, source, sink int, opts Options) (*Result, error) {
	opts.normalize()

	// 1) Validation. Malformed input is a construction-boundary error;
	//    the engine itself never observes it.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.solved {
		return nil, ErrSolved
	}
	if source < 0 || source >= len(g.nodes) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrNodeRange, source, len(g.nodes))
	}
	if sink < 0 || sink >= len(g.nodes) {
		return nil, fmt.Errorf("%w: sink=%d, n=%d", ErrNodeRange, sink, len(g.nodes))
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	r := &runner{
		g:      g,
		source: source,
		sink:   sink,
		queue:  newFIFO(len(g.nodes)),
		opts:   opts,
		// Useful heights never exceed 2n-1; anything above marks a node
		// that can never become admissible again (see relabel).
		deadHeight: 2*len(g.nodes) + 1,
	}

	// 2) Preflow, 3) discharge.
	r.initPreflow()
	if err := r.discharge(); err != nil {
		return nil, err
	}

	// 4) The sink's excess is the maximum flow.
	g.maxFlow = g.nodes[sink].excess
	g.solved = true

	res := &Result{MaxFlow: g.maxFlow, Flows: make([]EdgeFlow, 0, len(g.edges)/2)}
	for i := range g.edges {
		e := &g.edges[i]
		if e.Synthetic {
			continue
		}
		res.Flows = append(res.Flows, EdgeFlow{From: e.From, To: e.To, Cap: e.Cap, Flow: e.Flow})
	}

	return res, nil
}

// runner holds the mutable state of a single push-relabel execution.
type runner struct {
	g          *Graph
	source     int
	sink       int
	queue      *fifo
	opts       Options
	deadHeight int
}

// initPreflow pins height(source) = n, saturates every edge leaving the
// source (twin flow set to the negation), credits each destination's
// excess, and enqueues each destination exactly once as it transitions
// from zero to positive excess. Source and sink never enter the queue.
// This is the only blanket saturation; all later changes are incremental.
func (r *runner) initPreflow() {
	g := r.g
	g.nodes[r.source].height = len(g.nodes)

	for _, ei := range g.nodes[r.source].adj {
		e := &g.edges[ei]
		if e.Synthetic || e.Cap == 0 {
			continue // twins of incoming edges, and nothing to saturate
		}
		e.Flow = e.Cap
		g.edges[e.twin].Flow = -e.Cap

		v := &g.nodes[e.To]
		v.excess += e.Cap
		if v.excess == e.Cap && e.To != r.source && e.To != r.sink {
			r.queue.enqueue(int32(e.To))
		}
	}
}

// push scans u's adjacency from its saved current-arc cursor for an
// admissible edge (positive residual and height(u) == height(v)+1) and
// moves min(excess, residual) units across it. The cursor is saved so
// the next push resumes where this one stopped; it is reset to the start
// only when the whole scan fails, right before the impending relabel.
// Reports whether a push occurred.
func (r *runner) push(uID int) bool {
	g := r.g
	u := &g.nodes[uID]

	for i := u.arc; i < len(u.adj); i++ {
		u.arc = i
		e := &g.edges[u.adj[i]]
		v := &g.nodes[e.To]
		if e.Cap-e.Flow <= 0 || u.height != v.height+1 {
			continue
		}

		delta := u.excess
		if rc := e.Cap - e.Flow; rc < delta {
			delta = rc
		}
		e.Flow += delta
		g.edges[e.twin].Flow -= delta // skew symmetry, always
		u.excess -= delta
		v.excess += delta

		// v just went from idle to active.
		if v.excess == delta && e.To != r.source && e.To != r.sink {
			r.queue.enqueue(int32(e.To))
		}

		return true
	}
	u.arc = 0

	return false
}

// relabel lifts u to one more than the minimum height among its residual
// neighbors. If u has no residual edge at all it is a structural dead end:
// its height is set past every admissible level and the discharge loop
// will never re-enqueue it. (Any node that ever received flow keeps
// residual capacity on the twin it was fed through, so this branch is
// unreachable on preflow-carrying nodes; it exists for completeness.)
func (r *runner) relabel(uID int) {
	g := r.g
	u := &g.nodes[uID]

	minHeight := math.MaxInt
	for _, ei := range u.adj {
		e := &g.edges[ei]
		if e.Cap-e.Flow > 0 && g.nodes[e.To].height < minHeight {
			minHeight = g.nodes[e.To].height
		}
	}
	if minHeight == math.MaxInt {
		u.height = r.deadHeight

		return
	}
	u.height = minHeight + 1

	if r.opts.Verbose {
		fmt.Printf("maxflow: relabel %d to height %d\n", uID, u.height)
	}
}

// discharge is the engine's main control: while active nodes remain,
// dequeue one, attempt a push, relabel on failure, and re-enqueue it if
// excess is still positive. Source and sink are filtered before entering
// the queue, so every dequeued node is a legitimate active node.
func (r *runner) discharge() error {
	g := r.g
	for !r.queue.empty() {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}

		uID := int(r.queue.dequeue())
		if !r.push(uID) {
			r.relabel(uID)
		}

		u := &g.nodes[uID]
		if u.excess > 0 && u.height < r.deadHeight {
			r.queue.enqueue(int32(uID))
		}
	}

	return nil
}
