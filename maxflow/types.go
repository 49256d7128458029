package maxflow

import (
	"context"
	"errors"
)

// Sentinel errors returned by graph construction and Solve.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to Solve.
	ErrNilGraph = errors.New("maxflow: graph is nil")

	// ErrBadNodeCount indicates that NewGraph was called with n ≤ 0.
	ErrBadNodeCount = errors.New("maxflow: node count must be positive")

	// ErrNodeRange indicates that a node id lies outside [0, n).
	ErrNodeRange = errors.New("maxflow: node id out of range")

	// ErrNegativeCapacity indicates that AddEdge was given a capacity < 0.
	ErrNegativeCapacity = errors.New("maxflow: negative edge capacity")

	// ErrSameSourceSink indicates that source and sink are the same node.
	ErrSameSourceSink = errors.New("maxflow: source and sink must differ")

	// ErrSolved indicates a second Solve on the same graph, or an AddEdge
	// after solving has begun. A Graph is a single-shot instance.
	ErrSolved = errors.New("maxflow: graph already solved")
)

// Options configures a single Solve run.
//
//	– Ctx:     checked once per discharge iteration; cancellation aborts
//	           the run with the context's error.
//	– Verbose: if true, print each relabel step (debugging aid).
type Options struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns production-safe defaults:
// background context, no verbose output.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// normalize fills the zero values that DefaultOptions would have set,
// so a literal Options{} behaves identically.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
