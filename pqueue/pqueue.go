package pqueue

import "errors"

// Sentinel errors returned by queue operations.
var (
	// ErrNilCompare indicates that New was given a nil comparison function.
	ErrNilCompare = errors.New("pqueue: comparison function is nil")

	// ErrEmptyQueue indicates Pop or Peek on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateValue indicates Push of a value already in the queue.
	ErrDuplicateValue = errors.New("pqueue: value already enqueued")

	// ErrValueNotFound indicates UpdateKey of a value not in the queue.
	ErrValueNotFound = errors.New("pqueue: value not found")
)

// Kind selects which key wins the top of the heap.
type Kind int

const (
	// Min keeps the smallest key on top.
	Min Kind = iota

	// Max keeps the largest key on top.
	Max
)

// entry is one heap slot: a value and its priority key.
type entry[K, V any] struct {
	key   K
	value V
}

// Queue is a binary-heap priority queue with positional tracking.
// The zero value is not usable; construct with New.
type Queue[K any, V comparable] struct {
	cmp   func(a, b K) int // negative if a<b, zero if equal, positive if a>b
	kind  Kind
	heap  []entry[K, V]
	index map[V]int // value → position in heap
}

// New creates a queue of the given kind with room for capacity entries.
// The comparison function orders keys; it must be non-nil.
// Complexity: O(1).
func New[K any, V comparable](kind Kind, capacity int, cmp func(a, b K) int) (*Queue[K, V], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[K, V]{
		cmp:   cmp,
		kind:  kind,
		heap:  make([]entry[K, V], 0, capacity),
		index: make(map[V]int, capacity),
	}, nil
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[K, V]) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether value is currently enqueued.
func (q *Queue[K, V]) Contains(value V) bool {
	_, ok := q.index[value]

	return ok
}

// Push adds value with the given priority key.
// Returns ErrDuplicateValue if the value is already enqueued.
// Complexity: O(log n).
func (q *Queue[K, V]) Push(value V, key K) error {
	if _, ok := q.index[value]; ok {
		return ErrDuplicateValue
	}
	q.heap = append(q.heap, entry[K, V]{key: key, value: value})
	q.index[value] = len(q.heap) - 1
	q.siftUp(len(q.heap) - 1)

	return nil
}

// Peek returns the top value and key without removing them.
// Complexity: O(1).
func (q *Queue[K, V]) Peek() (V, K, error) {
	if len(q.heap) == 0 {
		var zv V
		var zk K

		return zv, zk, ErrEmptyQueue
	}

	return q.heap[0].value, q.heap[0].key, nil
}

// Pop removes and returns the top value and key.
// Complexity: O(log n).
func (q *Queue[K, V]) Pop() (V, K, error) {
	if len(q.heap) == 0 {
		var zv V
		var zk K

		return zv, zk, ErrEmptyQueue
	}
	top := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	delete(q.index, top.value)
	if last > 0 {
		q.siftDown(0)
	}

	return top.value, top.key, nil
}

// UpdateKey changes the priority of an enqueued value and restores heap
// order from its current position.
// Returns ErrValueNotFound if the value is not enqueued.
// Complexity: O(log n).
func (q *Queue[K, V]) UpdateKey(value V, key K) error {
	i, ok := q.index[value]
	if !ok {
		return ErrValueNotFound
	}
	q.heap[i].key = key
	// One of the two is a no-op, depending on the direction of change.
	q.siftUp(i)
	q.siftDown(i)

	return nil
}

// before reports whether the entry at i outranks the entry at j under
// the queue's kind.
func (q *Queue[K, V]) before(i, j int) bool {
	c := q.cmp(q.heap[i].key, q.heap[j].key)
	if q.kind == Max {
		return c > 0
	}

	return c < 0
}

// swap exchanges two heap slots and keeps the position map in sync.
func (q *Queue[K, V]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i].value] = i
	q.index[q.heap[j].value] = j
}

// siftUp moves the entry at i toward the root while it outranks its parent.
func (q *Queue[K, V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.before(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves the entry at i toward the leaves while a child outranks it.
func (q *Queue[K, V]) siftDown(i int) {
	n := len(q.heap)
	for {
		best := i
		if l := 2*i + 1; l < n && q.before(l, best) {
			best = l
		}
		if r := 2*i + 2; r < n && q.before(r, best) {
			best = r
		}
		if best == i {
			return
		}
		q.swap(i, best)
		i = best
	}
}
