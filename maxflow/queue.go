package maxflow

// fifo is a growable circular queue of node ids, used by the engine to
// pick the next active node. Enqueue appends at the back, dequeue removes
// the oldest entry. When an enqueue would make back collide with front,
// the buffer doubles and the wrapped prefix is relocated behind the old
// tail, preserving FIFO order.
//
// The engine checks empty() before every dequeue, so the panic inside
// dequeue is a programming-error guard, not a reachable state.
type fifo struct {
	buf   []int32
	front int
	back  int
}

// newFIFO creates a queue with room for n entries (at least 2: one slot
// stays unused so that front == back always means "empty").
func newFIFO(n int) *fifo {
	if n < 2 {
		n = 2
	}

	return &fifo{buf: make([]int32, n)}
}

// empty reports whether the queue holds no entries.
func (q *fifo) empty() bool { return q.front == q.back }

// enqueue appends id at the back, growing the buffer if the ring is full.
func (q *fifo) enqueue(id int32) {
	q.buf[q.back] = id
	q.back = (q.back + 1) % len(q.buf)
	if q.back == q.front {
		q.grow()
	}
}

// dequeue removes and returns the oldest entry.
func (q *fifo) dequeue() int32 {
	if q.empty() {
		panic("maxflow: dequeue on empty queue")
	}
	id := q.buf[q.front]
	q.front = (q.front + 1) % len(q.buf)

	return id
}

// grow doubles the buffer and moves the wrapped prefix [0, back) to the
// slots just past the old capacity, keeping entries in arrival order.
func (q *fifo) grow() {
	old := len(q.buf)
	q.buf = append(q.buf, make([]int32, old)...)
	copy(q.buf[old:], q.buf[:q.back])
	q.back += old
}
