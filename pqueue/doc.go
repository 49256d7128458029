// Package pqueue provides a generic binary-heap priority queue with
// support for updating the priority of an element already in the queue.
//
// The queue associates each value with a key (its priority) and keeps an
// internal map from value to heap position, so UpdateKey reorders the
// heap in O(log n) instead of requiring a linear search. Values must
// therefore be comparable and unique within one queue.
//
// Min- and max-heaps share the implementation: the Kind chosen at
// construction decides whether the smallest or the largest key sits on
// top, using a single user-supplied comparison function.
//
// Complexity:
//
//	– Push:      O(log n)
//	– Pop:       O(log n)
//	– Peek:      O(1)
//	– UpdateKey: O(log n)
//	– Memory:    O(n) for the heap slice plus the position map.
//
// Errors (sentinel):
//
//	– ErrNilCompare     if the comparison function is nil.
//	– ErrEmptyQueue     if Pop or Peek is called on an empty queue.
//	– ErrDuplicateValue if Push is called with a value already enqueued.
//	– ErrValueNotFound  if UpdateKey references an unknown value.
//
// Example usage:
//
//	pq, _ := pqueue.New[int, string](pqueue.Min, 0, func(a, b int) int { return a - b })
//	_ = pq.Push("build", 3)
//	_ = pq.Push("test", 1)
//	v, k, _ := pq.Pop() // "test", 1
package pqueue
