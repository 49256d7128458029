package bst

import "errors"

// Sentinel errors returned by tree operations.
var (
	// ErrNilCompare indicates that New was given a nil comparison function.
	ErrNilCompare = errors.New("bst: comparison function is nil")

	// ErrEmptyTree indicates Min or Max on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")
)

// node is one tree vertex with parent linkage for O(1) transplanting.
type node[T any] struct {
	data                T
	parent, left, right *node[T]
}

// Tree is an unbalanced binary search tree.
// The zero value is not usable; construct with New.
type Tree[T any] struct {
	cmp  func(a, b T) int // negative if a<b, zero if equal, positive if a>b
	root *node[T]
	size int
}

// New creates an empty tree ordered by cmp, which must be non-nil.
// Complexity: O(1).
func New[T any](cmp func(a, b T) int) (*Tree[T], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}

	return &Tree[T]{cmp: cmp}, nil
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool { return t.size == 0 }

// Insert adds value to the tree. Duplicates are kept and descend right.
// Complexity: O(h).
func (t *Tree[T]) Insert(value T) {
	n := &node[T]{data: value}
	var parent *node[T]
	cur := t.root
	for cur != nil {
		parent = cur
		if t.cmp(value, cur.data) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n.parent = parent
	switch {
	case parent == nil:
		t.root = n
	case t.cmp(value, parent.data) < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
}

// Search returns the stored value equal to key under the tree's
// ordering, and whether one was found.
// Complexity: O(h).
func (t *Tree[T]) Search(key T) (T, bool) {
	if n := t.find(key); n != nil {
		return n.data, true
	}
	var zero T

	return zero, false
}

// Contains reports whether a value equal to key is in the tree.
func (t *Tree[T]) Contains(key T) bool {
	return t.find(key) != nil
}

// Delete removes one value equal to key and reports whether a match
// was found.
// Complexity: O(h).
func (t *Tree[T]) Delete(key T) bool {
	z := t.find(key)
	if z == nil {
		return false
	}
	switch {
	case z.left == nil:
		t.transplant(z, z.right)
	case z.right == nil:
		t.transplant(z, z.left)
	default:
		// Two children: splice in the in-order successor.
		y := minNode(z.right)
		if y.parent != z {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
	}
	t.size--

	return true
}

// Min returns the smallest value in the tree.
// Complexity: O(h).
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T

		return zero, ErrEmptyTree
	}

	return minNode(t.root).data, nil
}

// Max returns the largest value in the tree.
// Complexity: O(h).
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T

		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.data, nil
}

// InOrder returns all values in ascending order.
// Complexity: O(n).
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.data)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// find locates the first node equal to key on the root-to-leaf path.
func (t *Tree[T]) find(key T) *node[T] {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.data)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v, updating parent links on both sides.
func (t *Tree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// minNode descends to the leftmost node of a non-nil subtree.
func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}
