// Package bst provides a generic binary search tree ordered by a
// user-supplied comparison function.
//
// The tree keeps parent links so that deletion can splice a node out by
// transplanting its successor, without restarting from the root.
// Duplicate values are allowed and are stored in the right subtree of
// an equal node; Search and Delete operate on the first match found on
// the root-to-leaf path.
//
// No balancing is performed, so all operations are O(h) where h is the
// current height of the tree: O(log n) on random input, O(n) in the
// worst case of sorted insertion.
//
// Complexity:
//
//	– Insert, Search, Delete: O(h)
//	– Min, Max:               O(h)
//	– InOrder:                O(n)
//	– Memory:                 O(n)
//
// Errors (sentinel):
//
//	– ErrNilCompare if the comparison function is nil.
//	– ErrEmptyTree  if Min or Max is called on an empty tree.
//
// Example usage:
//
//	t, _ := bst.New[int](func(a, b int) int { return a - b })
//	t.Insert(5)
//	t.Insert(2)
//	t.Insert(8)
//	fmt.Println(t.InOrder()) // [2 5 8]
package bst
