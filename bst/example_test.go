package bst_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bst"
)

// ExampleTree_InOrder builds a small tree and walks it in sorted order.
func ExampleTree_InOrder() {
	t, _ := bst.New[int](func(a, b int) int { return a - b })
	for _, v := range []int{5, 2, 8, 1, 3} {
		t.Insert(v)
	}
	fmt.Println(t.InOrder())
	// Output:
	// [1 2 3 5 8]
}

// ExampleTree_Delete removes a value and shows the remaining order.
func ExampleTree_Delete() {
	t, _ := bst.New[string](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}

		return 0
	})
	t.Insert("pear")
	t.Insert("apple")
	t.Insert("plum")

	t.Delete("pear")
	fmt.Println(t.InOrder())
	// Output:
	// [apple plum]
}
