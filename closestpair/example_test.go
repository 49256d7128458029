package closestpair_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/closestpair"
)

// ExampleFind locates the two nearest points in a small cloud.
func ExampleFind() {
	pts := []closestpair.Point{
		{X: 2, Y: 3},
		{X: 12, Y: 30},
		{X: 40, Y: 50},
		{X: 5, Y: 1},
		{X: 12.5, Y: 10},
		{X: 3, Y: 4},
	}

	p, _ := closestpair.Find(pts)
	fmt.Printf("%.4f\n", p.Dist)
	// Output:
	// 1.4142
}
