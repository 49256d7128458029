package closestpair

import (
	"errors"
	"math"
	"sort"
)

// ErrTooFewPoints indicates Find was called with fewer than two points.
var ErrTooFewPoints = errors.New("closestpair: need at least two points")

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pair is a candidate answer: two points and the distance between them.
type Pair struct {
	P1, P2 Point
	Dist   float64
}

// Find returns the closest pair among pts. The input slice is not
// modified.
// Complexity: O(n log n).
func Find(pts []Point) (Pair, error) {
	if len(pts) < 2 {
		return Pair{}, ErrTooFewPoints
	}

	xs := make([]Point, len(pts))
	ys := make([]Point, len(pts))
	copy(xs, pts)
	copy(ys, pts)
	sort.Slice(xs, func(i, j int) bool { return xs[i].X < xs[j].X })
	sort.Slice(ys, func(i, j int) bool { return ys[i].Y < ys[j].Y })

	return closest(xs, ys), nil
}

// distance is the euclidean distance between two points.
func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// closest solves one subproblem. xs holds the points sorted by x, ys
// the same points sorted by y.
func closest(xs, ys []Point) Pair {
	n := len(xs)

	// Base case: brute force for up to three points.
	if n <= 3 {
		best := Pair{P1: xs[0], P2: xs[1], Dist: distance(xs[0], xs[1])}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := distance(xs[i], xs[j]); d < best.Dist {
					best = Pair{P1: xs[i], P2: xs[j], Dist: d}
				}
			}
		}

		return best
	}

	// Divide: split the y-sorted points by the median x in linear time.
	mid := n / 2
	median := xs[mid].X
	yl := make([]Point, 0, len(ys))
	yr := make([]Point, 0, len(ys))
	for _, p := range ys {
		if p.X < median {
			yl = append(yl, p)
		} else {
			yr = append(yr, p)
		}
	}

	// Conquer.
	left := closest(xs[:mid], yl)
	right := closest(xs[mid:], yr)
	best := left
	if right.Dist < best.Dist {
		best = right
	}

	// Combine: the winning pair may straddle the median line.
	if strip := closestInStrip(ys, median, best.Dist); strip.Dist < best.Dist {
		best = strip
	}

	return best
}

// closestInStrip checks pairs inside the vertical strip of width
// 2*delta around the median. ys must be sorted by y; each point is
// compared against at most the next seven strip points.
func closestInStrip(ys []Point, median, delta float64) Pair {
	strip := make([]Point, 0, len(ys))
	for _, p := range ys {
		if math.Abs(p.X-median) < delta {
			strip = append(strip, p)
		}
	}

	best := Pair{Dist: math.MaxFloat64}
	for i := range strip {
		for j := i + 1; j < len(strip) && j <= i+7; j++ {
			if d := distance(strip[i], strip[j]); d < best.Dist {
				best = Pair{P1: strip[i], P2: strip[j], Dist: d}
			}
		}
	}

	return best
}
