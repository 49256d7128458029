// Package closestpair finds the closest pair among a set of points in
// the plane by divide and conquer.
//
// The input is presorted once by x and once by y coordinate; each
// recursion level then splits the y-sorted slice in linear time instead
// of re-sorting, which brings the total cost to O(n log n) by case 2 of
// the master theorem: T(n) = 2T(n/2) + Θ(n).
//
// The combine step scans a vertical strip of width 2δ around the median,
// where δ is the best distance found in the two halves. Within the
// strip each point is compared against at most the next seven points in
// y order, a constant bound that follows from packing at most eight
// δ-separated points into a δ×2δ rectangle.
//
// Complexity:
//
//	– Find:   O(n log n)
//	– Memory: O(n)
//
// Errors (sentinel):
//
//	– ErrTooFewPoints if fewer than two points are supplied.
//
// Example usage:
//
//	pts := []closestpair.Point{{0, 0}, {3, 4}, {1, 1}}
//	p, _ := closestpair.Find(pts)
//	fmt.Println(p.Dist) // √2
package closestpair
