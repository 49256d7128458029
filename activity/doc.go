// Package activity solves the activity-selection problem by dynamic
// programming over intervals.
//
// An activity occupies the half-open time span [Start, Finish); two
// activities are compatible when one finishes no later than the other
// starts. The solver finds a maximum-size set of mutually compatible
// activities, optionally restricted to a time window.
//
// Activities are sorted by finish time and bracketed by two sentinel
// activities marking the window edges. The table entry dp[i][j] then
// holds the largest number of activities that fit strictly between
// activity i and activity j; a companion choice table records which
// activity was picked, so the selected set is recovered without
// re-solving.
//
// The classic greedy gives the same optimum in O(n log n); the DP
// formulation is kept because it extends naturally to windowed and
// weighted variants.
//
// Complexity:
//
//	– Select, SelectWithin: O(n³) time, O(n²) memory.
//
// Errors (sentinel):
//
//	– ErrBadInterval if an activity finishes before it starts.
//	– ErrBadWindow   if the window end precedes its start.
//
// Example usage:
//
//	acts := []activity.Activity{{1, 4}, {3, 5}, {5, 7}, {0, 6}}
//	sel, _ := activity.Select(acts)
//	// sel == [{1 4} {5 7}]
package activity
