package activity

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors returned by the solvers.
var (
	// ErrBadInterval indicates an activity with Finish < Start.
	ErrBadInterval = errors.New("activity: interval finishes before it starts")

	// ErrBadWindow indicates a selection window with end < start.
	ErrBadWindow = errors.New("activity: window end precedes its start")
)

// Activity is one candidate occupying the half-open span [Start, Finish).
type Activity struct {
	Start, Finish int
}

// compatible reports whether a may directly precede b.
func compatible(a, b Activity) bool { return a.Finish <= b.Start }

// Select returns a maximum-size set of mutually compatible activities,
// in chronological order. The input slice is not modified.
// Complexity: O(n³).
func Select(acts []Activity) ([]Activity, error) {
	return selectBetween(acts, math.MinInt, math.MaxInt)
}

// SelectWithin restricts the selection to activities that lie entirely
// inside the window [from, to).
// Complexity: O(n³).
func SelectWithin(acts []Activity, from, to int) ([]Activity, error) {
	if to < from {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrBadWindow, from, to)
	}

	return selectBetween(acts, from, to)
}

// selectBetween runs the interval DP over the activities bracketed by
// sentinel activities at the window edges.
func selectBetween(acts []Activity, from, to int) ([]Activity, error) {
	for _, a := range acts {
		if a.Finish < a.Start {
			return nil, fmt.Errorf("%w: [%d, %d)", ErrBadInterval, a.Start, a.Finish)
		}
	}

	// Keep only activities inside the window, sorted by finish time.
	sorted := make([]Activity, 0, len(acts)+2)
	sorted = append(sorted, Activity{Start: from, Finish: from})
	for _, a := range acts {
		if a.Start >= from && a.Finish <= to {
			sorted = append(sorted, a)
		}
	}
	sorted = append(sorted, Activity{Start: to, Finish: to})
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Finish != sorted[j].Finish {
			return sorted[i].Finish < sorted[j].Finish
		}

		return sorted[i].Start < sorted[j].Start
	})

	n := len(sorted)
	dp := make([][]int, n)
	choice := make([][]int, n)
	for i := range dp {
		dp[i] = make([]int, n)
		choice[i] = make([]int, n)
		for j := range choice[i] {
			choice[i][j] = -1
		}
	}

	// dp[i][j] = most activities that fit strictly between i and j.
	for l := 2; l < n; l++ {
		for i := 0; i+l < n; i++ {
			j := i + l
			if !compatible(sorted[i], sorted[j]) {
				continue
			}
			for k := i + 1; k < j; k++ {
				if !compatible(sorted[i], sorted[k]) || !compatible(sorted[k], sorted[j]) {
					continue
				}
				if val := 1 + dp[i][k] + dp[k][j]; val > dp[i][j] {
					dp[i][j] = val
					choice[i][j] = k
				}
			}
		}
	}

	out := make([]Activity, 0, dp[0][n-1])
	collect(sorted, choice, 0, n-1, &out)

	return out, nil
}

// collect walks the choice table in order, appending each selected
// activity between i and j.
func collect(sorted []Activity, choice [][]int, i, j int, out *[]Activity) {
	k := choice[i][j]
	if k < 0 {
		return
	}
	collect(sorted, choice, i, k, out)
	*out = append(*out, sorted[k])
	collect(sorted, choice, k, j, out)
}
