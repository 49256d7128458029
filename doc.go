// Package algokit is a toolkit of classic algorithms built around a
// push-relabel maximum-flow engine.
//
// 🚀 What is algokit?
//
//	A small, focused library bringing together:
//		• Maximum flow: Goldberg–Tarjan push-relabel with FIFO selection
//		• Priority queues: generic binary heap with decrease/increase-key
//		• Search trees: generic unbalanced BST with parent-linked deletion
//		• Geometry: closest pair of points in O(n log n)
//		• Scheduling: activity selection by interval DP
//		• Rendering: Graphviz DOT / SVG diagrams of flow networks
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – sentinel errors, documented complexity bounds
//   - Batteries included – a CLI (cmd/algokit) for solving and rendering
//     networks from edge-list or TOML files
//
// Everything is organized as flat algorithm packages:
//
//	maxflow/     — flow network store + push-relabel solver
//	pqueue/      — indexed binary-heap priority queue
//	bst/         — generic binary search tree
//	closestpair/ — divide & conquer closest pair of points
//	activity/    — activity-selection interval DP
//	dot/         — DOT serialization and SVG rendering of networks
//
// Quick ASCII example:
//
//	    s───a
//	    │   │
//	    b───t
//
//	a diamond network: two disjoint s→t routes whose bottleneck
//	capacities add up to the maximum flow.
//
//	go get github.com/katalvlaran/algokit
package algokit
