// Package cubeflow answers one question: can a target word be spelled
// from a fixed set of letter cubes — each cube covering at most one
// letter position — and if so, which cube covers which position?
//
// 🚀 What is cubeflow?
//
//	A small, focused library that models the cube/word assignment puzzle
//	as a bipartite matching problem and solves it with max-flow:
//		• flownet — residual flow network (arena-based) + BFS augmenting
//		  paths (Ford–Fulkerson / Edmonds–Karp style driver)
//		• cubes   — puzzle model: network construction from (cubes, word),
//		  assignment extraction, and the line-based puzzle format
//
// ✨ Why choose cubeflow?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable node handles, insertion-order traversal
//   - Pure Go – no cgo, no hidden deps
//   - First-class infeasibility – "cannot be spelled" is a result value,
//     never an error
//
// Under the hood, everything is organized under two subpackages:
//
//	flownet/ — Network, NodeID/EdgeID handles, paired residual edges, MaxFlow
//	cubes/   — Solve, Assignment, ReadPuzzle/WriteAssignment
//
// Quick ASCII example (2 cubes ["AB","BC"], target "AC"):
//
//	         ┌─▶ cube0 ──▶ pos0(A) ─┐
//	  source─┤                      ├─▶ sink
//	         └─▶ cube1 ──▶ pos1(C) ─┘
//
//	max flow 2 == word length 2 → feasible, assignment [0 1].
//
// Dive into the package docs of flownet and cubes for the full contract,
// complexity notes, and worked examples.
//
//	go get github.com/katalvlaran/cubeflow
package cubeflow
