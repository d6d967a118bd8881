// Package spantree selects minimum spanning trees with a greedy,
// Kruskal-style pass over weighted undirected edges.
//
// 🚀 What is spantree?
//
//	A small, deterministic engine that answers one question per call:
//	"what is the next edge of the tree?"
//		• Weight index: edges ordered by (weight, insertion index)
//		• Two cycle checks: pair-scan (known pairs + shared neighbour) and union-find
//		• Tagged outcomes: accepted, rejected, complete
//		• Sources: plain text, YAML, TOML
//		• Reports: console text, YAML, TOML; prometheus metrics
//
// ✨ Why choose spantree?
//
//   - Step-wise: drive SelectNext yourself or let kruskal.Run do it
//   - Observable: slog decision trail and OnAccept/OnReject/… hooks
//   - Honest: the pair-scan tracker's blind spots are documented and tested
//     against an exact union-find and gonum's Kruskal
//
// Packages:
//
//	core/     : NodeID, Edge, Pair value types
//	tracker/  : connectivity trackers (pair-scan, union-find)
//	kruskal/  : Selector, WeightIndex, Run, Compute
//	spanning/ : Tree accumulator and forest checks
//	loader/   : graph sources
//	builder/  : deterministic graph generators
//	report/   : run reports
//	metrics/  : prometheus collectors fed by selector hooks
//	cmd/spantree : the CLI (solve, generate, version)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │      0-1 (1), 1-2 (2), 2-3 (3), 0-3 (4)
//	    3───2
//
// selects 0-1, 1-2 and 2-3 for a total cost of 6.
//
//	go install github.com/katalvlaran/spantree/cmd/spantree@latest
package spantree
