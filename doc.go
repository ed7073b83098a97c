// Package critpath (the module root) is a fast critical-path analyzer for
// build-action DAGs in Go.
//
// 🚀 What is critpath?
//
//	A small, deterministic library that answers two questions about a DAG
//	of actions annotated with per-vertex runtimes:
//
//	  • Which chain of actions is the critical path — the longest-runtime
//	    path from any source to any sink?
//	  • For every action on it, what would the end-to-end cost become if
//	    that action took zero time (its "replacement cost")?
//
// ✨ Why choose critpath?
//
//   - Fast          — a constant number of graph passes plus one
//     heap-managed sweep, O((V+E) log V), where the naive
//     counterfactual costs O(V·(V+E))
//   - Deterministic — every tie-break is a pure function of the input;
//     equal inputs give bit-equal outputs
//   - Rock-solid    — immutable graphs, total core API, property-tested
//     against a naive oracle on seeded random DAGs
//   - Pure Go       — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under three subpackages:
//
//	dag/      — dense VertexID/PathCost types, immutable CSR Graph, VertexData side-arrays
//	critpath/ — longest paths, critical-path reconstruction, replacement-cost sweep
//	randdag/  — seeded random DAG + runtime fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    a ──► b ──► d
//	    │           ▲
//	    └────► c ───┘
//
//	with runtimes {a:1, b:10, c:4, d:1} the critical path is a→b→d at
//	cost (12, 3); zeroing b leaves a→c→d at (6, 3) as the new answer.
//
//	go get github.com/katalvlaran/critpath
package critpath
