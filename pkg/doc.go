// Package pkg provides the core libraries for Flowtower, a maximum-flow solver
// for layered logistics networks.
//
// # Overview
//
// Flowtower ships goods from terminals through warehouses to stores. Every
// route has a capacity; the solver finds the largest total volume the network
// can move and reports how that volume splits between terminal and store
// pairs. The pkg directory is organized into three areas:
//
//  1. Domain logic: [network], [flow], [logistics]
//  2. Presentation: [report], [render/nodelink]
//  3. Plumbing: [io], [pipeline], [observability], [metrics], [errors], [buildinfo]
//
// # Architecture
//
// The typical data flow through Flowtower:
//
//	Network file (JSON / TOML / YAML) or built-in example
//	         ↓
//	    [io] package (read + validate the plan)
//	         ↓
//	    [logistics] package (sites and routes → capacity matrix + roles)
//	         ↓
//	    [flow] package (Edmonds–Karp, min cut, decomposition)
//	         ↓
//	    [report] tables, [render/nodelink] DOT/SVG/PNG, JSON result
//
// # Quick Start
//
// Solve the built-in example and print the flow table:
//
//	import (
//	    "fmt"
//
//	    "github.com/matzehuels/flowtower/pkg/flow"
//	    "github.com/matzehuels/flowtower/pkg/logistics"
//	    "github.com/matzehuels/flowtower/pkg/report"
//	)
//
//	l, _ := logistics.Build(logistics.Example())
//	res, _ := flow.Solve(l.Network, nil)
//	rows, _ := flow.Decompose(res.State, l.Roles)
//
//	fmt.Println(res.MaxFlow) // 115
//	fmt.Println(report.FlowTable(l, rows, report.Options{}))
//
// Most callers should go through [pipeline.Runner], which adds loading,
// rendering, logging, hooks and timings on top of the same steps.
//
// # Main Packages
//
//   - [network]: Capacity (finite or unbounded), immutable capacity matrix,
//     role sets and construction checks.
//   - [flow]: Augmenting-path search, the max-flow loop, min cut, the
//     two-hop heuristic decomposition and exact path decomposition.
//   - [logistics]: Named plans with automatic super-source and super-sink.
//   - [io]: Plan and result serialization.
//   - [report]: Terminal tables built with lipgloss.
//   - [render/nodelink]: Graphviz diagrams with bottleneck highlighting.
//   - [pipeline]: Load → solve → decompose → render orchestration.
//   - [observability] and [metrics]: Hook interfaces and their Prometheus
//     implementation.
//
// [network]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/network
// [flow]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/flow
// [logistics]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/logistics
// [io]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/io
// [report]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/report
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/pipeline#Runner
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/observability
// [metrics]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/metrics
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/buildinfo
package pkg
