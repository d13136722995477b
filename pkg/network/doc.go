// Package network provides the immutable capacitated graph that max-flow
// solvers operate on.
//
// # Overview
//
// A [Network] has N nodes addressed by the dense indices [0, N) and a set of
// directed edges with positive capacities. One node is designated the source
// and another the sink. In logistics networks these are synthetic
// super-source and super-sink nodes that aggregate many terminals and stores
// into a single-source, single-sink problem.
//
// # Capacities
//
// [Capacity] is a tagged value: [Finite] holds a number of units, [Unbounded]
// stands for "never the bottleneck". Super-source and super-sink edges are
// normally unbounded. [New] rejects networks in which the sink is reachable
// from the source through unbounded edges alone, since their maximum flow
// would be infinite.
//
// # Construction
//
//	nw, err := network.New(4, []network.Edge{
//	    {From: 0, To: 1, Capacity: network.Finite(10)},
//	    {From: 0, To: 2, Capacity: network.Finite(5)},
//	    {From: 1, To: 3, Capacity: network.Finite(5)},
//	    {From: 2, To: 3, Capacity: network.Finite(10)},
//	}, 0, 3)
//
// Invalid input is reported as a *[ConstructionError] wrapping one of the
// package's sentinel errors; use errors.Is to match the cause and errors.As
// to recover the offending edge.
//
// # Roles
//
// [Roles] partitions nodes into terminals, warehouses and stores. Roles are
// used only for reporting (flow decomposition, labels, rendering) and never by
// the solver.
package network
